package services

import (
	"context"

	"github.com/openvtt/shopledger/internal/core/domain"
)

// LedgerReaderSvc defines read operations for ledger data
type LedgerReaderSvc interface {
	// GetLedger retrieves an owner's ledger. Owners without a stored ledger
	// get an empty one; currency tracking starts on first use.
	GetLedger(ctx context.Context, ownerID string) (*domain.Ledger, error)
}

// SettlementSvc resolves signed base-unit amounts against owner ledgers.
type SettlementSvc interface {
	// Settle charges (positive amount) or grants (negative amount) an owner's
	// ledger and persists the result. Calls against the same owner are
	// serialized; the stored ledger is unchanged on any error.
	Settle(ctx context.Context, ownerID string, amountInBaseUnits int64) (*domain.Ledger, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	SettlementSvc
}
