package repositories

import (
	"context"

	"github.com/openvtt/shopledger/internal/core/domain"
)

// LedgerReader defines read operations for ledger data
type LedgerReader interface {
	// FindLedgerByOwner retrieves the coin holding of one economic actor.
	// Returns apperrors.ErrNotFound if the owner has no ledger yet.
	FindLedgerByOwner(ctx context.Context, ownerID string) (*domain.Ledger, error)
}

// LedgerWriter defines write operations for ledger data
type LedgerWriter interface {
	// SaveLedger persists a settled ledger. All denomination counts are
	// replaced atomically; no partial row update is observable.
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
