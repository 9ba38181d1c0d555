package dto

import (
	"github.com/openvtt/shopledger/internal/core/domain"
)

// SettleRequest asks for a direct settlement against an owner's ledger:
// positive amounts charge the owner, negative amounts grant funds. Zero is a
// valid no-op settlement, so the field carries no required binding.
type SettleRequest struct {
	AmountInBaseUnits int64 `json:"amountInBaseUnits"`
}

// LedgerResponse describes an owner's coin holding.
type LedgerResponse struct {
	OwnerID          string                        `json:"ownerID"`
	Quantities       map[domain.Denomination]int64 `json:"quantities"`
	TotalInBaseUnits int64                         `json:"totalInBaseUnits"`
}

// ToLedgerResponse converts a domain.Ledger to a LedgerResponse DTO
func ToLedgerResponse(ledger *domain.Ledger) LedgerResponse {
	return LedgerResponse{
		OwnerID:          ledger.OwnerID,
		Quantities:       ledger.Quantities,
		TotalInBaseUnits: ledger.Total(),
	}
}
