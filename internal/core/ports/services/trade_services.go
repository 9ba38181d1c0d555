package services

import (
	"context"

	"github.com/openvtt/shopledger/internal/dto"
)

// TradeSvcFacade exposes the shop transaction flows. Each flow computes an
// adjusted base-unit amount from the pricing configuration and settles it
// against the customer's ledger; item cataloguing stays with the caller.
type TradeSvcFacade interface {
	// Purchase charges a customer for shop stock at the sell multiplier.
	Purchase(ctx context.Context, req dto.PurchaseRequest) (*dto.TradeResult, error)

	// Sell pays a customer for an item the shop buys, at the buy multiplier
	// for the item's category. A zero multiplier rejects the trade.
	Sell(ctx context.Context, req dto.SellRequest) (*dto.TradeResult, error)

	// Repair charges per damage point at the material's repair rate.
	Repair(ctx context.Context, req dto.RepairRequest) (*dto.TradeResult, error)

	// UseService charges a flat service fee.
	UseService(ctx context.Context, req dto.UseServiceRequest) (*dto.TradeResult, error)
}
