package dto

import (
	"github.com/openvtt/shopledger/internal/core/domain"
)

// PurchaseRequest charges a customer for shop stock. ListedCost is the item's
// catalogue price in ListedDenomination; the sell multiplier for the category
// is applied per item.
type PurchaseRequest struct {
	CustomerID         string              `json:"customerID" binding:"required"`
	ListedCost         int64               `json:"listedCost" binding:"min=0"`
	ListedDenomination domain.Denomination `json:"listedDenomination" binding:"required,denom"`
	Category           domain.ItemCategory `json:"category" binding:"omitempty,oneof=ORDINARY MAGIC TREASURE"`
	Quantity           int64               `json:"quantity" binding:"required,min=1"`
}

// SellRequest pays a customer for an item the shop buys from them.
type SellRequest struct {
	CustomerID         string              `json:"customerID" binding:"required"`
	ListedCost         int64               `json:"listedCost" binding:"min=0"`
	ListedDenomination domain.Denomination `json:"listedDenomination" binding:"required,denom"`
	Category           domain.ItemCategory `json:"category" binding:"omitempty,oneof=ORDINARY MAGIC TREASURE"`
	Quantity           int64               `json:"quantity" binding:"required,min=1"`
}

// RepairRequest charges a customer for repairing an item. Material is free-form
// and normalized to metal/leather/other for rate selection.
type RepairRequest struct {
	CustomerID   string `json:"customerID" binding:"required"`
	Material     string `json:"material" binding:"required"`
	DamagePoints int64  `json:"damagePoints" binding:"min=0"`
}

// UseServiceRequest charges a customer a flat service fee in base units.
type UseServiceRequest struct {
	CustomerID      string `json:"customerID" binding:"required"`
	CostInBaseUnits int64  `json:"costInBaseUnits" binding:"min=0"`
	ServiceName     string `json:"serviceName" binding:"required"`
}

// TradeResult reports a settled trade: the signed amount that was applied and
// the customer's ledger afterwards.
type TradeResult struct {
	TransactionID     string                        `json:"transactionID"`
	AmountInBaseUnits int64                         `json:"amountInBaseUnits"`
	AmountBreakdown   map[domain.Denomination]int64 `json:"amountBreakdown"`
	Ledger            LedgerResponse                `json:"ledger"`
}
