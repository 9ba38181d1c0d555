package dto

import (
	"time"

	"github.com/openvtt/shopledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdatePricingConfigRequest carries new operator-configured pricing values.
// All fields are required so a save always describes the full configuration.
type UpdatePricingConfigRequest struct {
	SellOrdinaryMultiplier decimal.Decimal `json:"sellOrdinaryMultiplier" binding:"required"`
	SellMagicMultiplier    decimal.Decimal `json:"sellMagicMultiplier" binding:"required"`
	BuyOrdinaryMultiplier  decimal.Decimal `json:"buyOrdinaryMultiplier" binding:"required"`
	BuyMagicMultiplier     decimal.Decimal `json:"buyMagicMultiplier" binding:"required"`
	BuyTreasureMultiplier  decimal.Decimal `json:"buyTreasureMultiplier" binding:"required"`
	RepairMetalPerPoint    int64           `json:"repairMetalPerPoint" binding:"min=0"`
	RepairLeatherPerPoint  int64           `json:"repairLeatherPerPoint" binding:"min=0"`
	RepairOtherPerPoint    int64           `json:"repairOtherPerPoint" binding:"min=0"`
}

// PricingConfigResponse describes the effective pricing configuration.
type PricingConfigResponse struct {
	SellOrdinaryMultiplier decimal.Decimal `json:"sellOrdinaryMultiplier"`
	SellMagicMultiplier    decimal.Decimal `json:"sellMagicMultiplier"`
	BuyOrdinaryMultiplier  decimal.Decimal `json:"buyOrdinaryMultiplier"`
	BuyMagicMultiplier     decimal.Decimal `json:"buyMagicMultiplier"`
	BuyTreasureMultiplier  decimal.Decimal `json:"buyTreasureMultiplier"`
	RepairMetalPerPoint    int64           `json:"repairMetalPerPoint"`
	RepairLeatherPerPoint  int64           `json:"repairLeatherPerPoint"`
	RepairOtherPerPoint    int64           `json:"repairOtherPerPoint"`
	LastUpdatedAt          time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy          string          `json:"lastUpdatedBy"`
}

// ToPricingConfigResponse converts a domain.PricingConfig to its response DTO
func ToPricingConfigResponse(config *domain.PricingConfig) PricingConfigResponse {
	return PricingConfigResponse{
		SellOrdinaryMultiplier: config.SellOrdinaryMultiplier,
		SellMagicMultiplier:    config.SellMagicMultiplier,
		BuyOrdinaryMultiplier:  config.BuyOrdinaryMultiplier,
		BuyMagicMultiplier:     config.BuyMagicMultiplier,
		BuyTreasureMultiplier:  config.BuyTreasureMultiplier,
		RepairMetalPerPoint:    config.RepairMetalPerPoint,
		RepairLeatherPerPoint:  config.RepairLeatherPerPoint,
		RepairOtherPerPoint:    config.RepairOtherPerPoint,
		LastUpdatedAt:          config.LastUpdatedAt,
		LastUpdatedBy:          config.LastUpdatedBy,
	}
}
