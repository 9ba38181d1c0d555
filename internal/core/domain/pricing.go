package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ItemCategory classifies an item for multiplier selection.
type ItemCategory string

const (
	CategoryOrdinary ItemCategory = "ORDINARY"
	CategoryMagic    ItemCategory = "MAGIC"
	CategoryTreasure ItemCategory = "TREASURE"
)

// RepairMaterial selects the per-point repair rate.
type RepairMaterial string

const (
	MaterialMetal   RepairMaterial = "METAL"
	MaterialLeather RepairMaterial = "LEATHER"
	MaterialOther   RepairMaterial = "OTHER"
)

// NormalizeMaterial maps a free-form material description onto a repair material.
// Anything containing "leather" counts as leather; anything that is not metal
// falls back to other.
func NormalizeMaterial(material string) RepairMaterial {
	m := strings.ToLower(strings.TrimSpace(material))
	switch {
	case strings.Contains(m, "leather"):
		return MaterialLeather
	case m == "metal":
		return MaterialMetal
	default:
		return MaterialOther
	}
}

// PricingConfig holds the operator-configured multipliers and repair rates.
// Multipliers are non-negative rationals; a multiplier of exactly zero marks the
// affected items as not transactable regardless of their listed cost. Repair
// rates are per damage point, in base units.
type PricingConfig struct {
	SellOrdinaryMultiplier decimal.Decimal `json:"sellOrdinaryMultiplier"`
	SellMagicMultiplier    decimal.Decimal `json:"sellMagicMultiplier"`
	BuyOrdinaryMultiplier  decimal.Decimal `json:"buyOrdinaryMultiplier"`
	// BuyMagicMultiplier is the single source of truth for the "magic item,
	// bought from customer" rate. Every call site must reference this field; do
	// not introduce per-call-site fallbacks.
	BuyMagicMultiplier    decimal.Decimal `json:"buyMagicMultiplier"`
	BuyTreasureMultiplier decimal.Decimal `json:"buyTreasureMultiplier"`

	RepairMetalPerPoint   int64 `json:"repairMetalPerPoint"`
	RepairLeatherPerPoint int64 `json:"repairLeatherPerPoint"`
	RepairOtherPerPoint   int64 `json:"repairOtherPerPoint"`

	AuditFields
}

// DefaultPricingConfig returns the documented defaults used until an operator
// saves an explicit configuration.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		SellOrdinaryMultiplier: decimal.NewFromInt(1),
		SellMagicMultiplier:    decimal.NewFromInt(1),
		BuyOrdinaryMultiplier:  decimal.NewFromFloat(0.5),
		BuyMagicMultiplier:     decimal.NewFromFloat(0.5),
		BuyTreasureMultiplier:  decimal.NewFromInt(1),
		RepairMetalPerPoint:    75,
		RepairLeatherPerPoint:  5,
		RepairOtherPerPoint:    500,
	}
}

// SellMultiplier returns the shop-sells-to-customer multiplier for a category.
// Treasure is not sold by the shop, so it prices as ordinary stock.
func (p PricingConfig) SellMultiplier(category ItemCategory) decimal.Decimal {
	if category == CategoryMagic {
		return p.SellMagicMultiplier
	}
	return p.SellOrdinaryMultiplier
}

// BuyMultiplier returns the shop-buys-from-customer multiplier for a category.
func (p PricingConfig) BuyMultiplier(category ItemCategory) decimal.Decimal {
	switch category {
	case CategoryMagic:
		return p.BuyMagicMultiplier
	case CategoryTreasure:
		return p.BuyTreasureMultiplier
	default:
		return p.BuyOrdinaryMultiplier
	}
}

// RepairRatePerPoint returns the base-unit cost per damage point for a material.
func (p PricingConfig) RepairRatePerPoint(material RepairMaterial) int64 {
	switch material {
	case MaterialMetal:
		return p.RepairMetalPerPoint
	case MaterialLeather:
		return p.RepairLeatherPerPoint
	default:
		return p.RepairOtherPerPoint
	}
}

// Valid reports whether every multiplier and repair rate is non-negative.
func (p PricingConfig) Valid() bool {
	multipliers := []decimal.Decimal{
		p.SellOrdinaryMultiplier,
		p.SellMagicMultiplier,
		p.BuyOrdinaryMultiplier,
		p.BuyMagicMultiplier,
		p.BuyTreasureMultiplier,
	}
	for _, m := range multipliers {
		if m.IsNegative() {
			return false
		}
	}
	return p.RepairMetalPerPoint >= 0 && p.RepairLeatherPerPoint >= 0 && p.RepairOtherPerPoint >= 0
}
