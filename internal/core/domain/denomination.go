package domain

import (
	"fmt"

	"github.com/openvtt/shopledger/internal/apperrors"
)

// Denomination is the stable identifier of a currency tier. It is deliberately
// independent of any display label; presentation layers map symbols to labels,
// never the reverse.
type Denomination string

const (
	Platinum Denomination = "pp"
	Gold     Denomination = "gp"
	Electrum Denomination = "ep"
	Silver   Denomination = "sp"
	Copper   Denomination = "cp"
)

// DenominationInfo describes one currency tier: its symbol, a default display
// name, and its value in base units (copper).
type DenominationInfo struct {
	Symbol    Denomination
	Name      string
	BaseValue int64
}

// Denominations is the fixed denomination table, ordered by value descending.
// Copper is the base unit (value 1); the table is immutable at runtime.
var Denominations = []DenominationInfo{
	{Symbol: Platinum, Name: "Platinum Coins", BaseValue: 500},
	{Symbol: Gold, Name: "Gold Coins", BaseValue: 100},
	{Symbol: Electrum, Name: "Electrum Coins", BaseValue: 50},
	{Symbol: Silver, Name: "Silver Coins", BaseValue: 10},
	{Symbol: Copper, Name: "Copper Coins", BaseValue: 1},
}

// ValueOf returns the base-unit value of a denomination symbol.
func ValueOf(d Denomination) (int64, error) {
	for _, info := range Denominations {
		if info.Symbol == d {
			return info.BaseValue, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidDenomination, d)
}

// IsValidDenomination reports whether d is a known denomination symbol.
func IsValidDenomination(d Denomination) bool {
	_, err := ValueOf(d)
	return err == nil
}

// ToBaseUnits converts an amount of a named denomination into base units.
func ToBaseUnits(amount int64, d Denomination) (int64, error) {
	value, err := ValueOf(d)
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrNegativeAmount, amount)
	}
	return amount * value, nil
}

// FromBaseUnits decomposes a base-unit amount into the canonical greedy breakdown:
// highest denomination first, flooring at each tier. Zero-count denominations are
// omitted. The breakdown is irreducible: no included lower denomination count can
// be re-expressed as one or more units of a higher denomination.
func FromBaseUnits(amount int64) (map[Denomination]int64, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrNegativeAmount, amount)
	}

	breakdown := make(map[Denomination]int64)
	remaining := amount
	for _, info := range Denominations {
		count := remaining / info.BaseValue
		if count > 0 {
			breakdown[info.Symbol] = count
			remaining -= count * info.BaseValue
		}
	}
	// The base unit has value 1, so the greedy pass always terminates at zero.
	return breakdown, nil
}
