// Package coinage holds the pure currency computations: cost adjustment and the
// transaction-settlement algorithm. Nothing here touches storage; callers hand
// the results to a repository.
package coinage

import (
	"fmt"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Adjust applies a pricing multiplier to a base cost in base units.
//
// A multiplier of exactly zero is a sentinel meaning "not transactable" and
// returns 0 regardless of the base value. Otherwise the product is rounded
// half away from zero, which is what decimal.Round does.
func Adjust(baseValue int64, multiplier decimal.Decimal) (int64, error) {
	if baseValue < 0 {
		return 0, fmt.Errorf("%w: base value %d is negative", apperrors.ErrInvalidArgument, baseValue)
	}
	if multiplier.IsNegative() {
		return 0, fmt.Errorf("%w: multiplier %s is negative", apperrors.ErrInvalidArgument, multiplier)
	}
	if multiplier.IsZero() {
		return 0, nil
	}
	return decimal.NewFromInt(baseValue).Mul(multiplier).Round(0).IntPart(), nil
}
