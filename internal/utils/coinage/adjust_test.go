package coinage_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/utils/coinage"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name       string
		baseValue  int64
		multiplier decimal.Decimal
		want       int64
	}{
		{name: "identity", baseValue: 100, multiplier: decimal.NewFromInt(1), want: 100},
		{name: "half", baseValue: 100, multiplier: decimal.NewFromFloat(0.5), want: 50},
		{name: "double", baseValue: 100, multiplier: decimal.NewFromInt(2), want: 200},
		{name: "zero multiplier overrides any base", baseValue: 10000, multiplier: decimal.Zero, want: 0},
		{name: "zero base", baseValue: 0, multiplier: decimal.NewFromFloat(2.0), want: 0},
		// Rounding is half away from zero: 2.5 -> 3, 1.5 -> 2.
		{name: "round half up at 2.5", baseValue: 5, multiplier: decimal.NewFromFloat(0.5), want: 3},
		{name: "round half up at 1.5", baseValue: 3, multiplier: decimal.NewFromFloat(0.5), want: 2},
		{name: "round down below half", baseValue: 7, multiplier: decimal.NewFromFloat(0.3), want: 2},
		{name: "round up above half", baseValue: 9, multiplier: decimal.NewFromFloat(0.3), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coinage.Adjust(tt.baseValue, tt.multiplier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustRejectsNegatives(t *testing.T) {
	_, err := coinage.Adjust(-1, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = coinage.Adjust(100, decimal.NewFromFloat(-0.5))
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}
