package coinage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	"github.com/openvtt/shopledger/internal/utils/coinage"
)

func ledgerWith(counts map[domain.Denomination]int64) domain.Ledger {
	ledger := domain.NewLedger("customer-1")
	for d, q := range counts {
		ledger.Quantities[d] = q
	}
	return ledger
}

func assertCounts(t *testing.T, ledger domain.Ledger, want map[domain.Denomination]int64) {
	t.Helper()
	for _, info := range domain.Denominations {
		assert.Equal(t, want[info.Symbol], ledger.Quantities[info.Symbol], "count of %s", info.Symbol)
	}
}

func TestSettleZeroAmountIsIdempotent(t *testing.T) {
	ledgers := []domain.Ledger{
		ledgerWith(nil),
		ledgerWith(map[domain.Denomination]int64{domain.Copper: 7}),
		ledgerWith(map[domain.Denomination]int64{domain.Platinum: 2, domain.Silver: 1}),
	}
	for _, before := range ledgers {
		after, err := coinage.Settle(before, 0)
		require.NoError(t, err)
		assert.True(t, before.Equal(after))
	}
}

func TestSettleExactPaymentNoBreaking(t *testing.T) {
	before := ledgerWith(map[domain.Denomination]int64{domain.Copper: 150})

	after, err := coinage.Settle(before, 150)

	require.NoError(t, err)
	assert.Zero(t, after.Total())
	assertCounts(t, after, map[domain.Denomination]int64{})
}

// Paying 150 from 2 gold and 3 silver consumes all the silver first, covers
// the rest with gold and returns the over-collection as canonical change.
func TestSettleBreaksLargerCoin(t *testing.T) {
	before := ledgerWith(map[domain.Denomination]int64{domain.Gold: 2, domain.Silver: 3})
	require.Equal(t, int64(230), before.Total())

	after, err := coinage.Settle(before, 150)

	require.NoError(t, err)
	assert.Equal(t, int64(80), after.Total())
	assertCounts(t, after, map[domain.Denomination]int64{domain.Electrum: 1, domain.Silver: 3})
	// The caller's ledger is untouched.
	assertCounts(t, before, map[domain.Denomination]int64{domain.Gold: 2, domain.Silver: 3})
}

func TestSettleRefundIntoEmptyLedger(t *testing.T) {
	before := ledgerWith(nil)

	after, err := coinage.Settle(before, -237)

	require.NoError(t, err)
	assert.Equal(t, int64(237), after.Total())
	assertCounts(t, after, map[domain.Denomination]int64{domain.Gold: 2, domain.Silver: 3, domain.Copper: 7})
}

func TestSettleGrantMergesWithExistingCoins(t *testing.T) {
	before := ledgerWith(map[domain.Denomination]int64{domain.Copper: 3})

	after, err := coinage.Settle(before, -97)

	require.NoError(t, err)
	assert.Equal(t, int64(100), after.Total())
	assertCounts(t, after, map[domain.Denomination]int64{domain.Electrum: 1, domain.Silver: 4, domain.Copper: 10})
}

func TestSettlePrefersSmallCoins(t *testing.T) {
	before := ledgerWith(map[domain.Denomination]int64{domain.Copper: 200, domain.Gold: 5})

	after, err := coinage.Settle(before, 150)

	require.NoError(t, err)
	assertCounts(t, after, map[domain.Denomination]int64{domain.Copper: 50, domain.Gold: 5})
}

// A 1 copper cost paid from a single gold coin comes back as 99 copper worth
// of canonical change.
func TestSettleOverpaymentReturnsChange(t *testing.T) {
	before := ledgerWith(map[domain.Denomination]int64{domain.Gold: 1})

	after, err := coinage.Settle(before, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(99), after.Total())
	assertCounts(t, after, map[domain.Denomination]int64{domain.Electrum: 1, domain.Silver: 4, domain.Copper: 9})
}

func TestSettleInsufficientFunds(t *testing.T) {
	before := ledgerWith(map[domain.Denomination]int64{domain.Silver: 1})

	_, err := coinage.Settle(before, 11)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assertCounts(t, before, map[domain.Denomination]int64{domain.Silver: 1})
}

func TestSettleEmptyLedgerAnyCostFails(t *testing.T) {
	before := ledgerWith(nil)

	_, err := coinage.Settle(before, 1)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Zero(t, before.Total())
}

// Conservation: every committed settlement changes the total by exactly the
// amount; every rejection leaves the input ledger untouched.
func TestSettleConservation(t *testing.T) {
	holdings := []map[domain.Denomination]int64{
		nil,
		{domain.Copper: 1},
		{domain.Copper: 49},
		{domain.Silver: 3},
		{domain.Silver: 9, domain.Copper: 9},
		{domain.Electrum: 2},
		{domain.Gold: 2, domain.Silver: 3},
		{domain.Gold: 1, domain.Copper: 7},
		{domain.Platinum: 1},
		{domain.Platinum: 2, domain.Electrum: 1, domain.Copper: 3},
	}
	amounts := []int64{-777, -500, -99, -1, 0, 1, 7, 10, 49, 50, 99, 100, 149, 230, 499, 500, 1003}

	for _, counts := range holdings {
		for _, amount := range amounts {
			before := ledgerWith(counts)
			snapshot := before.Clone()
			totalBefore := before.Total()

			after, err := coinage.Settle(before, amount)

			assert.True(t, before.Equal(snapshot), "input ledger mutated for holding %v amount %d", counts, amount)
			if amount > totalBefore {
				assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds, "holding %v amount %d", counts, amount)
				continue
			}
			require.NoError(t, err, "holding %v amount %d", counts, amount)
			assert.Equal(t, totalBefore-amount, after.Total(), "holding %v amount %d", counts, amount)
			for _, info := range domain.Denominations {
				assert.GreaterOrEqual(t, after.Quantities[info.Symbol], int64(0),
					"negative %s count for holding %v amount %d", info.Symbol, counts, amount)
			}
		}
	}
}
