package coinage

import (
	"fmt"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
)

// Settle resolves a signed base-unit amount against a ledger. A positive amount
// charges the owner, a negative amount grants funds (sale proceeds, refunds).
//
// The computation runs entirely on a working copy: on success the returned
// ledger's total differs from the input's by exactly -amount, on any error the
// caller's ledger is untouched. The algorithm pays smallest denominations first,
// breaks one larger coin at a time when small coins run out, and returns any
// over-collection as change in the canonical breakdown. A reconciliation check
// guards the conservation invariant before the result is handed back.
func Settle(ledger domain.Ledger, amount int64) (domain.Ledger, error) {
	working := ledger.Clone()
	totalBefore := working.Total()

	if amount == 0 {
		return working, nil
	}
	if amount > 0 && totalBefore < amount {
		return domain.Ledger{}, fmt.Errorf("%w: have %d, need %d", apperrors.ErrInsufficientFunds, totalBefore, amount)
	}

	remaining := amount

	if remaining > 0 {
		paySmallestFirst(&working, &remaining)
		if remaining > 0 {
			if err := breakLargerCoins(&working, &remaining); err != nil {
				return domain.Ledger{}, err
			}
		}
	}

	// Net over-collection (or the whole grant, for negative amounts) comes back
	// as change in the canonical breakdown.
	if change := -remaining; change > 0 {
		breakdown, err := domain.FromBaseUnits(change)
		if err != nil {
			return domain.Ledger{}, fmt.Errorf("%w: change computation: %v", apperrors.ErrInternalInconsistency, err)
		}
		for d, count := range breakdown {
			working.Quantities[d] += count
		}
		remaining = 0
	}

	if remaining != 0 || working.Total() != totalBefore-amount {
		return domain.Ledger{}, fmt.Errorf("%w: reconciliation failed, total %d -> %d for amount %d",
			apperrors.ErrInternalInconsistency, totalBefore, working.Total(), amount)
	}
	return working, nil
}

// paySmallestFirst deducts coins from the lowest denomination upward. Each tier
// contributes min(ceil(remaining/value), available) coins, so many small coins
// are consumed before any larger coin is touched, and the last tier used may
// overpay and drive remaining negative. That overshoot is resolved as change.
func paySmallestFirst(working *domain.Ledger, remaining *int64) {
	for i := len(domain.Denominations) - 1; i >= 0; i-- {
		if *remaining <= 0 {
			return
		}
		info := domain.Denominations[i]
		available := working.Quantities[info.Symbol]
		if available == 0 {
			continue
		}
		needed := (*remaining + info.BaseValue - 1) / info.BaseValue
		used := needed
		if available < used {
			used = available
		}
		working.Quantities[info.Symbol] -= used
		*remaining -= used * info.BaseValue
	}
}

// breakLargerCoins covers a residual cost by breaking one coin at a time,
// always the smallest denomination above the base unit that still has coins.
// The broken coin's value is tracked as a separate floating credit (never by
// mutating table constants): part of it pays down the residual, the rest is
// redistributed greedily into strictly lower denominations, so the coin just
// broken is never re-issued.
//
// The affordability precondition guarantees this phase can always finish; coin
// exhaustion with a residual left is therefore an internal inconsistency.
func breakLargerCoins(working *domain.Ledger, remaining *int64) error {
	for *remaining > 0 {
		idx := -1
		for i := len(domain.Denominations) - 2; i >= 0; i-- {
			if working.Quantities[domain.Denominations[i].Symbol] > 0 {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: coins exhausted with %d still owed", apperrors.ErrInternalInconsistency, *remaining)
		}

		broken := domain.Denominations[idx]
		working.Quantities[broken.Symbol]--
		floatingCredit := broken.BaseValue

		applied := floatingCredit
		if *remaining < applied {
			applied = *remaining
		}
		*remaining -= applied
		floatingCredit -= applied

		for i := idx + 1; i < len(domain.Denominations) && floatingCredit > 0; i++ {
			lower := domain.Denominations[i]
			count := floatingCredit / lower.BaseValue
			if count > 0 {
				working.Quantities[lower.Symbol] += count
				floatingCredit -= count * lower.BaseValue
			}
		}
		if floatingCredit != 0 {
			return fmt.Errorf("%w: %d base units lost while breaking %s", apperrors.ErrInternalInconsistency, floatingCredit, broken.Symbol)
		}
	}
	return nil
}
