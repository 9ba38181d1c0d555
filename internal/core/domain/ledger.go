package domain

// Ledger is one economic actor's holding of coins, expressed as counts per
// denomination. Every quantity is non-negative. A ledger is mutated only by the
// settlement commit step; a failed settlement leaves it untouched.
type Ledger struct {
	OwnerID    string                 `json:"ownerID"`
	Quantities map[Denomination]int64 `json:"quantities"`
	AuditFields
}

// NewLedger creates an empty ledger for an owner, with a zero count for every
// denomination in the table.
func NewLedger(ownerID string) Ledger {
	quantities := make(map[Denomination]int64, len(Denominations))
	for _, info := range Denominations {
		quantities[info.Symbol] = 0
	}
	return Ledger{OwnerID: ownerID, Quantities: quantities}
}

// Total returns the ledger's value in base units.
func (l Ledger) Total() int64 {
	var sum int64
	for _, info := range Denominations {
		sum += l.Quantities[info.Symbol] * info.BaseValue
	}
	return sum
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	quantities := make(map[Denomination]int64, len(l.Quantities))
	for d, q := range l.Quantities {
		quantities[d] = q
	}
	clone := l
	clone.Quantities = quantities
	return clone
}

// Equal reports whether two ledgers hold the same counts for every denomination
// in the table. Owner and audit fields are not compared.
func (l Ledger) Equal(other Ledger) bool {
	for _, info := range Denominations {
		if l.Quantities[info.Symbol] != other.Quantities[info.Symbol] {
			return false
		}
	}
	return true
}
