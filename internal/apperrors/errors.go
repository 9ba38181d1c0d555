package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidDenomination indicates an unknown currency denomination symbol.
var ErrInvalidDenomination = errors.New("invalid denomination")

// ErrNegativeAmount indicates a negative quantity was supplied to a converter.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// ErrInvalidArgument indicates a negative base value or multiplier.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInsufficientFunds indicates a ledger's total value is below a requested cost.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInternalInconsistency indicates a settlement reconciliation mismatch or coin
// exhaustion while breaking a larger coin. It signals a logic defect rather than a
// business-rule failure and must never commit a partial ledger state.
var ErrInternalInconsistency = errors.New("internal inconsistency")
