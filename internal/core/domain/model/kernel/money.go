package kernel

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// Money is a value object holding a non-negative amount in the smallest currency
// unit (paise). Charge fields, bill totals, and adjustment magnitudes are all Money;
// signs are never stored, they are implied by the field or adjustment type.
//
// The zero value is a valid zero amount, so Money can be embedded in aggregates
// without a constructor guard. Arithmetic methods return new values; Money is
// immutable.
//
// Example:
//
//	freight, _ := kernel.NewMoney(100000) // 1000.00
//	total := freight.Add(handling)
type Money struct {
	amount int64
}

// NewMoney creates a Money from an amount in the smallest currency unit.
// Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// MustMoney is a constructor for amounts known to be valid, such as literals in
// tests and derived sums of already-validated values. It panics on a negative amount.
func MustMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the value in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// SubFloorZero subtracts other and floors the result at zero. Bill final amounts
// never go negative regardless of discount magnitude.
func (m Money) SubFloorZero(other Money) Money {
	if other.amount >= m.amount {
		return Money{}
	}
	return Money{amount: m.amount - other.amount}
}

// IsEqual reports whether both amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// String renders the amount with two decimal places, e.g. "1000.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
