package consignment

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// Weights holds the actual and charged weight of a consignment in kilograms.
// Charged weight is what the customer pays for and can never be less than the
// actual weight; the invariant is enforced at construction, so it holds at
// booking and at every later edit.
type Weights struct {
	actualKg  int
	chargedKg int
}

// NewWeights creates a weight pair. Both weights must be positive and
// chargedKg must be at least actualKg.
func NewWeights(actualKg, chargedKg int) (Weights, error) {
	if actualKg <= 0 {
		return Weights{}, errs.NewValueIsInvalidErrorWithCause(
			"actualWeight",
			fmt.Errorf("%d is not greater than 0", actualKg),
		)
	}
	if chargedKg < actualKg {
		return Weights{}, errs.NewValueIsInvalidErrorWithCause(
			"chargedWeight",
			fmt.Errorf("%d is less than actual weight %d", chargedKg, actualKg),
		)
	}

	return Weights{actualKg: actualKg, chargedKg: chargedKg}, nil
}

// Validate reports whether the pair satisfies the weight invariants.
// The zero value is invalid.
func (w Weights) Validate() error {
	if w.actualKg <= 0 || w.chargedKg < w.actualKg {
		return errs.NewValueIsInvalidError("weights")
	}
	return nil
}

// ActualKg returns the actual weight in kilograms.
func (w Weights) ActualKg() int { return w.actualKg }

// ChargedKg returns the charged weight in kilograms.
func (w Weights) ChargedKg() int { return w.chargedKg }
