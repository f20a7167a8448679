package freightbill

import (
	"fmt"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

// AdjustmentType classifies a bill adjustment. The sign of an adjustment is
// implied by its type: Discount subtracts from the bill total, every other
// type adds to it. The stored amount is always a non-negative magnitude.
type AdjustmentType int

const (
	// AdjustmentTypeUnknown represents an invalid or undefined type.
	AdjustmentTypeUnknown AdjustmentType = iota

	// Discount subtracts its amount from the bill total.
	Discount

	// ExtraCharge adds a one-off charge to the bill total.
	ExtraCharge

	// FuelSurcharge adds a fuel surcharge to the bill total.
	FuelSurcharge

	// OtherAdjustment adds an unclassified amount to the bill total.
	OtherAdjustment
)

func getAdjustmentTypeStrings() map[AdjustmentType]string {
	return map[AdjustmentType]string{
		AdjustmentTypeUnknown: "UNKNOWN",
		Discount:              "DISCOUNT",
		ExtraCharge:           "EXTRA_CHARGE",
		FuelSurcharge:         "FUEL_SURCHARGE",
		OtherAdjustment:       "OTHER",
	}
}

// AdjustmentTypeFromString parses the wire name of an adjustment type.
func AdjustmentTypeFromString(s string) (AdjustmentType, error) {
	for t, str := range getAdjustmentTypeStrings() {
		if t != AdjustmentTypeUnknown && str == s {
			return t, nil
		}
	}
	return AdjustmentTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"adjustmentType",
		fmt.Errorf("%q is not a valid adjustment type", s),
	)
}

// Validate checks that the AdjustmentType holds one of the defined values.
func (t AdjustmentType) Validate() error {
	if _, ok := getAdjustmentTypeStrings()[t]; !ok || t == AdjustmentTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("adjustmentType", fmt.Errorf("%d is not a valid adjustment type", t))
	}
	return nil
}

// String returns the wire name of the type, "UNKNOWN" for invalid values.
func (t AdjustmentType) String() string {
	if str, ok := getAdjustmentTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsSubtractive reports whether the adjustment reduces the bill total.
func (t AdjustmentType) IsSubtractive() bool {
	return t == Discount
}

// Adjustment is one named addition or subtraction applied to a bill's base
// total. The amount is a non-negative magnitude; an adjustment with a non-zero
// amount must say what it is for.
type Adjustment struct {
	adjustmentType AdjustmentType
	description    string
	amount         kernel.Money
}

// NewAdjustment creates an adjustment of the given type.
func NewAdjustment(adjustmentType AdjustmentType, description string, amount kernel.Money) (Adjustment, error) {
	if err := adjustmentType.Validate(); err != nil {
		return Adjustment{}, err
	}
	if !amount.IsZero() && description == "" {
		return Adjustment{}, errs.NewValueIsRequiredError("adjustmentDescription")
	}

	return Adjustment{
		adjustmentType: adjustmentType,
		description:    description,
		amount:         amount,
	}, nil
}

// Type returns the adjustment's type.
func (a Adjustment) Type() AdjustmentType { return a.adjustmentType }

// Description returns the reason for the adjustment.
func (a Adjustment) Description() string { return a.description }

// Amount returns the non-negative magnitude of the adjustment.
func (a Adjustment) Amount() kernel.Money { return a.amount }
