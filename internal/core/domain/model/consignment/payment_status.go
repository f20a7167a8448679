package consignment

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// PaymentStatus tracks a consignment's billing linkage, orthogonal to the
// delivery lifecycle. Unbilled consignments in Delivered status are the
// candidates for freight-bill consolidation; a consignment belongs to at most
// one bill.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// Unbilled means the consignment has not been included in any freight bill.
	Unbilled

	// Billed means the consignment is a line item of a live freight bill.
	Billed

	// Paid means the owning freight bill has been settled in full.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "UNKNOWN",
		Unbilled:       "UNBILLED",
		Billed:         "BILLED",
		Paid:           "PAID",
	}
}

// Validate checks that the PaymentStatus holds one of the defined values.
func (p PaymentStatus) Validate() error {
	switch p {
	case Unbilled, Billed, Paid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
}

// String returns the wire name of the payment status, "UNKNOWN" for invalid values.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
