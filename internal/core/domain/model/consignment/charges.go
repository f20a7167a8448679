package consignment

import (
	"freightops/internal/core/domain/model/kernel"
)

// Charges is the fixed set of charge fields on a consignment: base freight plus
// the named optional surcharges. Every field is a non-negative kernel.Money, and
// the grand total is always derived from the current fields. There is no stored
// total to drift out of sync: changing any charge changes GrandTotal on the next
// read.
type Charges struct {
	freight              kernel.Money
	handling             kernel.Money
	serviceTax           kernel.Money
	doorDelivery         kernel.Money
	other                kernel.Money
	risk                 kernel.Money
	additionalServiceTax kernel.Money
}

// NewCharges creates a charge set. Non-negativity is guaranteed by kernel.Money,
// so there is nothing further to validate; a zero value is a valid all-zero
// charge set.
func NewCharges(freight, handling, serviceTax, doorDelivery, other, risk, additionalServiceTax kernel.Money) Charges {
	return Charges{
		freight:              freight,
		handling:             handling,
		serviceTax:           serviceTax,
		doorDelivery:         doorDelivery,
		other:                other,
		risk:                 risk,
		additionalServiceTax: additionalServiceTax,
	}
}

// FreightOnly creates a charge set with only the base freight populated.
func FreightOnly(freight kernel.Money) Charges {
	return Charges{freight: freight}
}

// GrandTotal returns the sum of all charge fields. It is recomputed on every
// call and never settable independently.
func (c Charges) GrandTotal() kernel.Money {
	return c.freight.
		Add(c.handling).
		Add(c.serviceTax).
		Add(c.doorDelivery).
		Add(c.other).
		Add(c.risk).
		Add(c.additionalServiceTax)
}

// Freight returns the base freight charge.
func (c Charges) Freight() kernel.Money { return c.freight }

// Handling returns the handling (hamali) surcharge.
func (c Charges) Handling() kernel.Money { return c.handling }

// ServiceTax returns the service tax surcharge.
func (c Charges) ServiceTax() kernel.Money { return c.serviceTax }

// DoorDelivery returns the door delivery surcharge.
func (c Charges) DoorDelivery() kernel.Money { return c.doorDelivery }

// Other returns the unclassified surcharge.
func (c Charges) Other() kernel.Money { return c.other }

// Risk returns the risk (FOV) surcharge.
func (c Charges) Risk() kernel.Money { return c.risk }

// AdditionalServiceTax returns the additional service tax surcharge.
func (c Charges) AdditionalServiceTax() kernel.Money { return c.additionalServiceTax }
