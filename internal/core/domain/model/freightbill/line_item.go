package freightbill

import (
	"time"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

// LineItem is a read-only snapshot of one consignment taken at bill-creation
// time. It carries everything the bill ever needs to show about the
// consignment, so later edits to the consignment record never shift a bill
// that has already been issued.
type LineItem struct {
	consignmentID   kernel.UUID
	consignmentNo   string
	bookingDate     time.Time
	destination     string
	chargedWeightKg int
	freight         kernel.Money
	grandTotal      kernel.Money
}

// NewLineItem snapshots a consignment into a bill line item. The consignment
// must be billable; the consolidator checks that before calling.
func NewLineItem(c *consignment.Consignment) (LineItem, error) {
	if err := c.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		consignmentID:   c.ID(),
		consignmentNo:   c.ConsignmentNo(),
		bookingDate:     c.BookingDate(),
		destination:     c.Route().ToCity(),
		chargedWeightKg: c.Weights().ChargedKg(),
		freight:         c.Charges().Freight(),
		grandTotal:      c.GrandTotal(),
	}, nil
}

// RestoreLineItem reconstructs a line item from persistence.
func RestoreLineItem(
	consignmentID kernel.UUID,
	consignmentNo string,
	bookingDate time.Time,
	destination string,
	chargedWeightKg int,
	freight kernel.Money,
	grandTotal kernel.Money,
) (LineItem, error) {
	if err := consignmentID.Validate(); err != nil {
		return LineItem{}, err
	}
	if consignmentNo == "" {
		return LineItem{}, errs.NewValueIsRequiredError("consignmentNo")
	}

	return LineItem{
		consignmentID:   consignmentID,
		consignmentNo:   consignmentNo,
		bookingDate:     bookingDate,
		destination:     destination,
		chargedWeightKg: chargedWeightKg,
		freight:         freight,
		grandTotal:      grandTotal,
	}, nil
}

// ConsignmentID returns the snapshotted consignment's identifier.
func (l LineItem) ConsignmentID() kernel.UUID { return l.consignmentID }

// ConsignmentNo returns the snapshotted consignment number.
func (l LineItem) ConsignmentNo() string { return l.consignmentNo }

// BookingDate returns the snapshotted booking date.
func (l LineItem) BookingDate() time.Time { return l.bookingDate }

// Destination returns the snapshotted destination city.
func (l LineItem) Destination() string { return l.destination }

// ChargedWeightKg returns the snapshotted charged weight.
func (l LineItem) ChargedWeightKg() int { return l.chargedWeightKg }

// Freight returns the snapshotted base freight charge.
func (l LineItem) Freight() kernel.Money { return l.freight }

// GrandTotal returns the snapshotted grand total of all charges.
func (l LineItem) GrandTotal() kernel.Money { return l.grandTotal }
