package commands

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrBookConsignmentCommandIsNotConstructed = errors.New(
	"BookConsignmentCommand must be created via NewBookConsignmentCommand constructor",
)

// BookConsignmentCommand represents a request to book a new consignment.
// The party, route, weight, and charge details arrive as already-constructed
// value objects; the transport layer builds them so one validation pass covers
// both the wire payload and the domain rules.
//
// Example:
//
//	cmd, err := NewBookConsignmentCommand(
//	    kernel.NewUUID(), "CN-1001", customerID, time.Now(),
//	    consignor, consignee, route, weights, charges,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
type BookConsignmentCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID
	consignmentNo string
	customerID    kernel.UUID
	bookingDate   time.Time
	consignor     consignment.Party
	consignee     consignment.Party
	route         consignment.Route
	weights       consignment.Weights
	charges       consignment.Charges

	guard guard.ConstructorGuard
}

// NewBookConsignmentCommand creates a command to book a new consignment.
// Validates identifiers, the consignment number, the booking date, and every
// embedded value object.
func NewBookConsignmentCommand(
	consignmentID kernel.UUID,
	consignmentNo string,
	customerID kernel.UUID,
	bookingDate time.Time,
	consignor consignment.Party,
	consignee consignment.Party,
	route consignment.Route,
	weights consignment.Weights,
	charges consignment.Charges,
) (BookConsignmentCommand, error) {
	if consignmentNo == "" {
		return BookConsignmentCommand{}, errs.NewValueIsRequiredError("consignmentNo")
	}
	if bookingDate.IsZero() {
		return BookConsignmentCommand{}, errs.NewValueIsRequiredError("bookingDate")
	}
	if err := errors.Join(
		consignmentID.Validate(),
		customerID.Validate(),
		consignor.Validate(),
		consignee.Validate(),
		route.Validate(),
		weights.Validate(),
	); err != nil {
		return BookConsignmentCommand{}, err
	}

	return BookConsignmentCommand{
		consignmentID: consignmentID,
		consignmentNo: consignmentNo,
		customerID:    customerID,
		bookingDate:   bookingDate,
		consignor:     consignor,
		consignee:     consignee,
		route:         route,
		weights:       weights,
		charges:       charges,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BookConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrBookConsignmentCommandIsNotConstructed)
}

// ConsignmentID returns the identifier for the new consignment.
func (c BookConsignmentCommand) ConsignmentID() kernel.UUID { return c.consignmentID }

// ConsignmentNo returns the business key for the new consignment.
func (c BookConsignmentCommand) ConsignmentNo() string { return c.consignmentNo }

// CustomerID returns the booking customer's identifier.
func (c BookConsignmentCommand) CustomerID() kernel.UUID { return c.customerID }

// BookingDate returns the booking timestamp.
func (c BookConsignmentCommand) BookingDate() time.Time { return c.bookingDate }

// Consignor returns the sending party snapshot.
func (c BookConsignmentCommand) Consignor() consignment.Party { return c.consignor }

// Consignee returns the receiving party snapshot.
func (c BookConsignmentCommand) Consignee() consignment.Party { return c.consignee }

// Route returns the route details.
func (c BookConsignmentCommand) Route() consignment.Route { return c.route }

// Weights returns the weight pair.
func (c BookConsignmentCommand) Weights() consignment.Weights { return c.weights }

// Charges returns the charge fields.
func (c BookConsignmentCommand) Charges() consignment.Charges { return c.charges }
