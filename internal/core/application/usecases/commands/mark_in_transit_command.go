package commands

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand represents a request to record the actual pickup and
// move a scheduled consignment into transit.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	consignmentID    kernel.UUID
	actualPickupDate time.Time
	actualPickupTime string
	notes            string

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command to record the pickup.
// actualPickupTime must be in "15:04" form; notes are optional.
func NewMarkInTransitCommand(consignmentID kernel.UUID, actualPickupDate time.Time, actualPickupTime, notes string) (MarkInTransitCommand, error) {
	if err := consignmentID.Validate(); err != nil {
		return MarkInTransitCommand{}, err
	}
	if actualPickupDate.IsZero() {
		return MarkInTransitCommand{}, errs.NewValueIsRequiredError("actualPickupDate")
	}
	if actualPickupTime == "" {
		return MarkInTransitCommand{}, errs.NewValueIsRequiredError("actualPickupTime")
	}

	return MarkInTransitCommand{
		consignmentID:    consignmentID,
		actualPickupDate: actualPickupDate,
		actualPickupTime: actualPickupTime,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// ConsignmentID returns the consignment being picked up.
func (c MarkInTransitCommand) ConsignmentID() kernel.UUID { return c.consignmentID }

// ActualPickupDate returns the recorded pickup date.
func (c MarkInTransitCommand) ActualPickupDate() time.Time { return c.actualPickupDate }

// ActualPickupTime returns the recorded pickup time of day.
func (c MarkInTransitCommand) ActualPickupTime() string { return c.actualPickupTime }

// Notes returns optional transit notes.
func (c MarkInTransitCommand) Notes() string { return c.notes }
