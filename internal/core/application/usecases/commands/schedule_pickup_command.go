package commands

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrSchedulePickupCommandIsNotConstructed = errors.New(
	"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
)

// SchedulePickupCommand represents a request to set the target pickup date and
// time on an assigned consignment.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID
	pickupDate    time.Time
	pickupTime    string
	instructions  string

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a command to schedule a pickup.
// pickupTime must be in "15:04" form; instructions are optional.
func NewSchedulePickupCommand(consignmentID kernel.UUID, pickupDate time.Time, pickupTime, instructions string) (SchedulePickupCommand, error) {
	if err := consignmentID.Validate(); err != nil {
		return SchedulePickupCommand{}, err
	}
	if pickupDate.IsZero() {
		return SchedulePickupCommand{}, errs.NewValueIsRequiredError("pickupDate")
	}
	if pickupTime == "" {
		return SchedulePickupCommand{}, errs.NewValueIsRequiredError("pickupTime")
	}

	return SchedulePickupCommand{
		consignmentID: consignmentID,
		pickupDate:    pickupDate,
		pickupTime:    pickupTime,
		instructions:  instructions,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// ConsignmentID returns the consignment to schedule.
func (c SchedulePickupCommand) ConsignmentID() kernel.UUID { return c.consignmentID }

// PickupDate returns the target pickup date.
func (c SchedulePickupCommand) PickupDate() time.Time { return c.pickupDate }

// PickupTime returns the target pickup time of day.
func (c SchedulePickupCommand) PickupTime() string { return c.pickupTime }

// Instructions returns optional pickup instructions.
func (c SchedulePickupCommand) Instructions() string { return c.instructions }
