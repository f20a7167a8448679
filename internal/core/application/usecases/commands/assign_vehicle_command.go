package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand represents a request to attach a vehicle and driver to
// a booked consignment. The availability check and the status flips happen in
// the handler inside one transaction, so two requests racing on the same
// vehicle cannot both win.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand(consignmentID, vehicleID, driverID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("vehicle or driver was taken by a concurrent request")
//	}
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID
	vehicleID     kernel.UUID
	driverID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to assign a vehicle and driver.
// All three identifiers must be valid UUIDs.
func NewAssignVehicleCommand(consignmentID, vehicleID, driverID kernel.UUID) (AssignVehicleCommand, error) {
	if err := errors.Join(
		consignmentID.Validate(),
		vehicleID.Validate(),
		driverID.Validate(),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return AssignVehicleCommand{
		consignmentID: consignmentID,
		vehicleID:     vehicleID,
		driverID:      driverID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// ConsignmentID returns the consignment to assign to.
func (c AssignVehicleCommand) ConsignmentID() kernel.UUID { return c.consignmentID }

// VehicleID returns the vehicle to assign.
func (c AssignVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// DriverID returns the driver to assign.
func (c AssignVehicleCommand) DriverID() kernel.UUID { return c.driverID }
