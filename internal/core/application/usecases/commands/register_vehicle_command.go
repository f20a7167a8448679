package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID      kernel.UUID
	registrationNo string
	model          string
	capacityKg     int

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a vehicle.
func NewRegisterVehicleCommand(vehicleID kernel.UUID, registrationNo, model string, capacityKg int) (RegisterVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return RegisterVehicleCommand{}, err
	}
	if registrationNo == "" {
		return RegisterVehicleCommand{}, errs.NewValueIsRequiredError("registrationNo")
	}

	return RegisterVehicleCommand{
		vehicleID:      vehicleID,
		registrationNo: registrationNo,
		model:          model,
		capacityKg:     capacityKg,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c RegisterVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// RegistrationNo returns the vehicle's registration plate.
func (c RegisterVehicleCommand) RegistrationNo() string { return c.registrationNo }

// Model returns the vehicle's model description.
func (c RegisterVehicleCommand) Model() string { return c.model }

// CapacityKg returns the vehicle's load capacity.
func (c RegisterVehicleCommand) CapacityKg() int { return c.capacityKg }
