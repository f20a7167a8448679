package commands

import (
	"context"

	"freightops/internal/core/domain/model/fleet"
)

// RegisterVehicleCommandHandler adds a vehicle to the fleet in Available status.
type RegisterVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(uowFactory FleetUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle constructs the vehicle aggregate and persists it.
func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := fleet.NewVehicle(cmd.VehicleID(), cmd.RegistrationNo(), cmd.Model(), cmd.CapacityKg())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
