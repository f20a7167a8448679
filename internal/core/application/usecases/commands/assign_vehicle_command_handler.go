package commands

import (
	"context"

	"freightops/internal/core/domain/model/consignment"
)

// AssignVehicleCommandHandler orchestrates vehicle assignment. The consignment
// transition, the vehicle's flip to OnTrip, and the driver's flip to OnTrip
// are applied in one transaction with version-checked updates: whichever of
// two concurrent assignment requests commits second gets a ConflictError
// instead of double-booking the vehicle.
type AssignVehicleCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for assignment operations.
// Requires an AssignmentUoWFactory for coordinating updates across the
// consignment and fleet aggregates.
func NewAssignVehicleCommandHandler(uowFactory AssignmentUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Loads all three aggregates, checks
// availability through their own transition rules, snapshots the vehicle and
// driver onto the consignment, and commits everything atomically.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
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

	consignmentRepo := uow.ConsignmentRepository()
	vehicleRepo := uow.VehicleRepository()
	driverRepo := uow.DriverRepository()

	aggregate, err := consignmentRepo.Get(ctx, cmd.ConsignmentID())
	if err != nil {
		return err
	}

	vehicle, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	driver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = vehicle.BeginTrip(); err != nil {
		return err
	}

	if err = driver.BeginTrip(); err != nil {
		return err
	}

	assignment, err := consignment.NewAssignment(
		vehicle.ID(), driver.ID(),
		vehicle.RegistrationNo(), driver.Name(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AssignVehicle(assignment); err != nil {
		return err
	}

	if err = consignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicle); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
