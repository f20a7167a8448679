package commands

import (
	"context"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/fleet"
)

// releaseAssignment returns the consignment's assigned vehicle and driver to
// Available within the caller's transaction. A consignment that was never
// assigned is left alone, and so is one whose vehicle and driver were already
// released: a cancelled consignment keeps its assignment snapshot, so deleting
// it must not end the trip twice.
func releaseAssignment(ctx context.Context, uow AssignmentUoW, aggregate *consignment.Consignment) error {
	assignment := aggregate.Assignment()
	if assignment == nil {
		return nil
	}

	vehicleRepo := uow.VehicleRepository()
	driverRepo := uow.DriverRepository()

	vehicle, err := vehicleRepo.Get(ctx, assignment.VehicleID())
	if err != nil {
		return err
	}

	driver, err := driverRepo.Get(ctx, assignment.DriverID())
	if err != nil {
		return err
	}

	if vehicle.Status() == fleet.Available && driver.Status() == fleet.Available {
		return nil
	}

	if err = vehicle.EndTrip(); err != nil {
		return err
	}

	if err = driver.EndTrip(); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicle); err != nil {
		return err
	}

	return driverRepo.Update(ctx, driver)
}
