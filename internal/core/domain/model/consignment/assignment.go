package consignment

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

// Assignment is the snapshot of the vehicle and driver attached to a
// consignment. Identifiers are kept for the assignment transaction and release;
// registration and driver name are denormalized display copies taken at
// assignment time.
type Assignment struct {
	vehicleID           kernel.UUID
	driverID            kernel.UUID
	vehicleRegistration string
	driverName          string
}

// NewAssignment creates an assignment snapshot from the chosen vehicle and driver.
func NewAssignment(vehicleID, driverID kernel.UUID, vehicleRegistration, driverName string) (Assignment, error) {
	if err := errors.Join(vehicleID.Validate(), driverID.Validate()); err != nil {
		return Assignment{}, err
	}
	if vehicleRegistration == "" {
		return Assignment{}, errs.NewValueIsRequiredError("vehicleRegistration")
	}
	if driverName == "" {
		return Assignment{}, errs.NewValueIsRequiredError("driverName")
	}

	return Assignment{
		vehicleID:           vehicleID,
		driverID:            driverID,
		vehicleRegistration: vehicleRegistration,
		driverName:          driverName,
	}, nil
}

// VehicleID returns the assigned vehicle's identifier.
func (a Assignment) VehicleID() kernel.UUID { return a.vehicleID }

// DriverID returns the assigned driver's identifier.
func (a Assignment) DriverID() kernel.UUID { return a.driverID }

// VehicleRegistration returns the vehicle registration captured at assignment time.
func (a Assignment) VehicleRegistration() string { return a.vehicleRegistration }

// DriverName returns the driver name captured at assignment time.
func (a Assignment) DriverName() string { return a.driverName }
