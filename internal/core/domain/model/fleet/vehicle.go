package fleet

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var (
	// ErrRegistrationNoIsRequired is returned when creating a vehicle without a registration number.
	ErrRegistrationNoIsRequired = errs.NewValueIsRequiredError("registrationNo")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is a fleet aggregate tracking one truck and its availability.
// Vehicles are assigned to consignments while Available and flipped to OnTrip as
// part of the assignment transaction. The version field backs optimistic
// concurrency: an update against a stale version is rejected by the repository.
type Vehicle struct {
	id             kernel.UUID
	registrationNo string
	model          string
	capacityKg     int
	status         Status
	version        int

	guard guard.ConstructorGuard
}

// NewVehicle creates an Available vehicle with the given registration number.
// Model is optional display text; capacityKg must not be negative.
func NewVehicle(id kernel.UUID, registrationNo, model string, capacityKg int) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if registrationNo == "" {
		return nil, ErrRegistrationNoIsRequired
	}
	if capacityKg < 0 {
		return nil, errs.NewValueIsOutOfRangeError("capacityKg", capacityKg, 0, maxCapacityKg)
	}

	return &Vehicle{
		id:             id,
		registrationNo: registrationNo,
		model:          model,
		capacityKg:     capacityKg,
		status:         Available,
		version:        1,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle reconstructs a vehicle from persistence with its stored status
// and concurrency version.
func RestoreVehicle(id kernel.UUID, registrationNo, model string, capacityKg int, status Status, version int) (*Vehicle, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if registrationNo == "" {
		return nil, ErrRegistrationNoIsRequired
	}

	return &Vehicle{
		id:             id,
		registrationNo: registrationNo,
		model:          model,
		capacityKg:     capacityKg,
		status:         status,
		version:        version,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

const maxCapacityKg = 100000

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// RegistrationNo returns the vehicle's registration plate, the business key.
func (v *Vehicle) RegistrationNo() string {
	return v.registrationNo
}

// Model returns the display model name, possibly empty.
func (v *Vehicle) Model() string {
	return v.model
}

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() int {
	return v.capacityKg
}

// Status returns the current availability status.
func (v *Vehicle) Status() Status {
	return v.status
}

// Version returns the optimistic concurrency token.
func (v *Vehicle) Version() int {
	return v.version
}

// BeginTrip marks the vehicle as OnTrip. Rejected with a conflict when the
// vehicle is not Available, which is how a lost assignment race surfaces.
func (v *Vehicle) BeginTrip() error {
	next, err := v.status.BeginTrip()
	if err != nil {
		return errs.NewConflictErrorWithCause("vehicle", v.registrationNo, err)
	}
	v.status = next
	return nil
}

// EndTrip returns the vehicle to Available after delivery or cancellation.
func (v *Vehicle) EndTrip() error {
	next, err := v.status.EndTrip()
	if err != nil {
		return errs.NewConflictErrorWithCause("vehicle", v.registrationNo, err)
	}
	v.status = next
	return nil
}
