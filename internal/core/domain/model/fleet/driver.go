package fleet

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var (
	// ErrDriverNameIsRequired is returned when creating a driver without a name.
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLicenceNoIsRequired is returned when creating a driver without a licence number.
	ErrLicenceNoIsRequired = errs.NewValueIsRequiredError("licenceNo")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a fleet aggregate tracking one driver and their availability.
// Like Vehicle it participates in the assignment transaction and carries an
// optimistic concurrency version.
type Driver struct {
	id        kernel.UUID
	name      string
	licenceNo string
	mobile    string
	status    Status
	version   int

	guard guard.ConstructorGuard
}

// NewDriver creates an Available driver. Name and licence number are required;
// mobile is optional contact information.
func NewDriver(id kernel.UUID, name, licenceNo, mobile string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrDriverNameIsRequired
	}
	if licenceNo == "" {
		return nil, ErrLicenceNoIsRequired
	}

	return &Driver{
		id:        id,
		name:      name,
		licenceNo: licenceNo,
		mobile:    mobile,
		status:    Available,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a driver from persistence with its stored status
// and concurrency version.
func RestoreDriver(id kernel.UUID, name, licenceNo, mobile string, status Status, version int) (*Driver, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrDriverNameIsRequired
	}
	if licenceNo == "" {
		return nil, ErrLicenceNoIsRequired
	}

	return &Driver{
		id:        id,
		name:      name,
		licenceNo: licenceNo,
		mobile:    mobile,
		status:    status,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// LicenceNo returns the driving licence number, the business key.
func (d *Driver) LicenceNo() string {
	return d.licenceNo
}

// Mobile returns the contact number, possibly empty.
func (d *Driver) Mobile() string {
	return d.mobile
}

// Status returns the current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// Version returns the optimistic concurrency token.
func (d *Driver) Version() int {
	return d.version
}

// BeginTrip marks the driver as OnTrip. Rejected with a conflict when the driver
// is not Available.
func (d *Driver) BeginTrip() error {
	next, err := d.status.BeginTrip()
	if err != nil {
		return errs.NewConflictErrorWithCause("driver", d.name, err)
	}
	d.status = next
	return nil
}

// EndTrip returns the driver to Available after delivery or cancellation.
func (d *Driver) EndTrip() error {
	next, err := d.status.EndTrip()
	if err != nil {
		return errs.NewConflictErrorWithCause("driver", d.name, err)
	}
	d.status = next
	return nil
}
