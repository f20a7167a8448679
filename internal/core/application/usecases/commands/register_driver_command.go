package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to add a driver to the fleet.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	name      string
	licenceNo string
	mobile    string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
func NewRegisterDriverCommand(driverID kernel.UUID, name, licenceNo, mobile string) (RegisterDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return RegisterDriverCommand{}, err
	}
	if name == "" {
		return RegisterDriverCommand{}, errs.NewValueIsRequiredError("name")
	}
	if licenceNo == "" {
		return RegisterDriverCommand{}, errs.NewValueIsRequiredError("licenceNo")
	}

	return RegisterDriverCommand{
		driverID:  driverID,
		name:      name,
		licenceNo: licenceNo,
		mobile:    mobile,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID { return c.driverID }

// Name returns the driver's name.
func (c RegisterDriverCommand) Name() string { return c.name }

// LicenceNo returns the driver's licence number.
func (c RegisterDriverCommand) LicenceNo() string { return c.licenceNo }

// Mobile returns the driver's mobile number.
func (c RegisterDriverCommand) Mobile() string { return c.mobile }
