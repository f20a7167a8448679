package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	city       string
	mobile     string
	email      string
	gstin      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Name and mobile are mandatory; address, city, email, and GSTIN are optional.
func NewCreateCustomerCommand(customerID kernel.UUID, name, address, city, mobile, email, gstin string) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}
	if name == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}
	if mobile == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("mobile")
	}

	return CreateCustomerCommand{
		customerID: customerID,
		name:       name,
		address:    address,
		city:       city,
		mobile:     mobile,
		email:      email,
		gstin:      gstin,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string { return c.name }

// Address returns the customer's address.
func (c CreateCustomerCommand) Address() string { return c.address }

// City returns the customer's city.
func (c CreateCustomerCommand) City() string { return c.city }

// Mobile returns the customer's mobile number.
func (c CreateCustomerCommand) Mobile() string { return c.mobile }

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string { return c.email }

// GSTIN returns the customer's tax identifier.
func (c CreateCustomerCommand) GSTIN() string { return c.gstin }
