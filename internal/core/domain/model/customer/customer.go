// Package customer holds the customer aggregate. Customers own consignments and
// receive freight bills; consignments and bills keep denormalized snapshots of the
// customer, so later edits here never rewrite history.
package customer

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var (
	// ErrCustomerNameIsRequired is returned when creating a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerMobileIsRequired is returned when creating a customer without a mobile number.
	ErrCustomerMobileIsRequired = errs.NewValueIsRequiredError("mobile")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the billing party for consignments and freight bills.
type Customer struct {
	id      kernel.UUID
	name    string
	address string
	city    string
	mobile  string
	email   string
	gstin   string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer. Name and mobile are required; address, city,
// email, and GSTIN are optional.
func NewCustomer(id kernel.UUID, name, address, city, mobile, email, gstin string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrCustomerNameIsRequired
	}
	if mobile == "" {
		return nil, ErrCustomerMobileIsRequired
	}

	return &Customer{
		id:      id,
		name:    name,
		address: address,
		city:    city,
		mobile:  mobile,
		email:   email,
		gstin:   gstin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, address, city, mobile, email, gstin string) (*Customer, error) {
	return NewCustomer(id, name, address, city, mobile, email, gstin)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's legal name.
func (c *Customer) Name() string { return c.name }

// Address returns the postal address, possibly empty.
func (c *Customer) Address() string { return c.address }

// City returns the customer's city, possibly empty.
func (c *Customer) City() string { return c.city }

// Mobile returns the contact number.
func (c *Customer) Mobile() string { return c.mobile }

// Email returns the billing email, possibly empty. Bill notifications are
// skipped for customers without one.
func (c *Customer) Email() string { return c.email }

// GSTIN returns the tax identifier, possibly empty.
func (c *Customer) GSTIN() string { return c.gstin }
