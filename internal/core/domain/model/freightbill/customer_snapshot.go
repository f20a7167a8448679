package freightbill

import (
	"errors"

	"freightops/internal/core/domain/model/customer"
	"freightops/internal/pkg/errs"
)

// ErrCustomerEmailIsMissing is reported when a bill operation needs to email
// the customer but the snapshot carries no address.
var ErrCustomerEmailIsMissing = errors.New("customer snapshot has no email address")

// CustomerSnapshot is the billed party's details copied onto the bill at
// creation time. A bill is always for exactly one customer, and later changes
// to the customer record do not alter issued bills.
type CustomerSnapshot struct {
	name    string
	address string
	city    string
	mobile  string
	email   string
	gstin   string
}

// NewCustomerSnapshot creates a billed-party snapshot. Only the name is
// mandatory; bills for walk-in customers may lack the rest.
func NewCustomerSnapshot(name, address, city, mobile, email, gstin string) (CustomerSnapshot, error) {
	if name == "" {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("customerName")
	}

	return CustomerSnapshot{
		name:    name,
		address: address,
		city:    city,
		mobile:  mobile,
		email:   email,
		gstin:   gstin,
	}, nil
}

// SnapshotCustomer copies the billing-relevant fields of a customer record.
func SnapshotCustomer(c *customer.Customer) (CustomerSnapshot, error) {
	if err := c.Validate(); err != nil {
		return CustomerSnapshot{}, err
	}
	return NewCustomerSnapshot(c.Name(), c.Address(), c.City(), c.Mobile(), c.Email(), c.GSTIN())
}

// Name returns the billed party's name.
func (s CustomerSnapshot) Name() string { return s.name }

// Address returns the billed party's address.
func (s CustomerSnapshot) Address() string { return s.address }

// City returns the billed party's city.
func (s CustomerSnapshot) City() string { return s.city }

// Mobile returns the billed party's mobile number.
func (s CustomerSnapshot) Mobile() string { return s.mobile }

// Email returns the billed party's email address, empty when unknown.
func (s CustomerSnapshot) Email() string { return s.email }

// GSTIN returns the billed party's tax identifier, empty when unknown.
func (s CustomerSnapshot) GSTIN() string { return s.gstin }
