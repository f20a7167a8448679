package consignment

import (
	"freightops/internal/pkg/errs"
)

// Party is a denormalized snapshot of a consignor or consignee captured at
// booking time. It is a plain value object with no reference back to the live
// customer record: later edits to the customer never retroactively change a
// historical consignment.
type Party struct {
	name    string
	address string
	mobile  string
	email   string
	gstin   string
}

// NewParty creates a party snapshot. Name, address, and mobile are required;
// email and GSTIN are optional.
func NewParty(name, address, mobile, email, gstin string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}
	if address == "" {
		return Party{}, errs.NewValueIsRequiredError("party address")
	}
	if mobile == "" {
		return Party{}, errs.NewValueIsRequiredError("party mobile")
	}

	return Party{
		name:    name,
		address: address,
		mobile:  mobile,
		email:   email,
		gstin:   gstin,
	}, nil
}

// Validate reports whether the party snapshot carries its required fields.
// The zero value is invalid.
func (p Party) Validate() error {
	if p.name == "" {
		return errs.NewValueIsRequiredError("party name")
	}
	return nil
}

// Name returns the party's name.
func (p Party) Name() string { return p.name }

// Address returns the party's address.
func (p Party) Address() string { return p.address }

// Mobile returns the party's contact number.
func (p Party) Mobile() string { return p.mobile }

// Email returns the party's email, possibly empty.
func (p Party) Email() string { return p.email }

// GSTIN returns the party's tax identifier, possibly empty.
func (p Party) GSTIN() string { return p.gstin }
