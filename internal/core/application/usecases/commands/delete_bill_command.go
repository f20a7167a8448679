package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrDeleteBillCommandIsNotConstructed = errors.New(
	"DeleteBillCommand must be created via NewDeleteBillCommand constructor",
)

// DeleteBillCommand represents a request to physically remove a bill that has
// received no payments, returning its consignments to the unbilled pool.
type DeleteBillCommand struct { //nolint:recvcheck //using for validation
	billID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBillCommand creates a command to delete a bill.
func NewDeleteBillCommand(billID kernel.UUID) (DeleteBillCommand, error) {
	if err := billID.Validate(); err != nil {
		return DeleteBillCommand{}, err
	}

	return DeleteBillCommand{
		billID: billID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBillCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBillCommandIsNotConstructed)
}

// BillID returns the bill to delete.
func (c DeleteBillCommand) BillID() kernel.UUID { return c.billID }
