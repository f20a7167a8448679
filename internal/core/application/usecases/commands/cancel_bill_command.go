package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrCancelBillCommandIsNotConstructed = errors.New(
	"CancelBillCommand must be created via NewCancelBillCommand constructor",
)

// CancelBillCommand represents a request to cancel a bill and return its
// consignments to the unbilled pool.
type CancelBillCommand struct { //nolint:recvcheck //using for validation
	billID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBillCommand creates a command to cancel a bill.
func NewCancelBillCommand(billID kernel.UUID) (CancelBillCommand, error) {
	if err := billID.Validate(); err != nil {
		return CancelBillCommand{}, err
	}

	return CancelBillCommand{
		billID: billID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBillCommand) Validate() error {
	return c.guard.Validate(ErrCancelBillCommandIsNotConstructed)
}

// BillID returns the bill to cancel.
func (c CancelBillCommand) BillID() kernel.UUID { return c.billID }
