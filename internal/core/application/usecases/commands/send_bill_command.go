package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrSendBillCommandIsNotConstructed = errors.New(
	"SendBillCommand must be created via NewSendBillCommand constructor",
)

// SendBillCommand represents a request to dispatch a generated bill to the
// customer by email and mark it Sent.
type SendBillCommand struct { //nolint:recvcheck //using for validation
	billID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendBillCommand creates a command to send a bill.
func NewSendBillCommand(billID kernel.UUID) (SendBillCommand, error) {
	if err := billID.Validate(); err != nil {
		return SendBillCommand{}, err
	}

	return SendBillCommand{
		billID: billID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendBillCommand) Validate() error {
	return c.guard.Validate(ErrSendBillCommandIsNotConstructed)
}

// BillID returns the bill to send.
func (c SendBillCommand) BillID() kernel.UUID { return c.billID }
