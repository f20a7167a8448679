package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrCancelConsignmentCommandIsNotConstructed = errors.New(
	"CancelConsignmentCommand must be created via NewCancelConsignmentCommand constructor",
)

// CancelConsignmentCommand represents a request to abort a consignment from
// any non-terminal status.
type CancelConsignmentCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelConsignmentCommand creates a command to cancel a consignment.
func NewCancelConsignmentCommand(consignmentID kernel.UUID) (CancelConsignmentCommand, error) {
	if err := consignmentID.Validate(); err != nil {
		return CancelConsignmentCommand{}, err
	}

	return CancelConsignmentCommand{
		consignmentID: consignmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelConsignmentCommandIsNotConstructed)
}

// ConsignmentID returns the consignment to cancel.
func (c CancelConsignmentCommand) ConsignmentID() kernel.UUID { return c.consignmentID }
