package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrDeleteConsignmentCommandIsNotConstructed = errors.New(
	"DeleteConsignmentCommand must be created via NewDeleteConsignmentCommand constructor",
)

// DeleteConsignmentCommand represents a request to physically remove a
// consignment. Delivered consignments are never deleted.
type DeleteConsignmentCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteConsignmentCommand creates a command to delete a consignment.
func NewDeleteConsignmentCommand(consignmentID kernel.UUID) (DeleteConsignmentCommand, error) {
	if err := consignmentID.Validate(); err != nil {
		return DeleteConsignmentCommand{}, err
	}

	return DeleteConsignmentCommand{
		consignmentID: consignmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteConsignmentCommandIsNotConstructed)
}

// ConsignmentID returns the consignment to delete.
func (c DeleteConsignmentCommand) ConsignmentID() kernel.UUID { return c.consignmentID }
