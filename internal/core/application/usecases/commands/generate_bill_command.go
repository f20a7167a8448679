package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrGenerateBillCommandIsNotConstructed = errors.New(
	"GenerateBillCommand must be created via NewGenerateBillCommand constructor",
)

// GenerateBillCommand represents a request to finalize a draft bill for
// dispatch.
type GenerateBillCommand struct { //nolint:recvcheck //using for validation
	billID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateBillCommand creates a command to generate a bill.
func NewGenerateBillCommand(billID kernel.UUID) (GenerateBillCommand, error) {
	if err := billID.Validate(); err != nil {
		return GenerateBillCommand{}, err
	}

	return GenerateBillCommand{
		billID: billID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateBillCommand) Validate() error {
	return c.guard.Validate(ErrGenerateBillCommandIsNotConstructed)
}

// BillID returns the bill to generate.
func (c GenerateBillCommand) BillID() kernel.UUID { return c.billID }
