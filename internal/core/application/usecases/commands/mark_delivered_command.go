package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the arrival report: the consignment reached
// its destination but proof of delivery has not been recorded yet.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to report arrival.
func NewMarkDeliveredCommand(consignmentID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := consignmentID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		consignmentID: consignmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ConsignmentID returns the consignment that arrived.
func (c MarkDeliveredCommand) ConsignmentID() kernel.UUID { return c.consignmentID }
