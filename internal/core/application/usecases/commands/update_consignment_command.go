package commands

import (
	"errors"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrUpdateConsignmentCommandIsNotConstructed = errors.New(
	"UpdateConsignmentCommand must be created via NewUpdateConsignmentCommand constructor",
)

// UpdateConsignmentCommand represents a request to edit a consignment's
// booking details: parties, route, weights, and charges. The consignment
// number and customer are immutable and not part of the command.
type UpdateConsignmentCommand struct { //nolint:recvcheck //using for validation
	consignmentID kernel.UUID
	consignor     consignment.Party
	consignee     consignment.Party
	route         consignment.Route
	weights       consignment.Weights
	charges       consignment.Charges

	guard guard.ConstructorGuard
}

// NewUpdateConsignmentCommand creates a command to edit booking details.
func NewUpdateConsignmentCommand(
	consignmentID kernel.UUID,
	consignor consignment.Party,
	consignee consignment.Party,
	route consignment.Route,
	weights consignment.Weights,
	charges consignment.Charges,
) (UpdateConsignmentCommand, error) {
	if err := errors.Join(
		consignmentID.Validate(),
		consignor.Validate(),
		consignee.Validate(),
		route.Validate(),
		weights.Validate(),
	); err != nil {
		return UpdateConsignmentCommand{}, err
	}

	return UpdateConsignmentCommand{
		consignmentID: consignmentID,
		consignor:     consignor,
		consignee:     consignee,
		route:         route,
		weights:       weights,
		charges:       charges,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsignmentCommandIsNotConstructed)
}

// ConsignmentID returns the consignment to edit.
func (c UpdateConsignmentCommand) ConsignmentID() kernel.UUID { return c.consignmentID }

// Consignor returns the new sending party snapshot.
func (c UpdateConsignmentCommand) Consignor() consignment.Party { return c.consignor }

// Consignee returns the new receiving party snapshot.
func (c UpdateConsignmentCommand) Consignee() consignment.Party { return c.consignee }

// Route returns the new route details.
func (c UpdateConsignmentCommand) Route() consignment.Route { return c.route }

// Weights returns the new weight pair.
func (c UpdateConsignmentCommand) Weights() consignment.Weights { return c.weights }

// Charges returns the new charge fields.
func (c UpdateConsignmentCommand) Charges() consignment.Charges { return c.charges }
