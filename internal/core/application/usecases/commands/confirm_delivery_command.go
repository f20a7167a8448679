package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a request to finalize a delivery with
// proof. This is the transition that makes a consignment billable, so the
// proof-of-delivery token is mandatory.
//
// Example:
//
//	cmd, err := NewConfirmDeliveryCommand(consignmentID, "POD-55", "gate clerk")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery confirmation failed: %w", err)
//	}
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	consignmentID   kernel.UUID
	proofOfDelivery string
	deliveredBy     string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
// proofOfDelivery must be non-empty; deliveredBy is optional.
func NewConfirmDeliveryCommand(consignmentID kernel.UUID, proofOfDelivery, deliveredBy string) (ConfirmDeliveryCommand, error) {
	if err := consignmentID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	if proofOfDelivery == "" {
		return ConfirmDeliveryCommand{}, errs.NewValueIsRequiredError("proofOfDelivery")
	}

	return ConfirmDeliveryCommand{
		consignmentID:   consignmentID,
		proofOfDelivery: proofOfDelivery,
		deliveredBy:     deliveredBy,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ConsignmentID returns the consignment to confirm.
func (c ConfirmDeliveryCommand) ConsignmentID() kernel.UUID { return c.consignmentID }

// ProofOfDelivery returns the POD token.
func (c ConfirmDeliveryCommand) ProofOfDelivery() string { return c.proofOfDelivery }

// DeliveredBy returns the optional receiver name.
func (c ConfirmDeliveryCommand) DeliveredBy() string { return c.deliveredBy }
