package commands

import (
	"context"
	"time"
)

// ConfirmDeliveryCommandHandler finalizes a delivery. Alongside the
// consignment's terminal transition it releases the assigned vehicle and
// driver back to Available in the same transaction, so the fleet never stays
// locked to a finished trip.
type ConfirmDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory AssignmentUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the delivery with the current time as the delivery date and
// ends the vehicle/driver trip atomically with it.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consignmentRepo := uow.ConsignmentRepository()
	aggregate, err := consignmentRepo.Get(ctx, cmd.ConsignmentID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmDelivery(cmd.ProofOfDelivery(), cmd.DeliveredBy(), time.Now().UTC()); err != nil {
		return err
	}

	if err = releaseAssignment(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = consignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
