package commands

import (
	"context"
)

// CancelConsignmentCommandHandler aborts a consignment. A cancelled
// consignment that already had a vehicle and driver attached releases them
// back to Available in the same transaction.
type CancelConsignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCancelConsignmentCommandHandler creates a handler for cancellations.
func NewCancelConsignmentCommandHandler(uowFactory AssignmentUoWFactory) CancelConsignmentCommandHandler {
	return CancelConsignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the consignment and frees its fleet resources atomically.
func (h CancelConsignmentCommandHandler) Handle(ctx context.Context, cmd CancelConsignmentCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
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
