package commands

import (
	"context"
)

// MarkDeliveredCommandHandler moves an in-transit consignment to
// DeliveredUnconfirmed.
type MarkDeliveredCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for arrival reports.
func NewMarkDeliveredCommandHandler(uowFactory ConsignmentUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the consignment, applies the arrival transition, and persists it.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	repo := uow.ConsignmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ConsignmentID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDeliveredUnconfirmed(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
