package commands

import (
	"context"
)

// UpdateConsignmentCommandHandler edits a consignment's booking details.
// Terminal consignments reject the edit inside the aggregate.
type UpdateConsignmentCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

// NewUpdateConsignmentCommandHandler creates a handler for booking edits.
func NewUpdateConsignmentCommandHandler(uowFactory ConsignmentUoWFactory) UpdateConsignmentCommandHandler {
	return UpdateConsignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the consignment, applies the edit, and persists it.
func (h UpdateConsignmentCommandHandler) Handle(ctx context.Context, cmd UpdateConsignmentCommand) error {
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

	if err = aggregate.UpdateDetails(cmd.Consignor(), cmd.Consignee(), cmd.Route(), cmd.Weights(), cmd.Charges()); err != nil {
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
