package commands

import (
	"context"
)

// DeleteConsignmentCommandHandler removes a consignment after checking the
// deletion rules: Delivered consignments are permanent records. A consignment
// deleted mid-trip frees its vehicle and driver in the same transaction.
type DeleteConsignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewDeleteConsignmentCommandHandler creates a handler for deletions.
func NewDeleteConsignmentCommandHandler(uowFactory AssignmentUoWFactory) DeleteConsignmentCommandHandler {
	return DeleteConsignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the consignment, verifies it may be deleted, releases any
// assigned vehicle and driver, and removes it.
func (h DeleteConsignmentCommandHandler) Handle(ctx context.Context, cmd DeleteConsignmentCommand) error {
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

	if err = aggregate.CanDelete(); err != nil {
		return err
	}

	if err = releaseAssignment(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
