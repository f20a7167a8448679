package commands

import (
	"context"
)

// MarkInTransitCommandHandler moves a scheduled consignment into transit.
type MarkInTransitCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

// NewMarkInTransitCommandHandler creates a handler for transit recording.
func NewMarkInTransitCommandHandler(uowFactory ConsignmentUoWFactory) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the consignment, records the actual pickup, and persists it.
func (h MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
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

	if err = aggregate.MarkInTransit(cmd.ActualPickupDate(), cmd.ActualPickupTime(), cmd.Notes()); err != nil {
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
