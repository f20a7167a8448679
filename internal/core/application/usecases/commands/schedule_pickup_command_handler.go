package commands

import (
	"context"
)

// SchedulePickupCommandHandler moves an assigned consignment to Scheduled.
type SchedulePickupCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

// NewSchedulePickupCommandHandler creates a handler for pickup scheduling.
func NewSchedulePickupCommandHandler(uowFactory ConsignmentUoWFactory) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the consignment, applies the scheduling transition, and
// persists it with a version-checked update.
func (h SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) error {
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

	if err = aggregate.SchedulePickup(cmd.PickupDate(), cmd.PickupTime(), cmd.Instructions()); err != nil {
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
