package commands

import (
	"context"
)

// UpdateBillHeaderCommandHandler edits a bill's identifying fields. Settled
// and cancelled bills reject the edit inside the aggregate.
type UpdateBillHeaderCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewUpdateBillHeaderCommandHandler creates a handler for header edits.
func NewUpdateBillHeaderCommandHandler(uowFactory BillingUoWFactory) UpdateBillHeaderCommandHandler {
	return UpdateBillHeaderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the bill, applies the header edit, and persists it.
func (h UpdateBillHeaderCommandHandler) Handle(ctx context.Context, cmd UpdateBillHeaderCommand) error {
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

	repo := uow.FreightBillRepository()
	bill, err := repo.Get(ctx, cmd.BillID())
	if err != nil {
		return err
	}

	if err = bill.UpdateHeader(cmd.BillNo(), cmd.Branch(), cmd.BillDate()); err != nil {
		return err
	}

	if err = repo.Update(ctx, bill); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
