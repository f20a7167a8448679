package commands

import (
	"context"
)

// DeleteBillCommandHandler removes an unpaid bill. Its consignments return to
// Unbilled in the same transaction that deletes the bill.
type DeleteBillCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewDeleteBillCommandHandler creates a handler for bill deletion.
func NewDeleteBillCommandHandler(uowFactory BillingUoWFactory) DeleteBillCommandHandler {
	return DeleteBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the bill may be deleted, releases its consignments, and
// removes it atomically.
func (h DeleteBillCommandHandler) Handle(ctx context.Context, cmd DeleteBillCommand) error {
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

	billRepo := uow.FreightBillRepository()
	bill, err := billRepo.Get(ctx, cmd.BillID())
	if err != nil {
		return err
	}

	if err = bill.CanDelete(); err != nil {
		return err
	}

	if err = releaseBilledConsignments(ctx, uow, bill.ConsignmentIDs()); err != nil {
		return err
	}

	if err = billRepo.Delete(ctx, bill.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
