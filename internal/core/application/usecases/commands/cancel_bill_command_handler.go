package commands

import (
	"context"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
)

// CancelBillCommandHandler cancels a bill and releases its consignments back
// to Unbilled in the same transaction, making them available for a future
// bill.
type CancelBillCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCancelBillCommandHandler creates a handler for bill cancellation.
func NewCancelBillCommandHandler(uowFactory BillingUoWFactory) CancelBillCommandHandler {
	return CancelBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the bill and restores its consignments atomically.
func (h CancelBillCommandHandler) Handle(ctx context.Context, cmd CancelBillCommand) error {
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

	if err = bill.Cancel(); err != nil {
		return err
	}

	if err = billRepo.Update(ctx, bill); err != nil {
		return err
	}

	if err = releaseBilledConsignments(ctx, uow, bill.ConsignmentIDs()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseBilledConsignments returns every still-Billed consignment on a bill
// to Unbilled. A consignment already Paid stays Paid.
func releaseBilledConsignments(ctx context.Context, uow BillingUoW, ids []kernel.UUID) error {
	consignmentRepo := uow.ConsignmentRepository()
	for _, id := range ids {
		aggregate, err := consignmentRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if aggregate.PaymentStatus() != consignment.Billed {
			continue
		}
		if err = aggregate.ReleaseFromBill(); err != nil {
			return err
		}
		if err = consignmentRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}
