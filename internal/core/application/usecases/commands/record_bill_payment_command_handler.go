package commands

import (
	"context"
)

// RecordBillPaymentCommandHandler records payments against a bill. When a
// payment settles the bill, the status change and the Paid flip on every
// consolidated consignment commit in one transaction.
//
// requireSentBeforePaid enforces the policy that a bill must be dispatched
// before money is taken against it; with it off, a Generated bill may be
// settled directly.
type RecordBillPaymentCommandHandler struct {
	uowFactory            BillingUoWFactory
	requireSentBeforePaid bool
}

// NewRecordBillPaymentCommandHandler creates a handler for bill payments.
func NewRecordBillPaymentCommandHandler(uowFactory BillingUoWFactory, requireSentBeforePaid bool) RecordBillPaymentCommandHandler {
	return RecordBillPaymentCommandHandler{
		uowFactory:            uowFactory,
		requireSentBeforePaid: requireSentBeforePaid,
	}
}

// Handle applies the payment to the bill. If that settles it, every
// consolidated consignment moves to Paid before the transaction commits.
func (h RecordBillPaymentCommandHandler) Handle(ctx context.Context, cmd RecordBillPaymentCommand) error {
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

	settled, err := bill.RecordPayment(cmd.Amount(), h.requireSentBeforePaid)
	if err != nil {
		return err
	}

	if err = billRepo.Update(ctx, bill); err != nil {
		return err
	}

	if settled {
		consignmentRepo := uow.ConsignmentRepository()
		for _, id := range bill.ConsignmentIDs() {
			aggregate, err := consignmentRepo.Get(ctx, id)
			if err != nil {
				return err
			}
			if err = aggregate.MarkBillPaid(); err != nil {
				return err
			}
			if err = consignmentRepo.Update(ctx, aggregate); err != nil {
				return err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
