package commands

import (
	"context"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/ports"
	"freightops/internal/pkg/errs"
)

// SendBillCommandHandler dispatches a bill to the customer. The Sent
// transition commits first; the email goes out afterwards. A failed email
// therefore never rolls back the status change: it surfaces as an
// ExternalServiceError so the caller can tell "sent but the email failed"
// apart from "nothing happened".
type SendBillCommandHandler struct {
	uowFactory BillingUoWFactory
	notifier   ports.Notifier
}

// NewSendBillCommandHandler creates a handler for bill dispatch.
// Requires a Notifier for the customer email.
func NewSendBillCommandHandler(uowFactory BillingUoWFactory, notifier ports.Notifier) SendBillCommandHandler {
	return SendBillCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle marks the bill Sent, commits, and then emails the customer. A bill
// whose customer snapshot has no email address commits the transition and
// reports the missing address the same way as a failed send.
func (h SendBillCommandHandler) Handle(ctx context.Context, cmd SendBillCommand) error {
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

	if err = bill.Send(); err != nil {
		return err
	}

	if err = repo.Update(ctx, bill); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if bill.Customer().Email() == "" {
		return errs.NewExternalServiceError("email", freightbill.ErrCustomerEmailIsMissing)
	}

	if err = h.notifier.SendBill(ctx, billNotification(bill)); err != nil {
		return errs.NewExternalServiceError("email", err)
	}

	return nil
}

// billNotification maps a bill to its customer-facing email payload.
func billNotification(bill *freightbill.FreightBill) ports.BillNotification {
	return ports.BillNotification{
		Recipient:         bill.Customer().Email(),
		CustomerName:      bill.Customer().Name(),
		BillNo:            bill.BillNo(),
		BillDate:          bill.BillDate().Format("02-01-2006"),
		FinalAmount:       bill.FinalAmount().String(),
		OutstandingAmount: bill.OutstandingAmount().String(),
	}
}
