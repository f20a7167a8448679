package commands

import (
	"context"
	"fmt"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/pkg/errs"
)

// CreateBillCommandHandler runs the freight-bill consolidation. Eligibility
// checks, line-item snapshots, bill persistence, and marking every
// consignment Billed all happen in one transaction: a failure at any step
// leaves no consignment marked.
type CreateBillCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCreateBillCommandHandler creates a handler for bill consolidation.
// Requires a BillingUoWFactory for coordinating the bill, its consignments,
// and the customer lookup.
func NewCreateBillCommandHandler(uowFactory BillingUoWFactory) CreateBillCommandHandler {
	return CreateBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the consolidation command. Resolves the customer, checks
// every consignment belongs to them, snapshots line items, builds the bill,
// and links both sides atomically. Ownership violations reject the whole
// operation; a consignment already on a bill surfaces as a ConflictError and
// one not yet Delivered as an InvalidTransitionError.
func (h CreateBillCommandHandler) Handle(ctx context.Context, cmd CreateBillCommand) error {
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
	consignmentRepo := uow.ConsignmentRepository()

	billedCustomer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	customerSnapshot, err := freightbill.SnapshotCustomer(billedCustomer)
	if err != nil {
		return err
	}

	consignments := make([]*consignment.Consignment, 0, len(cmd.ConsignmentIDs()))
	lineItems := make([]freightbill.LineItem, 0, len(cmd.ConsignmentIDs()))
	for _, id := range cmd.ConsignmentIDs() {
		aggregate, err := consignmentRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"consignmentIds",
				fmt.Errorf("consignment %s does not belong to customer %s", aggregate.ConsignmentNo(), cmd.CustomerID()),
			)
		}

		item, err := freightbill.NewLineItem(aggregate)
		if err != nil {
			return err
		}

		consignments = append(consignments, aggregate)
		lineItems = append(lineItems, item)
	}

	bill, err := freightbill.NewFreightBill(
		cmd.BillID(),
		cmd.BillNo(),
		cmd.Branch(),
		cmd.BillDate(),
		cmd.CustomerID(),
		customerSnapshot,
		lineItems,
		cmd.Adjustments(),
		cmd.AsGenerated(),
	)
	if err != nil {
		return err
	}

	for _, c := range consignments {
		if err = c.MarkBilled(bill.ID()); err != nil {
			return err
		}
		if err = consignmentRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	if err = billRepo.Add(ctx, bill); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
