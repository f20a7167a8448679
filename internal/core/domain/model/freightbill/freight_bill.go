package freightbill

import (
	"errors"
	"fmt"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var (
	// ErrBillNoIsRequired is returned when creating a bill without a bill number.
	ErrBillNoIsRequired = errs.NewValueIsRequiredError("billNo")
	// ErrLineItemsAreRequired is returned when creating a bill with no line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")
	// ErrFreightBillIsNotConstructed is returned when using an improperly initialized FreightBill.
	ErrFreightBillIsNotConstructed = errors.New("FreightBill must be created via NewFreightBill constructor")
)

// FreightBill is the aggregate root for one consolidated customer invoice. Its
// line items are read-only snapshots of delivered consignments taken at
// creation time, and totalAmount is fixed at creation: adjusting what a bill
// charges means cancelling it and issuing a new one.
//
// Invariants:
//   - At least one line item, all for the same customer.
//   - totalAmount = sum of line-item grand totals, immutable after creation.
//   - FinalAmount = totalAmount - discounts + other adjustments, always
//     positive: a bill whose adjusted total would be zero or negative is
//     rejected at creation, so every bill has something left to pay.
//   - amountPaid accumulates recorded payments and never exceeds FinalAmount.
//   - Status only moves along the transition table in status.go; Paid and
//     Cancelled are terminal.
type FreightBill struct {
	id       kernel.UUID
	billNo   string
	branch   string
	billDate time.Time

	customerID kernel.UUID
	customer   CustomerSnapshot

	lineItems   []LineItem
	adjustments []Adjustment

	totalAmount kernel.Money
	amountPaid  kernel.Money

	status  Status
	version int

	guard guard.ConstructorGuard
}

// NewFreightBill consolidates the given line items into a bill. The caller has
// already verified each underlying consignment is delivered, unbilled, and
// owned by customerID; this constructor owns the arithmetic and the adjustment
// rules. asGenerated creates the bill in Generated status instead of Draft.
func NewFreightBill(
	id kernel.UUID,
	billNo string,
	branch string,
	billDate time.Time,
	customerID kernel.UUID,
	customer CustomerSnapshot,
	lineItems []LineItem,
	adjustments []Adjustment,
	asGenerated bool,
) (*FreightBill, error) {
	if billNo == "" {
		return nil, ErrBillNoIsRequired
	}
	if billDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("billDate")
	}
	if len(lineItems) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	totalAmount := kernel.Money{}
	for _, item := range lineItems {
		totalAmount = totalAmount.Add(item.GrandTotal())
	}

	if rawFinal := rawAdjustedTotal(totalAmount, adjustments); rawFinal <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"adjustments",
			fmt.Errorf("adjusted total %d is not positive", rawFinal),
		)
	}

	status := Draft
	if asGenerated {
		status = Generated
	}

	return &FreightBill{
		id:          id,
		billNo:      billNo,
		branch:      branch,
		billDate:    billDate,
		customerID:  customerID,
		customer:    customer,
		lineItems:   lineItems,
		adjustments: adjustments,
		totalAmount: totalAmount,
		status:      status,
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// BillSnapshot carries the full persisted state of a freight bill for
// RestoreFreightBill. Repositories populate it from their DTOs.
type BillSnapshot struct {
	ID       kernel.UUID
	BillNo   string
	Branch   string
	BillDate time.Time

	CustomerID kernel.UUID
	Customer   CustomerSnapshot

	LineItems   []LineItem
	Adjustments []Adjustment

	TotalAmount kernel.Money
	AmountPaid  kernel.Money

	Status  Status
	Version int
}

// RestoreFreightBill reconstructs a bill from persistence, preserving its
// lifecycle position, payment progress, and concurrency version.
func RestoreFreightBill(s BillSnapshot) (*FreightBill, error) {
	if s.BillNo == "" {
		return nil, ErrBillNoIsRequired
	}
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &FreightBill{
		id:          s.ID,
		billNo:      s.BillNo,
		branch:      s.Branch,
		billDate:    s.BillDate,
		customerID:  s.CustomerID,
		customer:    s.Customer,
		lineItems:   s.LineItems,
		adjustments: s.Adjustments,
		totalAmount: s.TotalAmount,
		amountPaid:  s.AmountPaid,
		status:      s.Status,
		version:     s.Version,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the FreightBill was created through a constructor.
func (b *FreightBill) Validate() error {
	if b == nil {
		return ErrFreightBillIsNotConstructed
	}
	return b.guard.Validate(ErrFreightBillIsNotConstructed)
}

// IsEqual compares two bills by identifier.
func (b *FreightBill) IsEqual(other *FreightBill) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bill's unique identifier.
func (b *FreightBill) ID() kernel.UUID { return b.id }

// BillNo returns the bill number.
func (b *FreightBill) BillNo() string { return b.billNo }

// Branch returns the billing branch.
func (b *FreightBill) Branch() string { return b.branch }

// BillDate returns the bill date.
func (b *FreightBill) BillDate() time.Time { return b.billDate }

// CustomerID returns the billed customer's identifier.
func (b *FreightBill) CustomerID() kernel.UUID { return b.customerID }

// Customer returns the billed party snapshot.
func (b *FreightBill) Customer() CustomerSnapshot { return b.customer }

// LineItems returns the consignment snapshots in consolidation order.
func (b *FreightBill) LineItems() []LineItem { return b.lineItems }

// Adjustments returns the adjustments in application order.
func (b *FreightBill) Adjustments() []Adjustment { return b.adjustments }

// TotalAmount returns the sum of line-item grand totals, fixed at creation.
func (b *FreightBill) TotalAmount() kernel.Money { return b.totalAmount }

// AmountPaid returns the cumulative recorded payments.
func (b *FreightBill) AmountPaid() kernel.Money { return b.amountPaid }

// Status returns the lifecycle status.
func (b *FreightBill) Status() Status { return b.status }

// Version returns the optimistic concurrency token.
func (b *FreightBill) Version() int { return b.version }

// FinalAmount returns the payable total: totalAmount with discounts subtracted
// and all other adjustment types added, floored at zero.
func (b *FreightBill) FinalAmount() kernel.Money {
	raw := rawAdjustedTotal(b.totalAmount, b.adjustments)
	if raw <= 0 {
		return kernel.Money{}
	}
	return kernel.MustMoney(raw)
}

// OutstandingAmount returns how much of the final amount remains unpaid.
func (b *FreightBill) OutstandingAmount() kernel.Money {
	return b.FinalAmount().SubFloorZero(b.amountPaid)
}

// ConsignmentIDs returns the identifiers of every consolidated consignment.
func (b *FreightBill) ConsignmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(b.lineItems))
	for _, item := range b.lineItems {
		ids = append(ids, item.ConsignmentID())
	}
	return ids
}

// ContainsConsignment reports whether the bill consolidates the given consignment.
func (b *FreightBill) ContainsConsignment(consignmentID kernel.UUID) bool {
	for _, item := range b.lineItems {
		if item.ConsignmentID().IsEqual(consignmentID) {
			return true
		}
	}
	return false
}

// Generate finalizes a draft bill for dispatch, moving Draft -> Generated.
func (b *FreightBill) Generate() error {
	next, err := b.status.Apply(OpGenerate)
	if err != nil {
		return err
	}

	b.status = next
	return nil
}

// Send marks the bill as dispatched to the customer, moving Generated -> Sent.
// The actual notification happens outside the aggregate, after commit.
func (b *FreightBill) Send() error {
	next, err := b.status.Apply(OpSend)
	if err != nil {
		return err
	}

	b.status = next
	return nil
}

// RecordPayment accumulates a payment against the bill. A payment that brings
// amountPaid to the final amount settles the bill (status Paid); anything less
// moves it to PartiallyPaid. It returns whether the bill is now settled so the
// caller can flip the consolidated consignments to Paid in the same
// transaction.
//
// requireSent enforces the policy that a bill must be Sent before it can be
// settled: with it on, payments against a Generated bill are rejected.
func (b *FreightBill) RecordPayment(amount kernel.Money, requireSent bool) (settled bool, err error) {
	if amount.IsZero() {
		return false, errs.NewValueIsRequiredError("paymentAmount")
	}
	if requireSent && b.status == Generated {
		return false, errs.NewInvalidTransitionError(string(OpRecordPayment), b.status.String())
	}

	newPaid := b.amountPaid.Add(amount)
	final := b.FinalAmount()
	if final.LessThan(newPaid) {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"paymentAmount",
			fmt.Errorf("payment of %s exceeds outstanding %s", amount, b.OutstandingAmount()),
		)
	}

	op := OpRecordPayment
	if newPaid.IsEqual(final) {
		op = OpMarkPaid
	}
	next, err := b.status.Apply(op)
	if err != nil {
		return false, err
	}

	b.amountPaid = newPaid
	b.status = next
	return b.status == Paid, nil
}

// MarkPaid settles the bill in one step, recording the full outstanding amount
// as paid. requireSent has the same meaning as in RecordPayment.
func (b *FreightBill) MarkPaid(requireSent bool) error {
	if requireSent && b.status == Generated {
		return errs.NewInvalidTransitionError(string(OpMarkPaid), b.status.String())
	}
	next, err := b.status.Apply(OpMarkPaid)
	if err != nil {
		return err
	}

	b.amountPaid = b.FinalAmount()
	b.status = next
	return nil
}

// Cancel aborts the bill from any pre-Paid status. The caller restores the
// consolidated consignments to Unbilled in the same transaction.
func (b *FreightBill) Cancel() error {
	next, err := b.status.Apply(OpCancel)
	if err != nil {
		return err
	}

	b.status = next
	return nil
}

// UpdateHeader edits the bill's identifying fields. Header edits are rejected
// once the bill is terminal: a settled or cancelled bill is a closed record.
func (b *FreightBill) UpdateHeader(billNo, branch string, billDate time.Time) error {
	if b.status.IsTerminal() {
		return errs.NewInvalidTransitionError("updateHeader", b.status.String())
	}
	if billNo == "" {
		return ErrBillNoIsRequired
	}
	if billDate.IsZero() {
		return errs.NewValueIsRequiredError("billDate")
	}

	b.billNo = billNo
	b.branch = branch
	b.billDate = billDate
	return nil
}

// CanDelete reports whether the bill may be physically deleted. A bill with
// any recorded payment, or already settled, stays as a record; a cancelled
// unpaid bill may go.
func (b *FreightBill) CanDelete() error {
	if b.status == Paid {
		return errs.NewInvalidTransitionError("delete", b.status.String())
	}
	if !b.amountPaid.IsZero() {
		return errs.NewInvalidTransitionErrorWithCause(
			"delete", b.status.String(),
			fmt.Errorf("%s already paid against the bill", b.amountPaid),
		)
	}
	return nil
}

// rawAdjustedTotal applies the adjustments to the total without flooring, in
// smallest currency units. Creation uses the raw value to reject bills that
// would go negative.
func rawAdjustedTotal(total kernel.Money, adjustments []Adjustment) int64 {
	raw := total.Amount()
	for _, a := range adjustments {
		if a.Type().IsSubtractive() {
			raw -= a.Amount().Amount()
		} else {
			raw += a.Amount().Amount()
		}
	}
	return raw
}
