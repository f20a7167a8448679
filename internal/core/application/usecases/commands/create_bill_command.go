package commands

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrCreateBillCommandIsNotConstructed = errors.New(
	"CreateBillCommand must be created via NewCreateBillCommand constructor",
)

// CreateBillCommand represents a request to consolidate a customer's
// delivered, unbilled consignments into one freight bill. The operation is
// all-or-nothing: if any referenced consignment is ineligible the whole bill
// is rejected and nothing is marked Billed.
//
// Example:
//
//	discount, _ := freightbill.NewAdjustment(freightbill.Discount, "loyalty", kernel.MustMoney(20000))
//	cmd, err := NewCreateBillCommand(
//	    kernel.NewUUID(), "FB-2025-041", "Branch-A", time.Now(),
//	    customerID, []kernel.UUID{c1, c2},
//	    []freightbill.Adjustment{discount}, false,
//	)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("a consignment is already on another bill")
//	}
type CreateBillCommand struct { //nolint:recvcheck //using for validation
	billID         kernel.UUID
	billNo         string
	branch         string
	billDate       time.Time
	customerID     kernel.UUID
	consignmentIDs []kernel.UUID
	adjustments    []freightbill.Adjustment
	asGenerated    bool

	guard guard.ConstructorGuard
}

// NewCreateBillCommand creates a command to consolidate consignments into a
// bill. At least one consignment must be referenced; adjustments are already
// validated value objects. asGenerated creates the bill in Generated status
// instead of Draft.
func NewCreateBillCommand(
	billID kernel.UUID,
	billNo string,
	branch string,
	billDate time.Time,
	customerID kernel.UUID,
	consignmentIDs []kernel.UUID,
	adjustments []freightbill.Adjustment,
	asGenerated bool,
) (CreateBillCommand, error) {
	if billNo == "" {
		return CreateBillCommand{}, errs.NewValueIsRequiredError("billNo")
	}
	if billDate.IsZero() {
		return CreateBillCommand{}, errs.NewValueIsRequiredError("billDate")
	}
	if len(consignmentIDs) == 0 {
		return CreateBillCommand{}, errs.NewValueIsRequiredError("consignmentIds")
	}
	if err := errors.Join(billID.Validate(), customerID.Validate()); err != nil {
		return CreateBillCommand{}, err
	}
	for _, id := range consignmentIDs {
		if err := id.Validate(); err != nil {
			return CreateBillCommand{}, err
		}
	}

	return CreateBillCommand{
		billID:         billID,
		billNo:         billNo,
		branch:         branch,
		billDate:       billDate,
		customerID:     customerID,
		consignmentIDs: consignmentIDs,
		adjustments:    adjustments,
		asGenerated:    asGenerated,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBillCommand) Validate() error {
	return c.guard.Validate(ErrCreateBillCommandIsNotConstructed)
}

// BillID returns the identifier for the new bill.
func (c CreateBillCommand) BillID() kernel.UUID { return c.billID }

// BillNo returns the bill number.
func (c CreateBillCommand) BillNo() string { return c.billNo }

// Branch returns the billing branch.
func (c CreateBillCommand) Branch() string { return c.branch }

// BillDate returns the bill date.
func (c CreateBillCommand) BillDate() time.Time { return c.billDate }

// CustomerID returns the billed customer's identifier.
func (c CreateBillCommand) CustomerID() kernel.UUID { return c.customerID }

// ConsignmentIDs returns the consignments to consolidate, in billing order.
func (c CreateBillCommand) ConsignmentIDs() []kernel.UUID { return c.consignmentIDs }

// Adjustments returns the adjustments to apply, in order.
func (c CreateBillCommand) Adjustments() []freightbill.Adjustment { return c.adjustments }

// AsGenerated reports whether the bill starts in Generated status.
func (c CreateBillCommand) AsGenerated() bool { return c.asGenerated }
