package commands

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrUpdateBillHeaderCommandIsNotConstructed = errors.New(
	"UpdateBillHeaderCommand must be created via NewUpdateBillHeaderCommand constructor",
)

// UpdateBillHeaderCommand represents a request to edit a bill's identifying
// fields. Line items and totals are fixed at creation and cannot be edited.
type UpdateBillHeaderCommand struct { //nolint:recvcheck //using for validation
	billID   kernel.UUID
	billNo   string
	branch   string
	billDate time.Time

	guard guard.ConstructorGuard
}

// NewUpdateBillHeaderCommand creates a command to edit a bill header.
func NewUpdateBillHeaderCommand(billID kernel.UUID, billNo, branch string, billDate time.Time) (UpdateBillHeaderCommand, error) {
	if err := billID.Validate(); err != nil {
		return UpdateBillHeaderCommand{}, err
	}
	if billNo == "" {
		return UpdateBillHeaderCommand{}, errs.NewValueIsRequiredError("billNo")
	}
	if billDate.IsZero() {
		return UpdateBillHeaderCommand{}, errs.NewValueIsRequiredError("billDate")
	}

	return UpdateBillHeaderCommand{
		billID:   billID,
		billNo:   billNo,
		branch:   branch,
		billDate: billDate,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBillHeaderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBillHeaderCommandIsNotConstructed)
}

// BillID returns the bill to edit.
func (c UpdateBillHeaderCommand) BillID() kernel.UUID { return c.billID }

// BillNo returns the new bill number.
func (c UpdateBillHeaderCommand) BillNo() string { return c.billNo }

// Branch returns the new billing branch.
func (c UpdateBillHeaderCommand) Branch() string { return c.branch }

// BillDate returns the new bill date.
func (c UpdateBillHeaderCommand) BillDate() time.Time { return c.billDate }
