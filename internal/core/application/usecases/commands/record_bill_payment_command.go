package commands

import (
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrRecordBillPaymentCommandIsNotConstructed = errors.New(
	"RecordBillPaymentCommand must be created via NewRecordBillPaymentCommand constructor",
)

// RecordBillPaymentCommand represents a payment received against a bill.
// Payments accumulate: a payment that clears the outstanding amount settles
// the bill and marks every consolidated consignment Paid.
//
// Example:
//
//	cmd, err := NewRecordBillPaymentCommand(billID, kernel.MustMoney(150000))
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment rejected: %w", err)
//	}
type RecordBillPaymentCommand struct { //nolint:recvcheck //using for validation
	billID kernel.UUID
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordBillPaymentCommand creates a command to record a payment.
// The amount must be positive.
func NewRecordBillPaymentCommand(billID kernel.UUID, amount kernel.Money) (RecordBillPaymentCommand, error) {
	if err := billID.Validate(); err != nil {
		return RecordBillPaymentCommand{}, err
	}
	if amount.IsZero() {
		return RecordBillPaymentCommand{}, errs.NewValueIsRequiredError("paymentAmount")
	}

	return RecordBillPaymentCommand{
		billID: billID,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordBillPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordBillPaymentCommandIsNotConstructed)
}

// BillID returns the bill being paid.
func (c RecordBillPaymentCommand) BillID() kernel.UUID { return c.billID }

// Amount returns the payment amount.
func (c RecordBillPaymentCommand) Amount() kernel.Money { return c.amount }
