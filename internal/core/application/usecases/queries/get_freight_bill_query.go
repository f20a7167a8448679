package queries

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrGetFreightBillQueryIsNotConstructed = errors.New(
	"GetFreightBillQuery must be created via NewGetFreightBillQuery constructor",
)

// GetFreightBillQuery retrieves one freight bill with its line items and
// adjustments.
type GetFreightBillQuery struct {
	billID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetFreightBillQuery(billID kernel.UUID) (GetFreightBillQuery, error) {
	if err := billID.Validate(); err != nil {
		return GetFreightBillQuery{}, errs.NewValueIsRequiredErrorWithCause("billId", err)
	}

	return GetFreightBillQuery{
		billID: billID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFreightBillQuery) Validate() error {
	return q.guard.Validate(ErrGetFreightBillQueryIsNotConstructed)
}

func (q GetFreightBillQuery) BillID() kernel.UUID {
	return q.billID
}

// BillCustomerDetails is the customer as captured on the bill at creation
// time, not the live customer record.
type BillCustomerDetails struct {
	Name    string
	Address string
	City    string
	Mobile  string
	Email   string
	GSTIN   string
}

// BillLineItemDetails is one billed consignment row.
type BillLineItemDetails struct {
	ConsignmentID   kernel.UUID
	ConsignmentNo   string
	BookingDate     time.Time
	Destination     string
	ChargedWeightKg int
	Freight         kernel.Money
	GrandTotal      kernel.Money
}

// BillAdjustmentDetails is one manual adjustment applied to a bill.
type BillAdjustmentDetails struct {
	Type        string
	Description string
	Amount      kernel.Money
}

// GetFreightBillQueryResponse is the full read model of one freight bill.
type GetFreightBillQueryResponse struct {
	ID       kernel.UUID
	BillNo   string
	Branch   string
	BillDate time.Time

	CustomerID kernel.UUID
	Customer   BillCustomerDetails

	LineItems   []BillLineItemDetails
	Adjustments []BillAdjustmentDetails

	TotalAmount kernel.Money
	FinalAmount kernel.Money
	AmountPaid  kernel.Money
	Outstanding kernel.Money

	Status  string
	Version int
}
