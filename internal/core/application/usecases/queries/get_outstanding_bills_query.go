package queries

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrGetOutstandingBillsQueryIsNotConstructed = errors.New(
	"GetOutstandingBillsQuery must be created via NewGetOutstandingBillsQuery constructor",
)

// GetOutstandingBillsQuery retrieves bills awaiting payment: Sent or
// PartiallyPaid bills whose bill date is on or before the given cutoff.
// The payment reminder job runs this on a schedule.
type GetOutstandingBillsQuery struct {
	dueBefore time.Time

	guard guard.ConstructorGuard
}

// NewGetOutstandingBillsQuery creates a query for bills due before the cutoff.
func NewGetOutstandingBillsQuery(dueBefore time.Time) (GetOutstandingBillsQuery, error) {
	if dueBefore.IsZero() {
		return GetOutstandingBillsQuery{}, errs.NewValueIsRequiredError("dueBefore")
	}

	return GetOutstandingBillsQuery{
		dueBefore: dueBefore,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOutstandingBillsQuery) Validate() error {
	return q.guard.Validate(ErrGetOutstandingBillsQueryIsNotConstructed)
}

// DueBefore returns the bill-date cutoff.
func (q GetOutstandingBillsQuery) DueBefore() time.Time {
	return q.dueBefore
}

// GetOutstandingBillsQueryResponse is one outstanding bill row with the
// customer contact details the reminder email needs.
type GetOutstandingBillsQueryResponse struct {
	ID            kernel.UUID
	BillNo        string
	BillDate      time.Time
	CustomerName  string
	CustomerEmail string
	FinalAmount   kernel.Money
	AmountPaid    kernel.Money
}

// Outstanding returns the unpaid remainder of the bill.
func (r GetOutstandingBillsQueryResponse) Outstanding() kernel.Money {
	return r.FinalAmount.SubFloorZero(r.AmountPaid)
}
