// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the aggregates and read projections straight from the
// database, implementing the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/guard"
)

var ErrGetUnbilledConsignmentsQueryIsNotConstructed = errors.New(
	"GetUnbilledConsignmentsQuery must be created via NewGetUnbilledConsignmentsQuery constructor",
)

// GetUnbilledConsignmentsQuery retrieves a customer's consignments that are
// eligible for freight-bill consolidation: Delivered and not yet billed.
// This feeds the bill-creation screen.
//
// Example:
//
//	query, err := NewGetUnbilledConsignmentsQuery(customerID)
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load billable consignments: %w", err)
//	}
//	fmt.Printf("%d consignments ready for billing\n", len(rows))
type GetUnbilledConsignmentsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnbilledConsignmentsQuery creates a query for a customer's billable
// consignments.
func NewGetUnbilledConsignmentsQuery(customerID kernel.UUID) (GetUnbilledConsignmentsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetUnbilledConsignmentsQuery{}, err
	}

	return GetUnbilledConsignmentsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnbilledConsignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnbilledConsignmentsQueryIsNotConstructed)
}

// CustomerID returns the customer whose consignments are requested.
func (q GetUnbilledConsignmentsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetUnbilledConsignmentsQueryResponse is one billable consignment row,
// carrying what the consolidation screen shows: identity, destination,
// charged weight, and the amount the line item would contribute.
type GetUnbilledConsignmentsQueryResponse struct {
	ID            kernel.UUID
	ConsignmentNo string
	BookingDate   time.Time
	Destination   string
	ChargedWeight int
	GrandTotal    kernel.Money
}
