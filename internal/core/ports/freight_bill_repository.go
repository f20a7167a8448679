package ports

import (
	"context"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
)

// FreightBillRepository defines the persistence contract for freight-bill
// aggregates. Line items and adjustments are stored with the bill and loaded
// as a unit; Update carries the same optimistic version check as the
// consignment repository.
type FreightBillRepository interface {
	// Add persists a new freight bill with its line items and adjustments.
	Add(ctx context.Context, aggregate *freightbill.FreightBill) error

	// Update persists changes to an existing freight bill.
	// Fails with a ConflictError when the stored version has moved on.
	Update(ctx context.Context, aggregate *freightbill.FreightBill) error

	// Get retrieves a freight bill by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*freightbill.FreightBill, error)

	// Delete removes a freight bill and its line items.
	// The caller has already run CanDelete.
	Delete(ctx context.Context, id kernel.UUID) error
}
