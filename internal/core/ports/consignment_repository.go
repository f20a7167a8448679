// Package ports defines repository and collaborator interfaces for the
// freight domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
)

// ConsignmentRepository defines the persistence contract for consignment
// aggregates. Update performs an optimistic compare-and-set on the aggregate
// version: a stale writer gets a ConflictError instead of overwriting a newer
// state.
type ConsignmentRepository interface {
	// Add persists a new consignment aggregate to storage.
	Add(ctx context.Context, aggregate *consignment.Consignment) error

	// Update persists changes to an existing consignment aggregate.
	// Fails with a ConflictError when the stored version has moved on.
	Update(ctx context.Context, aggregate *consignment.Consignment) error

	// Get retrieves a consignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*consignment.Consignment, error)

	// GetByNumber retrieves a consignment by its business key.
	GetByNumber(ctx context.Context, consignmentNo string) (*consignment.Consignment, error)

	// GetBillable retrieves a customer's consignments eligible for
	// consolidation: Delivered and Unbilled, ordered by booking date ascending.
	GetBillable(ctx context.Context, customerID kernel.UUID) ([]*consignment.Consignment, error)

	// Delete removes a consignment. The caller has already run CanDelete.
	Delete(ctx context.Context, id kernel.UUID) error
}
