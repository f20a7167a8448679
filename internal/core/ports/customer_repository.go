package ports

import (
	"context"

	"freightops/internal/core/domain/model/customer"
	"freightops/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
