package ports

import (
	"context"

	"freightops/internal/core/domain/model/fleet"
	"freightops/internal/core/domain/model/kernel"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Update is version-checked: two assignment requests racing on one vehicle
// cannot both flip it to OnTrip, the second writer gets a ConflictError.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *fleet.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// Fails with a ConflictError when the stored version has moved on.
	Update(ctx context.Context, aggregate *fleet.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error)

	// GetAllAvailable retrieves all vehicles in Available status.
	GetAllAvailable(ctx context.Context) ([]*fleet.Vehicle, error)
}

// DriverRepository defines the persistence contract for driver aggregates,
// with the same version-checked Update as VehicleRepository.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *fleet.Driver) error

	// Update persists changes to an existing driver aggregate.
	// Fails with a ConflictError when the stored version has moved on.
	Update(ctx context.Context, aggregate *fleet.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error)

	// GetAllAvailable retrieves all drivers in Available status.
	GetAllAvailable(ctx context.Context) ([]*fleet.Driver, error)
}
