// Package fleetrepo provides data transfer objects and mapping functions for
// vehicle and driver persistence.
package fleetrepo

import (
	"freightops/internal/core/domain/model/fleet"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates.
type VehicleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegistrationNo string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Model          string    `gorm:"type:varchar(128);not null"`
	CapacityKg     int       `gorm:"not null"`
	Status         int       `gorm:"not null;index"`
	Version        int       `gorm:"not null"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// DriverDTO represents the database structure for persisting driver
// aggregates.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	LicenceNo string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Mobile    string    `gorm:"type:varchar(20);not null;default:''"`
	Status    int       `gorm:"not null;index"`
	Version   int       `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func vehicleFromDomain(aggregate *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:             aggregate.ID().Bytes(),
		RegistrationNo: aggregate.RegistrationNo(),
		Model:          aggregate.Model(),
		CapacityKg:     aggregate.CapacityKg(),
		Status:         int(aggregate.Status()),
		Version:        aggregate.Version(),
	}
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return fleet.RestoreVehicle(id, dto.RegistrationNo, dto.Model, dto.CapacityKg, fleet.Status(dto.Status), dto.Version)
}

func driverFromDomain(aggregate *fleet.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		LicenceNo: aggregate.LicenceNo(),
		Mobile:    aggregate.Mobile(),
		Status:    int(aggregate.Status()),
		Version:   aggregate.Version(),
	}
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return fleet.RestoreDriver(id, dto.Name, dto.LicenceNo, dto.Mobile, fleet.Status(dto.Status), dto.Version)
}
