// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"freightops/internal/core/domain/model/customer"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// records.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:varchar(512);not null;default:''"`
	City    string    `gorm:"type:varchar(128);not null;default:''"`
	Mobile  string    `gorm:"type:varchar(20);not null;default:''"`
	Email   string    `gorm:"type:varchar(255);not null;default:''"`
	GSTIN   string    `gorm:"type:varchar(15);not null;default:''"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		City:    aggregate.City(),
		Mobile:  aggregate.Mobile(),
		Email:   aggregate.Email(),
		GSTIN:   aggregate.GSTIN(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Address, dto.City, dto.Mobile, dto.Email, dto.GSTIN)
}
