// Package consignmentrepo provides data transfer objects and mapping functions
// for consignment persistence. This package implements the repository pattern
// for the consignment domain aggregate, handling the conversion between domain
// entities and database representations.
package consignmentrepo

import (
	"time"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConsignmentDTO represents the database structure for persisting consignment
// aggregates. One row per consignment; the party, route, weight, and charge
// value objects are flattened into prefixed column groups.
type ConsignmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsignmentNo string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BookingDate   time.Time `gorm:"not null"`

	Consignor PartyDTO `gorm:"embedded;embeddedPrefix:consignor_"`
	Consignee PartyDTO `gorm:"embedded;embeddedPrefix:consignee_"`

	FromCity         string `gorm:"type:varchar(128);not null"`
	ToCity           string `gorm:"type:varchar(128);not null"`
	GoodsDescription string `gorm:"type:varchar(512);not null"`
	Packages         int    `gorm:"not null"`

	ActualWeightKg  int `gorm:"not null"`
	ChargedWeightKg int `gorm:"not null"`

	Charges ChargesDTO `gorm:"embedded"`

	VehicleID           *uuid.UUID `gorm:"type:uuid;index"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	VehicleRegistration string     `gorm:"type:varchar(32);not null;default:''"`
	DriverName          string     `gorm:"type:varchar(255);not null;default:''"`

	PickupDate         *time.Time
	PickupTime         string `gorm:"type:varchar(8);not null;default:''"`
	PickupInstructions string `gorm:"type:varchar(512);not null;default:''"`

	ActualPickupDate *time.Time
	ActualPickupTime string `gorm:"type:varchar(8);not null;default:''"`
	TransitNotes     string `gorm:"type:varchar(512);not null;default:''"`

	DeliveryDate    *time.Time
	ProofOfDelivery string `gorm:"type:varchar(128);not null;default:''"`
	DeliveredBy     string `gorm:"type:varchar(255);not null;default:''"`

	Status        int        `gorm:"not null;index"`
	PaymentStatus int        `gorm:"not null;index"`
	BillID        *uuid.UUID `gorm:"type:uuid;index"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for consignment entities.
func (ConsignmentDTO) TableName() string {
	return "consignments"
}

// PartyDTO represents an embedded consignor or consignee column group.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(512);not null"`
	Mobile  string `gorm:"type:varchar(20);not null"`
	Email   string `gorm:"type:varchar(255);not null;default:''"`
	GSTIN   string `gorm:"type:varchar(15);not null;default:''"`
}

// ChargesDTO represents the embedded charge breakup. Amounts are stored in the
// smallest currency unit; the grand total is always derived, never stored.
type ChargesDTO struct {
	Freight              int64 `gorm:"not null"`
	Handling             int64 `gorm:"not null"`
	ServiceTax           int64 `gorm:"not null"`
	DoorDelivery         int64 `gorm:"not null"`
	OtherCharge          int64 `gorm:"not null"`
	Risk                 int64 `gorm:"not null"`
	AdditionalServiceTax int64 `gorm:"not null"`
}

// fromDomain converts a consignment domain aggregate to its database
// representation.
func fromDomain(aggregate *consignment.Consignment) ConsignmentDTO {
	charges := aggregate.Charges()

	dto := ConsignmentDTO{
		ID:            aggregate.ID().Bytes(),
		ConsignmentNo: aggregate.ConsignmentNo(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		BookingDate:   aggregate.BookingDate(),

		Consignor: partyFromDomain(aggregate.Consignor()),
		Consignee: partyFromDomain(aggregate.Consignee()),

		FromCity:         aggregate.Route().FromCity(),
		ToCity:           aggregate.Route().ToCity(),
		GoodsDescription: aggregate.Route().GoodsDescription(),
		Packages:         aggregate.Route().Packages(),

		ActualWeightKg:  aggregate.Weights().ActualKg(),
		ChargedWeightKg: aggregate.Weights().ChargedKg(),

		Charges: ChargesDTO{
			Freight:              charges.Freight().Amount(),
			Handling:             charges.Handling().Amount(),
			ServiceTax:           charges.ServiceTax().Amount(),
			DoorDelivery:         charges.DoorDelivery().Amount(),
			OtherCharge:          charges.Other().Amount(),
			Risk:                 charges.Risk().Amount(),
			AdditionalServiceTax: charges.AdditionalServiceTax().Amount(),
		},

		PickupTime:         aggregate.PickupTime(),
		PickupInstructions: aggregate.PickupInstructions(),
		ActualPickupTime:   aggregate.ActualPickupTime(),
		TransitNotes:       aggregate.TransitNotes(),
		ProofOfDelivery:    aggregate.ProofOfDelivery(),
		DeliveredBy:        aggregate.DeliveredBy(),

		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),

		Version: aggregate.Version(),
	}

	if assignment := aggregate.Assignment(); assignment != nil {
		vehicleID := assignment.VehicleID().Bytes()
		driverID := assignment.DriverID().Bytes()
		dto.VehicleID = &vehicleID
		dto.DriverID = &driverID
		dto.VehicleRegistration = assignment.VehicleRegistration()
		dto.DriverName = assignment.DriverName()
	}

	if pickup := aggregate.PickupDate(); !pickup.IsZero() {
		dto.PickupDate = &pickup
	}
	if actual := aggregate.ActualPickupDate(); !actual.IsZero() {
		dto.ActualPickupDate = &actual
	}
	if delivered := aggregate.DeliveryDate(); !delivered.IsZero() {
		dto.DeliveryDate = &delivered
	}
	if billID := aggregate.BillID(); billID != nil {
		raw := billID.Bytes()
		dto.BillID = &raw
	}

	return dto
}

func partyFromDomain(party consignment.Party) PartyDTO {
	return PartyDTO{
		Name:    party.Name(),
		Address: party.Address(),
		Mobile:  party.Mobile(),
		Email:   party.Email(),
		GSTIN:   party.GSTIN(),
	}
}

// toDomain converts a database DTO to a consignment domain aggregate.
// Reconstructs the complete aggregate using RestoreConsignment.
func toDomain(dto ConsignmentDTO) (*consignment.Consignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	consignor, err := partyToDomain(dto.Consignor)
	if err != nil {
		return nil, err
	}
	consignee, err := partyToDomain(dto.Consignee)
	if err != nil {
		return nil, err
	}

	route, err := consignment.NewRoute(dto.FromCity, dto.ToCity, dto.GoodsDescription, dto.Packages)
	if err != nil {
		return nil, err
	}
	weights, err := consignment.NewWeights(dto.ActualWeightKg, dto.ChargedWeightKg)
	if err != nil {
		return nil, err
	}
	charges, err := chargesToDomain(dto.Charges)
	if err != nil {
		return nil, err
	}

	snapshot := consignment.Snapshot{
		ID:            id,
		ConsignmentNo: dto.ConsignmentNo,
		CustomerID:    customerID,
		BookingDate:   dto.BookingDate,

		Consignor: consignor,
		Consignee: consignee,
		Route:     route,
		Weights:   weights,
		Charges:   charges,

		PickupTime:         dto.PickupTime,
		PickupInstructions: dto.PickupInstructions,
		ActualPickupTime:   dto.ActualPickupTime,
		TransitNotes:       dto.TransitNotes,
		ProofOfDelivery:    dto.ProofOfDelivery,
		DeliveredBy:        dto.DeliveredBy,

		Status:        consignment.Status(dto.Status),
		PaymentStatus: consignment.PaymentStatus(dto.PaymentStatus),
		Version:       dto.Version,
	}

	if dto.VehicleID != nil && dto.DriverID != nil {
		vehicleID, vErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		driverID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		assignment, aErr := consignment.NewAssignment(vehicleID, driverID, dto.VehicleRegistration, dto.DriverName)
		if aErr != nil {
			return nil, aErr
		}
		snapshot.Assignment = &assignment
	}

	if dto.PickupDate != nil {
		snapshot.PickupDate = *dto.PickupDate
	}
	if dto.ActualPickupDate != nil {
		snapshot.ActualPickupDate = *dto.ActualPickupDate
	}
	if dto.DeliveryDate != nil {
		snapshot.DeliveryDate = *dto.DeliveryDate
	}
	if dto.BillID != nil {
		billID, bErr := kernel.UUIDFromBytes((*dto.BillID)[:])
		if bErr != nil {
			return nil, bErr
		}
		snapshot.BillID = &billID
	}

	return consignment.RestoreConsignment(snapshot)
}

func partyToDomain(dto PartyDTO) (consignment.Party, error) {
	return consignment.NewParty(dto.Name, dto.Address, dto.Mobile, dto.Email, dto.GSTIN)
}

func chargesToDomain(dto ChargesDTO) (consignment.Charges, error) {
	amounts := []int64{
		dto.Freight, dto.Handling, dto.ServiceTax, dto.DoorDelivery,
		dto.OtherCharge, dto.Risk, dto.AdditionalServiceTax,
	}
	moneys := make([]kernel.Money, len(amounts))
	for i, amount := range amounts {
		money, err := kernel.NewMoney(amount)
		if err != nil {
			return consignment.Charges{}, err
		}
		moneys[i] = money
	}

	return consignment.NewCharges(moneys[0], moneys[1], moneys[2], moneys[3], moneys[4], moneys[5], moneys[6]), nil
}
