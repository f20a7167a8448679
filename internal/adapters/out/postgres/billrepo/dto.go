// Package billrepo provides data transfer objects and mapping functions for
// freight-bill persistence. A bill row owns its line item and adjustment rows;
// the three tables are written and loaded as one aggregate.
package billrepo

import (
	"time"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BillDTO represents the database structure for persisting freight-bill
// aggregates. The customer snapshot is flattened into prefixed columns so the
// bill keeps the contact details it was raised against.
type BillDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	BillNo   string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Branch   string    `gorm:"type:varchar(128);not null;default:''"`
	BillDate time.Time `gorm:"not null"`

	CustomerID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Customer   CustomerSnapshotDTO `gorm:"embedded;embeddedPrefix:customer_"`

	LineItems   []LineItemDTO   `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
	Adjustments []AdjustmentDTO `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`

	TotalAmount int64 `gorm:"not null"`
	AmountPaid  int64 `gorm:"not null"`

	Status  int `gorm:"not null;index"`
	Version int `gorm:"not null"`
}

// TableName specifies the database table name for freight-bill entities.
func (BillDTO) TableName() string {
	return "freight_bills"
}

// CustomerSnapshotDTO represents the embedded customer column group.
type CustomerSnapshotDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(512);not null;default:''"`
	City    string `gorm:"type:varchar(128);not null;default:''"`
	Mobile  string `gorm:"type:varchar(20);not null;default:''"`
	Email   string `gorm:"type:varchar(255);not null;default:''"`
	GSTIN   string `gorm:"type:varchar(15);not null;default:''"`
}

// LineItemDTO represents one billed consignment row. A consignment appears at
// most once per bill.
type LineItemDTO struct {
	BillID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsignmentID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsignmentNo   string    `gorm:"type:varchar(32);not null"`
	BookingDate     time.Time `gorm:"not null"`
	Destination     string    `gorm:"type:varchar(128);not null"`
	ChargedWeightKg int       `gorm:"not null"`
	Freight         int64     `gorm:"not null"`
	GrandTotal      int64     `gorm:"not null"`
}

// TableName specifies the database table name for bill line items.
func (LineItemDTO) TableName() string {
	return "bill_line_items"
}

// AdjustmentDTO represents one manual adjustment row. Position preserves the
// order adjustments were entered in.
type AdjustmentDTO struct {
	BillID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"primaryKey"`
	AdjustmentType int       `gorm:"not null"`
	Description    string    `gorm:"type:varchar(255);not null;default:''"`
	Amount         int64     `gorm:"not null"`
}

// TableName specifies the database table name for bill adjustments.
func (AdjustmentDTO) TableName() string {
	return "bill_adjustments"
}

// fromDomain converts a freight-bill domain aggregate to its database
// representation, line items and adjustments included.
func fromDomain(aggregate *freightbill.FreightBill) BillDTO {
	billID := aggregate.ID().Bytes()
	customer := aggregate.Customer()

	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			BillID:          billID,
			ConsignmentID:   item.ConsignmentID().Bytes(),
			ConsignmentNo:   item.ConsignmentNo(),
			BookingDate:     item.BookingDate(),
			Destination:     item.Destination(),
			ChargedWeightKg: item.ChargedWeightKg(),
			Freight:         item.Freight().Amount(),
			GrandTotal:      item.GrandTotal().Amount(),
		})
	}

	adjustments := make([]AdjustmentDTO, 0, len(aggregate.Adjustments()))
	for i, adjustment := range aggregate.Adjustments() {
		adjustments = append(adjustments, AdjustmentDTO{
			BillID:         billID,
			Position:       i,
			AdjustmentType: int(adjustment.Type()),
			Description:    adjustment.Description(),
			Amount:         adjustment.Amount().Amount(),
		})
	}

	return BillDTO{
		ID:         billID,
		BillNo:     aggregate.BillNo(),
		Branch:     aggregate.Branch(),
		BillDate:   aggregate.BillDate(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Customer: CustomerSnapshotDTO{
			Name:    customer.Name(),
			Address: customer.Address(),
			City:    customer.City(),
			Mobile:  customer.Mobile(),
			Email:   customer.Email(),
			GSTIN:   customer.GSTIN(),
		},
		LineItems:   lineItems,
		Adjustments: adjustments,
		TotalAmount: aggregate.TotalAmount().Amount(),
		AmountPaid:  aggregate.AmountPaid().Amount(),
		Status:      int(aggregate.Status()),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to a freight-bill domain aggregate using
// RestoreFreightBill.
func toDomain(dto BillDTO) (*freightbill.FreightBill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := freightbill.NewCustomerSnapshot(
		dto.Customer.Name, dto.Customer.Address, dto.Customer.City,
		dto.Customer.Mobile, dto.Customer.Email, dto.Customer.GSTIN,
	)
	if err != nil {
		return nil, err
	}

	lineItems := make([]freightbill.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	adjustments := make([]freightbill.Adjustment, 0, len(dto.Adjustments))
	for _, adjustmentDTO := range dto.Adjustments {
		amount, amountErr := kernel.NewMoney(adjustmentDTO.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		adjustment, adjustmentErr := freightbill.NewAdjustment(
			freightbill.AdjustmentType(adjustmentDTO.AdjustmentType),
			adjustmentDTO.Description,
			amount,
		)
		if adjustmentErr != nil {
			return nil, adjustmentErr
		}
		adjustments = append(adjustments, adjustment)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	amountPaid, err := kernel.NewMoney(dto.AmountPaid)
	if err != nil {
		return nil, err
	}

	return freightbill.RestoreFreightBill(freightbill.BillSnapshot{
		ID:          id,
		BillNo:      dto.BillNo,
		Branch:      dto.Branch,
		BillDate:    dto.BillDate,
		CustomerID:  customerID,
		Customer:    customer,
		LineItems:   lineItems,
		Adjustments: adjustments,
		TotalAmount: totalAmount,
		AmountPaid:  amountPaid,
		Status:      freightbill.Status(dto.Status),
		Version:     dto.Version,
	})
}

func lineItemToDomain(dto LineItemDTO) (freightbill.LineItem, error) {
	consignmentID, err := kernel.UUIDFromBytes(dto.ConsignmentID[:])
	if err != nil {
		return freightbill.LineItem{}, err
	}
	freight, err := kernel.NewMoney(dto.Freight)
	if err != nil {
		return freightbill.LineItem{}, err
	}
	grandTotal, err := kernel.NewMoney(dto.GrandTotal)
	if err != nil {
		return freightbill.LineItem{}, err
	}

	return freightbill.RestoreLineItem(
		consignmentID, dto.ConsignmentNo, dto.BookingDate,
		dto.Destination, dto.ChargedWeightKg, freight, grandTotal,
	)
}
