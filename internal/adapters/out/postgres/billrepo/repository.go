package billrepo

import (
	"context"
	"errors"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFreightBillRepository implements FreightBillRepository using GORM.
type GormFreightBillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFreightBillRepository creates a new GORM freight-bill repository.
func NewGormFreightBillRepository(db *gorm.DB, tracker aggregateTracker) *GormFreightBillRepository {
	return &GormFreightBillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new freight bill with its line items and adjustments.
func (r *GormFreightBillRepository) Add(ctx context.Context, aggregate *freightbill.FreightBill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the bill header with an optimistic version check. Line items
// and adjustments are fixed at creation, so only the header row is written.
func (r *GormFreightBillRepository) Update(ctx context.Context, aggregate *freightbill.FreightBill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&BillDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("LineItems", "Adjustments").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("freightBill", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a freight bill by ID with its line items and adjustments.
func (r *GormFreightBillRepository) Get(ctx context.Context, id kernel.UUID) (*freightbill.FreightBill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Adjustments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("freightBill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a freight bill; line items and adjustments go with it via
// the cascade constraint. Payment eligibility is checked in the domain.
func (r *GormFreightBillRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BillDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("freightBill", id.String())
	}

	return nil
}
