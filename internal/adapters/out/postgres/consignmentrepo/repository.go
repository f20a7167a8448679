package consignmentrepo

import (
	"context"
	"errors"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConsignmentRepository implements ConsignmentRepository using GORM.
type GormConsignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConsignmentRepository creates a new GORM consignment repository.
func NewGormConsignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormConsignmentRepository {
	return &GormConsignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new consignment to the database.
func (r *GormConsignmentRepository) Add(ctx context.Context, aggregate *consignment.Consignment) error {
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

// Update saves an existing consignment with an optimistic version check.
// The write only lands when the stored version still matches the version the
// aggregate was loaded at; a stale writer gets a ConflictError.
func (r *GormConsignmentRepository) Update(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	// Select("*") forces zero-valued and nil columns through, so cleared
	// fields (a released bill link, a dropped assignment) reach the row.
	result := r.db.WithContext(ctx).
		Model(&ConsignmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("consignment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a consignment by ID.
func (r *GormConsignmentRepository) Get(ctx context.Context, id kernel.UUID) (*consignment.Consignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConsignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a consignment by its business key.
func (r *GormConsignmentRepository) GetByNumber(ctx context.Context, consignmentNo string) (*consignment.Consignment, error) {
	if consignmentNo == "" {
		return nil, errs.NewValueIsRequiredError("consignmentNo")
	}

	var dto ConsignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "consignment_no = ?", consignmentNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consignment", consignmentNo)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBillable retrieves a customer's Delivered, Unbilled consignments ordered
// by booking date ascending, oldest deliveries first.
func (r *GormConsignmentRepository) GetBillable(ctx context.Context, customerID kernel.UUID) ([]*consignment.Consignment, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ConsignmentDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ? AND payment_status = ?",
			customerID.Bytes(), int(consignment.Delivered), int(consignment.Unbilled)).
		Order("booking_date").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	consignments := make([]*consignment.Consignment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		consignments = append(consignments, aggregate)
	}

	return consignments, nil
}

// Delete removes a consignment row. Lifecycle eligibility is checked in the
// domain before this is called.
func (r *GormConsignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ConsignmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consignment", id.String())
	}

	return nil
}
