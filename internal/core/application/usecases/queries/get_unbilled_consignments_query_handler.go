package queries

import (
	"context"
	"time"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnbilledConsignmentsQueryHandler reads billable consignments straight
// from the consignments table, ordered by booking date ascending so the
// oldest deliveries are billed first.
type GetUnbilledConsignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnbilledConsignmentsQueryHandler creates a handler for billable
// consignment queries. Requires a GORM database connection.
func NewGetUnbilledConsignmentsQueryHandler(db *gorm.DB) GetUnbilledConsignmentsQueryHandler {
	return GetUnbilledConsignmentsQueryHandler{db: db}
}

// Handle returns the customer's Delivered, Unbilled consignments with the
// grand total computed from the charge columns, booking date ascending.
func (h GetUnbilledConsignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnbilledConsignmentsQuery,
) ([]GetUnbilledConsignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetUnbilledConsignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			consignment_no,
			booking_date,
			to_city,
			charged_weight_kg,
			freight + handling + service_tax + door_delivery + other_charge + risk + additional_service_tax AS grand_total
		FROM consignments
		WHERE customer_id = ?
		  AND status = ?
		  AND payment_status = ?
		ORDER BY booking_date
	`, query.CustomerID().Bytes(), consignment.Delivered, consignment.Unbilled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			consignmentNo string
			bookingDate   time.Time
			toCity        string
			chargedWeight int
			grandTotal    int64
		)
		if err = rows.Scan(&id, &consignmentNo, &bookingDate, &toCity, &chargedWeight, &grandTotal); err != nil {
			return nil, err
		}

		consignmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		total, moneyErr := kernel.NewMoney(grandTotal)
		if moneyErr != nil {
			return nil, moneyErr
		}

		responses = append(responses, GetUnbilledConsignmentsQueryResponse{
			ID:            consignmentID,
			ConsignmentNo: consignmentNo,
			BookingDate:   bookingDate,
			Destination:   toCity,
			ChargedWeight: chargedWeight,
			GrandTotal:    total,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
