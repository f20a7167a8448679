package queries

import (
	"context"
	"time"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOutstandingBillsQueryHandler reads overdue bills with their customer
// contact details. The final amount is computed in SQL from the stored total
// and the signed adjustment sum, matching the aggregate's FinalAmount.
type GetOutstandingBillsQueryHandler struct {
	db *gorm.DB
}

// NewGetOutstandingBillsQueryHandler creates a handler for outstanding bill
// queries. Requires a GORM database connection.
func NewGetOutstandingBillsQueryHandler(db *gorm.DB) GetOutstandingBillsQueryHandler {
	return GetOutstandingBillsQueryHandler{db: db}
}

// Handle returns Sent and PartiallyPaid bills dated on or before the cutoff,
// oldest first.
func (h GetOutstandingBillsQueryHandler) Handle(
	ctx context.Context,
	query GetOutstandingBillsQuery,
) ([]GetOutstandingBillsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetOutstandingBillsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.bill_no,
			b.bill_date,
			b.customer_name,
			b.customer_email,
			b.total_amount + COALESCE((
				SELECT SUM(CASE WHEN a.adjustment_type = ? THEN -a.amount ELSE a.amount END)
				FROM bill_adjustments a
				WHERE a.bill_id = b.id
			), 0) AS final_amount,
			b.amount_paid
		FROM freight_bills b
		WHERE b.status IN (?, ?)
		  AND b.bill_date <= ?
		ORDER BY b.bill_date
	`, freightbill.Discount, freightbill.Sent, freightbill.PartiallyPaid, query.DueBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			billNo        string
			billDate      time.Time
			customerName  string
			customerEmail string
			finalAmount   int64
			amountPaid    int64
		)
		if err = rows.Scan(&id, &billNo, &billDate, &customerName, &customerEmail, &finalAmount, &amountPaid); err != nil {
			return nil, err
		}

		billID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		if finalAmount < 0 {
			finalAmount = 0
		}
		final, moneyErr := kernel.NewMoney(finalAmount)
		if moneyErr != nil {
			return nil, moneyErr
		}
		paid, moneyErr := kernel.NewMoney(amountPaid)
		if moneyErr != nil {
			return nil, moneyErr
		}

		responses = append(responses, GetOutstandingBillsQueryResponse{
			ID:            billID,
			BillNo:        billNo,
			BillDate:      billDate,
			CustomerName:  customerName,
			CustomerEmail: customerEmail,
			FinalAmount:   final,
			AmountPaid:    paid,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
