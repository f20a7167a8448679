package queries

import (
	"context"
	"time"

	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFreightBillQueryHandler reads one freight bill together with its line
// items and adjustments. Header, items, and adjustments come from separate
// queries against the three bill tables.
type GetFreightBillQueryHandler struct {
	db *gorm.DB
}

// NewGetFreightBillQueryHandler creates a handler for freight bill detail
// queries. Requires a GORM database connection.
func NewGetFreightBillQueryHandler(db *gorm.DB) GetFreightBillQueryHandler {
	return GetFreightBillQueryHandler{db: db}
}

func (h GetFreightBillQueryHandler) Handle(
	ctx context.Context,
	query GetFreightBillQuery,
) (GetFreightBillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFreightBillQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.BillID())
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}

	response.LineItems, err = h.readLineItems(ctx, query.BillID())
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}

	response.Adjustments, err = h.readAdjustments(ctx, query.BillID())
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}

	adjusted := response.TotalAmount.Amount()
	for _, adjustment := range response.Adjustments {
		if adjustment.Type == freightbill.Discount.String() {
			adjusted -= adjustment.Amount.Amount()
		} else {
			adjusted += adjustment.Amount.Amount()
		}
	}
	if adjusted < 0 {
		adjusted = 0
	}
	response.FinalAmount = kernel.MustMoney(adjusted)
	response.Outstanding = response.FinalAmount.SubFloorZero(response.AmountPaid)

	return response, nil
}

func (h GetFreightBillQueryHandler) readHeader(
	ctx context.Context,
	billID kernel.UUID,
) (GetFreightBillQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, bill_no, branch, bill_date, customer_id,
			customer_name, customer_address, customer_city, customer_mobile, customer_email, customer_gstin,
			total_amount, amount_paid, status, version
		FROM freight_bills
		WHERE id = ?
	`, billID.Bytes()).Rows()
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetFreightBillQueryResponse{}, err
		}
		return GetFreightBillQueryResponse{}, errs.NewObjectNotFoundError("billId", billID)
	}

	var (
		id          uuid.UUID
		billNo      string
		branch      string
		billDate    time.Time
		customerID  uuid.UUID
		customer    BillCustomerDetails
		totalAmount int64
		amountPaid  int64
		status      freightbill.Status
		version     int
	)
	err = rows.Scan(
		&id, &billNo, &branch, &billDate, &customerID,
		&customer.Name, &customer.Address, &customer.City, &customer.Mobile, &customer.Email, &customer.GSTIN,
		&totalAmount, &amountPaid, &status, &version,
	)
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}
	total, err := kernel.NewMoney(totalAmount)
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}
	paid, err := kernel.NewMoney(amountPaid)
	if err != nil {
		return GetFreightBillQueryResponse{}, err
	}

	return GetFreightBillQueryResponse{
		ID:          responseID,
		BillNo:      billNo,
		Branch:      branch,
		BillDate:    billDate,
		CustomerID:  ownerID,
		Customer:    customer,
		TotalAmount: total,
		AmountPaid:  paid,
		Status:      status.String(),
		Version:     version,
	}, nil
}

func (h GetFreightBillQueryHandler) readLineItems(
	ctx context.Context,
	billID kernel.UUID,
) ([]BillLineItemDetails, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT consignment_id, consignment_no, booking_date, destination, charged_weight_kg, freight, grand_total
		FROM bill_line_items
		WHERE bill_id = ?
		ORDER BY booking_date
	`, billID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]BillLineItemDetails, 0)
	for rows.Next() {
		var (
			consignmentID uuid.UUID
			consignmentNo string
			bookingDate   time.Time
			destination   string
			chargedWeight int
			freight       int64
			grandTotal    int64
		)
		if err = rows.Scan(&consignmentID, &consignmentNo, &bookingDate, &destination, &chargedWeight, &freight, &grandTotal); err != nil {
			return nil, err
		}

		itemConsignmentID, idErr := kernel.UUIDFromBytes(consignmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		freightAmount, moneyErr := kernel.NewMoney(freight)
		if moneyErr != nil {
			return nil, moneyErr
		}
		totalAmount, moneyErr := kernel.NewMoney(grandTotal)
		if moneyErr != nil {
			return nil, moneyErr
		}

		items = append(items, BillLineItemDetails{
			ConsignmentID:   itemConsignmentID,
			ConsignmentNo:   consignmentNo,
			BookingDate:     bookingDate,
			Destination:     destination,
			ChargedWeightKg: chargedWeight,
			Freight:         freightAmount,
			GrandTotal:      totalAmount,
		})
	}

	return items, rows.Err()
}

func (h GetFreightBillQueryHandler) readAdjustments(
	ctx context.Context,
	billID kernel.UUID,
) ([]BillAdjustmentDetails, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT adjustment_type, description, amount
		FROM bill_adjustments
		WHERE bill_id = ?
		ORDER BY position
	`, billID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments := make([]BillAdjustmentDetails, 0)
	for rows.Next() {
		var (
			adjustmentType freightbill.AdjustmentType
			description    string
			amount         int64
		)
		if err = rows.Scan(&adjustmentType, &description, &amount); err != nil {
			return nil, err
		}

		adjustmentAmount, moneyErr := kernel.NewMoney(amount)
		if moneyErr != nil {
			return nil, moneyErr
		}

		adjustments = append(adjustments, BillAdjustmentDetails{
			Type:        adjustmentType.String(),
			Description: description,
			Amount:      adjustmentAmount,
		})
	}

	return adjustments, rows.Err()
}
