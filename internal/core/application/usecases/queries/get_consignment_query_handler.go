package queries

import (
	"context"
	"database/sql"
	"time"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConsignmentQueryHandler reads a single consignment row in full detail.
type GetConsignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetConsignmentQueryHandler creates a handler for consignment detail
// queries. Requires a GORM database connection.
func NewGetConsignmentQueryHandler(db *gorm.DB) GetConsignmentQueryHandler {
	return GetConsignmentQueryHandler{db: db}
}

func (h GetConsignmentQueryHandler) Handle(
	ctx context.Context,
	query GetConsignmentQuery,
) (GetConsignmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConsignmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, consignment_no, customer_id, booking_date,
			consignor_name, consignor_address, consignor_mobile, consignor_email, consignor_gstin,
			consignee_name, consignee_address, consignee_mobile, consignee_email, consignee_gstin,
			from_city, to_city, goods_description, packages,
			actual_weight_kg, charged_weight_kg,
			freight, handling, service_tax, door_delivery, other_charge, risk, additional_service_tax,
			vehicle_id, driver_id, vehicle_registration, driver_name,
			pickup_date, pickup_time, pickup_instructions,
			actual_pickup_date, actual_pickup_time, transit_notes,
			delivery_date, proof_of_delivery, delivered_by,
			status, payment_status, bill_id, version
		FROM consignments
		WHERE id = ?
	`, query.ConsignmentID().Bytes()).Rows()
	if err != nil {
		return GetConsignmentQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetConsignmentQueryResponse{}, err
		}
		return GetConsignmentQueryResponse{}, errs.NewObjectNotFoundError("consignmentId", query.ConsignmentID())
	}

	var (
		id            uuid.UUID
		consignmentNo string
		customerID    uuid.UUID
		bookingDate   time.Time

		consignor PartyDetails
		consignee PartyDetails

		fromCity         string
		toCity           string
		goodsDescription string
		packages         int

		actualWeightKg  int
		chargedWeightKg int

		charges [7]int64

		vehicleID           uuid.NullUUID
		driverID            uuid.NullUUID
		vehicleRegistration string
		driverName          string

		pickupDate         sql.NullTime
		pickupTime         string
		pickupInstructions string

		actualPickupDate sql.NullTime
		actualPickupTime string
		transitNotes     string

		deliveryDate    sql.NullTime
		proofOfDelivery string
		deliveredBy     string

		status        consignment.Status
		paymentStatus consignment.PaymentStatus
		billID        uuid.NullUUID
		version       int
	)

	err = rows.Scan(
		&id, &consignmentNo, &customerID, &bookingDate,
		&consignor.Name, &consignor.Address, &consignor.Mobile, &consignor.Email, &consignor.GSTIN,
		&consignee.Name, &consignee.Address, &consignee.Mobile, &consignee.Email, &consignee.GSTIN,
		&fromCity, &toCity, &goodsDescription, &packages,
		&actualWeightKg, &chargedWeightKg,
		&charges[0], &charges[1], &charges[2], &charges[3], &charges[4], &charges[5], &charges[6],
		&vehicleID, &driverID, &vehicleRegistration, &driverName,
		&pickupDate, &pickupTime, &pickupInstructions,
		&actualPickupDate, &actualPickupTime, &transitNotes,
		&deliveryDate, &proofOfDelivery, &deliveredBy,
		&status, &paymentStatus, &billID, &version,
	)
	if err != nil {
		return GetConsignmentQueryResponse{}, err
	}

	consignmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetConsignmentQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetConsignmentQueryResponse{}, err
	}

	var grandTotal int64
	moneys := make([]kernel.Money, len(charges))
	for i, amount := range charges {
		moneys[i], err = kernel.NewMoney(amount)
		if err != nil {
			return GetConsignmentQueryResponse{}, err
		}
		grandTotal += amount
	}

	response := GetConsignmentQueryResponse{
		ID:            consignmentID,
		ConsignmentNo: consignmentNo,
		CustomerID:    ownerID,
		BookingDate:   bookingDate,

		Consignor: consignor,
		Consignee: consignee,

		FromCity:         fromCity,
		ToCity:           toCity,
		GoodsDescription: goodsDescription,
		Packages:         packages,

		ActualWeightKg:  actualWeightKg,
		ChargedWeightKg: chargedWeightKg,

		Freight:              moneys[0],
		Handling:             moneys[1],
		ServiceTax:           moneys[2],
		DoorDelivery:         moneys[3],
		OtherCharge:          moneys[4],
		Risk:                 moneys[5],
		AdditionalServiceTax: moneys[6],
		GrandTotal:           kernel.MustMoney(grandTotal),

		PickupTime:         pickupTime,
		PickupInstructions: pickupInstructions,
		ActualPickupTime:   actualPickupTime,
		TransitNotes:       transitNotes,
		ProofOfDelivery:    proofOfDelivery,
		DeliveredBy:        deliveredBy,

		Status:        status.String(),
		PaymentStatus: paymentStatus.String(),
		Version:       version,
	}

	if pickupDate.Valid {
		response.PickupDate = pickupDate.Time
	}
	if actualPickupDate.Valid {
		response.ActualPickupDate = actualPickupDate.Time
	}
	if deliveryDate.Valid {
		response.DeliveryDate = deliveryDate.Time
	}

	if vehicleID.Valid && driverID.Valid {
		assignedVehicle, idErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
		if idErr != nil {
			return GetConsignmentQueryResponse{}, idErr
		}
		assignedDriver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetConsignmentQueryResponse{}, idErr
		}
		response.Assignment = &AssignmentDetails{
			VehicleID:           assignedVehicle,
			DriverID:            assignedDriver,
			VehicleRegistration: vehicleRegistration,
			DriverName:          driverName,
		}
	}

	if billID.Valid {
		linkedBill, idErr := kernel.UUIDFromBytes(billID.UUID[:])
		if idErr != nil {
			return GetConsignmentQueryResponse{}, idErr
		}
		response.BillID = &linkedBill
	}

	return response, nil
}
