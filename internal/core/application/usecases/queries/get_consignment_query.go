package queries

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var ErrGetConsignmentQueryIsNotConstructed = errors.New(
	"GetConsignmentQuery must be created via NewGetConsignmentQuery constructor",
)

// GetConsignmentQuery retrieves the full detail of a single consignment.
type GetConsignmentQuery struct {
	consignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetConsignmentQuery(consignmentID kernel.UUID) (GetConsignmentQuery, error) {
	if err := consignmentID.Validate(); err != nil {
		return GetConsignmentQuery{}, errs.NewValueIsRequiredErrorWithCause("consignmentId", err)
	}

	return GetConsignmentQuery{
		consignmentID: consignmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetConsignmentQueryIsNotConstructed)
}

func (q GetConsignmentQuery) ConsignmentID() kernel.UUID {
	return q.consignmentID
}

// PartyDetails is the consignor or consignee side of a consignment row.
type PartyDetails struct {
	Name    string
	Address string
	Mobile  string
	Email   string
	GSTIN   string
}

// AssignmentDetails describes the vehicle and driver working a consignment.
type AssignmentDetails struct {
	VehicleID           kernel.UUID
	DriverID            kernel.UUID
	VehicleRegistration string
	DriverName          string
}

// GetConsignmentQueryResponse is the full read model of one consignment,
// with charges broken out and lifecycle fields populated as far as the
// consignment has progressed.
type GetConsignmentQueryResponse struct {
	ID            kernel.UUID
	ConsignmentNo string
	CustomerID    kernel.UUID
	BookingDate   time.Time

	Consignor PartyDetails
	Consignee PartyDetails

	FromCity         string
	ToCity           string
	GoodsDescription string
	Packages         int

	ActualWeightKg  int
	ChargedWeightKg int

	Freight              kernel.Money
	Handling             kernel.Money
	ServiceTax           kernel.Money
	DoorDelivery         kernel.Money
	OtherCharge          kernel.Money
	Risk                 kernel.Money
	AdditionalServiceTax kernel.Money
	GrandTotal           kernel.Money

	Assignment *AssignmentDetails

	PickupDate         time.Time
	PickupTime         string
	PickupInstructions string

	ActualPickupDate time.Time
	ActualPickupTime string
	TransitNotes     string

	DeliveryDate    time.Time
	ProofOfDelivery string
	DeliveredBy     string

	Status        string
	PaymentStatus string
	BillID        *kernel.UUID

	Version int
}
