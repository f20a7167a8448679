package consignment

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
	"freightops/internal/pkg/guard"
)

var (
	// ErrConsignmentNoIsRequired is returned when booking without a consignment number.
	ErrConsignmentNoIsRequired = errs.NewValueIsRequiredError("consignmentNo")
	// ErrProofOfDeliveryIsRequired is returned when confirming delivery without a POD token.
	ErrProofOfDeliveryIsRequired = errs.NewValueIsRequiredError("proofOfDelivery")
	// ErrConsignmentIsNotConstructed is returned when using an improperly initialized Consignment.
	ErrConsignmentIsNotConstructed = errors.New("Consignment must be created via NewConsignment constructor")
)

// Consignment is the aggregate root for one shipment booking, tracked from
// booking through delivery, and the unit the freight-bill consolidator consumes.
//
// Invariants:
//   - The consignment number is the immutable business key.
//   - chargedWeight >= actualWeight > 0 (Weights value object).
//   - GrandTotal is always the sum of the current charge fields (Charges value object).
//   - Status only moves along the transition table in status.go.
//   - Once the status is terminal (Delivered, Cancelled) no field edit succeeds,
//     and a Delivered consignment can never be deleted.
//   - paymentStatus moves Unbilled -> Billed -> Paid, driven by the freight-bill
//     engine; a consignment references at most one bill.
//
// The version field is the optimistic concurrency token: repositories refuse to
// persist an aggregate whose stored version has moved on, so two users racing on
// the same consignment cannot overwrite each other.
type Consignment struct {
	id            kernel.UUID
	consignmentNo string
	customerID    kernel.UUID
	bookingDate   time.Time

	consignor Party
	consignee Party
	route     Route
	weights   Weights
	charges   Charges

	assignment *Assignment

	pickupDate         time.Time
	pickupTime         string
	pickupInstructions string

	actualPickupDate time.Time
	actualPickupTime string
	transitNotes     string

	deliveryDate    time.Time
	proofOfDelivery string
	deliveredBy     string

	status        Status
	paymentStatus PaymentStatus
	billID        *kernel.UUID
	version       int

	guard guard.ConstructorGuard
}

// NewConsignment books a new consignment in Booked status with Unbilled payment
// status. All value objects must already be valid; the constructor re-validates
// them so a zero value cannot slip through.
func NewConsignment(
	id kernel.UUID,
	consignmentNo string,
	customerID kernel.UUID,
	bookingDate time.Time,
	consignor Party,
	consignee Party,
	route Route,
	weights Weights,
	charges Charges,
) (*Consignment, error) {
	if consignmentNo == "" {
		return nil, ErrConsignmentNoIsRequired
	}
	if bookingDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("bookingDate")
	}
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		consignor.Validate(),
		consignee.Validate(),
		route.Validate(),
		weights.Validate(),
	); err != nil {
		return nil, err
	}

	return &Consignment{
		id:            id,
		consignmentNo: consignmentNo,
		customerID:    customerID,
		bookingDate:   bookingDate,
		consignor:     consignor,
		consignee:     consignee,
		route:         route,
		weights:       weights,
		charges:       charges,
		status:        Booked,
		paymentStatus: Unbilled,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries the full persisted state of a consignment for
// RestoreConsignment. Repositories populate it from their DTOs.
type Snapshot struct {
	ID            kernel.UUID
	ConsignmentNo string
	CustomerID    kernel.UUID
	BookingDate   time.Time

	Consignor Party
	Consignee Party
	Route     Route
	Weights   Weights
	Charges   Charges

	Assignment *Assignment

	PickupDate         time.Time
	PickupTime         string
	PickupInstructions string

	ActualPickupDate time.Time
	ActualPickupTime string
	TransitNotes     string

	DeliveryDate    time.Time
	ProofOfDelivery string
	DeliveredBy     string

	Status        Status
	PaymentStatus PaymentStatus
	BillID        *kernel.UUID
	Version       int
}

// RestoreConsignment reconstructs a consignment from persistence, preserving its
// lifecycle position, billing linkage, and concurrency version.
func RestoreConsignment(s Snapshot) (*Consignment, error) {
	if s.ConsignmentNo == "" {
		return nil, ErrConsignmentNoIsRequired
	}
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Consignor.Validate(),
		s.Consignee.Validate(),
		s.Route.Validate(),
		s.Weights.Validate(),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Consignment{
		id:                 s.ID,
		consignmentNo:      s.ConsignmentNo,
		customerID:         s.CustomerID,
		bookingDate:        s.BookingDate,
		consignor:          s.Consignor,
		consignee:          s.Consignee,
		route:              s.Route,
		weights:            s.Weights,
		charges:            s.Charges,
		assignment:         s.Assignment,
		pickupDate:         s.PickupDate,
		pickupTime:         s.PickupTime,
		pickupInstructions: s.PickupInstructions,
		actualPickupDate:   s.ActualPickupDate,
		actualPickupTime:   s.ActualPickupTime,
		transitNotes:       s.TransitNotes,
		deliveryDate:       s.DeliveryDate,
		proofOfDelivery:    s.ProofOfDelivery,
		deliveredBy:        s.DeliveredBy,
		status:             s.Status,
		paymentStatus:      s.PaymentStatus,
		billID:             s.BillID,
		version:            s.Version,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Consignment was created through a constructor.
func (c *Consignment) Validate() error {
	if c == nil {
		return ErrConsignmentIsNotConstructed
	}
	return c.guard.Validate(ErrConsignmentIsNotConstructed)
}

// IsEqual compares two consignments by identifier.
func (c *Consignment) IsEqual(other *Consignment) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the consignment's unique identifier.
func (c *Consignment) ID() kernel.UUID { return c.id }

// ConsignmentNo returns the immutable business key.
func (c *Consignment) ConsignmentNo() string { return c.consignmentNo }

// CustomerID returns the owning customer's identifier.
func (c *Consignment) CustomerID() kernel.UUID { return c.customerID }

// BookingDate returns the booking timestamp.
func (c *Consignment) BookingDate() time.Time { return c.bookingDate }

// Consignor returns the consignor snapshot.
func (c *Consignment) Consignor() Party { return c.consignor }

// Consignee returns the consignee snapshot.
func (c *Consignment) Consignee() Party { return c.consignee }

// Route returns the route details.
func (c *Consignment) Route() Route { return c.route }

// Weights returns the actual and charged weights.
func (c *Consignment) Weights() Weights { return c.weights }

// Charges returns the charge fields.
func (c *Consignment) Charges() Charges { return c.charges }

// GrandTotal returns the derived sum of all charge fields.
func (c *Consignment) GrandTotal() kernel.Money { return c.charges.GrandTotal() }

// Assignment returns the vehicle/driver snapshot, nil before assignment.
func (c *Consignment) Assignment() *Assignment { return c.assignment }

// PickupDate returns the scheduled pickup date, zero before scheduling.
func (c *Consignment) PickupDate() time.Time { return c.pickupDate }

// PickupTime returns the scheduled pickup time of day ("15:04"), empty before scheduling.
func (c *Consignment) PickupTime() string { return c.pickupTime }

// PickupInstructions returns optional pickup instructions.
func (c *Consignment) PickupInstructions() string { return c.pickupInstructions }

// ActualPickupDate returns the recorded pickup date, zero before transit.
func (c *Consignment) ActualPickupDate() time.Time { return c.actualPickupDate }

// ActualPickupTime returns the recorded pickup time of day, empty before transit.
func (c *Consignment) ActualPickupTime() string { return c.actualPickupTime }

// TransitNotes returns optional notes recorded at pickup.
func (c *Consignment) TransitNotes() string { return c.transitNotes }

// DeliveryDate returns the delivery timestamp, zero until delivery is confirmed.
func (c *Consignment) DeliveryDate() time.Time { return c.deliveryDate }

// ProofOfDelivery returns the POD token, empty until delivery is confirmed.
func (c *Consignment) ProofOfDelivery() string { return c.proofOfDelivery }

// DeliveredBy returns the optional name of whoever received the goods.
func (c *Consignment) DeliveredBy() string { return c.deliveredBy }

// Status returns the lifecycle status.
func (c *Consignment) Status() Status { return c.status }

// PaymentStatus returns the billing linkage status.
func (c *Consignment) PaymentStatus() PaymentStatus { return c.paymentStatus }

// BillID returns the owning freight bill's identifier, nil while Unbilled.
func (c *Consignment) BillID() *kernel.UUID { return c.billID }

// Version returns the optimistic concurrency token.
func (c *Consignment) Version() int { return c.version }

// AssignVehicle attaches a vehicle/driver snapshot and moves Booked -> Assigned.
// The caller is responsible for running this inside the same transaction that
// flips the vehicle and driver to OnTrip.
func (c *Consignment) AssignVehicle(assignment Assignment) error {
	next, err := c.status.Apply(OpAssignVehicle)
	if err != nil {
		return err
	}

	c.assignment = &assignment
	c.status = next
	return nil
}

// SchedulePickup sets the target pickup date/time and moves Assigned -> Scheduled.
// timeOfDay must be in "15:04" form; instructions are optional.
func (c *Consignment) SchedulePickup(date time.Time, timeOfDay, instructions string) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	if err := validateTimeOfDay("pickupTime", timeOfDay); err != nil {
		return err
	}
	next, err := c.status.Apply(OpSchedulePickup)
	if err != nil {
		return err
	}

	c.pickupDate = date
	c.pickupTime = timeOfDay
	c.pickupInstructions = instructions
	c.status = next
	return nil
}

// MarkInTransit records the actual pickup and moves Scheduled -> InTransit.
func (c *Consignment) MarkInTransit(actualDate time.Time, actualTime, notes string) error {
	if actualDate.IsZero() {
		return errs.NewValueIsRequiredError("actualPickupDate")
	}
	if err := validateTimeOfDay("actualPickupTime", actualTime); err != nil {
		return err
	}
	next, err := c.status.Apply(OpMarkInTransit)
	if err != nil {
		return err
	}

	c.actualPickupDate = actualDate
	c.actualPickupTime = actualTime
	c.transitNotes = notes
	c.status = next
	return nil
}

// MarkDeliveredUnconfirmed reports arrival and moves InTransit -> DeliveredUnconfirmed.
func (c *Consignment) MarkDeliveredUnconfirmed() error {
	next, err := c.status.Apply(OpMarkDeliveredUnconfirmed)
	if err != nil {
		return err
	}

	c.status = next
	return nil
}

// ConfirmDelivery records the proof of delivery and moves
// DeliveredUnconfirmed -> Delivered, the terminal success state. The proof token
// is mandatory; deliveredBy is optional. deliveredAt becomes the delivery date.
func (c *Consignment) ConfirmDelivery(proofOfDelivery, deliveredBy string, deliveredAt time.Time) error {
	if proofOfDelivery == "" {
		return ErrProofOfDeliveryIsRequired
	}
	next, err := c.status.Apply(OpConfirmDelivery)
	if err != nil {
		return err
	}

	c.deliveryDate = deliveredAt
	c.proofOfDelivery = proofOfDelivery
	c.deliveredBy = deliveredBy
	c.status = next
	return nil
}

// Cancel aborts the consignment from any non-terminal status.
func (c *Consignment) Cancel() error {
	next, err := c.status.Apply(OpCancel)
	if err != nil {
		return err
	}

	c.status = next
	return nil
}

// UpdateDetails replaces the editable booking fields: parties, route, weights,
// and charges. Edits are rejected once the status is terminal, which also covers
// billed consignments since billing requires Delivered.
func (c *Consignment) UpdateDetails(consignor, consignee Party, route Route, weights Weights, charges Charges) error {
	if c.status.IsTerminal() {
		return errs.NewInvalidTransitionError("updateDetails", c.status.String())
	}
	if err := errors.Join(
		consignor.Validate(),
		consignee.Validate(),
		route.Validate(),
		weights.Validate(),
	); err != nil {
		return err
	}

	c.consignor = consignor
	c.consignee = consignee
	c.route = route
	c.weights = weights
	c.charges = charges
	return nil
}

// CanDelete reports whether the consignment may be physically deleted.
// Delivered consignments are kept forever; everything else may go.
func (c *Consignment) CanDelete() error {
	if c.status == Delivered {
		return errs.NewInvalidTransitionError("delete", c.status.String())
	}
	return nil
}

// IsBillable reports whether the consignment qualifies for freight-bill
// consolidation: Delivered and not yet billed.
func (c *Consignment) IsBillable() bool {
	return c.status == Delivered && c.paymentStatus == Unbilled
}

// MarkBilled links the consignment to a freight bill. Only a Delivered, Unbilled
// consignment can be billed; anything else is a conflict (double billing) or a
// validation failure surfaced by the consolidator beforehand.
func (c *Consignment) MarkBilled(billID kernel.UUID) error {
	if err := billID.Validate(); err != nil {
		return err
	}
	if c.status != Delivered {
		return errs.NewInvalidTransitionError("markBilled", c.status.String())
	}
	if c.paymentStatus != Unbilled {
		return errs.NewConflictErrorWithCause(
			"consignment", c.consignmentNo,
			errors.New("already included in a freight bill"),
		)
	}

	c.paymentStatus = Billed
	c.billID = &billID
	return nil
}

// MarkBillPaid flips Billed -> Paid when the owning bill is settled in full.
func (c *Consignment) MarkBillPaid() error {
	if c.paymentStatus != Billed {
		return errs.NewInvalidTransitionError("markBillPaid", c.paymentStatus.String())
	}

	c.paymentStatus = Paid
	return nil
}

// ReleaseFromBill reverses the billing linkage when the owning bill is cancelled
// or deleted. A consignment already Paid is never released.
func (c *Consignment) ReleaseFromBill() error {
	if c.paymentStatus != Billed {
		return errs.NewInvalidTransitionError("releaseFromBill", c.paymentStatus.String())
	}

	c.paymentStatus = Unbilled
	c.billID = nil
	return nil
}

func validateTimeOfDay(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}
