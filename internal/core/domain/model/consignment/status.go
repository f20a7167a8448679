package consignment

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// Status represents the lifecycle state of a consignment.
//
// State transitions:
//
//	Booked ──> Assigned ──> Scheduled ──> InTransit ──> DeliveredUnconfirmed ──> Delivered
//	   │           │            │             │                  │
//	   └───────────┴────────────┴─────────────┴──────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition, field edit, or (for
// Delivered) deletion is permitted afterwards. The legal transitions are encoded
// in a single table; any (status, operation) pair not present there is rejected,
// so there is exactly one place that defines the machine.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Booked is the initial status at booking time.
	Booked

	// Assigned means a vehicle and driver have been attached.
	Assigned

	// Scheduled means a pickup date and time have been set.
	Scheduled

	// InTransit means the goods have been picked up and are moving.
	InTransit

	// DeliveredUnconfirmed means arrival was reported but proof of delivery
	// has not been recorded yet.
	DeliveredUnconfirmed

	// Delivered is the terminal success state, entered only with proof of delivery.
	Delivered

	// Cancelled is the terminal abort state, reachable from any non-terminal status.
	Cancelled
)

// Operation names a lifecycle transition request. Operations double as the
// transition-table keys and as the user-facing operation name in rejections.
type Operation string

const (
	OpAssignVehicle            Operation = "assignVehicle"
	OpSchedulePickup           Operation = "schedulePickup"
	OpMarkInTransit            Operation = "markInTransit"
	OpMarkDeliveredUnconfirmed Operation = "markDeliveredUnconfirmed"
	OpConfirmDelivery          Operation = "confirmDelivery"
	OpCancel                   Operation = "cancel"
)

// transitions is the full state machine: current status -> operation -> next status.
// Terminal statuses map to empty rows.
var transitions = map[Status]map[Operation]Status{
	Booked: {
		OpAssignVehicle: Assigned,
		OpCancel:        Cancelled,
	},
	Assigned: {
		OpSchedulePickup: Scheduled,
		OpCancel:         Cancelled,
	},
	Scheduled: {
		OpMarkInTransit: InTransit,
		OpCancel:        Cancelled,
	},
	InTransit: {
		OpMarkDeliveredUnconfirmed: DeliveredUnconfirmed,
		OpCancel:                   Cancelled,
	},
	DeliveredUnconfirmed: {
		OpConfirmDelivery: Delivered,
		OpCancel:          Cancelled,
	},
	Delivered: {},
	Cancelled: {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "UNKNOWN",
		Booked:               "BOOKED",
		Assigned:             "ASSIGNED",
		Scheduled:            "SCHEDULED",
		InTransit:            "IN_TRANSIT",
		DeliveredUnconfirmed: "DELIVERED_UNCONFIRMED",
		Delivered:            "DELIVERED",
		Cancelled:            "CANCELLED",
	}
}

// Validate checks that the Status holds one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions or edits.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Apply looks up the transition for op from the current status. It returns the
// next status, or an InvalidTransitionError naming the operation and the status
// it was attempted from.
func (s Status) Apply(op Operation) (Status, error) {
	next, ok := transitions[s][op]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(string(op), s.String())
	}
	return next, nil
}
