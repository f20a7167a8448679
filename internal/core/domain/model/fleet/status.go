// Package fleet holds the vehicle and driver aggregates and their availability
// state machine. Assignment flips a unit from Available to OnTrip; delivery
// confirmation or cancellation releases it.
package fleet

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// Status represents the availability state of a vehicle or driver.
//
// State transitions:
//
//	Available ──> OnTrip ──> Available
//	    │
//	    └──> UnderMaintenance ──> Available
//
// A unit can only be attached to a consignment while Available; the assignment
// flips it to OnTrip inside the same transaction, so a concurrent assignment of
// the same unit fails on the optimistic version check instead of double-booking.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the unit can be assigned to a consignment.
	Available

	// OnTrip means the unit is attached to an active consignment.
	OnTrip

	// UnderMaintenance means the unit is withdrawn from service.
	UnderMaintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Available:        "AVAILABLE",
		OnTrip:           "ON_TRIP",
		UnderMaintenance: "UNDER_MAINTENANCE",
	}
}

// Validate checks that the Status holds one of the defined values.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	switch s {
	case Available, OnTrip, UnderMaintenance:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid fleet status", s))
	}
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// BeginTrip transitions Available -> OnTrip. Any other current status is rejected
// with a conflict so the caller retries with fresh data.
func (s Status) BeginTrip() (Status, error) {
	if s != Available {
		return Unknown, fmt.Errorf("status is %s, not %s", s, Available)
	}
	return OnTrip, nil
}

// EndTrip transitions OnTrip -> Available when a consignment is delivered or cancelled.
func (s Status) EndTrip() (Status, error) {
	if s != OnTrip {
		return Unknown, fmt.Errorf("status is %s, not %s", s, OnTrip)
	}
	return Available, nil
}
