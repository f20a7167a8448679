package freightbill

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// Status represents the lifecycle state of a freight bill.
//
// State transitions:
//
//	Draft ──> Generated ──> Sent ──> PartiallyPaid ──> Paid
//	  │           │           │            │
//	  └───────────┴───────────┴────────────┴──> Cancelled
//
// Paid and Cancelled are terminal. Generated may also move straight to
// PartiallyPaid or Paid when payments are allowed before dispatch; the
// aggregate enforces that policy on top of this table. The legal transitions
// are encoded in a single table; any (status, operation) pair not present
// there is rejected.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Draft is the initial working state of a bill.
	Draft

	// Generated means the bill has been finalized for dispatch.
	Generated

	// Sent means the bill has been dispatched to the customer.
	Sent

	// PartiallyPaid means at least one payment short of the final amount
	// has been recorded.
	PartiallyPaid

	// Paid is the terminal success state: the final amount is fully settled.
	Paid

	// Cancelled is the terminal abort state, reachable from any pre-Paid status.
	Cancelled
)

// Operation names a bill transition request.
type Operation string

const (
	OpGenerate      Operation = "generate"
	OpSend          Operation = "send"
	OpRecordPayment Operation = "recordPayment"
	OpMarkPaid      Operation = "markPaid"
	OpCancel        Operation = "cancel"
)

// transitions is the full state machine: current status -> operation -> next status.
// Terminal statuses map to empty rows.
var transitions = map[Status]map[Operation]Status{
	Draft: {
		OpGenerate: Generated,
		OpCancel:   Cancelled,
	},
	Generated: {
		OpSend:          Sent,
		OpRecordPayment: PartiallyPaid,
		OpMarkPaid:      Paid,
		OpCancel:        Cancelled,
	},
	Sent: {
		OpRecordPayment: PartiallyPaid,
		OpMarkPaid:      Paid,
		OpCancel:        Cancelled,
	},
	PartiallyPaid: {
		OpRecordPayment: PartiallyPaid,
		OpMarkPaid:      Paid,
		OpCancel:        Cancelled,
	},
	Paid:      {},
	Cancelled: {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Draft:         "DRAFT",
		Generated:     "GENERATED",
		Sent:          "SENT",
		PartiallyPaid: "PARTIALLY_PAID",
		Paid:          "PAID",
		Cancelled:     "CANCELLED",
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

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// Apply looks up the transition for op from the current status. It returns the
// next status, or an InvalidTransitionError naming the operation and the status
// it was attempted from.
func (s Status) Apply(op Operation) (Status, error) {
	next, ok := transitions[s][op]
	if !ok {
		return StatusUnknown, errs.NewInvalidTransitionError(string(op), s.String())
	}
	return next, nil
}
