package consignment_test

import (
	"fmt"
	"testing"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []consignment.Status {
	return []consignment.Status{
		consignment.Booked,
		consignment.Assigned,
		consignment.Scheduled,
		consignment.InTransit,
		consignment.DeliveredUnconfirmed,
		consignment.Delivered,
		consignment.Cancelled,
	}
}

func allOperations() []consignment.Operation {
	return []consignment.Operation{
		consignment.OpAssignVehicle,
		consignment.OpSchedulePickup,
		consignment.OpMarkInTransit,
		consignment.OpMarkDeliveredUnconfirmed,
		consignment.OpConfirmDelivery,
		consignment.OpCancel,
	}
}

// legal is the expected transition table; every (status, operation) pair not
// listed here must be rejected.
var legal = map[consignment.Status]map[consignment.Operation]consignment.Status{
	consignment.Booked: {
		consignment.OpAssignVehicle: consignment.Assigned,
		consignment.OpCancel:        consignment.Cancelled,
	},
	consignment.Assigned: {
		consignment.OpSchedulePickup: consignment.Scheduled,
		consignment.OpCancel:         consignment.Cancelled,
	},
	consignment.Scheduled: {
		consignment.OpMarkInTransit: consignment.InTransit,
		consignment.OpCancel:        consignment.Cancelled,
	},
	consignment.InTransit: {
		consignment.OpMarkDeliveredUnconfirmed: consignment.DeliveredUnconfirmed,
		consignment.OpCancel:                   consignment.Cancelled,
	},
	consignment.DeliveredUnconfirmed: {
		consignment.OpConfirmDelivery: consignment.Delivered,
		consignment.OpCancel:          consignment.Cancelled,
	},
}

// TestStatus_Apply_Exhaustive walks every (status, operation) pair: legal pairs
// must yield the expected next status, all other pairs must be rejected with an
// invalid-transition error.
func TestStatus_Apply_Exhaustive(t *testing.T) {
	for _, status := range allStatuses() {
		for _, op := range allOperations() {
			name := fmt.Sprintf("%s/%s", status, op)
			t.Run(name, func(t *testing.T) {
				next, err := status.Apply(op)

				if want, ok := legal[status][op]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Contains(t, err.Error(), string(op))
				assert.Contains(t, err.Error(), status.String())
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, consignment.Delivered.IsTerminal())
	assert.True(t, consignment.Cancelled.IsTerminal())

	for _, s := range []consignment.Status{
		consignment.Booked,
		consignment.Assigned,
		consignment.Scheduled,
		consignment.InTransit,
		consignment.DeliveredUnconfirmed,
	} {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		require.NoError(t, s.Validate(), "%s should be valid", s)
	}

	require.Error(t, consignment.Unknown.Validate())
	require.Error(t, consignment.Status(99).Validate())
	require.Error(t, consignment.Status(-1).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "BOOKED", consignment.Booked.String())
	assert.Equal(t, "DELIVERED_UNCONFIRMED", consignment.DeliveredUnconfirmed.String())
	assert.Equal(t, "IN_TRANSIT", consignment.InTransit.String())
	assert.Equal(t, "UNKNOWN", consignment.Status(42).String())
}

func TestPaymentStatus(t *testing.T) {
	assert.Equal(t, "UNBILLED", consignment.Unbilled.String())
	assert.Equal(t, "BILLED", consignment.Billed.String())
	assert.Equal(t, "PAID", consignment.Paid.String())

	require.NoError(t, consignment.Billed.Validate())
	require.Error(t, consignment.PaymentUnknown.Validate())
	require.ErrorIs(t, consignment.PaymentStatus(9).Validate(), errs.ErrValueIsInvalid)
}
