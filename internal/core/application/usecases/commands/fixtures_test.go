package commands_test

import (
	"testing"
	"time"

	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/customer"
	"freightops/internal/core/domain/model/fleet"
	"freightops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func fixtureParty(t *testing.T, name string) consignment.Party {
	t.Helper()
	p, err := consignment.NewParty(name, "12 Transport Nagar", "9876543210", "", "")
	require.NoError(t, err)
	return p
}

func fixtureRoute(t *testing.T) consignment.Route {
	t.Helper()
	r, err := consignment.NewRoute("Pune", "Nagpur", "auto parts", 10)
	require.NoError(t, err)
	return r
}

func fixtureWeights(t *testing.T) consignment.Weights {
	t.Helper()
	w, err := consignment.NewWeights(100, 100)
	require.NoError(t, err)
	return w
}

// fixtureBookedConsignment books a consignment for the given customer with
// the given freight charge.
func fixtureBookedConsignment(t *testing.T, consignmentNo string, customerID kernel.UUID, freight int64) *consignment.Consignment {
	t.Helper()
	c, err := consignment.NewConsignment(
		kernel.NewUUID(), consignmentNo, customerID,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		fixtureParty(t, "Sharma Traders"), fixtureParty(t, "Verma Industries"),
		fixtureRoute(t), fixtureWeights(t),
		consignment.FreightOnly(kernel.MustMoney(freight)),
	)
	require.NoError(t, err)
	return c
}

// fixtureDeliveredConsignment walks a booked consignment through to Delivered.
func fixtureDeliveredConsignment(t *testing.T, consignmentNo string, customerID kernel.UUID, freight int64) *consignment.Consignment {
	t.Helper()
	c := fixtureBookedConsignment(t, consignmentNo, customerID, freight)
	assignment, err := consignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), "MH-12-AB-1234", "Ramesh Kumar")
	require.NoError(t, err)
	require.NoError(t, c.AssignVehicle(assignment))
	require.NoError(t, c.SchedulePickup(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "09:00", ""))
	require.NoError(t, c.MarkInTransit(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "09:30", ""))
	require.NoError(t, c.MarkDeliveredUnconfirmed())
	require.NoError(t, c.ConfirmDelivery("POD-55", "", time.Date(2025, 3, 4, 17, 0, 0, 0, time.UTC)))
	return c
}

func fixtureVehicle(t *testing.T) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle(kernel.NewUUID(), "MH-12-AB-1234", "Tata 407", 4000)
	require.NoError(t, err)
	return v
}

func fixtureDriver(t *testing.T) *fleet.Driver {
	t.Helper()
	d, err := fleet.NewDriver(kernel.NewUUID(), "Ramesh Kumar", "MH-DL-556677", "9876500000")
	require.NoError(t, err)
	return d
}

func fixtureCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "Sharma Traders", "12 Transport Nagar", "Pune", "9876543210", "accounts@sharma.example", "")
	require.NoError(t, err)
	return c
}
