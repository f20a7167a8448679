package commands_test

import (
	"testing"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/fleet"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteConsignmentCommandHandler_Handle_ReleasesFleet(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := fixtureBookedConsignment(t, "CN-1001", customerID, 100000)
	vehicle := fixtureVehicle(t)
	driver := fixtureDriver(t)
	assignment, err := consignment.NewAssignment(vehicle.ID(), driver.ID(), vehicle.RegistrationNo(), driver.Name())
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignVehicle(assignment))
	require.NoError(t, vehicle.BeginTrip())
	require.NoError(t, driver.BeginTrip())

	cmd, err := commands.NewDeleteConsignmentCommand(aggregate.ID())
	require.NoError(t, err)

	consignmentRepo := new(MockConsignmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		vehicleRepo.On("Get", ctx, vehicle.ID()).Return(vehicle, nil).Once(),
		driverRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		vehicleRepo.On("Update", ctx, vehicle).Return(nil).Once(),
		driverRepo.On("Update", ctx, driver).Return(nil).Once(),
		consignmentRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteConsignmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, fleet.Available, vehicle.Status())
	require.Equal(t, fleet.Available, driver.Status())
	consignmentRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteConsignmentCommandHandler_Handle_CancelledAlreadyReleased(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := fixtureBookedConsignment(t, "CN-1001", customerID, 100000)
	vehicle := fixtureVehicle(t)
	driver := fixtureDriver(t)
	assignment, err := consignment.NewAssignment(vehicle.ID(), driver.ID(), vehicle.RegistrationNo(), driver.Name())
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignVehicle(assignment))
	// Cancellation released the fleet already; the assignment snapshot stays
	// on the consignment.
	require.NoError(t, aggregate.Cancel())

	cmd, err := commands.NewDeleteConsignmentCommand(aggregate.ID())
	require.NoError(t, err)

	consignmentRepo := new(MockConsignmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		vehicleRepo.On("Get", ctx, vehicle.ID()).Return(vehicle, nil).Once(),
		driverRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once(),
		consignmentRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteConsignmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, fleet.Available, vehicle.Status())
	require.Equal(t, fleet.Available, driver.Status())
	consignmentRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteConsignmentCommandHandler_Handle_DeliveredIsRejected(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := fixtureDeliveredConsignment(t, "CN-1001", customerID, 100000)

	cmd, err := commands.NewDeleteConsignmentCommand(aggregate.ID())
	require.NoError(t, err)

	consignmentRepo := new(MockConsignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteConsignmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	consignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
