package commands_test

import (
	"testing"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBillCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	billedCustomer := fixtureCustomer(t, customerID)
	first := fixtureDeliveredConsignment(t, "CN-1001", customerID, 100000)
	second := fixtureDeliveredConsignment(t, "CN-1002", customerID, 150000)

	discount, err := freightbill.NewAdjustment(freightbill.Discount, "loyalty", kernel.MustMoney(20000))
	require.NoError(t, err)

	billID := kernel.NewUUID()
	cmd, err := commands.NewCreateBillCommand(
		billID, "FB-2025-041", "Branch-A",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		customerID,
		[]kernel.UUID{first.ID(), second.ID()},
		[]freightbill.Adjustment{discount},
		false,
	)
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	consignmentRepo := new(MockConsignmentRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockBillingUoW)

	var createdBill *freightbill.FreightBill
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(billedCustomer, nil).Once(),
		consignmentRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		consignmentRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		consignmentRepo.On("Update", ctx, first).Return(nil).Once(),
		consignmentRepo.On("Update", ctx, second).Return(nil).Once(),
		billRepo.On("Add", ctx, mock.AnythingOfType("*freightbill.FreightBill")).
			Run(func(args mock.Arguments) {
				createdBill = args.Get(1).(*freightbill.FreightBill)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBillCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, createdBill)
	require.Equal(t, int64(250000), createdBill.TotalAmount().Amount())
	require.Equal(t, int64(230000), createdBill.FinalAmount().Amount())
	require.Equal(t, freightbill.Draft, createdBill.Status())
	require.Len(t, createdBill.LineItems(), 2)

	require.Equal(t, consignment.Billed, first.PaymentStatus())
	require.Equal(t, consignment.Billed, second.PaymentStatus())
	require.True(t, billID.IsEqual(*first.BillID()))
	billRepo.AssertExpectations(t)
	consignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBillCommandHandler_Handle_AlreadyBilled(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	billedCustomer := fixtureCustomer(t, customerID)
	aggregate := fixtureDeliveredConsignment(t, "CN-1001", customerID, 100000)
	require.NoError(t, aggregate.MarkBilled(kernel.NewUUID()))

	cmd, err := commands.NewCreateBillCommand(
		kernel.NewUUID(), "FB-2025-042", "Branch-A", time.Now(),
		customerID, []kernel.UUID{aggregate.ID()}, nil, false,
	)
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	consignmentRepo := new(MockConsignmentRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(billedCustomer, nil).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBillCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestCreateBillCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	billedCustomer := fixtureCustomer(t, customerID)
	aggregate := fixtureBookedConsignment(t, "CN-1001", customerID, 100000)

	cmd, err := commands.NewCreateBillCommand(
		kernel.NewUUID(), "FB-2025-043", "Branch-A", time.Now(),
		customerID, []kernel.UUID{aggregate.ID()}, nil, false,
	)
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	consignmentRepo := new(MockConsignmentRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(billedCustomer, nil).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBillCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, consignment.Unbilled, aggregate.PaymentStatus())
	uow.AssertExpectations(t)
}

func TestCreateBillCommandHandler_Handle_WrongCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	billedCustomer := fixtureCustomer(t, customerID)
	aggregate := fixtureDeliveredConsignment(t, "CN-1001", kernel.NewUUID(), 100000)

	cmd, err := commands.NewCreateBillCommand(
		kernel.NewUUID(), "FB-2025-044", "Branch-A", time.Now(),
		customerID, []kernel.UUID{aggregate.ID()}, nil, false,
	)
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	consignmentRepo := new(MockConsignmentRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(billedCustomer, nil).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBillCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, consignment.Unbilled, aggregate.PaymentStatus())
	uow.AssertExpectations(t)
}
