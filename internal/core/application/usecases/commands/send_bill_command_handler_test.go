package commands_test

import (
	"errors"
	"testing"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/ports"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendBillCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	bill, _, _ := fixtureBilledPair(t)
	cmd, err := commands.NewSendBillCommand(bill.ID())
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	uow := new(MockBillingUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		billRepo.On("Get", ctx, bill.ID()).Return(bill, nil).Once(),
		billRepo.On("Update", ctx, bill).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendBill", ctx, mock.AnythingOfType("ports.BillNotification")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendBillCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, freightbill.Sent, bill.Status())
	sent := notifier.Calls[0].Arguments.Get(1).(ports.BillNotification)
	require.Equal(t, "accounts@sharma.example", sent.Recipient)
	require.Equal(t, "FB-2025-041", sent.BillNo)
	billRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendBillCommandHandler_Handle_EmailFailureKeepsSentStatus(t *testing.T) {
	ctx := t.Context()
	bill, _, _ := fixtureBilledPair(t)
	cmd, err := commands.NewSendBillCommand(bill.ID())
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	uow := new(MockBillingUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		billRepo.On("Get", ctx, bill.ID()).Return(bill, nil).Once(),
		billRepo.On("Update", ctx, bill).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendBill", ctx, mock.AnythingOfType("ports.BillNotification")).
			Return(errors.New("smtp connect refused")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendBillCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrExternalService)

	// the Sent transition was committed before the email attempt
	require.Equal(t, freightbill.Sent, bill.Status())
	billRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendBillCommandHandler_Handle_RejectsUnsentableStatus(t *testing.T) {
	ctx := t.Context()
	bill, _, _ := fixtureBilledPair(t)
	require.NoError(t, bill.Send())
	cmd, err := commands.NewSendBillCommand(bill.ID())
	require.NoError(t, err)

	billRepo := new(MockFreightBillRepository)
	uow := new(MockBillingUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightBillRepository").Return(billRepo).Once(),
		billRepo.On("Get", ctx, bill.ID()).Return(bill, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendBillCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	notifier.AssertNotCalled(t, "SendBill", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
