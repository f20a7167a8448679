package commands_test

import (
	"context"
	"errors"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/customer"
	"freightops/internal/core/domain/model/fleet"
	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockConsignmentRepository struct{ mock.Mock }

func (m *MockConsignmentRepository) Add(ctx context.Context, c *consignment.Consignment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockConsignmentRepository) Update(ctx context.Context, c *consignment.Consignment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockConsignmentRepository) Get(ctx context.Context, id kernel.UUID) (*consignment.Consignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consignment.Consignment), args.Error(1)
}
func (m *MockConsignmentRepository) GetByNumber(_ context.Context, _ string) (*consignment.Consignment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockConsignmentRepository) GetBillable(_ context.Context, _ kernel.UUID) ([]*consignment.Consignment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockConsignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetAllAvailable(_ context.Context) ([]*fleet.Vehicle, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *fleet.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *fleet.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Driver), args.Error(1)
}
func (m *MockDriverRepository) GetAllAvailable(_ context.Context) ([]*fleet.Driver, error) {
	return nil, errors.New("not implemented in mock")
}

type MockFreightBillRepository struct{ mock.Mock }

func (m *MockFreightBillRepository) Add(ctx context.Context, b *freightbill.FreightBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockFreightBillRepository) Update(ctx context.Context, b *freightbill.FreightBill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockFreightBillRepository) Get(ctx context.Context, id kernel.UUID) (*freightbill.FreightBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*freightbill.FreightBill), args.Error(1)
}
func (m *MockFreightBillRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(_ context.Context, _ *customer.Customer) error {
	return errors.New("not implemented in mock")
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

// txMock implements Begin/Commit/Rollback for every unit-of-work mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockConsignmentUoW struct{ txMock }

func (m *MockConsignmentUoW) ConsignmentRepository() ports.ConsignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsignmentRepository)
}

type MockConsignmentUoWFactory struct{ mock.Mock }

func (m *MockConsignmentUoWFactory) Create() commands.ConsignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsignmentUoW)
}

type MockAssignmentUoW struct{ txMock }

func (m *MockAssignmentUoW) ConsignmentRepository() ports.ConsignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsignmentRepository)
}
func (m *MockAssignmentUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}
func (m *MockAssignmentUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockBillingUoW struct{ txMock }

func (m *MockBillingUoW) FreightBillRepository() ports.FreightBillRepository {
	args := m.Called()
	return args.Get(0).(ports.FreightBillRepository)
}
func (m *MockBillingUoW) ConsignmentRepository() ports.ConsignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsignmentRepository)
}
func (m *MockBillingUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendBill(ctx context.Context, n ports.BillNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotifier) SendPaymentReminder(ctx context.Context, n ports.BillNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
