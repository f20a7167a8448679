package postgres_test

import (
	"context"
	"testing"
	"time"

	"freightops/internal/adapters/out/postgres"
	"freightops/internal/adapters/out/postgres/billrepo"
	"freightops/internal/adapters/out/postgres/consignmentrepo"
	"freightops/internal/adapters/out/postgres/customerrepo"
	"freightops/internal/adapters/out/postgres/fleetrepo"
	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/fleet"
	"freightops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the transaction semantics the
// command handlers rely on: multi-repository writes commit or roll back as a
// unit, and repositories work outside a transaction too.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&consignmentrepo.ConsignmentDTO{},
		&billrepo.BillDTO{},
		&billrepo.LineItemDTO{},
		&billrepo.AdjustmentDTO{},
		&fleetrepo.VehicleDTO{},
		&fleetrepo.DriverDTO{},
		&customerrepo.CustomerDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE bill_adjustments, bill_line_items, freight_bills, consignments, vehicles, drivers, customers",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newBookedConsignment() *consignment.Consignment {
	consignor, err := consignment.NewParty("Sharma Traders", "14 MG Road, Pune", "9822012345", "", "")
	suite.Require().NoError(err)
	consignee, err := consignment.NewParty("Gupta Stores", "2 Station Road, Nagpur", "9822054321", "", "")
	suite.Require().NoError(err)
	route, err := consignment.NewRoute("Pune", "Nagpur", "Auto parts", 12)
	suite.Require().NoError(err)
	weights, err := consignment.NewWeights(480, 500)
	suite.Require().NoError(err)
	charges := consignment.NewCharges(
		kernel.MustMoney(250000), kernel.MustMoney(15000), kernel.MustMoney(12000),
		kernel.MustMoney(8000), kernel.MustMoney(0), kernel.MustMoney(5000), kernel.MustMoney(0),
	)

	aggregate, err := consignment.NewConsignment(
		kernel.NewUUID(), "CN-5001", kernel.NewUUID(),
		time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		consignor, consignee, route, weights, charges,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin on an open transaction is a no-op.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit and Rollback without a transaction fail.
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignmentWorkflow_CommitsAsUnit() {
	ctx := context.Background()

	aggregate := suite.newBookedConsignment()
	vehicle, err := fleet.NewVehicle(kernel.NewUUID(), "MH-12-AB-1234", "Tata 407", 2500)
	suite.Require().NoError(err)
	driver, err := fleet.NewDriver(kernel.NewUUID(), "Ramesh Kumar", "MH1220200012345", "9822098765")
	suite.Require().NoError(err)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ConsignmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(seed.VehicleRepository().Add(ctx, vehicle))
	suite.Require().NoError(seed.DriverRepository().Add(ctx, driver))
	suite.Require().NoError(seed.Commit(ctx))

	// Assignment touches three aggregates in one transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(vehicle.BeginTrip())
	suite.Require().NoError(driver.BeginTrip())
	assignment, err := consignment.NewAssignment(vehicle.ID(), driver.ID(), vehicle.RegistrationNo(), driver.Name())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AssignVehicle(assignment))

	suite.Require().NoError(uow.ConsignmentRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.VehicleRepository().Update(ctx, vehicle))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, driver))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	persistedConsignment, err := verify.ConsignmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(consignment.Assigned, persistedConsignment.Status())

	persistedVehicle, err := verify.VehicleRepository().Get(ctx, vehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(fleet.OnTrip, persistedVehicle.Status())

	persistedDriver, err := verify.DriverRepository().Get(ctx, driver.ID())
	suite.Require().NoError(err)
	suite.Equal(fleet.OnTrip, persistedDriver.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	aggregate := suite.newBookedConsignment()
	vehicle, err := fleet.NewVehicle(kernel.NewUUID(), "MH-14-CD-5678", "Ashok Leyland Dost", 1500)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ConsignmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, vehicle))
	suite.Require().NoError(uow.Rollback(ctx))

	var consignmentCount, vehicleCount int64
	suite.Require().NoError(suite.db.Model(&consignmentrepo.ConsignmentDTO{}).Count(&consignmentCount).Error)
	suite.Require().NoError(suite.db.Model(&fleetrepo.VehicleDTO{}).Count(&vehicleCount).Error)
	suite.Equal(int64(0), consignmentCount)
	suite.Equal(int64(0), vehicleCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WorkWithoutTransaction() {
	ctx := context.Background()

	aggregate := suite.newBookedConsignment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.ConsignmentRepository().Add(ctx, aggregate))

	retrieved, err := uow.ConsignmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
