package cmd

import (
	httpadapter "freightops/internal/adapters/in/http"
	"freightops/internal/adapters/out/notify"
	"freightops/internal/adapters/out/pdf"
	"freightops/internal/adapters/out/postgres"
	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/core/ports"
	"freightops/internal/jobs"
	"log/slog"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	renderer   ports.DocumentRenderer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	notifier, err := notify.NewSMTPNotifier(notify.Config{
		Host:      config.SMTPHost,
		Port:      config.SMTPPort,
		Username:  config.SMTPUsername,
		Password:  config.SMTPPassword,
		FromName:  config.SMTPFromName,
		FromEmail: config.SMTPFrom,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		renderer:   pdf.NewBillRenderer(config.CompanyName, config.CompanyAddress),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) consignmentUoWFactory() commands.ConsignmentUoWFactory {
	return FuncConsignmentUoWFactory(func() commands.ConsignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.ServerDeps{
		BookConsignmentHandler:   commands.NewBookConsignmentCommandHandler(c.consignmentUoWFactory()),
		UpdateConsignmentHandler: commands.NewUpdateConsignmentCommandHandler(c.consignmentUoWFactory()),
		DeleteConsignmentHandler: commands.NewDeleteConsignmentCommandHandler(c.assignmentUoWFactory()),
		AssignVehicleHandler:     commands.NewAssignVehicleCommandHandler(c.assignmentUoWFactory()),
		SchedulePickupHandler:    commands.NewSchedulePickupCommandHandler(c.consignmentUoWFactory()),
		MarkInTransitHandler:     commands.NewMarkInTransitCommandHandler(c.consignmentUoWFactory()),
		MarkDeliveredHandler:     commands.NewMarkDeliveredCommandHandler(c.consignmentUoWFactory()),
		ConfirmDeliveryHandler:   commands.NewConfirmDeliveryCommandHandler(c.assignmentUoWFactory()),
		CancelConsignmentHandler: commands.NewCancelConsignmentCommandHandler(c.assignmentUoWFactory()),

		CreateBillHandler:        commands.NewCreateBillCommandHandler(c.billingUoWFactory()),
		UpdateBillHeaderHandler:  commands.NewUpdateBillHeaderCommandHandler(c.billingUoWFactory()),
		GenerateBillHandler:      commands.NewGenerateBillCommandHandler(c.billingUoWFactory()),
		SendBillHandler:          commands.NewSendBillCommandHandler(c.billingUoWFactory(), c.notifier),
		RecordBillPaymentHandler: commands.NewRecordBillPaymentCommandHandler(c.billingUoWFactory(), c.config.RequireSentBeforePaid),
		CancelBillHandler:        commands.NewCancelBillCommandHandler(c.billingUoWFactory()),
		DeleteBillHandler:        commands.NewDeleteBillCommandHandler(c.billingUoWFactory()),

		CreateCustomerHandler:  commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		RegisterVehicleHandler: commands.NewRegisterVehicleCommandHandler(c.fleetUoWFactory()),
		RegisterDriverHandler:  commands.NewRegisterDriverCommandHandler(c.fleetUoWFactory()),

		GetConsignmentHandler:          queries.NewGetConsignmentQueryHandler(c.gormDB),
		GetFreightBillHandler:          queries.NewGetFreightBillQueryHandler(c.gormDB),
		GetUnbilledConsignmentsHandler: queries.NewGetUnbilledConsignmentsQueryHandler(c.gormDB),

		UoWFactory:   &c.uowFactory,
		BillRenderer: c.renderer,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetOutstandingBillsQueryHandler(c.gormDB),
		c.notifier,
		c.config.ReminderSchedule,
		c.config.ReminderDueDays,
		c.logger,
	)
}

type FuncConsignmentUoWFactory func() commands.ConsignmentUoW

func (f FuncConsignmentUoWFactory) Create() commands.ConsignmentUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
