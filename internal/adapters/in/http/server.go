package http

import (
	"errors"
	"fmt"
	"net/http"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/core/domain/model/consignment"
	"freightops/internal/core/domain/model/freightbill"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/ports"
	"freightops/internal/generated/servers"
	"freightops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Consignment command handlers
	bookConsignmentHandler   commands.BookConsignmentCommandHandler
	updateConsignmentHandler commands.UpdateConsignmentCommandHandler
	deleteConsignmentHandler commands.DeleteConsignmentCommandHandler
	assignVehicleHandler     commands.AssignVehicleCommandHandler
	schedulePickupHandler    commands.SchedulePickupCommandHandler
	markInTransitHandler     commands.MarkInTransitCommandHandler
	markDeliveredHandler     commands.MarkDeliveredCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	cancelConsignmentHandler commands.CancelConsignmentCommandHandler

	// Billing command handlers
	createBillHandler        commands.CreateBillCommandHandler
	updateBillHeaderHandler  commands.UpdateBillHeaderCommandHandler
	generateBillHandler      commands.GenerateBillCommandHandler
	sendBillHandler          commands.SendBillCommandHandler
	recordBillPaymentHandler commands.RecordBillPaymentCommandHandler
	cancelBillHandler        commands.CancelBillCommandHandler
	deleteBillHandler        commands.DeleteBillCommandHandler

	// Master data command handlers
	createCustomerHandler  commands.CreateCustomerCommandHandler
	registerVehicleHandler commands.RegisterVehicleCommandHandler
	registerDriverHandler  commands.RegisterDriverCommandHandler

	// Query handlers
	getConsignmentHandler          queries.GetConsignmentQueryHandler
	getFreightBillHandler          queries.GetFreightBillQueryHandler
	getUnbilledConsignmentsHandler queries.GetUnbilledConsignmentsQueryHandler

	// PDF download loads the aggregate outside a command.
	uowFactory   ports.UnitOfWorkFactory
	billRenderer ports.DocumentRenderer
}

// ServerDeps carries everything a Server needs. A field per handler keeps the
// composition root readable where a positional constructor would not be.
type ServerDeps struct {
	BookConsignmentHandler   commands.BookConsignmentCommandHandler
	UpdateConsignmentHandler commands.UpdateConsignmentCommandHandler
	DeleteConsignmentHandler commands.DeleteConsignmentCommandHandler
	AssignVehicleHandler     commands.AssignVehicleCommandHandler
	SchedulePickupHandler    commands.SchedulePickupCommandHandler
	MarkInTransitHandler     commands.MarkInTransitCommandHandler
	MarkDeliveredHandler     commands.MarkDeliveredCommandHandler
	ConfirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	CancelConsignmentHandler commands.CancelConsignmentCommandHandler

	CreateBillHandler        commands.CreateBillCommandHandler
	UpdateBillHeaderHandler  commands.UpdateBillHeaderCommandHandler
	GenerateBillHandler      commands.GenerateBillCommandHandler
	SendBillHandler          commands.SendBillCommandHandler
	RecordBillPaymentHandler commands.RecordBillPaymentCommandHandler
	CancelBillHandler        commands.CancelBillCommandHandler
	DeleteBillHandler        commands.DeleteBillCommandHandler

	CreateCustomerHandler  commands.CreateCustomerCommandHandler
	RegisterVehicleHandler commands.RegisterVehicleCommandHandler
	RegisterDriverHandler  commands.RegisterDriverCommandHandler

	GetConsignmentHandler          queries.GetConsignmentQueryHandler
	GetFreightBillHandler          queries.GetFreightBillQueryHandler
	GetUnbilledConsignmentsHandler queries.GetUnbilledConsignmentsQueryHandler

	UoWFactory   ports.UnitOfWorkFactory
	BillRenderer ports.DocumentRenderer
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		bookConsignmentHandler:   deps.BookConsignmentHandler,
		updateConsignmentHandler: deps.UpdateConsignmentHandler,
		deleteConsignmentHandler: deps.DeleteConsignmentHandler,
		assignVehicleHandler:     deps.AssignVehicleHandler,
		schedulePickupHandler:    deps.SchedulePickupHandler,
		markInTransitHandler:     deps.MarkInTransitHandler,
		markDeliveredHandler:     deps.MarkDeliveredHandler,
		confirmDeliveryHandler:   deps.ConfirmDeliveryHandler,
		cancelConsignmentHandler: deps.CancelConsignmentHandler,

		createBillHandler:        deps.CreateBillHandler,
		updateBillHeaderHandler:  deps.UpdateBillHeaderHandler,
		generateBillHandler:      deps.GenerateBillHandler,
		sendBillHandler:          deps.SendBillHandler,
		recordBillPaymentHandler: deps.RecordBillPaymentHandler,
		cancelBillHandler:        deps.CancelBillHandler,
		deleteBillHandler:        deps.DeleteBillHandler,

		createCustomerHandler:  deps.CreateCustomerHandler,
		registerVehicleHandler: deps.RegisterVehicleHandler,
		registerDriverHandler:  deps.RegisterDriverHandler,

		getConsignmentHandler:          deps.GetConsignmentHandler,
		getFreightBillHandler:          deps.GetFreightBillHandler,
		getUnbilledConsignmentsHandler: deps.GetUnbilledConsignmentsHandler,

		uowFactory:   deps.UoWFactory,
		billRenderer: deps.BillRenderer,
	}
}

// respondError maps domain errors to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func created(ctx echo.Context, id kernel.UUID) error {
	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// BookConsignment handles POST /api/v1/consignments.
func (s *Server) BookConsignment(ctx echo.Context) error {
	var body servers.BookConsignmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	consignmentID := kernel.NewUUID()
	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	consignor, err := toParty(body.Consignor)
	if err != nil {
		return respondError(ctx, err)
	}
	consignee, err := toParty(body.Consignee)
	if err != nil {
		return respondError(ctx, err)
	}
	route, err := consignment.NewRoute(body.FromCity, body.ToCity, body.GoodsDescription, body.Packages)
	if err != nil {
		return respondError(ctx, err)
	}
	weights, err := consignment.NewWeights(body.ActualWeightKg, body.ChargedWeightKg)
	if err != nil {
		return respondError(ctx, err)
	}
	charges, err := toCharges(body.Charges)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBookConsignmentCommand(
		consignmentID,
		body.ConsignmentNo,
		customerID,
		body.BookingDate.Time,
		consignor,
		consignee,
		route,
		weights,
		charges,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.bookConsignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return created(ctx, consignmentID)
}

// GetConsignment handles GET /api/v1/consignments/{consignmentId}.
func (s *Server) GetConsignment(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetConsignmentQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	row, err := s.getConsignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, consignmentResponse(row))
}

// UpdateConsignment handles PUT /api/v1/consignments/{consignmentId}.
func (s *Server) UpdateConsignment(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	var body servers.UpdateConsignmentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	consignor, err := toParty(body.Consignor)
	if err != nil {
		return respondError(ctx, err)
	}
	consignee, err := toParty(body.Consignee)
	if err != nil {
		return respondError(ctx, err)
	}
	route, err := consignment.NewRoute(body.FromCity, body.ToCity, body.GoodsDescription, body.Packages)
	if err != nil {
		return respondError(ctx, err)
	}
	weights, err := consignment.NewWeights(body.ActualWeightKg, body.ChargedWeightKg)
	if err != nil {
		return respondError(ctx, err)
	}
	charges, err := toCharges(body.Charges)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateConsignmentCommand(id, consignor, consignee, route, weights, charges)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateConsignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteConsignment handles DELETE /api/v1/consignments/{consignmentId}.
func (s *Server) DeleteConsignment(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteConsignmentCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteConsignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignVehicle handles POST /api/v1/consignments/{consignmentId}/assign.
func (s *Server) AssignVehicle(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	var body servers.AssignVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := kernel.UUIDFromBytes(body.VehicleId[:])
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignVehicleCommand(id, vehicleID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SchedulePickup handles POST /api/v1/consignments/{consignmentId}/schedule.
func (s *Server) SchedulePickup(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	var body servers.SchedulePickupJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSchedulePickupCommand(id, body.PickupDate.Time, body.PickupTime, strValue(body.Instructions))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkInTransit handles POST /api/v1/consignments/{consignmentId}/transit.
func (s *Server) MarkInTransit(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	var body servers.MarkInTransitJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkInTransitCommand(id, body.ActualPickupDate.Time, body.ActualPickupTime, strValue(body.Notes))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markInTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkArrived handles POST /api/v1/consignments/{consignmentId}/arrived.
func (s *Server) MarkArrived(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/consignments/{consignmentId}/confirm-delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	var body servers.ConfirmDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(id, body.ProofOfDelivery, strValue(body.DeliveredBy))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelConsignment handles POST /api/v1/consignments/{consignmentId}/cancel.
func (s *Server) CancelConsignment(ctx echo.Context, consignmentId servers.ConsignmentId) error {
	id, err := kernel.UUIDFromBytes(consignmentId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelConsignmentCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelConsignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID,
		body.Name,
		strValue(body.Address),
		strValue(body.City),
		strValue(body.Mobile),
		strValue(body.Email),
		strValue(body.Gstin),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return created(ctx, customerID)
}

// GetUnbilledConsignments handles GET /api/v1/customers/{customerId}/unbilled-consignments.
func (s *Server) GetUnbilledConsignments(ctx echo.Context, customerId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUnbilledConsignmentsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getUnbilledConsignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.UnbilledConsignment, len(rows))
	for i, row := range rows {
		response[i] = servers.UnbilledConsignment{
			Id:              row.ID.Bytes(),
			ConsignmentNo:   row.ConsignmentNo,
			BookingDate:     openapi_types.Date{Time: row.BookingDate},
			Destination:     row.Destination,
			ChargedWeightKg: row.ChargedWeight,
			GrandTotal:      row.GrandTotal.Amount(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var body servers.RegisterVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVehicleCommand(vehicleID, body.RegistrationNo, body.Model, body.CapacityKg)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return created(ctx, vehicleID)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body servers.RegisterDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, body.LicenceNo, strValue(body.Mobile))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return created(ctx, driverID)
}

// CreateBill handles POST /api/v1/bills.
func (s *Server) CreateBill(ctx echo.Context) error {
	var body servers.CreateBillJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	billID := kernel.NewUUID()
	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	consignmentIDs := make([]kernel.UUID, len(body.ConsignmentIds))
	for i, cid := range body.ConsignmentIds {
		consignmentIDs[i], err = kernel.UUIDFromBytes(cid[:])
		if err != nil {
			return respondError(ctx, err)
		}
	}

	var adjustments []freightbill.Adjustment
	if body.Adjustments != nil {
		adjustments, err = toAdjustments(*body.Adjustments)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	asGenerated := body.Generate != nil && *body.Generate

	cmd, err := commands.NewCreateBillCommand(
		billID,
		body.BillNo,
		strValue(body.Branch),
		body.BillDate.Time,
		customerID,
		consignmentIDs,
		adjustments,
		asGenerated,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return created(ctx, billID)
}

// GetBill handles GET /api/v1/bills/{billId}.
func (s *Server) GetBill(ctx echo.Context, billId servers.BillId) error {
	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFreightBillQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	row, err := s.getFreightBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, billResponse(row))
}

// UpdateBill handles PUT /api/v1/bills/{billId}.
func (s *Server) UpdateBill(ctx echo.Context, billId servers.BillId) error {
	var body servers.UpdateBillJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateBillHeaderCommand(id, body.BillNo, strValue(body.Branch), body.BillDate.Time)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateBillHeaderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteBill handles DELETE /api/v1/bills/{billId}.
func (s *Server) DeleteBill(ctx echo.Context, billId servers.BillId) error {
	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteBillCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateBill handles POST /api/v1/bills/{billId}/generate.
func (s *Server) GenerateBill(ctx echo.Context, billId servers.BillId) error {
	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewGenerateBillCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.generateBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendBill handles POST /api/v1/bills/{billId}/send. The Sent transition
// commits before the email goes out, so an email failure reports 200 with
// emailSent=false rather than an error status.
func (s *Server) SendBill(ctx echo.Context, billId servers.BillId) error {
	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSendBillCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.sendBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrExternalService) {
			warning := err.Error()
			return ctx.JSON(http.StatusOK, servers.SendResult{
				EmailSent: false,
				Warning:   &warning,
			})
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SendResult{EmailSent: true})
}

// RecordBillPayment handles POST /api/v1/bills/{billId}/payments.
func (s *Server) RecordBillPayment(ctx echo.Context, billId servers.BillId) error {
	var body servers.RecordBillPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("amount", err))
	}

	cmd, err := commands.NewRecordBillPaymentCommand(id, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordBillPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelBill handles POST /api/v1/bills/{billId}/cancel.
func (s *Server) CancelBill(ctx echo.Context, billId servers.BillId) error {
	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelBillCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelBillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DownloadBillPdf handles GET /api/v1/bills/{billId}/pdf. Rendering works on
// the aggregate itself, loaded outside a transaction.
func (s *Server) DownloadBillPdf(ctx echo.Context, billId servers.BillId) error {
	id, err := kernel.UUIDFromBytes(billId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	uow := s.uowFactory.Create()
	bill, err := uow.FreightBillRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	document, err := s.billRenderer.RenderBill(ctx.Request().Context(), bill)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", bill.BillNo()+".pdf"),
	)

	return ctx.Blob(http.StatusOK, "application/pdf", document)
}

func toParty(p servers.Party) (consignment.Party, error) {
	return consignment.NewParty(p.Name, p.Address, p.Mobile, strValue(p.Email), strValue(p.Gstin))
}

func toCharges(c servers.Charges) (consignment.Charges, error) {
	freight, err := kernel.NewMoney(c.Freight)
	if err != nil {
		return consignment.Charges{}, errs.NewValueIsInvalidErrorWithCause("freight", err)
	}
	handling, err := optMoney("handling", c.Handling)
	if err != nil {
		return consignment.Charges{}, err
	}
	serviceTax, err := optMoney("serviceTax", c.ServiceTax)
	if err != nil {
		return consignment.Charges{}, err
	}
	doorDelivery, err := optMoney("doorDelivery", c.DoorDelivery)
	if err != nil {
		return consignment.Charges{}, err
	}
	otherCharge, err := optMoney("otherCharge", c.OtherCharge)
	if err != nil {
		return consignment.Charges{}, err
	}
	risk, err := optMoney("risk", c.Risk)
	if err != nil {
		return consignment.Charges{}, err
	}
	additionalServiceTax, err := optMoney("additionalServiceTax", c.AdditionalServiceTax)
	if err != nil {
		return consignment.Charges{}, err
	}

	return consignment.NewCharges(
		freight, handling, serviceTax, doorDelivery, otherCharge, risk, additionalServiceTax,
	), nil
}

func toAdjustments(in []servers.Adjustment) ([]freightbill.Adjustment, error) {
	adjustments := make([]freightbill.Adjustment, len(in))
	for i, a := range in {
		adjustmentType, err := freightbill.AdjustmentTypeFromString(string(a.Type))
		if err != nil {
			return nil, err
		}
		amount, err := kernel.NewMoney(a.Amount)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("amount", err)
		}
		adjustments[i], err = freightbill.NewAdjustment(adjustmentType, strValue(a.Description), amount)
		if err != nil {
			return nil, err
		}
	}

	return adjustments, nil
}

func optMoney(paramName string, v *int64) (kernel.Money, error) {
	if v == nil {
		return kernel.Money{}, nil
	}
	money, err := kernel.NewMoney(*v)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return money, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func consignmentResponse(row queries.GetConsignmentQueryResponse) servers.Consignment {
	response := servers.Consignment{
		Id:               row.ID.Bytes(),
		ConsignmentNo:    row.ConsignmentNo,
		CustomerId:       row.CustomerID.Bytes(),
		BookingDate:      openapi_types.Date{Time: row.BookingDate},
		Consignor:        fromPartyDetails(row.Consignor),
		Consignee:        fromPartyDetails(row.Consignee),
		FromCity:         row.FromCity,
		ToCity:           row.ToCity,
		GoodsDescription: row.GoodsDescription,
		Packages:         row.Packages,
		ActualWeightKg:   row.ActualWeightKg,
		ChargedWeightKg:  row.ChargedWeightKg,
		Charges: servers.Charges{
			Freight:              row.Freight.Amount(),
			Handling:             optAmount(row.Handling),
			ServiceTax:           optAmount(row.ServiceTax),
			DoorDelivery:         optAmount(row.DoorDelivery),
			OtherCharge:          optAmount(row.OtherCharge),
			Risk:                 optAmount(row.Risk),
			AdditionalServiceTax: optAmount(row.AdditionalServiceTax),
		},
		GrandTotal:         row.GrandTotal.Amount(),
		PickupTime:         optStr(row.PickupTime),
		PickupInstructions: optStr(row.PickupInstructions),
		ActualPickupTime:   optStr(row.ActualPickupTime),
		TransitNotes:       optStr(row.TransitNotes),
		ProofOfDelivery:    optStr(row.ProofOfDelivery),
		DeliveredBy:        optStr(row.DeliveredBy),
		Status:             row.Status,
		PaymentStatus:      row.PaymentStatus,
		Version:            row.Version,
	}

	if !row.PickupDate.IsZero() {
		response.PickupDate = &openapi_types.Date{Time: row.PickupDate}
	}
	if !row.ActualPickupDate.IsZero() {
		response.ActualPickupDate = &openapi_types.Date{Time: row.ActualPickupDate}
	}
	if !row.DeliveryDate.IsZero() {
		response.DeliveryDate = &openapi_types.Date{Time: row.DeliveryDate}
	}
	if row.Assignment != nil {
		response.Assignment = &servers.Assignment{
			VehicleId:           row.Assignment.VehicleID.Bytes(),
			DriverId:            row.Assignment.DriverID.Bytes(),
			VehicleRegistration: row.Assignment.VehicleRegistration,
			DriverName:          row.Assignment.DriverName,
		}
	}
	if row.BillID != nil {
		billID := row.BillID.Bytes()
		response.BillId = &billID
	}

	return response
}

func billResponse(row queries.GetFreightBillQueryResponse) servers.Bill {
	lineItems := make([]servers.BillLineItem, len(row.LineItems))
	for i, item := range row.LineItems {
		lineItems[i] = servers.BillLineItem{
			ConsignmentId:   item.ConsignmentID.Bytes(),
			ConsignmentNo:   item.ConsignmentNo,
			BookingDate:     openapi_types.Date{Time: item.BookingDate},
			Destination:     item.Destination,
			ChargedWeightKg: item.ChargedWeightKg,
			Freight:         item.Freight.Amount(),
			GrandTotal:      item.GrandTotal.Amount(),
		}
	}

	adjustments := make([]servers.Adjustment, len(row.Adjustments))
	for i, adjustment := range row.Adjustments {
		adjustments[i] = servers.Adjustment{
			Type:        servers.AdjustmentType(adjustment.Type),
			Description: optStr(adjustment.Description),
			Amount:      adjustment.Amount.Amount(),
		}
	}

	return servers.Bill{
		Id:              row.ID.Bytes(),
		BillNo:          row.BillNo,
		Branch:          optStr(row.Branch),
		BillDate:        openapi_types.Date{Time: row.BillDate},
		CustomerId:      row.CustomerID.Bytes(),
		CustomerName:    row.Customer.Name,
		CustomerAddress: optStr(row.Customer.Address),
		CustomerCity:    optStr(row.Customer.City),
		CustomerMobile:  optStr(row.Customer.Mobile),
		CustomerEmail:   optStr(row.Customer.Email),
		CustomerGstin:   optStr(row.Customer.GSTIN),
		LineItems:       lineItems,
		Adjustments:     adjustments,
		TotalAmount:     row.TotalAmount.Amount(),
		FinalAmount:     row.FinalAmount.Amount(),
		AmountPaid:      row.AmountPaid.Amount(),
		Outstanding:     row.Outstanding.Amount(),
		Status:          row.Status,
		Version:         row.Version,
	}
}

func fromPartyDetails(p queries.PartyDetails) servers.Party {
	return servers.Party{
		Name:    p.Name,
		Address: p.Address,
		Mobile:  p.Mobile,
		Email:   optStr(p.Email),
		Gstin:   optStr(p.GSTIN),
	}
}

func optAmount(m kernel.Money) *int64 {
	if m.IsZero() {
		return nil
	}
	amount := m.Amount()
	return &amount
}
