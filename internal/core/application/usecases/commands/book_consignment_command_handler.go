package commands

import (
	"context"

	"freightops/internal/core/domain/model/consignment"
)

// BookConsignmentCommandHandler handles the business logic for booking.
// Creates the consignment in Booked status with Unbilled payment status.
type BookConsignmentCommandHandler struct {
	uowFactory ConsignmentUoWFactory
}

// NewBookConsignmentCommandHandler creates a handler for booking operations.
// Requires a ConsignmentUoWFactory for transactional persistence.
func NewBookConsignmentCommandHandler(uowFactory ConsignmentUoWFactory) BookConsignmentCommandHandler {
	return BookConsignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command. Constructs the consignment aggregate
// and persists it inside a transaction.
func (h *BookConsignmentCommandHandler) Handle(ctx context.Context, cmd BookConsignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := consignment.NewConsignment(
		cmd.ConsignmentID(),
		cmd.ConsignmentNo(),
		cmd.CustomerID(),
		cmd.BookingDate(),
		cmd.Consignor(),
		cmd.Consignee(),
		cmd.Route(),
		cmd.Weights(),
		cmd.Charges(),
	)
	if err != nil {
		return err
	}

	if err = uow.ConsignmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
