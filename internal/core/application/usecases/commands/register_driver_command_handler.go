package commands

import (
	"context"

	"freightops/internal/core/domain/model/fleet"
)

// RegisterDriverCommandHandler adds a driver to the fleet in Available status.
type RegisterDriverCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory FleetUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle constructs the driver aggregate and persists it.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
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

	aggregate, err := fleet.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenceNo(), cmd.Mobile())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
