package commands

import (
	"context"
)

// GenerateBillCommandHandler moves a draft bill to Generated.
type GenerateBillCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewGenerateBillCommandHandler creates a handler for bill generation.
func NewGenerateBillCommandHandler(uowFactory BillingUoWFactory) GenerateBillCommandHandler {
	return GenerateBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the bill, applies the generation transition, and persists it.
func (h GenerateBillCommandHandler) Handle(ctx context.Context, cmd GenerateBillCommand) error {
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

	repo := uow.FreightBillRepository()
	bill, err := repo.Get(ctx, cmd.BillID())
	if err != nil {
		return err
	}

	if err = bill.Generate(); err != nil {
		return err
	}

	if err = repo.Update(ctx, bill); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
