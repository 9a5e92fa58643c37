package commands

import (
	"context"

	"storage/internal/core/domain/model/customer"
)

type AddCustomerCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddCustomerCommandHandler(uowFactory UoWFactory) AddCustomerCommandHandler {
	return AddCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the customer and returns its roster index.
func (h *AddCustomerCommandHandler) Handle(ctx context.Context, cmd AddCustomerCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	c, err := customer.NewCustomer(cmd.Name(), cmd.Phone())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return 0, err
	}

	index, err := loc.AddCustomer(c)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return index, nil
}
