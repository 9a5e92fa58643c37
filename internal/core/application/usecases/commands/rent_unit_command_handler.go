package commands

import (
	"context"
)

type RentUnitCommandHandler struct {
	uowFactory UoWFactory
}

func NewRentUnitCommandHandler(uowFactory UoWFactory) RentUnitCommandHandler {
	return RentUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rents the unit and reports false, without error, when the unit is
// already occupied.
func (h *RentUnitCommandHandler) Handle(ctx context.Context, cmd RentUnitCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LocationRepository()
	loc, err := repo.Get(ctx)
	if err != nil {
		return false, err
	}

	c, err := repo.GetCustomer(ctx, cmd.CustomerIndex())
	if err != nil {
		return false, err
	}

	u, err := loc.Unit(cmd.Row(), cmd.Slot())
	if err != nil {
		return false, err
	}

	rented, err := u.Rent(c, cmd.Start())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return rented, nil
}
