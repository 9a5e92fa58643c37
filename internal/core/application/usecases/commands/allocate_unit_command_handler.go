package commands

import (
	"context"

	"storage/internal/core/domain/model/kernel"
	"storage/internal/core/domain/services"
)

type AllocateUnitCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.UnitAllocator
}

func NewAllocateUnitCommandHandler(
	uowFactory UoWFactory,
	allocator services.UnitAllocator,
) AllocateUnitCommandHandler {
	return AllocateUnitCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle rents a vacant unit of the requested kind and returns its ID.
func (h *AllocateUnitCommandHandler) Handle(ctx context.Context, cmd AllocateUnitCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LocationRepository()
	loc, err := repo.Get(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	c, err := repo.GetCustomer(ctx, cmd.CustomerIndex())
	if err != nil {
		return kernel.UUID{}, err
	}

	u, err := h.allocator.Allocate(loc, c, cmd.Kind(), cmd.Start())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return u.ID(), nil
}
