package queries

import (
	"context"

	"storage/internal/core/ports"
)

type GetCustomerUnitsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCustomerUnitsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerUnitsQueryHandler {
	return GetCustomerUnitsQueryHandler{uowFactory: uowFactory}
}

// Handle returns the customer's units in row-major order. A customer with no
// units gets an empty, non-nil slice.
func (h GetCustomerUnitsQueryHandler) Handle(ctx context.Context, query GetCustomerUnitsQuery) ([]UnitView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LocationRepository()
	loc, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	c, err := repo.GetCustomer(ctx, query.CustomerIndex())
	if err != nil {
		return nil, err
	}

	return newUnitViews(loc, loc.CustomerUnits(c)), nil
}
