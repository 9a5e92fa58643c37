package queries

import (
	"context"

	"storage/internal/core/ports"
)

type GetEmptyUnitsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetEmptyUnitsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetEmptyUnitsQueryHandler {
	return GetEmptyUnitsQueryHandler{uowFactory: uowFactory}
}

func (h GetEmptyUnitsQueryHandler) Handle(ctx context.Context, query GetEmptyUnitsQuery) ([]UnitView, error) {
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

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	return newUnitViews(loc, loc.EmptyUnits(query.kinds...)), nil
}
