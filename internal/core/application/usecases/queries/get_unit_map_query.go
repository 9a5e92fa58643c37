package queries

import (
	"context"
	"errors"

	"storage/internal/core/ports"
	"storage/internal/pkg/guard"
)

var ErrGetUnitMapQueryIsNotConstructed = errors.New(
	"GetUnitMapQuery must be created via NewGetUnitMapQuery constructor",
)

// GetUnitMapQuery renders the text map of the grid.
type GetUnitMapQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUnitMapQuery() GetUnitMapQuery {
	return GetUnitMapQuery{guard: guard.NewConstructorGuard()}
}

func (q GetUnitMapQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitMapQueryIsNotConstructed)
}

type GetUnitMapQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetUnitMapQueryHandler(uowFactory ports.UnitOfWorkFactory) GetUnitMapQueryHandler {
	return GetUnitMapQueryHandler{uowFactory: uowFactory}
}

func (h GetUnitMapQueryHandler) Handle(ctx context.Context, query GetUnitMapQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return "", err
	}

	return loc.UnitMap(), nil
}
