package queries

import (
	"context"
	"errors"
	"fmt"

	"storage/internal/core/domain/model/unit"
	"storage/internal/core/ports"
	"storage/internal/pkg/guard"
)

var (
	ErrGetUnitQueryIsNotConstructed = errors.New(
		"GetUnitQuery must be created via NewGetUnitQuery constructor",
	)
	ErrPositionIsInvalid = errors.New("row and slot must not be negative")
)

// GetUnitQuery reads the unit at one grid position.
type GetUnitQuery struct {
	row  int
	slot int

	guard guard.ConstructorGuard
}

func NewGetUnitQuery(row, slot int) (GetUnitQuery, error) {
	if row < 0 || slot < 0 {
		return GetUnitQuery{}, fmt.Errorf("%w: row %d, slot %d", ErrPositionIsInvalid, row, slot)
	}

	return GetUnitQuery{
		row:   row,
		slot:  slot,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitQueryIsNotConstructed)
}

type GetUnitQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetUnitQueryHandler(uowFactory ports.UnitOfWorkFactory) GetUnitQueryHandler {
	return GetUnitQueryHandler{uowFactory: uowFactory}
}

func (h GetUnitQueryHandler) Handle(ctx context.Context, query GetUnitQuery) (UnitView, error) {
	if err := query.Validate(); err != nil {
		return UnitView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UnitView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return UnitView{}, err
	}

	u, err := loc.Unit(query.row, query.slot)
	if err != nil {
		return UnitView{}, err
	}

	return newUnitViews(loc, []*unit.Unit{u})[0], nil
}
