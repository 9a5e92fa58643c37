package queries

import (
	"errors"

	"storage/internal/core/domain/model/unit"
	"storage/internal/pkg/guard"
)

var ErrGetEmptyUnitsQueryIsNotConstructed = errors.New(
	"GetEmptyUnitsQuery must be created via NewGetEmptyUnitsQuery constructor",
)

// GetEmptyUnitsQuery lists vacant units in row-major order, optionally
// restricted to some kinds.
//
// Example:
//
//	query, err := NewGetEmptyUnitsQuery(unit.Humidity, unit.Temperature)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type GetEmptyUnitsQuery struct {
	kinds []unit.Kind

	guard guard.ConstructorGuard
}

// NewGetEmptyUnitsQuery creates the query. With no kinds every vacant unit
// matches.
func NewGetEmptyUnitsQuery(kinds ...unit.Kind) (GetEmptyUnitsQuery, error) {
	for _, kind := range kinds {
		if err := kind.Validate(); err != nil {
			return GetEmptyUnitsQuery{}, err
		}
	}

	return GetEmptyUnitsQuery{
		kinds: append([]unit.Kind(nil), kinds...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetEmptyUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetEmptyUnitsQueryIsNotConstructed)
}

func (q GetEmptyUnitsQuery) Kinds() []unit.Kind {
	return append([]unit.Kind(nil), q.kinds...)
}
