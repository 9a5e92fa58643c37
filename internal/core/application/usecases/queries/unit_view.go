// Package queries contains read operations over the location. Every handler
// reads inside a unit of work and returns plain read models, never the
// aggregate itself.
package queries

import (
	"storage/internal/core/domain/model/kernel"
	"storage/internal/core/domain/model/location"
	"storage/internal/core/domain/model/unit"

	"github.com/shopspring/decimal"
)

// UnitView is the read model of one storage unit.
type UnitView struct {
	ID         kernel.UUID
	Row        int
	Slot       int
	Kind       unit.Kind
	Dimensions string
	Level      int
	Rented     bool
	Occupant   string
	Price      decimal.Decimal
	Summary    string
}

func newUnitViews(loc *location.Location, units []*unit.Unit) []UnitView {
	views := make([]UnitView, 0, len(units))
	for _, u := range units {
		row, slot, _ := loc.Position(u)
		view := UnitView{
			ID:         u.ID(),
			Row:        row,
			Slot:       slot,
			Kind:       u.Kind(),
			Dimensions: u.Dimensions().String(),
			Level:      u.Level(),
			Rented:     u.IsRented(),
			Price:      u.Price(),
			Summary:    u.String(),
		}
		if occupant := u.Occupant(); occupant != nil {
			view.Occupant = occupant.Name()
		}
		views = append(views, view)
	}
	return views
}
