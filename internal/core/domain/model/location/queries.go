package location

import (
	"slices"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/unit"
)

// CustomerUnits returns every unit rented by c in row-major order. Units are
// matched by customer identity. A nil customer yields an empty result.
func (l *Location) CustomerUnits(c *customer.Customer) []*unit.Unit {
	if c == nil {
		return []*unit.Unit{}
	}

	return l.collect(func(u *unit.Unit) bool {
		return u.IsRented() && u.Occupant().IsEqual(c)
	})
}

// EmptyUnits returns every vacant unit in row-major order. When kinds are
// given only vacant units of those kinds are returned.
//
// Example:
//
//	all := loc.EmptyUnits()
//	cold := loc.EmptyUnits(unit.Temperature)
func (l *Location) EmptyUnits(kinds ...unit.Kind) []*unit.Unit {
	return l.collect(func(u *unit.Unit) bool {
		if u.IsRented() {
			return false
		}
		return len(kinds) == 0 || slices.Contains(kinds, u.Kind())
	})
}

// RentedUnits returns every occupied unit in row-major order.
func (l *Location) RentedUnits() []*unit.Unit {
	return l.collect((*unit.Unit).IsRented)
}

func (l *Location) collect(match func(*unit.Unit) bool) []*unit.Unit {
	found := make([]*unit.Unit, 0)
	for _, row := range l.units {
		for _, u := range row {
			if match(u) {
				found = append(found, u)
			}
		}
	}
	return found
}

// Position returns the grid coordinates of u. ok is false when u does not
// belong to this location.
func (l *Location) Position(u *unit.Unit) (row, slot int, ok bool) {
	for r, units := range l.units {
		for s, candidate := range units {
			if candidate.IsEqual(u) {
				return r, s, true
			}
		}
	}
	return 0, 0, false
}
