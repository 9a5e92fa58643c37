package services

import (
	"errors"
	"time"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/location"
	"storage/internal/core/domain/model/unit"
)

var (
	// ErrNoVacantUnit is returned when every unit of the requested kind is rented.
	ErrNoVacantUnit = errors.New("no vacant unit of the requested kind")

	// ErrCustomerNotOnRoster is returned when the customer is unknown to the
	// location and so would never be billed.
	ErrCustomerNotOnRoster = errors.New("customer is not on the location roster")
)

// UnitAllocator picks a unit for a customer who asks for a kind rather than a
// grid position.
type UnitAllocator struct{}

func NewUnitAllocator() UnitAllocator {
	return UnitAllocator{}
}

// Allocate rents the first vacant unit of kind, in row-major order, to c.
//
// Business rules enforced:
//   - loc and c must be constructed and kind must be valid
//   - c must be on the location roster
//   - at least one unit of kind must be vacant
//
// Returns:
//   - *unit.Unit: the unit now rented to c
//   - error: ErrCustomerNotOnRoster, ErrNoVacantUnit or a validation error
func (a UnitAllocator) Allocate(
	loc *location.Location,
	c *customer.Customer,
	kind unit.Kind,
	start time.Time,
) (*unit.Unit, error) {
	if err := errors.Join(loc.Validate(), c.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	if !a.isOnRoster(loc, c) {
		return nil, ErrCustomerNotOnRoster
	}

	for _, u := range loc.EmptyUnits(kind) {
		rented, err := u.Rent(c, start)
		if err != nil {
			return nil, err
		}
		if rented {
			return u, nil
		}
	}

	return nil, ErrNoVacantUnit
}

func (a UnitAllocator) isOnRoster(loc *location.Location, c *customer.Customer) bool {
	for _, known := range loc.Customers() {
		if known.IsEqual(c) {
			return true
		}
	}
	return false
}
