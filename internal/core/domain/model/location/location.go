package location

import (
	"errors"
	"fmt"
	"regexp"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/kernel"
	"storage/internal/core/domain/model/unit"
	"storage/internal/pkg/errs"
	"storage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// RowCount is the number of rows in every facility grid.
	RowCount = 12
	// RosterCapacity is the maximum number of customers a location holds.
	RosterCapacity = 100

	StandardRowStart    = 0
	HumidityRowStart    = 7
	TemperatureRowStart = 10

	StandardSlots    = 10
	HumiditySlots    = 8
	TemperatureSlots = 6

	UnitWidth  = 4
	UnitLength = 8
	UnitHeight = 8

	DefaultHumidityLevel    = 30
	DefaultTemperatureLevel = 50
)

// ErrLocationIsNotConstructed indicates that the Location was not created
// through NewLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// designationPattern is two state letters, two digits and a city name.
var designationPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Za-z ]+$`)

// Location is the aggregate root of a storage facility. It exclusively owns a
// fixed grid of storage units and keeps an append-only roster of customers.
//
// Grid layout (row: kind x slots):
//   - rows 0-6: Standard x 10
//   - rows 7-9: Humidity x 8, level 30
//   - rows 10-11: Temperature x 6, level 50
//
// Every unit is 4'(w) x 8'(l) x 8'(h). The grid shape never changes after
// construction.
//
// Example usage:
//
//	loc, err := location.NewLocation("WA23Issaquah", decimal.NewFromInt(100))
//	if err != nil {
//	    return err
//	}
//
//	idx, err := loc.AddCustomer(pat)
//	u, err := loc.Unit(11, 3)
//	rented, err := u.Rent(pat, time.Now())
//	total, err := loc.ChargeMonthlyRent()
type Location struct {
	// designation is the location code, e.g. "WA23Issaquah"
	designation string

	// basePrice is added to the price of every rented unit
	basePrice decimal.Decimal

	// units is the grid, indexed by row then slot
	units [][]*unit.Unit

	// customers is the roster in insertion order
	customers []*customer.Customer

	// guard ensures the aggregate was properly initialized
	guard guard.ConstructorGuard
}

// NewLocation creates a location and eagerly builds its full unit grid.
//
// Parameters:
//   - designation: must match two uppercase letters, two digits and a
//     city name of letters and spaces, e.g. "WA23Issaquah"
//   - basePrice: monthly base price per rented unit (must not be negative)
//
// Returns:
//   - *Location: the location with every unit vacant and an empty roster
//   - error: aggregated validation errors, if any
func NewLocation(designation string, basePrice decimal.Decimal) (*Location, error) {
	l := &Location{
		customers: make([]*customer.Customer, 0, RosterCapacity),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(l.setDesignation(designation), l.SetBasePrice(basePrice)); err != nil {
		return nil, err
	}

	if err := l.buildGrid(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks that the location was built through NewLocation.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) Designation() string {
	return l.designation
}

// BasePrice implements unit.BasePricer.
func (l *Location) BasePrice() decimal.Decimal {
	return l.basePrice
}

// SetBasePrice changes the monthly base price. Rented units pick up the new
// price the next time they are priced.
func (l *Location) SetBasePrice(basePrice decimal.Decimal) error {
	if err := kernel.ValidateAmount("basePrice", basePrice); err != nil {
		return err
	}

	l.basePrice = basePrice
	return nil
}

// RowCount returns the number of grid rows.
func (l *Location) RowCount() int {
	return len(l.units)
}

// SlotCount returns the number of units in row.
func (l *Location) SlotCount(row int) (int, error) {
	if err := l.checkRow(row); err != nil {
		return 0, err
	}
	return len(l.units[row]), nil
}

// Unit returns the unit at (row, slot).
//
// Returns:
//   - *unit.Unit: the unit at that position
//   - error: out-of-range error when row or slot is outside the grid
func (l *Location) Unit(row, slot int) (*unit.Unit, error) {
	if err := l.checkRow(row); err != nil {
		return nil, err
	}

	if slot < 0 || slot >= len(l.units[row]) {
		return nil, errs.NewValueIsOutOfRangeError("slot", slot, 0, len(l.units[row])-1)
	}

	return l.units[row][slot], nil
}

// CustomerCount returns the number of customers on the roster.
func (l *Location) CustomerCount() int {
	return len(l.customers)
}

// Customer returns the customer at roster index.
func (l *Location) Customer(index int) (*customer.Customer, error) {
	if index < 0 || index >= len(l.customers) {
		return nil, errs.NewValueIsOutOfRangeError("customer index", index, 0, len(l.customers)-1)
	}
	return l.customers[index], nil
}

// Customers returns a copy of the roster in insertion order.
func (l *Location) Customers() []*customer.Customer {
	out := make([]*customer.Customer, len(l.customers))
	copy(out, l.customers)
	return out
}

// AddCustomer appends c to the roster and returns its index.
//
// Business rules enforced:
//   - c must be a constructed customer
//   - the roster never exceeds RosterCapacity
//
// Returns:
//   - int: the roster index assigned to c
//   - error: validation error for a nil customer or a full roster
func (l *Location) AddCustomer(c *customer.Customer) (int, error) {
	if c == nil {
		return 0, errs.NewValueIsRequiredError("customer is required")
	}

	if err := c.Validate(); err != nil {
		return 0, errs.NewValueIsRequiredErrorWithCause("customer is required", err)
	}

	if len(l.customers) >= RosterCapacity {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause(
			"customer index",
			len(l.customers),
			0,
			RosterCapacity-1,
			fmt.Errorf("roster holds at most %d customers", RosterCapacity),
		)
	}

	l.customers = append(l.customers, c)
	return len(l.customers) - 1, nil
}

func (l *Location) checkRow(row int) error {
	if row < 0 || row >= len(l.units) {
		return errs.NewValueIsOutOfRangeError("row", row, 0, len(l.units)-1)
	}
	return nil
}

func (l *Location) setDesignation(designation string) error {
	if designation == "" {
		return errs.NewValueIsRequiredError("designation is required")
	}

	if !designationPattern.MatchString(designation) {
		return errs.NewValueIsInvalidErrorWithCause(
			"designation is invalid",
			fmt.Errorf("%q does not match %s", designation, designationPattern),
		)
	}

	l.designation = designation
	return nil
}

// buildGrid creates every unit of the fixed layout. A row's kind follows from
// the row start constants.
func (l *Location) buildGrid() error {
	dims, err := kernel.NewDimensions(UnitWidth, UnitLength, UnitHeight)
	if err != nil {
		return err
	}

	l.units = make([][]*unit.Unit, RowCount)
	for row := range l.units {
		kind, slots, level := rowLayout(row)
		l.units[row] = make([]*unit.Unit, slots)

		for slot := range l.units[row] {
			u, err := unit.New(kind, dims, level, l)
			if err != nil {
				return err
			}
			l.units[row][slot] = u
		}
	}

	return nil
}

func rowLayout(row int) (kind unit.Kind, slots int, level int) {
	switch {
	case row >= TemperatureRowStart:
		return unit.Temperature, TemperatureSlots, DefaultTemperatureLevel
	case row >= HumidityRowStart:
		return unit.Humidity, HumiditySlots, DefaultHumidityLevel
	default:
		return unit.Standard, StandardSlots, 0
	}
}
