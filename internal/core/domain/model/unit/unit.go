package unit

import (
	"errors"
	"fmt"
	"time"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/kernel"
	"storage/internal/pkg/errs"
	"storage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrUnitIsNotConstructed indicates that the Unit was not created through one
// of the NewStandard, NewHumidity or NewTemperature constructors.
var ErrUnitIsNotConstructed = errors.New("Unit must be created via NewStandard, NewHumidity or NewTemperature constructors")

// BasePricer supplies the facility-wide monthly base price that is added to
// every occupied unit. The owning location implements it; a unit only looks
// the price up and never owns the location.
type BasePricer interface {
	BasePrice() decimal.Decimal
}

// Unit is a rentable storage cell. It is a domain entity with binary
// occupancy: vacant, or rented to exactly one customer from a start date.
//
// Key business rules:
//   - Must be constructed through NewStandard, NewHumidity or NewTemperature
//   - Occupant and rental start are both set or both unset
//   - Renting an occupied unit is declined, not an error
//   - The monthly price is zero while vacant and base price plus KindPrice
//     while rented
//
// Example usage:
//
//	dims, _ := kernel.NewDimensions(4, 8, 8)
//	u, err := unit.NewTemperature(dims, 50, loc)
//	if err != nil {
//	    return err
//	}
//
//	rented, err := u.Rent(pat, time.Now())
//	if err != nil {
//	    return err
//	}
//	if !rented {
//	    // somebody else already holds the unit
//	}
type Unit struct {
	// id uniquely identifies the unit
	id kernel.UUID

	// kind selects the pricing rule and whether level applies
	kind Kind

	// dimensions is the fixed size of the unit
	dimensions kernel.Dimensions

	// level is the humidity or temperature setting, zero for Standard units
	level int

	// occupant is the renting customer, nil while vacant
	occupant *customer.Customer

	// rentalStart is the first day of the rental, zero while vacant
	rentalStart time.Time

	// price is the last computed monthly price
	price decimal.Decimal

	// pricer is the owning location, used only to look up the base price
	pricer BasePricer

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewStandard creates a vacant Standard unit.
//
// Parameters:
//   - dimensions: the unit size, created with kernel.NewDimensions
//   - pricer: the owning location (must not be nil)
//
// Returns:
//   - *Unit: properly initialized vacant unit
//   - error: aggregated validation errors, if any
func NewStandard(dimensions kernel.Dimensions, pricer BasePricer) (*Unit, error) {
	return newUnit(Standard, dimensions, 0, pricer)
}

// NewHumidity creates a vacant Humidity unit. level must be within
// [HumidityMin, HumidityMax].
func NewHumidity(dimensions kernel.Dimensions, level int, pricer BasePricer) (*Unit, error) {
	return newUnit(Humidity, dimensions, level, pricer)
}

// NewTemperature creates a vacant Temperature unit. level must be within
// [TemperatureMin, TemperatureMax].
func NewTemperature(dimensions kernel.Dimensions, level int, pricer BasePricer) (*Unit, error) {
	return newUnit(Temperature, dimensions, level, pricer)
}

// New creates a vacant unit of the given kind. level is ignored for Standard
// units.
func New(kind Kind, dimensions kernel.Dimensions, level int, pricer BasePricer) (*Unit, error) {
	return newUnit(kind, dimensions, level, pricer)
}

func newUnit(kind Kind, dimensions kernel.Dimensions, level int, pricer BasePricer) (*Unit, error) {
	u := &Unit{
		id:    kernel.NewUUID(),
		price: decimal.Zero,
		guard: guard.NewConstructorGuard(),
	}

	if err := kind.Validate(); err != nil {
		return nil, err
	}
	u.kind = kind

	var levelErr error
	if kind != Standard {
		levelErr = u.SetLevel(level)
	}

	if err := errors.Join(
		u.setDimensions(dimensions),
		u.setPricer(pricer),
		levelErr,
	); err != nil {
		return nil, err
	}

	return u, nil
}

// IsEqual compares two units by identity.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// Validate checks that the unit was built through a constructor.
func (u *Unit) Validate() error {
	if u == nil {
		return ErrUnitIsNotConstructed
	}
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

func (u *Unit) ID() kernel.UUID {
	return u.id
}

func (u *Unit) Kind() Kind {
	return u.kind
}

func (u *Unit) Dimensions() kernel.Dimensions {
	return u.dimensions
}

// Level returns the humidity or temperature setting. Standard units report 0.
func (u *Unit) Level() int {
	return u.level
}

// Occupant returns the renting customer, or nil while the unit is vacant.
func (u *Unit) Occupant() *customer.Customer {
	return u.occupant
}

// RentalStart returns the first day of the current rental. ok is false while
// the unit is vacant.
func (u *Unit) RentalStart() (start time.Time, ok bool) {
	return u.rentalStart, u.IsRented()
}

// IsRented reports whether the unit currently has an occupant.
func (u *Unit) IsRented() bool {
	return u.occupant != nil
}

// SetLevel changes the humidity or temperature setting of a climate
// controlled unit. Standard units have no level and always reject the call.
//
// Returns:
//   - error: validation error if the level is outside the kind's range
func (u *Unit) SetLevel(level int) error {
	if err := u.kind.ValidateLevel(level); err != nil {
		return err
	}

	u.level = level
	return nil
}

// Rent assigns the unit to c from start.
//
// Business rules enforced:
//   - start must be set (non-zero)
//   - c must be a constructed customer; a nil customer is rejected rather
//     than leaving the unit occupied by nobody, so occupant and rental start
//     are always set together
//   - an occupied unit is left untouched and Rent returns false
//
// Parameters:
//   - c: the renting customer
//   - start: the first day of the rental
//
// Returns:
//   - bool: true if the unit was rented, false if it was already occupied
//   - error: validation error for a missing start date or customer
//
// Example:
//
//	rented, err := u.Rent(pat, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid rental: %w", err)
//	}
func (u *Unit) Rent(c *customer.Customer, start time.Time) (bool, error) {
	if start.IsZero() {
		return false, errs.NewValueIsRequiredError("rentalStart is required")
	}

	if c == nil {
		return false, errs.NewValueIsRequiredError("customer is required")
	}

	if err := c.Validate(); err != nil {
		return false, errs.NewValueIsRequiredErrorWithCause("customer is required", err)
	}

	if u.IsRented() {
		return false, nil
	}

	u.occupant = c
	u.rentalStart = start
	return true, nil
}

// Release vacates the unit and resets its cached price. It returns false if
// the unit was already vacant.
func (u *Unit) Release() bool {
	if !u.IsRented() {
		return false
	}

	u.occupant = nil
	u.rentalStart = time.Time{}
	u.price = decimal.Zero
	return true
}

// Price computes the current monthly price: zero while vacant, otherwise the
// location base price plus KindPrice. The result is recomputed on every call
// so it follows base price and level changes.
func (u *Unit) Price() decimal.Decimal {
	if !u.IsRented() {
		u.price = decimal.Zero
		return u.price
	}

	u.price = u.pricer.BasePrice().Add(u.KindPrice())
	return u.price
}

// String renders a one-line summary such as
// "Temperature unit, 4'(w) x 8'(l) x 8'(h), rented to Pat Perkins for $386.00".
func (u *Unit) String() string {
	info := fmt.Sprintf("%s unit, %s, ", u.kind, u.dimensions)
	if !u.IsRented() {
		return info + "available"
	}
	return info + fmt.Sprintf("rented to %s for $%s", u.occupant.Name(), u.Price().StringFixed(2))
}

func (u *Unit) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	u.dimensions = dimensions
	return nil
}

func (u *Unit) setPricer(pricer BasePricer) error {
	if pricer == nil {
		return errs.NewValueIsRequiredError("location is required")
	}

	u.pricer = pricer
	return nil
}
