package services_test

import (
	"testing"
	"time"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/location"
	"storage/internal/core/domain/model/unit"
	"storage/internal/core/domain/services"
	"storage/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rentalStart = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*location.Location, *customer.Customer) {
	t.Helper()
	loc, err := location.NewLocation("WA23Issaquah", decimal.NewFromInt(100))
	require.NoError(t, err)
	pat, err := customer.NewCustomer("Pat Perkins", "425-555-1314")
	require.NoError(t, err)
	_, err = loc.AddCustomer(pat)
	require.NoError(t, err)
	return loc, pat
}

func TestUnitAllocator_Allocate(t *testing.T) {
	allocator := services.NewUnitAllocator()

	t.Run("should rent the first vacant unit of the kind", func(t *testing.T) {
		loc, pat := setup(t)
		taken, err := loc.Unit(7, 0)
		require.NoError(t, err)
		_, err = taken.Rent(pat, rentalStart)
		require.NoError(t, err)

		u, err := allocator.Allocate(loc, pat, unit.Humidity, rentalStart)

		require.NoError(t, err)
		expected, err := loc.Unit(7, 1)
		require.NoError(t, err)
		assert.Same(t, expected, u)
		assert.Same(t, pat, u.Occupant())
		assert.Len(t, loc.CustomerUnits(pat), 2)
	})

	t.Run("should fail when every unit of the kind is rented", func(t *testing.T) {
		loc, pat := setup(t)
		for range location.TemperatureSlots * 2 {
			_, err := allocator.Allocate(loc, pat, unit.Temperature, rentalStart)
			require.NoError(t, err)
		}

		u, err := allocator.Allocate(loc, pat, unit.Temperature, rentalStart)

		require.ErrorIs(t, err, services.ErrNoVacantUnit)
		assert.Nil(t, u)
		assert.Len(t, loc.EmptyUnits(unit.Standard), 70)
	})

	t.Run("should refuse customers missing from the roster", func(t *testing.T) {
		loc, _ := setup(t)
		stranger, err := customer.NewCustomer("Chris Connoly", "425-555-3141")
		require.NoError(t, err)

		u, err := allocator.Allocate(loc, stranger, unit.Standard, rentalStart)

		require.ErrorIs(t, err, services.ErrCustomerNotOnRoster)
		assert.Nil(t, u)
		assert.Len(t, loc.EmptyUnits(), 106)
	})

	t.Run("should validate inputs", func(t *testing.T) {
		loc, pat := setup(t)

		_, err := allocator.Allocate(loc, pat, unit.Unknown, rentalStart)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		_, err = allocator.Allocate(loc, nil, unit.Standard, rentalStart)
		require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)

		_, err = allocator.Allocate(nil, pat, unit.Standard, rentalStart)
		require.ErrorIs(t, err, location.ErrLocationIsNotConstructed)

		_, err = allocator.Allocate(loc, pat, unit.Standard, time.Time{})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
