package commands_test

import (
	"context"

	"storage/internal/core/application/usecases/commands"
	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/location"
	"storage/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(ctx context.Context) (*location.Location, error) {
	args := m.Called(ctx)
	loc, _ := args.Get(0).(*location.Location)
	return loc, args.Error(1)
}

func (m *MockLocationRepository) GetCustomer(ctx context.Context, index int) (*customer.Customer, error) {
	args := m.Called(ctx, index)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestLocation() *location.Location {
	loc, err := location.NewLocation("WA23Issaquah", decimal.NewFromInt(100))
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestCustomer(name string) *customer.Customer {
	c, err := customer.NewCustomer(name, "425-555-0000")
	if err != nil {
		panic(err)
	}
	return c
}
