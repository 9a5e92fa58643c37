package queries_test

import (
	"context"
	"testing"
	"time"

	"storage/internal/adapters/out/memory"
	"storage/internal/core/application/usecases/queries"
	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/location"
	"storage/internal/core/domain/model/unit"
	"storage/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var rentalStart = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

type QueriesTestSuite struct {
	suite.Suite
	location *location.Location
	factory  *memory.UnitOfWorkFactory
	pat      *customer.Customer
	chris    *customer.Customer
}

func (suite *QueriesTestSuite) SetupTest() {
	loc, err := location.NewLocation("WA23Issaquah", decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.location = loc
	suite.factory = memory.NewUnitOfWorkFactory(memory.NewStore(loc))

	suite.pat, err = customer.NewCustomer("Pat Perkins", "425-555-1314")
	suite.Require().NoError(err)
	suite.chris, err = customer.NewCustomer("Chris Connoly", "425-555-2222")
	suite.Require().NoError(err)

	_, err = loc.AddCustomer(suite.pat)
	suite.Require().NoError(err)
	_, err = loc.AddCustomer(suite.chris)
	suite.Require().NoError(err)

	suite.rent(suite.pat, 1, 1)
	suite.rent(suite.pat, 8, 2)
	suite.rent(suite.pat, 11, 3)
	suite.rent(suite.chris, 11, 1)
	suite.rent(suite.chris, 11, 2)
	suite.rent(suite.chris, 11, 5)
}

func (suite *QueriesTestSuite) rent(c *customer.Customer, row, slot int) {
	u, err := suite.location.Unit(row, slot)
	suite.Require().NoError(err)
	rented, err := u.Rent(c, rentalStart)
	suite.Require().NoError(err)
	suite.Require().True(rented)
}

func (suite *QueriesTestSuite) TestGetEmptyUnits_FilteredByKind() {
	query, err := queries.NewGetEmptyUnitsQuery(unit.Temperature)
	suite.Require().NoError(err)

	views, err := queries.NewGetEmptyUnitsQueryHandler(suite.factory).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	// 2 temperature rows x 6 slots, 4 rented
	suite.Len(views, 8)
	for _, v := range views {
		suite.Equal(unit.Temperature, v.Kind)
		suite.False(v.Rented)
		suite.True(v.Price.IsZero())
		suite.Equal(location.DefaultTemperatureLevel, v.Level)
	}
	suite.Equal(10, views[0].Row)
	suite.Equal(0, views[0].Slot)
}

func (suite *QueriesTestSuite) TestGetEmptyUnits_AllKinds() {
	query, err := queries.NewGetEmptyUnitsQuery()
	suite.Require().NoError(err)

	views, err := queries.NewGetEmptyUnitsQueryHandler(suite.factory).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	suite.Len(views, 7*10+3*8+2*6-6)
}

func (suite *QueriesTestSuite) TestGetEmptyUnits_InvalidKind() {
	_, err := queries.NewGetEmptyUnitsQuery(unit.Unknown)
	suite.ErrorIs(err, errs.ErrInvalidArgument)
}

func (suite *QueriesTestSuite) TestGetCustomerUnits() {
	query, err := queries.NewGetCustomerUnitsQuery(0)
	suite.Require().NoError(err)

	views, err := queries.NewGetCustomerUnitsQueryHandler(suite.factory).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 3)
	suite.Equal([2]int{1, 1}, [2]int{views[0].Row, views[0].Slot})
	suite.Equal([2]int{8, 2}, [2]int{views[1].Row, views[1].Slot})
	suite.Equal([2]int{11, 3}, [2]int{views[2].Row, views[2].Slot})
	suite.Equal("Pat Perkins", views[0].Occupant)
	suite.Equal("175.00", views[0].Price.StringFixed(2))
	suite.Equal("260.00", views[1].Price.StringFixed(2))
	suite.Equal("356.00", views[2].Price.StringFixed(2))
	suite.Equal("Temperature unit, 4'(w) x 8'(l) x 8'(h), rented to Pat Perkins for $356.00", views[2].Summary)
}

func (suite *QueriesTestSuite) TestGetCustomerUnits_UnknownIndex() {
	query, err := queries.NewGetCustomerUnitsQuery(7)
	suite.Require().NoError(err)

	_, err = queries.NewGetCustomerUnitsQueryHandler(suite.factory).Handle(suite.T().Context(), query)
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *QueriesTestSuite) TestGetCustomerUnits_NegativeIndex() {
	_, err := queries.NewGetCustomerUnitsQuery(-1)
	suite.ErrorIs(err, queries.ErrCustomerIndexIsInvalid)
}

func (suite *QueriesTestSuite) TestGetUnit() {
	query, err := queries.NewGetUnitQuery(1, 5)
	suite.Require().NoError(err)

	view, err := queries.NewGetUnitQueryHandler(suite.factory).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)

	suite.Equal(unit.Standard, view.Kind)
	suite.False(view.Rented)
	suite.Empty(view.Occupant)
	suite.Equal("Standard unit, 4'(w) x 8'(l) x 8'(h), available", view.Summary)

	query, err = queries.NewGetUnitQuery(12, 0)
	suite.Require().NoError(err)
	_, err = queries.NewGetUnitQueryHandler(suite.factory).Handle(suite.T().Context(), query)
	suite.ErrorIs(err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetUnitQuery(0, -1)
	suite.ErrorIs(err, queries.ErrPositionIsInvalid)
}

func (suite *QueriesTestSuite) TestGetCustomers() {
	views, err := queries.NewGetCustomersQueryHandler(suite.factory).
		Handle(suite.T().Context(), queries.NewGetCustomersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.Equal(0, views[0].Index)
	suite.Equal("Pat Perkins", views[0].Name)
	suite.Equal(3, views[0].Units)
	suite.True(views[0].Balance.IsZero())
	suite.Equal("Chris Connoly", views[1].Name)
	suite.Equal("425-555-2222", views[1].Phone)
}

func (suite *QueriesTestSuite) TestGetUnitMap() {
	text, err := queries.NewGetUnitMapQueryHandler(suite.factory).
		Handle(suite.T().Context(), queries.NewGetUnitMapQuery())
	suite.Require().NoError(err)

	suite.Equal(suite.location.UnitMap(), text)
	suite.Contains(text, "Unit Map for Location WA23Issaquah")
	suite.Contains(text, "11:  T__  T50  T50  T50  T__  T50  ")
}

func (suite *QueriesTestSuite) TestHandlersRejectUnconstructedQueries() {
	ctx := suite.T().Context()

	_, err := queries.NewGetEmptyUnitsQueryHandler(suite.factory).Handle(ctx, queries.GetEmptyUnitsQuery{})
	suite.ErrorIs(err, queries.ErrGetEmptyUnitsQueryIsNotConstructed)

	_, err = queries.NewGetCustomerUnitsQueryHandler(suite.factory).Handle(ctx, queries.GetCustomerUnitsQuery{})
	suite.ErrorIs(err, queries.ErrGetCustomerUnitsQueryIsNotConstructed)

	_, err = queries.NewGetCustomersQueryHandler(suite.factory).Handle(ctx, queries.GetCustomersQuery{})
	suite.ErrorIs(err, queries.ErrGetCustomersQueryIsNotConstructed)

	_, err = queries.NewGetUnitMapQueryHandler(suite.factory).Handle(ctx, queries.GetUnitMapQuery{})
	suite.ErrorIs(err, queries.ErrGetUnitMapQueryIsNotConstructed)

	_, err = queries.NewGetUnitQueryHandler(suite.factory).Handle(ctx, queries.GetUnitQuery{})
	suite.ErrorIs(err, queries.ErrGetUnitQueryIsNotConstructed)
}

func (suite *QueriesTestSuite) TestHandlerHonoursCancelledContext() {
	// hold the store so Begin has to wait
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.T().Context()))
	defer func() { _ = uow.Rollback(suite.T().Context()) }()

	ctx, cancel := context.WithCancel(suite.T().Context())
	cancel()

	_, err := queries.NewGetUnitMapQueryHandler(suite.factory).Handle(ctx, queries.NewGetUnitMapQuery())
	suite.ErrorIs(err, context.Canceled)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
