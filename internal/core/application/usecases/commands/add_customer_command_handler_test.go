package commands_test

import (
	"errors"
	"testing"

	"storage/internal/core/application/usecases/commands"
	"storage/internal/core/domain/model/location"
	"storage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCustomerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	loc := newTestLocation()
	cmd, _ := commands.NewAddCustomerCommand("Pat Perkins", "425-555-1314")

	repo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(loc, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCustomerCommandHandler(factory)

	// Act
	index, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	require.Equal(t, 1, loc.CustomerCount())
	c, err := loc.Customer(0)
	require.NoError(t, err)
	assert.Equal(t, "Pat Perkins", c.Name())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddCustomerCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewAddCustomerCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAddCustomerCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddCustomerCommand("Pat Perkins", "425-555-1314")

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddCustomerCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddCustomerCommandHandler_Handle_RosterFull(t *testing.T) {
	// Arrange
	ctx := t.Context()
	loc := newTestLocation()
	for range location.RosterCapacity {
		_, err := loc.AddCustomer(newTestCustomer("Filler"))
		require.NoError(t, err)
	}
	cmd, _ := commands.NewAddCustomerCommand("Pat Perkins", "425-555-1314")

	repo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(loc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCustomerCommandHandler(factory)

	// Act
	_, err := h.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, location.RosterCapacity, loc.CustomerCount())
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddCustomerCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	loc := newTestLocation()
	cmd, _ := commands.NewAddCustomerCommand("Pat Perkins", "425-555-1314")

	repo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(loc, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCustomerCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
