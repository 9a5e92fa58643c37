package memory

import (
	"context"
	"errors"

	"storage/internal/core/ports"
)

// ErrNoTransaction is returned when a unit of work is used outside Begin and
// Commit or Rollback.
var ErrNoTransaction = errors.New("unit of work has no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store lock from Begin until Commit or Rollback.
// Changes are made to the live aggregate, so Rollback only gives up the lock;
// handlers validate before they mutate.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin waits for exclusive access to the store or for ctx to end. Calling
// Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	return uow.finish()
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return uow.finish()
}

func (uow *UnitOfWork) LocationRepository() ports.LocationRepository {
	return &LocationRepository{uow: uow}
}

func (uow *UnitOfWork) finish() error {
	if !uow.active {
		return ErrNoTransaction
	}

	uow.active = false
	uow.store.release()
	return nil
}
