package memory

import (
	"context"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/location"
)

// LocationRepository reads the store through an active unit of work.
type LocationRepository struct {
	uow *UnitOfWork
}

func (r *LocationRepository) Get(_ context.Context) (*location.Location, error) {
	if !r.uow.active {
		return nil, ErrNoTransaction
	}

	loc := r.uow.store.location
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	return loc, nil
}

func (r *LocationRepository) GetCustomer(ctx context.Context, index int) (*customer.Customer, error) {
	loc, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	return loc.Customer(index)
}
