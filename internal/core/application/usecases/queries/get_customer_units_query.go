package queries

import (
	"errors"
	"fmt"

	"storage/internal/pkg/guard"
)

var (
	ErrGetCustomerUnitsQueryIsNotConstructed = errors.New(
		"GetCustomerUnitsQuery must be created via NewGetCustomerUnitsQuery constructor",
	)
	ErrCustomerIndexIsInvalid = errors.New("customer index must not be negative")
)

// GetCustomerUnitsQuery lists the units rented by one roster customer.
type GetCustomerUnitsQuery struct {
	customerIndex int

	guard guard.ConstructorGuard
}

func NewGetCustomerUnitsQuery(customerIndex int) (GetCustomerUnitsQuery, error) {
	if customerIndex < 0 {
		return GetCustomerUnitsQuery{}, fmt.Errorf("%w: %d", ErrCustomerIndexIsInvalid, customerIndex)
	}

	return GetCustomerUnitsQuery{
		customerIndex: customerIndex,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerUnitsQueryIsNotConstructed)
}

func (q GetCustomerUnitsQuery) CustomerIndex() int {
	return q.customerIndex
}
