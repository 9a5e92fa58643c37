package queries

import (
	"context"
	"errors"

	"storage/internal/core/domain/model/kernel"
	"storage/internal/core/ports"
	"storage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists the roster in insertion order.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// CustomerView is the read model of one roster entry.
type CustomerView struct {
	Index   int
	ID      kernel.UUID
	Name    string
	Phone   string
	Units   int
	Balance decimal.Decimal
}

type GetCustomersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCustomersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{uowFactory: uowFactory}
}

func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	customers := loc.Customers()
	views := make([]CustomerView, 0, len(customers))
	for i, c := range customers {
		views = append(views, CustomerView{
			Index:   i,
			ID:      c.ID(),
			Name:    c.Name(),
			Phone:   c.Phone(),
			Units:   len(loc.CustomerUnits(c)),
			Balance: c.Balance(),
		})
	}

	return views, nil
}
