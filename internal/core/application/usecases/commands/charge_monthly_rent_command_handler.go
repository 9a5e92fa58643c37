package commands

import (
	"context"

	"storage/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CustomerCharge is one billed customer in a BillingSummary.
type CustomerCharge struct {
	CustomerID   kernel.UUID
	CustomerName string
	Units        int
	Amount       decimal.Decimal
	Balance      decimal.Decimal
}

// BillingSummary is the result of a monthly billing run.
type BillingSummary struct {
	Charges []CustomerCharge
	Total   decimal.Decimal
}

type ChargeMonthlyRentCommandHandler struct {
	uowFactory UoWFactory
}

func NewChargeMonthlyRentCommandHandler(uowFactory UoWFactory) ChargeMonthlyRentCommandHandler {
	return ChargeMonthlyRentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle bills the whole roster within one unit of work.
func (h *ChargeMonthlyRentCommandHandler) Handle(
	ctx context.Context,
	cmd ChargeMonthlyRentCommand,
) (BillingSummary, error) {
	if err := cmd.Validate(); err != nil {
		return BillingSummary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BillingSummary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return BillingSummary{}, err
	}

	statement, err := loc.BillMonthlyRent()
	if err != nil {
		return BillingSummary{}, err
	}

	// balances are read while the unit of work still holds the location
	summary := BillingSummary{
		Charges: make([]CustomerCharge, 0, len(statement.Charges)),
		Total:   statement.Total,
	}
	for _, charge := range statement.Charges {
		summary.Charges = append(summary.Charges, CustomerCharge{
			CustomerID:   charge.Customer.ID(),
			CustomerName: charge.Customer.Name(),
			Units:        charge.Units,
			Amount:       charge.Amount,
			Balance:      charge.Customer.Balance(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return BillingSummary{}, err
	}

	return summary, nil
}
