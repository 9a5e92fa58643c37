package commands

import (
	"errors"

	"storage/internal/pkg/guard"
)

var ErrChargeMonthlyRentCommandIsNotConstructed = errors.New(
	"ChargeMonthlyRentCommand must be created via NewChargeMonthlyRentCommand constructor",
)

// ChargeMonthlyRentCommand represents a request to bill every roster
// customer for the units they hold. It carries no parameters: the whole
// location is billed in one run.
//
// The handler applies the multi-unit discount per customer, adds each charge
// to the customer's balance and reports the facility total.
//
// Example:
//
//	cmd := NewChargeMonthlyRentCommand()
//	summary, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
type ChargeMonthlyRentCommand struct {
	guard guard.ConstructorGuard
}

func NewChargeMonthlyRentCommand() ChargeMonthlyRentCommand {
	return ChargeMonthlyRentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ChargeMonthlyRentCommand) Validate() error {
	return c.guard.Validate(ErrChargeMonthlyRentCommandIsNotConstructed)
}
