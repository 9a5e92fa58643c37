package location

import (
	"fmt"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// MultiUnitDiscount is taken off the combined rent of a customer holding more
// than one unit.
var MultiUnitDiscount = decimal.RequireFromString("0.05")

// Charge is one customer's line of a monthly billing run.
type Charge struct {
	Customer *customer.Customer
	Units    int
	Subtotal decimal.Decimal
	Amount   decimal.Decimal
}

// Statement is the outcome of a monthly billing run, one charge per roster
// entry in roster order.
type Statement struct {
	Charges []Charge
	Total   decimal.Decimal
}

// RentDue computes what c owes for the current month without charging it.
// A customer with one unit owes that unit's price. A customer with more than
// one unit owes the combined price less MultiUnitDiscount, rounded to the
// nearest 0.05.
func (l *Location) RentDue(c *customer.Customer) Charge {
	units := l.CustomerUnits(c)

	subtotal := decimal.Zero
	for _, u := range units {
		subtotal = subtotal.Add(u.Price())
	}

	amount := subtotal
	if len(units) > 1 {
		amount = kernel.RoundToNickel(subtotal.Sub(subtotal.Mul(MultiUnitDiscount)))
	}

	return Charge{
		Customer: c,
		Units:    len(units),
		Subtotal: subtotal,
		Amount:   amount,
	}
}

// BillMonthlyRent charges every customer on the roster, in roster order, the
// rent due for their units and returns the per-customer charges with the
// facility total. Customers without units are charged zero.
//
// Returns:
//   - Statement: the charges applied so far and their total
//   - error: the first charge failure; later customers are not charged
func (l *Location) BillMonthlyRent() (Statement, error) {
	statement := Statement{
		Charges: make([]Charge, 0, len(l.customers)),
		Total:   decimal.Zero,
	}

	for _, c := range l.customers {
		charge := l.RentDue(c)

		if _, err := c.Charge(charge.Amount); err != nil {
			return statement, fmt.Errorf("charge %s: %w", c.Name(), err)
		}

		statement.Charges = append(statement.Charges, charge)
		statement.Total = statement.Total.Add(charge.Amount)
	}

	return statement, nil
}

// ChargeMonthlyRent runs BillMonthlyRent and returns the total charged to all
// customers.
//
// Example:
//
//	total, err := loc.ChargeMonthlyRent()
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Total rent charged: $%s\n", total.StringFixed(2))
func (l *Location) ChargeMonthlyRent() (decimal.Decimal, error) {
	statement, err := l.BillMonthlyRent()
	return statement.Total, err
}
