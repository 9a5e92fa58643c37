package customer

import (
	"errors"

	"storage/internal/core/domain/model/kernel"
	"storage/internal/pkg/errs"
	"storage/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCustomerIsNotConstructed indicates that the Customer was not created
// through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an account holder renting storage units. It carries contact
// details and a running balance that grows with charges and shrinks with
// credits.
//
// Key business rules:
//   - Must be constructed through NewCustomer
//   - Name and phone are never empty
//   - Balance changes only through Charge and Credit with non-negative amounts
//   - Balance is not clamped and may become negative after credits
//
// Example usage:
//
//	pat, err := customer.NewCustomer("Pat Perkins", "425-555-1314")
//	if err != nil {
//	    return err
//	}
//
//	balance, err := pat.Charge(decimal.NewFromInt(175))
//	if err != nil {
//	    return err
//	}
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID

	// name is the account holder's display name
	name string

	// phone is the contact number
	phone string

	// balance is the amount currently owed
	balance decimal.Decimal

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a zero balance and a fresh identity.
// All validation errors are aggregated and returned as a single error.
//
// Parameters:
//   - name: display name (must not be empty)
//   - phone: contact number (must not be empty)
//
// Returns:
//   - *Customer: properly initialized customer
//   - error: aggregated validation errors, if any
func NewCustomer(name string, phone string) (*Customer, error) {
	c := &Customer{
		id:      kernel.NewUUID(),
		balance: decimal.Zero,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.SetName(name), c.SetPhone(phone)); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Validate checks that the customer was built through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Phone() string {
	return c.phone
}

// Balance returns the amount currently owed by the customer.
func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// SetName replaces the display name. An empty name is rejected and the
// current name is kept.
func (c *Customer) SetName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	c.name = name
	return nil
}

// SetPhone replaces the contact number. An empty phone is rejected and the
// current number is kept.
func (c *Customer) SetPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone is required")
	}

	c.phone = phone
	return nil
}

// Charge adds amount to the balance and returns the new balance.
//
// Parameters:
//   - amount: the amount to charge (must not be negative)
//
// Returns:
//   - decimal.Decimal: balance after the charge
//   - error: validation error for a negative amount, balance unchanged
//
// Example:
//
//	balance, err := c.Charge(decimal.NewFromInt(175))
//	// balance = previous balance + 175
func (c *Customer) Charge(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := kernel.ValidateAmount("amount", amount); err != nil {
		return c.balance, err
	}

	c.balance = c.balance.Add(amount)
	return c.balance, nil
}

// Credit subtracts amount from the balance and returns the new balance.
// The balance may become negative, which represents money owed to the
// customer.
//
// Parameters:
//   - amount: the amount to credit (must not be negative)
//
// Returns:
//   - decimal.Decimal: balance after the credit
//   - error: validation error for a negative amount, balance unchanged
func (c *Customer) Credit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := kernel.ValidateAmount("amount", amount); err != nil {
		return c.balance, err
	}

	c.balance = c.balance.Sub(amount)
	return c.balance, nil
}
