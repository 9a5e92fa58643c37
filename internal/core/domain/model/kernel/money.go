package kernel

import (
	"fmt"

	"storage/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var nickelsPerDollar = decimal.NewFromInt(20)

// RoundToNickel rounds amount to the nearest 0.05, halves away from zero.
//
// Example:
//
//	kernel.RoundToNickel(decimal.RequireFromString("422.18")) // 422.20
func RoundToNickel(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(nickelsPerDollar).Round(0).Div(nickelsPerDollar)
}

// ValidateAmount rejects negative monetary amounts.
func ValidateAmount(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid",
			fmt.Errorf("%s is negative", amount.StringFixed(2)),
		)
	}
	return nil
}
