package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney. The zero value of Money is invalid.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a strictly positive monetary amount.
// It wraps github.com/shopspring/decimal to avoid binary floating point
// rounding in price arithmetic. Amounts captured on orders are immutable:
// once a line item records its unit price, later catalog changes never
// affect it.
//
// Money is immutable; arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be strictly greater than zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money value from a float64, rounding to two
// decimal places. Intended for boundaries that receive JSON numbers.
func MoneyFromFloat(value float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(value).Round(2))
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// MulInt returns the amount multiplied by a positive integer quantity.
func (m Money) MulInt(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount))
}

// IsEqual compares two Money values numerically, so 19.9 equals 19.90.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation, e.g. "19.99".
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
