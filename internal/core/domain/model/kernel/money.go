package kernel

import (
	"fmt"

	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or MoneyFromFloat.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or MoneyFromFloat")

// Money is an immutable non-negative monetary amount backed by an exact
// decimal representation. It is used for item unit prices and order totals;
// float arithmetic is never applied to amounts.
//
// Example:
//
//	price, err := kernel.MoneyFromFloat(9.99)
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MulInt(3)
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected with a ValueIsInvalidError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money value from a float64 amount, as received
// from JSON request bodies. The float is converted to a decimal before any
// arithmetic takes place.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a constructed Money with amount 0.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the Money value multiplied by a whole quantity.
func (m Money) MulInt(q int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(q))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Decimal returns the underlying decimal amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for JSON responses.
// Precision loss is possible for very large amounts; responses only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
