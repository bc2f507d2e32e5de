package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount with
// exactly two fractional digits. All prices, turnover and bonus figures in the
// system are expressed as Money; floating-point types are never used for
// currency so repeated additions do not accumulate rounding drift.
//
// The zero value of Money is a valid amount of 0.00. Money is immutable:
// arithmetic methods return new values.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("12.50")
//	if err != nil {
//	    // handle malformed amount
//	}
//	total := price.MulQuantity(3) // 37.50
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal, rounding to two fractional
// digits. Negative amounts are rejected with a ValueIsInvalidError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a decimal string such as "99.90" into Money.
// Returns a ValueIsInvalidError when the string is not a valid decimal or
// the amount is negative.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an integer quantity.
// Used to compute order line totals from a unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Half returns the amount divided by two, rounded to two fractional digits.
func (m Money) Half() Money {
	return Money{amount: m.amount.DivRound(decimal.NewFromInt(2), 2)}
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the underlying decimal for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits, e.g. "120.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
