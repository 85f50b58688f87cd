package kernel

import (
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for every amount,
// matching the decimal(12,2) storage columns.
const moneyScale = 2

// Money is a monetary amount rounded to cents. Sign rules belong to the aggregates that hold it (an order total may be zero,
// a payment amount must be positive).
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney rounds amount to cents.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(moneyScale)}
}

// MoneyFromString parses a decimal string such as "150.00".
func MoneyFromString(paramName, s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return NewMoney(d), nil
}

// MoneyFromCents builds an amount from an integer number of cents.
func MoneyFromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -moneyScale)}
}

// Decimal exposes the underlying value for persistence and serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times multiplies by an integer quantity.
func (m Money) Times(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// PercentOf returns round(m / total * 100), or 0 for a zero total.
func (m Money) PercentOf(total Money) int {
	if total.amount.IsZero() {
		return 0
	}
	return int(m.amount.Div(total.amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// String formats with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
