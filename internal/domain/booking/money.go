package booking

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Money is a non-currency-aware amount held at two decimal places.
// Every arithmetic step re-quantizes with banker's rounding.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{amount: quantize(d)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d), nil
}

func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func MoneyFromInt(units int64) Money {
	return NewMoney(decimal.NewFromInt(units))
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(factor))
}

func (m Money) MulInt(n int) Money {
	return m.Mul(decimal.NewFromInt(int64(n)))
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) IsNegative() bool         { return m.amount.IsNegative() }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) Equal(other Money) bool   { return m.amount.Equal(other.amount) }

// MinorUnits returns the amount in cents.
func (m Money) MinorUnits() int64 {
	return m.amount.Shift(2).IntPart()
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func Sum(values ...Money) Money {
	total := ZeroMoney()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func quantize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
