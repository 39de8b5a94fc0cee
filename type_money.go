package actions

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display value: an exact decimal amount tagged with the report's
// display currency. Amounts in records stay plain decimals; Money only exists
// at the presentation boundary.
type Money struct {
	value decimal.Decimal
	cur   string
}

// NewMoney tags an amount with a display currency.
func NewMoney(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's symbol, grouping and fraction
// digits (e.g. "$1,234.50").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
