package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

var ErrInvalidAmount = errors.New("invalid money amount")

// Money is an exact currency amount.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Parse accepts plain numbers and display strings such as "$450,000".
func Parse(s string) (Money, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{Amount: amount, Currency: DefaultCurrency}, nil
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.currency()}
}

func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

func (m Money) currency() string {
	if m.Currency == "" {
		return DefaultCurrency
	}
	return m.Currency
}

// Millions renders the amount the way the pipeline board shows stage totals, e.g. "$1.2M".
func (m Money) Millions() string {
	return "$" + m.Amount.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M"
}

// Display renders a whole-dollar amount with thousands separators, e.g. "$450,000".
func (m Money) Display() string {
	whole := m.Amount.Round(0)
	neg := whole.IsNegative()
	digits := whole.Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// Sum adds all amounts.
func Sum(items []Money) Money {
	total := Zero(DefaultCurrency)
	for _, m := range items {
		total = total.Add(m)
	}
	return total
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
		Display  string `json:"display"`
	}{
		Amount:   m.Amount.StringFixed(2),
		Currency: m.currency(),
		Display:  m.Display(),
	})
}
