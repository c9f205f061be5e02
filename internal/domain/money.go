// internal/domain/money.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Money is an exact decimal amount paired with a currency code.
// The amount is kept as the decimal string received from the exchange;
// it is never stored as a binary float, so no rounding drift can occur.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney creates a Money value from a decimal and a currency code.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount.String(),
		Currency: currency,
	}
}

// Decimal parses the amount string into a decimal for arithmetic.
func (m Money) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid money amount %q: %w", m.Amount, err)
	}
	return d, nil
}

// IsPositive reports whether the amount parses and is greater than zero.
func (m Money) IsPositive() bool {
	d, err := m.Decimal()
	return err == nil && d.IsPositive()
}

// String renders the amount followed by the currency code, e.g. "30.5 EUR".
func (m Money) String() string {
	return m.Amount + " " + m.Currency
}
