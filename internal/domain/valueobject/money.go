// Package valueobject contains domain value objects for the household expenses system.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// DefaultCurrency is the currency used when none is supplied.
const DefaultCurrency = "BRL"

// Money is a strictly positive amount in a single currency.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates and builds a Money value.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Money{}, domainerror.NewValueError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount",
			"amount must be greater than zero",
			nil,
		)
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, domainerror.NewValueError(
			domainerror.ErrCodeMissingCurrency,
			"currency",
			"currency is required",
			nil,
		)
	}

	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is zero. Only true for the zero Money{}.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns the sum of both values. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other, "add"); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns m minus other. The result must still be positive.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other, "subtract"); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Equals compares amount and currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the value as "<amount> <currency>" with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}

func (m Money) sameCurrency(other Money, op string) error {
	if m.currency != other.currency {
		return domainerror.NewValueError(
			domainerror.ErrCodeCurrencyMismatch,
			"currency",
			"cannot "+op+" values in different currencies",
			domainerror.ErrCurrencyMismatch,
		)
	}
	return nil
}
