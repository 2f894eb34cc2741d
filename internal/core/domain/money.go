package domain

import (
	"fmt"
	"regexp"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is used when a caller does not supply a currency.
const DefaultCurrencyCode = "EUR"

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money is an immutable amount/currency pair. Arithmetic and comparison are
// only defined between values of the same currency; no conversion ever happens.
// The zero value is 0 EUR-less and should not be used directly; construct via
// NewMoney.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value. An empty currency defaults to EUR.
// The currency must be a 3-uppercase-letter ISO-4217 style code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		currency = DefaultCurrencyCode
	}
	if !currencyCodePattern.MatchString(currency) {
		return Money{}, fmt.Errorf("%w: invalid currency code %q", apperrors.ErrValidation, currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustMoney is a convenience constructor for code paths where the inputs are
// known-valid (tests, constants). It panics on invalid input.
func MustMoney(amount decimal.Decimal, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a zero amount in the given currency (EUR when empty).
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the 3-letter currency code.
func (m Money) Currency() string { return m.currency }

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: currency mismatch: %s vs %s", apperrors.ErrValidation, m.currency, other.currency)
	}
	return nil
}

// Add returns m + other. It fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other. It fails when the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Neg returns the value with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Equal reports whether two Money values are equal. Comparing values of
// different currencies is an error, never a silent false.
func (m Money) Equal(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.Equal(other.amount), nil
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// String renders the amount followed by its currency, e.g. "12.34 EUR".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}
