package domain_test

import (
	"testing"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		currency     string
		wantCurrency string
		wantErr      bool
	}{
		{
			name:         "valid EUR",
			amount:       decimal.NewFromFloat(12.34),
			currency:     "EUR",
			wantCurrency: "EUR",
		},
		{
			name:         "empty currency defaults to EUR",
			amount:       decimal.NewFromInt(5),
			currency:     "",
			wantCurrency: "EUR",
		},
		{
			name:         "valid USD",
			amount:       decimal.NewFromInt(-3),
			currency:     "USD",
			wantCurrency: "USD",
		},
		{
			name:     "lowercase currency rejected",
			amount:   decimal.NewFromInt(1),
			currency: "eur",
			wantErr:  true,
		},
		{
			name:     "too short",
			amount:   decimal.NewFromInt(1),
			currency: "EU",
			wantErr:  true,
		},
		{
			name:     "too long",
			amount:   decimal.NewFromInt(1),
			currency: "EURO",
			wantErr:  true,
		},
		{
			name:     "digits rejected",
			amount:   decimal.NewFromInt(1),
			currency: "EU1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMoney(tt.amount, tt.currency)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, m.Amount().Equal(tt.amount))
			assert.Equal(t, tt.wantCurrency, m.Currency())
		})
	}
}

func TestMoney_AddSameCurrency(t *testing.T) {
	a := domain.MustMoney(decimal.NewFromFloat(10.50), "EUR")
	b := domain.MustMoney(decimal.NewFromFloat(4.50), "EUR")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "EUR", sum.Currency())

	// The operands are unchanged.
	assert.True(t, a.Amount().Equal(decimal.NewFromFloat(10.50)))
}

func TestMoney_CrossCurrencyFails(t *testing.T) {
	eur := domain.MustMoney(decimal.NewFromInt(10), "EUR")
	usd := domain.MustMoney(decimal.NewFromInt(10), "USD")

	_, err := eur.Add(usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "currency mismatch")

	_, err = eur.Sub(usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = eur.Equal(usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMoney_Equal(t *testing.T) {
	a := domain.MustMoney(decimal.NewFromFloat(1.10), "EUR")
	b := domain.MustMoney(decimal.NewFromFloat(1.1), "EUR")
	c := domain.MustMoney(decimal.NewFromFloat(1.2), "EUR")

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.Equal(c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestMoney_NegAndSigns(t *testing.T) {
	m := domain.MustMoney(decimal.NewFromInt(7), "EUR")
	n := m.Neg()

	assert.True(t, m.IsPositive())
	assert.True(t, n.IsNegative())
	assert.True(t, n.Amount().Equal(decimal.NewFromInt(-7)))

	zero, err := domain.ZeroMoney("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "EUR", zero.Currency())
}
