package dto

import (
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPayload is the wire form of a monetary value. The currency is
// optional; the domain applies the EUR default when it is omitted.
type MoneyPayload struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency"`
}

// ToDomain converts the payload into a validated domain Money value.
func (p MoneyPayload) ToDomain() (domain.Money, error) {
	return domain.NewMoney(p.Amount, p.Currency)
}

// ToMoneyPayload converts a domain Money value back to its wire form.
func ToMoneyPayload(m domain.Money) MoneyPayload {
	return MoneyPayload{Amount: m.Amount(), Currency: m.Currency()}
}
