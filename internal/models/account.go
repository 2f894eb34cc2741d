package models

import (
	"github.com/shopspring/decimal"
)

// Account is the persisted row form of a ledger account.
// Nullable columns use pointers so scanning round-trips NULL cleanly.
type Account struct {
	AccountID          string          `db:"account_id"`
	Name               string          `db:"name"`
	AccountType        string          `db:"account_type"`
	IBAN               *string         `db:"iban"`
	IsSavings          bool            `db:"is_savings"`
	OverdraftLimit     decimal.Decimal `db:"overdraft_limit"`
	CreditLimit        decimal.Decimal `db:"credit_limit"`
	CurrencyCode       string          `db:"currency_code"`
	DueDayOfMonth      *int            `db:"due_day_of_month"`
	DueShiftDirection  *string         `db:"due_shift_direction"`
	AuditFields
}
