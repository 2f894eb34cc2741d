package models

import (
	"github.com/shopspring/decimal"
)

// Rule is the persisted row form of a payee rule. Amount and its currency
// are stored in two columns that are NULL together.
type Rule struct {
	RuleID              string           `db:"rule_id"`
	PayeeID             string           `db:"payee_id"`
	CategoryID          *string          `db:"category_id"`
	Amount              *decimal.Decimal `db:"amount"`
	AmountCurrency      *string          `db:"amount_currency"`
	DescriptionTemplate *string          `db:"description_template"`
	IsRecurring         bool             `db:"is_recurring"`
	Frequency           *string          `db:"frequency"`
	IsActive            bool             `db:"is_active"`
	AuditFields
}
