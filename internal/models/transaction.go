package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted row form of a balanced financial event.
// Its entries live in a separate table and are loaded alongside it.
type Transaction struct {
	TransactionID   string    `db:"transaction_id"`
	TransactionDate time.Time `db:"transaction_date"`
	Description     string    `db:"description"`
	TransactionType string    `db:"transaction_type"`
	PayeeID         *string   `db:"payee_id"`
	CategoryID      *string   `db:"category_id"`
	AuditFields
}

// Entry is the persisted row form of a single signed ledger line.
type Entry struct {
	EntryID       string          `db:"entry_id"`
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
}
