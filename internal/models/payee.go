package models

// Payee is the persisted row form of a payee.
type Payee struct {
	PayeeID string  `db:"payee_id"`
	Name    string  `db:"name"`
	IBAN    *string `db:"iban"`
	AuditFields
}
