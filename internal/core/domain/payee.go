package domain

import (
	"strings"
	"time"
)

// Payee is a counterparty for income and expense transactions. Payee names
// are globally unique, and so is the IBAN when present; both policies are
// enforced by the service layer against the repository.
type Payee struct {
	PayeeID string `json:"payeeID"` // Primary Key (UUID)
	Name    string `json:"name"`
	IBAN    *IBAN  `json:"iban,omitempty"`
	AuditFields
}

// NewPayee constructs a validated payee.
func NewPayee(id, name string, iban *IBAN, userID string, now time.Time) (*Payee, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Payee{
		PayeeID: id,
		Name:    strings.TrimSpace(name),
		IBAN:    iban,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// Rename changes the payee name, re-validating it.
func (p *Payee) Rename(name, userID string, now time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.Touch(userID, now)
	return nil
}

// ChangeIBAN replaces the payee IBAN. A nil IBAN clears it.
func (p *Payee) ChangeIBAN(iban *IBAN, userID string, now time.Time) {
	p.IBAN = iban
	p.Touch(userID, now)
}
