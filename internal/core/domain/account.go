package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
)

// ParseAccountType converts the string form back to an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Asset, Liability:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, s)
	}
}

// Account represents a bank or credit account within the ledger.
// Name and IBAN uniqueness across accounts is a policy enforced by the
// service layer against the repository; the entity only validates its own
// values.
type Account struct {
	AccountID      string                  `json:"accountID"` // Primary Key (UUID)
	Name           string                  `json:"name"`
	AccountType    AccountType             `json:"accountType"` // ASSET or LIABILITY
	IBAN           *IBAN                   `json:"iban,omitempty"`
	IsSavings      bool                    `json:"isSavings"`
	OverdraftLimit Money                   `json:"overdraftLimit"`
	CreditLimit    Money                   `json:"creditLimit"`
	PaymentDueDate *ExpectedPaymentDueDate `json:"paymentDueDate,omitempty"`
	AuditFields
}

// NewAccount constructs a validated account.
func NewAccount(id, name string, accountType AccountType, iban *IBAN, userID string, now time.Time) (*Account, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := ParseAccountType(string(accountType)); err != nil {
		return nil, err
	}
	zero, err := ZeroMoney(DefaultCurrencyCode)
	if err != nil {
		return nil, err
	}
	return &Account{
		AccountID:      id,
		Name:           strings.TrimSpace(name),
		AccountType:    accountType,
		IBAN:           iban,
		OverdraftLimit: zero,
		CreditLimit:    zero,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// Rename changes the account name. The name is re-validated on every call,
// and audit fields are untouched when validation fails.
func (a *Account) Rename(name, userID string, now time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	a.Name = strings.TrimSpace(name)
	a.Touch(userID, now)
	return nil
}

// ChangeType switches the account between asset and liability.
func (a *Account) ChangeType(accountType AccountType, userID string, now time.Time) error {
	if _, err := ParseAccountType(string(accountType)); err != nil {
		return err
	}
	a.AccountType = accountType
	a.Touch(userID, now)
	return nil
}

// ChangeIBAN replaces the account IBAN. A nil IBAN clears it.
func (a *Account) ChangeIBAN(iban *IBAN, userID string, now time.Time) {
	a.IBAN = iban
	a.Touch(userID, now)
}

// ToggleSavings flips the savings flag.
func (a *Account) ToggleSavings(userID string, now time.Time) {
	a.IsSavings = !a.IsSavings
	a.Touch(userID, now)
}

// SetOverdraftLimit replaces the overdraft limit.
func (a *Account) SetOverdraftLimit(limit Money, userID string, now time.Time) {
	a.OverdraftLimit = limit
	a.Touch(userID, now)
}

// SetCreditLimit replaces the credit limit.
func (a *Account) SetCreditLimit(limit Money, userID string, now time.Time) {
	a.CreditLimit = limit
	a.Touch(userID, now)
}

// SetPaymentDueDate replaces the expected payment due date. Nil clears it.
func (a *Account) SetPaymentDueDate(due *ExpectedPaymentDueDate, userID string, now time.Time) {
	a.PaymentDueDate = due
	a.Touch(userID, now)
}

// validateName rejects empty or whitespace-only names.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
	}
	return nil
}
