package domain

import (
	"fmt"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/google/uuid"
)

// TransactionType is the closed set of transaction kinds. The kind fixes the
// structural shape of the transaction: which linkage fields are required and
// how many entries it owns.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// ParseTransactionType converts the string form back to a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, Transfer:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, s)
	}
}

// Entry is one signed posting of money against one account. Positive amounts
// are inflows, negative amounts outflows. An entry is exclusively owned by
// its transaction and never lives on its own.
type Entry struct {
	EntryID       string `json:"entryID"`       // Primary Key (UUID)
	TransactionID string `json:"transactionID"` // FK -> Transaction (Not Null)
	AccountID     string `json:"accountID"`     // FK -> Account (Not Null)
	Amount        Money  `json:"amount"`        // Signed: positive = inflow, negative = outflow
}

// Transaction is the invariant-bearing aggregate: it owns one or two entries
// whose shape is fixed by the transaction type.
//
//	INCOME:   payee and category required, one positive entry
//	EXPENSE:  payee and category required, one negative entry
//	TRANSFER: payee and category absent, two entries on distinct accounts
//	          that balance to exactly zero
//
// Construction always goes through NewIncome, NewExpense or NewTransfer; the
// factories take unsigned magnitudes and derive entry signs themselves. The
// type is immutable after construction, and so are the payee and category
// links: the only path to a different shape is delete and recreate.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID), minted by the caller
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`
	PayeeID       *string         `json:"payeeID,omitempty"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	Entries       []Entry         `json:"entries"`
	AuditFields
}

// NewIncome creates an income transaction: money flowing into the target
// account. The amount is an unsigned magnitude and must be positive.
func NewIncome(id string, date time.Time, description, payeeID, categoryID, accountID string, amount Money, userID string, now time.Time) (*Transaction, error) {
	if err := validateLinkage(Income, id, payeeID, categoryID, accountID); err != nil {
		return nil, err
	}
	if err := validateMagnitude(amount); err != nil {
		return nil, err
	}
	txn := newTransaction(id, date, description, Income, &payeeID, &categoryID, userID, now)
	txn.Entries = []Entry{newEntry(id, accountID, amount)}
	return txn, nil
}

// NewExpense creates an expense transaction: money flowing out of the source
// account. The amount is an unsigned magnitude and must be positive; the
// single entry is negated by the engine.
func NewExpense(id string, date time.Time, description, payeeID, categoryID, accountID string, amount Money, userID string, now time.Time) (*Transaction, error) {
	if err := validateLinkage(Expense, id, payeeID, categoryID, accountID); err != nil {
		return nil, err
	}
	if err := validateMagnitude(amount); err != nil {
		return nil, err
	}
	txn := newTransaction(id, date, description, Expense, &payeeID, &categoryID, userID, now)
	txn.Entries = []Entry{newEntry(id, accountID, amount.Neg())}
	return txn, nil
}

// NewTransfer creates a transfer between two distinct accounts: one negative
// entry on the source, one positive entry of equal magnitude on the target.
// Transfers carry no payee and no category by construction.
func NewTransfer(id string, date time.Time, description, fromAccountID, toAccountID string, amount Money, userID string, now time.Time) (*Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	if fromAccountID == "" || toAccountID == "" {
		return nil, fmt.Errorf("%w: transfer requires both a source and a target account", apperrors.ErrValidation)
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: transfer accounts must be distinct", apperrors.ErrValidation)
	}
	if err := validateMagnitude(amount); err != nil {
		return nil, err
	}
	txn := newTransaction(id, date, description, Transfer, nil, nil, userID, now)
	txn.Entries = []Entry{
		newEntry(id, fromAccountID, amount.Neg()),
		newEntry(id, toAccountID, amount),
	}
	return txn, nil
}

// UpdateDate changes the transaction date.
func (t *Transaction) UpdateDate(date time.Time, userID string, now time.Time) {
	t.Date = date
	t.Touch(userID, now)
}

// UpdateDescription changes the free-text description.
func (t *Transaction) UpdateDescription(description, userID string, now time.Time) {
	t.Description = description
	t.Touch(userID, now)
}

// Validate re-checks the structural invariant table for the transaction's
// type. Factories produce valid aggregates; this re-check exists for
// aggregates rehydrated from storage.
func (t *Transaction) Validate() error {
	switch t.Type {
	case Income, Expense:
		if t.PayeeID == nil || *t.PayeeID == "" {
			return fmt.Errorf("%w: %s must have a payee", apperrors.ErrValidation, t.Type)
		}
		if t.CategoryID == nil || *t.CategoryID == "" {
			return fmt.Errorf("%w: %s must have a category", apperrors.ErrValidation, t.Type)
		}
		if len(t.Entries) != 1 {
			return fmt.Errorf("%w: %s must have exactly one entry, got %d", apperrors.ErrValidation, t.Type, len(t.Entries))
		}
		if t.Type == Income && !t.Entries[0].Amount.IsPositive() {
			return fmt.Errorf("%w: income entry must be positive", apperrors.ErrValidation)
		}
		if t.Type == Expense && !t.Entries[0].Amount.IsNegative() {
			return fmt.Errorf("%w: expense entry must be negative", apperrors.ErrValidation)
		}
	case Transfer:
		if t.PayeeID != nil {
			return fmt.Errorf("%w: transfer cannot have a payee", apperrors.ErrValidation)
		}
		if t.CategoryID != nil {
			return fmt.Errorf("%w: transfer cannot have a category", apperrors.ErrValidation)
		}
		if len(t.Entries) != 2 {
			return fmt.Errorf("%w: transfer must have exactly two entries, got %d", apperrors.ErrValidation, len(t.Entries))
		}
		if t.Entries[0].AccountID == t.Entries[1].AccountID {
			return fmt.Errorf("%w: transfer accounts must be distinct", apperrors.ErrValidation)
		}
		sum, err := t.Entries[0].Amount.Add(t.Entries[1].Amount)
		if err != nil {
			return err
		}
		if !sum.IsZero() {
			return fmt.Errorf("%w: transfer entries must balance to zero, got %s", apperrors.ErrValidation, sum)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	return nil
}

func newTransaction(id string, date time.Time, description string, txnType TransactionType, payeeID, categoryID *string, userID string, now time.Time) *Transaction {
	return &Transaction{
		TransactionID: id,
		Date:          date,
		Description:   description,
		Type:          txnType,
		PayeeID:       payeeID,
		CategoryID:    categoryID,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// newEntry mints the entry identity inside the aggregate; entries never
// cross a use-case boundary on their own.
func newEntry(transactionID, accountID string, amount Money) Entry {
	return Entry{
		EntryID:       uuid.NewString(),
		TransactionID: transactionID,
		AccountID:     accountID,
		Amount:        amount,
	}
}

func validateLinkage(txnType TransactionType, id, payeeID, categoryID, accountID string) error {
	if id == "" {
		return fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	if payeeID == "" {
		return fmt.Errorf("%w: %s must have a payee", apperrors.ErrValidation, txnType)
	}
	if categoryID == "" {
		return fmt.Errorf("%w: %s must have a category", apperrors.ErrValidation, txnType)
	}
	if accountID == "" {
		return fmt.Errorf("%w: %s must reference an account", apperrors.ErrValidation, txnType)
	}
	return nil
}

func validateMagnitude(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	return nil
}
