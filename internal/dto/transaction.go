package dto

import (
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// CreateIncomeRequest defines the data needed to record an income.
// The amount is an unsigned magnitude; the sign is derived from the type.
type CreateIncomeRequest struct {
	Date        string       `json:"date" binding:"required"` // ISO-8601 date, e.g. 2026-03-03
	Description string       `json:"description"`
	PayeeID     string       `json:"payeeID" binding:"required"`
	CategoryID  string       `json:"categoryID" binding:"required"`
	AccountID   string       `json:"accountID" binding:"required"`
	Amount      MoneyPayload `json:"amount" binding:"required"`
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date        string       `json:"date" binding:"required"`
	Description string       `json:"description"`
	PayeeID     string       `json:"payeeID" binding:"required"`
	CategoryID  string       `json:"categoryID" binding:"required"`
	AccountID   string       `json:"accountID" binding:"required"`
	Amount      MoneyPayload `json:"amount" binding:"required"`
}

// CreateTransferRequest defines the data needed to record a transfer
// between two distinct accounts.
type CreateTransferRequest struct {
	Date          string       `json:"date" binding:"required"`
	Description   string       `json:"description"`
	FromAccountID string       `json:"fromAccountID" binding:"required"`
	ToAccountID   string       `json:"toAccountID" binding:"required"`
	Amount        MoneyPayload `json:"amount" binding:"required"`
}

// UpdateTransactionRequest defines the mutable fields of a recorded
// transaction. Type, payee, category and entries are immutable; the payee and
// category fields are accepted on the wire so the service can reject them
// with an explicit error instead of silently ignoring them.
type UpdateTransactionRequest struct {
	Date        *string `json:"date"`
	Description *string `json:"description"`
	PayeeID     *string `json:"payeeID"`
	CategoryID  *string `json:"categoryID"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID string `form:"accountID"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
}

// EntryResponse defines the data returned for a single ledger entry.
type EntryResponse struct {
	EntryID   string       `json:"entryID"`
	AccountID string       `json:"accountID"`
	Amount    MoneyPayload `json:"amount"`
}

// TransactionResponse defines the data returned for a transaction with
// its entries.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          string                 `json:"date"`
	Description   string                 `json:"description,omitempty"`
	Type          domain.TransactionType `json:"type"`
	PayeeID       *string                `json:"payeeID,omitempty"`
	CategoryID    *string                `json:"categoryID,omitempty"`
	Entries       []EntryResponse        `json:"entries"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	entries := make([]EntryResponse, len(txn.Entries))
	for i, e := range txn.Entries {
		entries[i] = EntryResponse{
			EntryID:   e.EntryID,
			AccountID: e.AccountID,
			Amount:    ToMoneyPayload(e.Amount),
		}
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(time.DateOnly),
		Description:   txn.Description,
		Type:          txn.Type,
		PayeeID:       txn.PayeeID,
		CategoryID:    txn.CategoryID,
		Entries:       entries,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
