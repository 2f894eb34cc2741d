package repositories

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction together with its entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions (entries
	// included), newest first.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)

	// ListTransactionsByAccountID retrieves the transactions that post at
	// least one entry against the account, newest first.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error)

	// HasTransactionsForPayee reports whether any transaction references the payee.
	HasTransactionsForPayee(ctx context.Context, payeeID string) (bool, error)

	// HasTransactionsForCategory reports whether any transaction references the category.
	HasTransactionsForCategory(ctx context.Context, categoryID string) (bool, error)

	// HasEntriesForAccount reports whether any entry posts against the account.
	HasEntriesForAccount(ctx context.Context, accountID string) (bool, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a transaction and all of its entries as one
	// atomic unit.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates the mutable header fields (date, description).
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and all of its entries as one
	// atomic unit; no partial deletion state is ever observable.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with database transaction
// capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
