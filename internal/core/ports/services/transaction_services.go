package services

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its entries.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves transactions posting against one account.
	ListTransactionsByAccount(ctx context.Context, accountID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data.
type TransactionWriterSvc interface {
	// CreateIncome creates an income transaction via the domain factory.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Transaction, error)

	// CreateExpense creates an expense transaction via the domain factory.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Transaction, error)

	// CreateTransfer creates a transfer between two accounts via the domain factory.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction changes date and description. Requests carrying a
	// payee or category change fail; the only path to a different linkage is
	// delete and recreate.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and its entries atomically.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
