package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/google/uuid"
)

// TransactionService implements the transaction use cases. All invariant
// enforcement lives in the domain factories; this layer resolves references,
// parses wire values and persists the result atomically.
type TransactionService struct {
	BaseService
	txnRepo        portsrepo.TransactionRepositoryFacade
	accountReader  portsrepo.AccountReader
	payeeReader    portsrepo.PayeeReader
	categoryReader portsrepo.CategoryReader
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountReader portsrepo.AccountReader, payeeReader portsrepo.PayeeReader, categoryReader portsrepo.CategoryReader) *TransactionService {
	return &TransactionService{
		txnRepo:        txnRepo,
		accountReader:  accountReader,
		payeeReader:    payeeReader,
		categoryReader: categoryReader,
	}
}

func (s *TransactionService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Transaction, error) {
	date, err := parseTransactionDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := req.Amount.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := s.ensureLinkageExists(ctx, req.PayeeID, req.CategoryID, req.AccountID); err != nil {
		return nil, err
	}

	txn, err := domain.NewIncome(uuid.NewString(), date, req.Description, req.PayeeID, req.CategoryID, req.AccountID, amount, userID, time.Now())
	if err != nil {
		return nil, err
	}

	return s.saveTransaction(ctx, txn)
}

func (s *TransactionService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Transaction, error) {
	date, err := parseTransactionDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := req.Amount.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := s.ensureLinkageExists(ctx, req.PayeeID, req.CategoryID, req.AccountID); err != nil {
		return nil, err
	}

	txn, err := domain.NewExpense(uuid.NewString(), date, req.Description, req.PayeeID, req.CategoryID, req.AccountID, amount, userID, time.Now())
	if err != nil {
		return nil, err
	}

	return s.saveTransaction(ctx, txn)
}

func (s *TransactionService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transaction, error) {
	date, err := parseTransactionDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := req.Amount.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := s.ensureAccountExists(ctx, req.FromAccountID); err != nil {
		return nil, err
	}
	if err := s.ensureAccountExists(ctx, req.ToAccountID); err != nil {
		return nil, err
	}

	txn, err := domain.NewTransfer(uuid.NewString(), date, req.Description, req.FromAccountID, req.ToAccountID, amount, userID, time.Now())
	if err != nil {
		return nil, err
	}

	return s.saveTransaction(ctx, txn)
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	limit, offset := normalizePagination(params.Limit, params.Offset)
	txns, err := s.txnRepo.ListTransactions(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	limit, offset := normalizePagination(params.Limit, params.Offset)
	txns, err := s.txnRepo.ListTransactionsByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account", slog.String("account_id", accountID))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.PayeeID != nil || req.CategoryID != nil {
		return nil, fmt.Errorf("%w: payee and category are immutable, delete and recreate the transaction", apperrors.ErrValidation)
	}

	now := time.Now()

	if req.Date != nil {
		date, err := parseTransactionDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.UpdateDate(date, userID, now)
	}

	if req.Description != nil {
		txn.UpdateDescription(*req.Description, userID, now)
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *TransactionService) saveTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return txn, nil
}

func (s *TransactionService) ensureLinkageExists(ctx context.Context, payeeID, categoryID, accountID string) error {
	if _, err := s.payeeReader.FindPayeeByID(ctx, payeeID); err != nil {
		return referenceError(err, "payee", payeeID)
	}
	if _, err := s.categoryReader.FindCategoryByID(ctx, categoryID); err != nil {
		return referenceError(err, "category", categoryID)
	}
	return s.ensureAccountExists(ctx, accountID)
}

func (s *TransactionService) ensureAccountExists(ctx context.Context, accountID string) error {
	if _, err := s.accountReader.FindAccountByID(ctx, accountID); err != nil {
		return referenceError(err, "account", accountID)
	}
	return nil
}

func referenceError(err error, kind, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s %s does not exist", apperrors.ErrValidation, kind, id)
	}
	return err
}

// parseTransactionDate accepts calendar dates in ISO-8601 form.
func parseTransactionDate(raw string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", apperrors.ErrValidation, raw)
	}
	return date, nil
}
