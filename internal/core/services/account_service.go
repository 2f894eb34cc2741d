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

// AccountService implements the account use cases on top of the account
// repository. Deletion consults the transaction repository to keep
// referenced accounts alive.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnReader   portsrepo.TransactionReader
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, txnReader portsrepo.TransactionReader) *AccountService {
	return &AccountService{accountRepo: accountRepo, txnReader: txnReader}
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	exists, err := s.accountRepo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check account name uniqueness", slog.String("name", req.Name))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: account name %q already in use", apperrors.ErrConflict, req.Name)
	}

	iban, err := s.resolveIBAN(ctx, req.IBAN, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account, err := domain.NewAccount(uuid.NewString(), req.Name, req.AccountType, iban, userID, now)
	if err != nil {
		return nil, err
	}
	account.IsSavings = req.IsSavings

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	limit, offset = normalizePagination(limit, offset)
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if req.Name != nil && *req.Name != account.Name {
		exists, err := s.accountRepo.ExistsByName(ctx, *req.Name, accountID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: account name %q already in use", apperrors.ErrConflict, *req.Name)
		}
		if err := account.Rename(*req.Name, userID, now); err != nil {
			return nil, err
		}
	}

	if req.AccountType != nil {
		if err := account.ChangeType(*req.AccountType, userID, now); err != nil {
			return nil, err
		}
	}

	if req.IBAN != nil {
		iban, err := s.resolveIBAN(ctx, req.IBAN, accountID)
		if err != nil {
			return nil, err
		}
		account.ChangeIBAN(iban, userID, now)
	}

	if req.IsSavings != nil && *req.IsSavings != account.IsSavings {
		account.ToggleSavings(userID, now)
	}

	if req.OverdraftLimit != nil {
		limit, err := req.OverdraftLimit.ToDomain()
		if err != nil {
			return nil, err
		}
		account.SetOverdraftLimit(limit, userID, now)
	}

	if req.CreditLimit != nil {
		limit, err := req.CreditLimit.ToDomain()
		if err != nil {
			return nil, err
		}
		account.SetCreditLimit(limit, userID, now)
	}

	if req.ClearPaymentDueDate {
		account.SetPaymentDueDate(nil, userID, now)
	} else if req.PaymentDueDate != nil {
		due, err := req.PaymentDueDate.ToDomain()
		if err != nil {
			return nil, err
		}
		account.SetPaymentDueDate(&due, userID, now)
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return err
	}

	referenced, err := s.txnReader.HasEntriesForAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account references", slog.String("account_id", accountID))
		return err
	}
	if referenced {
		return fmt.Errorf("%w: account has recorded entries", apperrors.ErrConflict)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// resolveIBAN turns an optional wire IBAN into a domain value. An empty
// string clears the IBAN; a non-empty one is validated and checked for
// uniqueness across accounts.
func (s *AccountService) resolveIBAN(ctx context.Context, raw *string, excludeID string) (*domain.IBAN, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	iban, err := domain.NewIBAN(*raw)
	if err != nil {
		return nil, err
	}
	exists, err := s.accountRepo.ExistsByIBAN(ctx, iban.String(), excludeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: IBAN already assigned to another account", apperrors.ErrConflict)
	}
	return &iban, nil
}
