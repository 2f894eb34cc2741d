package services

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account after uniqueness checks.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount applies the requested mutations through the entity's
	// named operations.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount removes an account that no entry references.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
