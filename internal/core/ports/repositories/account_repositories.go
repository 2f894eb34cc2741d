package repositories

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by name.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ExistsByName reports whether any account other than excludeID carries the name.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)

	// ExistsByIBAN reports whether any account other than excludeID carries the IBAN.
	ExistsByIBAN(ctx context.Context, iban string, excludeID string) (bool, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
