package repositories

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// PayeeReader defines read operations for payee data.
type PayeeReader interface {
	// FindPayeeByID retrieves a specific payee by its unique identifier.
	FindPayeeByID(ctx context.Context, payeeID string) (*domain.Payee, error)

	// ListPayees retrieves all payees ordered by name.
	ListPayees(ctx context.Context) ([]domain.Payee, error)

	// ExistsByName reports whether any payee other than excludeID carries the name.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)

	// ExistsByIBAN reports whether any payee other than excludeID carries the IBAN.
	ExistsByIBAN(ctx context.Context, iban string, excludeID string) (bool, error)
}

// PayeeWriter defines write operations for payee data.
type PayeeWriter interface {
	// SavePayee persists a new payee.
	SavePayee(ctx context.Context, payee domain.Payee) error

	// UpdatePayee updates an existing payee.
	UpdatePayee(ctx context.Context, payee domain.Payee) error

	// DeletePayee removes a payee.
	DeletePayee(ctx context.Context, payeeID string) error
}

// PayeeRepositoryFacade combines all payee-related repository interfaces.
type PayeeRepositoryFacade interface {
	PayeeReader
	PayeeWriter
}
