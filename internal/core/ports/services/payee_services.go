package services

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
)

// PayeeSvcFacade bundles the payee use cases.
type PayeeSvcFacade interface {
	// CreatePayee persists a new payee after name/IBAN uniqueness checks.
	CreatePayee(ctx context.Context, req dto.CreatePayeeRequest, userID string) (*domain.Payee, error)

	// GetPayeeByID retrieves a specific payee.
	GetPayeeByID(ctx context.Context, payeeID string) (*domain.Payee, error)

	// ListPayees retrieves all payees.
	ListPayees(ctx context.Context) ([]domain.Payee, error)

	// UpdatePayee applies rename and IBAN changes after uniqueness checks.
	UpdatePayee(ctx context.Context, payeeID string, req dto.UpdatePayeeRequest, userID string) (*domain.Payee, error)

	// DeletePayee removes a payee that no transaction references.
	DeletePayee(ctx context.Context, payeeID string) error
}
