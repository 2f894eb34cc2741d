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

// PayeeService implements the payee use cases. A payee referenced by
// transactions or rules cannot be deleted.
type PayeeService struct {
	BaseService
	payeeRepo  portsrepo.PayeeRepositoryFacade
	ruleReader portsrepo.RuleReader
	txnReader  portsrepo.TransactionReader
}

var _ portssvc.PayeeSvcFacade = (*PayeeService)(nil)

func NewPayeeService(payeeRepo portsrepo.PayeeRepositoryFacade, ruleReader portsrepo.RuleReader, txnReader portsrepo.TransactionReader) *PayeeService {
	return &PayeeService{payeeRepo: payeeRepo, ruleReader: ruleReader, txnReader: txnReader}
}

func (s *PayeeService) CreatePayee(ctx context.Context, req dto.CreatePayeeRequest, userID string) (*domain.Payee, error) {
	exists, err := s.payeeRepo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check payee name uniqueness", slog.String("name", req.Name))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: payee name %q already in use", apperrors.ErrConflict, req.Name)
	}

	iban, err := s.resolveIBAN(ctx, req.IBAN, "")
	if err != nil {
		return nil, err
	}

	payee, err := domain.NewPayee(uuid.NewString(), req.Name, iban, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.payeeRepo.SavePayee(ctx, *payee); err != nil {
		s.LogError(ctx, err, "Failed to save payee", slog.String("payee_id", payee.PayeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Payee created", slog.String("payee_id", payee.PayeeID))
	return payee, nil
}

func (s *PayeeService) GetPayeeByID(ctx context.Context, payeeID string) (*domain.Payee, error) {
	payee, err := s.payeeRepo.FindPayeeByID(ctx, payeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payee", slog.String("payee_id", payeeID))
		}
		return nil, err
	}
	return payee, nil
}

func (s *PayeeService) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	payees, err := s.payeeRepo.ListPayees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payees")
		return nil, err
	}
	if payees == nil {
		payees = []domain.Payee{}
	}
	return payees, nil
}

func (s *PayeeService) UpdatePayee(ctx context.Context, payeeID string, req dto.UpdatePayeeRequest, userID string) (*domain.Payee, error) {
	payee, err := s.GetPayeeByID(ctx, payeeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if req.Name != nil && *req.Name != payee.Name {
		exists, err := s.payeeRepo.ExistsByName(ctx, *req.Name, payeeID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: payee name %q already in use", apperrors.ErrConflict, *req.Name)
		}
		if err := payee.Rename(*req.Name, userID, now); err != nil {
			return nil, err
		}
	}

	if req.IBAN != nil {
		iban, err := s.resolveIBAN(ctx, req.IBAN, payeeID)
		if err != nil {
			return nil, err
		}
		payee.ChangeIBAN(iban, userID, now)
	}

	if err := s.payeeRepo.UpdatePayee(ctx, *payee); err != nil {
		s.LogError(ctx, err, "Failed to update payee", slog.String("payee_id", payeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Payee updated", slog.String("payee_id", payeeID))
	return payee, nil
}

func (s *PayeeService) DeletePayee(ctx context.Context, payeeID string) error {
	if _, err := s.GetPayeeByID(ctx, payeeID); err != nil {
		return err
	}

	referenced, err := s.txnReader.HasTransactionsForPayee(ctx, payeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check payee references", slog.String("payee_id", payeeID))
		return err
	}
	if referenced {
		return fmt.Errorf("%w: payee is referenced by transactions", apperrors.ErrConflict)
	}

	rules, err := s.ruleReader.FindByPayeeID(ctx, payeeID)
	if err != nil {
		return err
	}
	if len(rules) > 0 {
		return fmt.Errorf("%w: payee has rules attached", apperrors.ErrConflict)
	}

	if err := s.payeeRepo.DeletePayee(ctx, payeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete payee", slog.String("payee_id", payeeID))
		return err
	}

	s.LogInfo(ctx, "Payee deleted", slog.String("payee_id", payeeID))
	return nil
}

// resolveIBAN turns an optional wire IBAN into a domain value. An empty
// string clears the IBAN; a non-empty one is validated and checked for
// uniqueness across payees.
func (s *PayeeService) resolveIBAN(ctx context.Context, raw *string, excludeID string) (*domain.IBAN, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	iban, err := domain.NewIBAN(*raw)
	if err != nil {
		return nil, err
	}
	exists, err := s.payeeRepo.ExistsByIBAN(ctx, iban.String(), excludeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: IBAN already assigned to another payee", apperrors.ErrConflict)
	}
	return &iban, nil
}
