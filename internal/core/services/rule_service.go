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

// RuleService implements the payee rule use cases. Rules only describe
// matching patterns and recurrence; nothing here executes them.
type RuleService struct {
	BaseService
	ruleRepo       portsrepo.RuleRepositoryFacade
	payeeReader    portsrepo.PayeeReader
	categoryReader portsrepo.CategoryReader
}

var _ portssvc.RuleSvcFacade = (*RuleService)(nil)

func NewRuleService(ruleRepo portsrepo.RuleRepositoryFacade, payeeReader portsrepo.PayeeReader, categoryReader portsrepo.CategoryReader) *RuleService {
	return &RuleService{ruleRepo: ruleRepo, payeeReader: payeeReader, categoryReader: categoryReader}
}

func (s *RuleService) CreateRule(ctx context.Context, req dto.CreateRuleRequest, userID string) (*domain.Rule, error) {
	if err := s.ensurePayeeExists(ctx, req.PayeeID); err != nil {
		return nil, err
	}
	if err := s.ensureCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	var amount *domain.Money
	if req.Amount != nil {
		m, err := req.Amount.ToDomain()
		if err != nil {
			return nil, err
		}
		amount = &m
	}

	var frequency *domain.Frequency
	if req.Frequency != nil {
		f, err := domain.ParseFrequency(*req.Frequency)
		if err != nil {
			return nil, err
		}
		frequency = &f
	}

	rule, err := domain.NewRule(uuid.NewString(), req.PayeeID, req.CategoryID, amount, req.DescriptionTemplate, req.IsRecurring, frequency, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.ruleRepo.SaveRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to save rule", slog.String("rule_id", rule.RuleID))
		return nil, err
	}

	s.LogInfo(ctx, "Rule created", slog.String("rule_id", rule.RuleID), slog.String("payee_id", rule.PayeeID))
	return rule, nil
}

func (s *RuleService) GetRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find rule", slog.String("rule_id", ruleID))
		}
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) ListRules(ctx context.Context) ([]domain.Rule, error) {
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rules")
		return nil, err
	}
	if rules == nil {
		rules = []domain.Rule{}
	}
	return rules, nil
}

func (s *RuleService) ListRecurringRules(ctx context.Context) ([]domain.Rule, error) {
	rules, err := s.ruleRepo.FindRecurring(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules")
		return nil, err
	}
	if rules == nil {
		rules = []domain.Rule{}
	}
	return rules, nil
}

func (s *RuleService) ListRulesByPayee(ctx context.Context, payeeID string) ([]domain.Rule, error) {
	rules, err := s.ruleRepo.FindByPayeeID(ctx, payeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rules by payee", slog.String("payee_id", payeeID))
		return nil, err
	}
	if rules == nil {
		rules = []domain.Rule{}
	}
	return rules, nil
}

func (s *RuleService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.Rule, error) {
	rule, err := s.GetRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Pattern fields merge the request over the current state; clear flags
	// win over values.
	categoryID := rule.CategoryID
	if req.ClearCategory {
		categoryID = nil
	} else if req.CategoryID != nil {
		if err := s.ensureCategoryExists(ctx, req.CategoryID); err != nil {
			return nil, err
		}
		categoryID = req.CategoryID
	}

	amount := rule.Amount
	if req.ClearAmount {
		amount = nil
	} else if req.Amount != nil {
		m, err := req.Amount.ToDomain()
		if err != nil {
			return nil, err
		}
		amount = &m
	}

	descriptionTemplate := rule.DescriptionTemplate
	if req.ClearDescriptionTemplate {
		descriptionTemplate = nil
	} else if req.DescriptionTemplate != nil {
		descriptionTemplate = req.DescriptionTemplate
	}

	if err := rule.UpdatePattern(categoryID, amount, descriptionTemplate, userID, now); err != nil {
		return nil, err
	}

	if req.IsRecurring != nil || req.Frequency != nil {
		isRecurring := rule.IsRecurring
		if req.IsRecurring != nil {
			isRecurring = *req.IsRecurring
		}
		var frequency *domain.Frequency
		if isRecurring {
			frequency = rule.Frequency
			if req.Frequency != nil {
				f, err := domain.ParseFrequency(*req.Frequency)
				if err != nil {
					return nil, err
				}
				frequency = &f
			}
		}
		if err := rule.SetRecurrence(isRecurring, frequency, userID, now); err != nil {
			return nil, err
		}
	}

	if req.IsActive != nil {
		if *req.IsActive {
			rule.Activate(userID, now)
		} else {
			rule.Deactivate(userID, now)
		}
	}

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update rule", slog.String("rule_id", ruleID))
		return nil, err
	}

	s.LogInfo(ctx, "Rule updated", slog.String("rule_id", ruleID))
	return rule, nil
}

func (s *RuleService) DeleteRule(ctx context.Context, ruleID string) error {
	if _, err := s.GetRuleByID(ctx, ruleID); err != nil {
		return err
	}

	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		s.LogError(ctx, err, "Failed to delete rule", slog.String("rule_id", ruleID))
		return err
	}

	s.LogInfo(ctx, "Rule deleted", slog.String("rule_id", ruleID))
	return nil
}

func (s *RuleService) ensurePayeeExists(ctx context.Context, payeeID string) error {
	if _, err := s.payeeReader.FindPayeeByID(ctx, payeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: payee %s does not exist", apperrors.ErrValidation, payeeID)
		}
		return err
	}
	return nil
}

func (s *RuleService) ensureCategoryExists(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryReader.FindCategoryByID(ctx, *categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, *categoryID)
		}
		return err
	}
	return nil
}
