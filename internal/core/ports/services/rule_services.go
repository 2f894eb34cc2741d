package services

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
)

// RuleSvcFacade bundles the recurring-payment rule use cases. Rules only
// describe recurrence; nothing here schedules or executes them.
type RuleSvcFacade interface {
	// CreateRule persists a new rule after payee/category existence checks.
	CreateRule(ctx context.Context, req dto.CreateRuleRequest, userID string) (*domain.Rule, error)

	// GetRuleByID retrieves a specific rule.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error)

	// ListRules retrieves all rules.
	ListRules(ctx context.Context) ([]domain.Rule, error)

	// ListRecurringRules retrieves the recurring subset.
	ListRecurringRules(ctx context.Context) ([]domain.Rule, error)

	// ListRulesByPayee retrieves the rules bound to one payee.
	ListRulesByPayee(ctx context.Context, payeeID string) ([]domain.Rule, error)

	// UpdateRule applies pattern, recurrence and active-flag changes.
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.Rule, error)

	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, ruleID string) error
}
