package repositories

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// RuleReader defines read operations for rule data.
type RuleReader interface {
	// FindRuleByID retrieves a specific rule by its unique identifier.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error)

	// ListRules retrieves all rules.
	ListRules(ctx context.Context) ([]domain.Rule, error)

	// FindByPayeeID retrieves the rules bound to one payee.
	FindByPayeeID(ctx context.Context, payeeID string) ([]domain.Rule, error)

	// FindRecurring retrieves all recurring rules.
	FindRecurring(ctx context.Context) ([]domain.Rule, error)
}

// RuleWriter defines write operations for rule data.
type RuleWriter interface {
	// SaveRule persists a new rule.
	SaveRule(ctx context.Context, rule domain.Rule) error

	// UpdateRule updates an existing rule.
	UpdateRule(ctx context.Context, rule domain.Rule) error

	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, ruleID string) error
}

// RuleRepositoryFacade combines all rule-related repository interfaces.
type RuleRepositoryFacade interface {
	RuleReader
	RuleWriter
}
