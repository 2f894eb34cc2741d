package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	"github.com/Oost-hash/Budget-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRuleRepository struct {
	pool *pgxpool.Pool
}

// newPgxRuleRepository creates a new repository for rule data.
func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.RuleRepositoryFacade {
	return &PgxRuleRepository{pool: pool}
}

var _ portsrepo.RuleRepositoryFacade = (*PgxRuleRepository)(nil)

func toModelRule(d domain.Rule) models.Rule {
	m := models.Rule{
		RuleID:              d.RuleID,
		PayeeID:             d.PayeeID,
		CategoryID:          d.CategoryID,
		DescriptionTemplate: d.DescriptionTemplate,
		IsRecurring:         d.IsRecurring,
		IsActive:            d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Amount != nil {
		amount := d.Amount.Amount()
		currency := d.Amount.Currency()
		m.Amount = &amount
		m.AmountCurrency = &currency
	}
	if d.Frequency != nil {
		freq := d.Frequency.String()
		m.Frequency = &freq
	}
	return m
}

func toDomainRule(m models.Rule) (domain.Rule, error) {
	d := domain.Rule{
		RuleID:              m.RuleID,
		PayeeID:             m.PayeeID,
		CategoryID:          m.CategoryID,
		DescriptionTemplate: m.DescriptionTemplate,
		IsRecurring:         m.IsRecurring,
		IsActive:            m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.Amount != nil && m.AmountCurrency != nil {
		amount, err := domain.NewMoney(*m.Amount, *m.AmountCurrency)
		if err != nil {
			return domain.Rule{}, err
		}
		d.Amount = &amount
	}
	if m.Frequency != nil {
		freq, err := domain.ParseFrequency(*m.Frequency)
		if err != nil {
			return domain.Rule{}, err
		}
		d.Frequency = &freq
	}
	return d, nil
}

const ruleColumns = `rule_id, payee_id, category_id, amount, amount_currency, description_template, is_recurring, frequency, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanRule(row pgx.Row) (models.Rule, error) {
	var m models.Rule
	err := row.Scan(
		&m.RuleID, &m.PayeeID, &m.CategoryID, &m.Amount, &m.AmountCurrency,
		&m.DescriptionTemplate, &m.IsRecurring, &m.Frequency, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRuleRepository) queryRules(ctx context.Context, query string, args ...any) ([]domain.Rule, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	rules := []domain.Rule{}
	for rows.Next() {
		m, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule row: %w", err)
		}
		rule, err := toDomainRule(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map rule %s: %w", m.RuleID, err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// SaveRule inserts a new rule.
func (r *PgxRuleRepository) SaveRule(ctx context.Context, rule domain.Rule) error {
	m := toModelRule(rule)

	query := `
		INSERT INTO rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RuleID, m.PayeeID, m.CategoryID, m.Amount, m.AmountCurrency,
		m.DescriptionTemplate, m.IsRecurring, m.Frequency, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rule %s violates a uniqueness constraint", apperrors.ErrConflict, m.RuleID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: rule %s references a missing payee or category", apperrors.ErrValidation, m.RuleID)
		}
		return fmt.Errorf("failed to save rule %s: %w", m.RuleID, err)
	}
	return nil
}

// FindRuleByID retrieves a rule by its ID.
func (r *PgxRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM rules WHERE rule_id = $1;`

	m, err := scanRule(r.pool.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule %s: %w", ruleID, err)
	}

	rule, err := toDomainRule(m)
	if err != nil {
		return nil, fmt.Errorf("failed to map rule %s: %w", ruleID, err)
	}
	return &rule, nil
}

// ListRules retrieves all rules, newest first.
func (r *PgxRuleRepository) ListRules(ctx context.Context) ([]domain.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM rules ORDER BY created_at DESC;`
	return r.queryRules(ctx, query)
}

// FindByPayeeID retrieves the rules bound to one payee.
func (r *PgxRuleRepository) FindByPayeeID(ctx context.Context, payeeID string) ([]domain.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM rules WHERE payee_id = $1 ORDER BY created_at DESC;`
	return r.queryRules(ctx, query, payeeID)
}

// FindRecurring retrieves all recurring rules.
func (r *PgxRuleRepository) FindRecurring(ctx context.Context) ([]domain.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM rules WHERE is_recurring ORDER BY created_at DESC;`
	return r.queryRules(ctx, query)
}

// UpdateRule updates an existing rule.
func (r *PgxRuleRepository) UpdateRule(ctx context.Context, rule domain.Rule) error {
	m := toModelRule(rule)

	query := `
		UPDATE rules
		SET category_id = $2, amount = $3, amount_currency = $4, description_template = $5,
		    is_recurring = $6, frequency = $7, is_active = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE rule_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.RuleID, m.CategoryID, m.Amount, m.AmountCurrency, m.DescriptionTemplate,
		m.IsRecurring, m.Frequency, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: rule %s references a missing category", apperrors.ErrValidation, m.RuleID)
		}
		return fmt.Errorf("failed to update rule %s: %w", m.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRule removes a rule.
func (r *PgxRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rules WHERE rule_id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
