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

type PgxPayeeRepository struct {
	pool *pgxpool.Pool
}

// newPgxPayeeRepository creates a new repository for payee data.
func newPgxPayeeRepository(pool *pgxpool.Pool) portsrepo.PayeeRepositoryFacade {
	return &PgxPayeeRepository{pool: pool}
}

var _ portsrepo.PayeeRepositoryFacade = (*PgxPayeeRepository)(nil)

func toModelPayee(d domain.Payee) models.Payee {
	m := models.Payee{
		PayeeID: d.PayeeID,
		Name:    d.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.IBAN != nil {
		iban := d.IBAN.String()
		m.IBAN = &iban
	}
	return m
}

func toDomainPayee(m models.Payee) (domain.Payee, error) {
	d := domain.Payee{
		PayeeID: m.PayeeID,
		Name:    m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.IBAN != nil {
		iban, err := domain.NewIBAN(*m.IBAN)
		if err != nil {
			return domain.Payee{}, err
		}
		d.IBAN = &iban
	}
	return d, nil
}

// SavePayee inserts a new payee.
func (r *PgxPayeeRepository) SavePayee(ctx context.Context, payee domain.Payee) error {
	m := toModelPayee(payee)

	query := `
		INSERT INTO payees (payee_id, name, iban, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query, m.PayeeID, m.Name, m.IBAN, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payee %s violates a uniqueness constraint", apperrors.ErrConflict, m.PayeeID)
		}
		return fmt.Errorf("failed to save payee %s: %w", m.PayeeID, err)
	}
	return nil
}

// FindPayeeByID retrieves a payee by its ID.
func (r *PgxPayeeRepository) FindPayeeByID(ctx context.Context, payeeID string) (*domain.Payee, error) {
	query := `
		SELECT payee_id, name, iban, created_at, created_by, last_updated_at, last_updated_by
		FROM payees
		WHERE payee_id = $1;
	`
	var m models.Payee
	err := r.pool.QueryRow(ctx, query, payeeID).Scan(
		&m.PayeeID, &m.Name, &m.IBAN, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payee %s: %w", payeeID, err)
	}

	payee, err := toDomainPayee(m)
	if err != nil {
		return nil, fmt.Errorf("failed to map payee %s: %w", payeeID, err)
	}
	return &payee, nil
}

// ListPayees retrieves all payees ordered by name.
func (r *PgxPayeeRepository) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	query := `
		SELECT payee_id, name, iban, created_at, created_by, last_updated_at, last_updated_by
		FROM payees
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	defer rows.Close()

	payees := []domain.Payee{}
	for rows.Next() {
		var m models.Payee
		if err := rows.Scan(&m.PayeeID, &m.Name, &m.IBAN, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan payee row: %w", err)
		}
		payee, err := toDomainPayee(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map payee %s: %w", m.PayeeID, err)
		}
		payees = append(payees, payee)
	}
	return payees, rows.Err()
}

// ExistsByName reports whether another payee carries the name.
func (r *PgxPayeeRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payees WHERE name = $1 AND payee_id <> $2);`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payee name: %w", err)
	}
	return exists, nil
}

// ExistsByIBAN reports whether another payee carries the IBAN.
func (r *PgxPayeeRepository) ExistsByIBAN(ctx context.Context, iban string, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payees WHERE iban = $1 AND payee_id <> $2);`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, iban, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payee IBAN: %w", err)
	}
	return exists, nil
}

// UpdatePayee updates an existing payee.
func (r *PgxPayeeRepository) UpdatePayee(ctx context.Context, payee domain.Payee) error {
	m := toModelPayee(payee)

	query := `
		UPDATE payees
		SET name = $2, iban = $3, last_updated_at = $4, last_updated_by = $5
		WHERE payee_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, m.PayeeID, m.Name, m.IBAN, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payee %s violates a uniqueness constraint", apperrors.ErrConflict, m.PayeeID)
		}
		return fmt.Errorf("failed to update payee %s: %w", m.PayeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePayee removes a payee.
func (r *PgxPayeeRepository) DeletePayee(ctx context.Context, payeeID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payees WHERE payee_id = $1;`, payeeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: payee %s is still referenced", apperrors.ErrConflict, payeeID)
		}
		return fmt.Errorf("failed to delete payee %s: %w", payeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
