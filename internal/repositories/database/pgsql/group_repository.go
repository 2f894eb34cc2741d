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

type PgxGroupRepository struct {
	pool *pgxpool.Pool
}

// newPgxGroupRepository creates a new repository for group data.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{pool: pool}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

func toModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID: d.GroupID,
		Name:    d.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID: m.GroupID,
		Name:    m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveGroup inserts a new group.
func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	m := toModelGroup(group)

	query := `
		INSERT INTO groups (group_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query, m.GroupID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: group %s violates a uniqueness constraint", apperrors.ErrConflict, m.GroupID)
		}
		return fmt.Errorf("failed to save group %s: %w", m.GroupID, err)
	}
	return nil
}

// FindGroupByID retrieves a group by its ID.
func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	query := `
		SELECT group_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM groups
		WHERE group_id = $1;
	`
	var m models.Group
	err := r.pool.QueryRow(ctx, query, groupID).Scan(
		&m.GroupID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group %s: %w", groupID, err)
	}

	group := toDomainGroup(m)
	return &group, nil
}

// ListGroups retrieves all groups ordered by name.
func (r *PgxGroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	query := `
		SELECT group_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM groups
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var m models.Group
		if err := rows.Scan(&m.GroupID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, toDomainGroup(m))
	}
	return groups, rows.Err()
}

// ExistsByName reports whether another group carries the name.
func (r *PgxGroupRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM groups WHERE name = $1 AND group_id <> $2);`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check group name: %w", err)
	}
	return exists, nil
}

// UpdateGroup updates an existing group.
func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	m := toModelGroup(group)

	query := `
		UPDATE groups
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE group_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, m.GroupID, m.Name, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: group %s violates a uniqueness constraint", apperrors.ErrConflict, m.GroupID)
		}
		return fmt.Errorf("failed to update group %s: %w", m.GroupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes a group. The schema detaches its categories via
// ON DELETE SET NULL, so they survive in the ungrouped scope.
func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE group_id = $1;`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group %s: %w", groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
