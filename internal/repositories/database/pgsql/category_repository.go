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

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		GroupID:    d.GroupID,
		Position:   d.Position,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		GroupID:    m.GroupID,
		Position:   m.Position,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const categoryColumns = `category_id, name, group_id, position, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID, &m.Name, &m.GroupID, &m.Position,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	return categories, rows.Err()
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.GroupID, m.Position,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %s violates a uniqueness constraint", apperrors.ErrConflict, m.CategoryID)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	m, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	category := toDomainCategory(m)
	return &category, nil
}

// ListCategories retrieves all categories, grouped scopes first, each scope
// ordered by position.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY group_id NULLS LAST, position;`
	return r.queryCategories(ctx, query)
}

// FindByGroupID retrieves the categories of one group ordered by position.
func (r *PgxCategoryRepository) FindByGroupID(ctx context.Context, groupID string) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE group_id = $1 ORDER BY position;`
	return r.queryCategories(ctx, query, groupID)
}

// FindWithoutGroup retrieves the ungrouped categories ordered by position.
func (r *PgxCategoryRepository) FindWithoutGroup(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE group_id IS NULL ORDER BY position;`
	return r.queryCategories(ctx, query)
}

// ExistsByNameInGroup reports whether another category carries the name in
// the given scope.
func (r *PgxCategoryRepository) ExistsByNameInGroup(ctx context.Context, name string, groupID *string, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE name = $1 AND group_id IS NOT DISTINCT FROM $2 AND category_id <> $3
		);
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, groupID, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return exists, nil
}

// CountByGroup returns how many categories live in the given scope.
func (r *PgxCategoryRepository) CountByGroup(ctx context.Context, groupID *string) (int, error) {
	query := `SELECT COUNT(*) FROM categories WHERE group_id IS NOT DISTINCT FROM $1;`
	var count int
	if err := r.pool.QueryRow(ctx, query, groupID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// UpdateCategory updates an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, group_id = $3, position = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.GroupID, m.Position, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %s violates a uniqueness constraint", apperrors.ErrConflict, m.CategoryID)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Positions of its former neighbours are
// left untouched; gaps are acceptable, only relative order matters.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category %s is still referenced", apperrors.ErrConflict, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
