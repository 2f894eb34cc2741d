package repositories

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories ordered by group and position.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// FindByGroupID retrieves the categories of one group ordered by position.
	FindByGroupID(ctx context.Context, groupID string) ([]domain.Category, error)

	// FindWithoutGroup retrieves the ungrouped categories ordered by position.
	FindWithoutGroup(ctx context.Context) ([]domain.Category, error)

	// ExistsByNameInGroup reports whether a category other than excludeID
	// carries the name within the given group scope (nil = ungrouped scope).
	ExistsByNameInGroup(ctx context.Context, name string, groupID *string, excludeID string) (bool, error)

	// CountByGroup returns how many categories live in the given scope
	// (nil = ungrouped scope).
	CountByGroup(ctx context.Context, groupID *string) (int, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
