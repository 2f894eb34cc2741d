package services

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
)

// CategoryReaderSvc defines read operations for category data.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories ordered by group and position.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListCategoriesByGroup retrieves the categories of one scope ordered by
	// position (nil = ungrouped scope).
	ListCategoriesByGroup(ctx context.Context, groupID *string) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data.
type CategoryWriterSvc interface {
	// CreateCategory persists a new category appended at the end of its scope.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// RenameCategory renames a category after the scoped uniqueness check.
	RenameCategory(ctx context.Context, categoryID string, req dto.RenameCategoryRequest, userID string) (*domain.Category, error)

	// MoveCategory moves a category between group scopes, appending it at the
	// end of the destination. Moving to the scope the category is already in
	// is a no-op that returns the category unchanged.
	MoveCategory(ctx context.Context, categoryID string, req dto.MoveCategoryRequest, userID string) (*domain.Category, error)

	// DeleteCategory removes a category that no transaction references.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
