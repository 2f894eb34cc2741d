package dto

import (
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
// The position is not a caller concern: new categories are appended at the
// end of their scope.
type CreateCategoryRequest struct {
	Name    string  `json:"name" binding:"required"`
	GroupID *string `json:"groupID"` // Optional; nil = ungrouped scope
}

// RenameCategoryRequest defines the data for renaming a category.
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// MoveCategoryRequest defines the target scope for a category move.
// A nil GroupID moves the category to the ungrouped scope.
type MoveCategoryRequest struct {
	GroupID *string `json:"groupID"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Name          string    `json:"name"`
	GroupID       *string   `json:"groupID,omitempty"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		GroupID:       c.GroupID,
		Position:      c.Position,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
