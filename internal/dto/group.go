package dto

import (
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// CreateGroupRequest defines the data needed to create a category group.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameGroupRequest defines the data for renaming a group.
type RenameGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// GroupResponse defines the data returned for a group.
type GroupResponse struct {
	GroupID       string    `json:"groupID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToGroupResponse converts a domain.Group to its response DTO.
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:       g.GroupID,
		Name:          g.Name,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGroupResponse converts a slice of groups to response DTOs.
func ToListGroupResponse(groups []domain.Group) []GroupResponse {
	res := make([]GroupResponse, len(groups))
	for i := range groups {
		res[i] = ToGroupResponse(&groups[i])
	}
	return res
}
