package services

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
)

// GroupSvcFacade bundles the group use cases.
type GroupSvcFacade interface {
	// CreateGroup persists a new group after the global name uniqueness check.
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest, userID string) (*domain.Group, error)

	// GetGroupByID retrieves a specific group.
	GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// RenameGroup renames a group after the uniqueness check.
	RenameGroup(ctx context.Context, groupID string, req dto.RenameGroupRequest, userID string) (*domain.Group, error)

	// DeleteGroup removes a group; its categories are detached, not deleted.
	DeleteGroup(ctx context.Context, groupID string) error
}
