package repositories

import (
	"context"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// GroupReader defines read operations for group data.
type GroupReader interface {
	// FindGroupByID retrieves a specific group by its unique identifier.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves all groups ordered by name.
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// ExistsByName reports whether any group other than excludeID carries the name.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
}

// GroupWriter defines write operations for group data.
type GroupWriter interface {
	// SaveGroup persists a new group.
	SaveGroup(ctx context.Context, group domain.Group) error

	// UpdateGroup updates an existing group.
	UpdateGroup(ctx context.Context, group domain.Group) error

	// DeleteGroup removes a group. Categories referencing it are detached,
	// never deleted; the schema enforces this with ON DELETE SET NULL.
	DeleteGroup(ctx context.Context, groupID string) error
}

// GroupRepositoryFacade combines all group-related repository interfaces.
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
