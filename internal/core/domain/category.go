package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
)

// Category labels transactions. Names are unique within their group scope,
// where "no group" counts as one scope of its own; that policy lives in the
// service layer. Position is a 1-based rank that is dense per scope; the
// entity only validates positivity, it never renumbers siblings.
type Category struct {
	CategoryID string  `json:"categoryID"` // Primary Key (UUID)
	Name       string  `json:"name"`
	GroupID    *string `json:"groupID,omitempty"` // Weak reference; nil = ungrouped scope
	Position   int     `json:"position"`          // 1-based rank within its scope
	AuditFields
}

// NewCategory constructs a validated category at the given position.
func NewCategory(id, name string, groupID *string, position int, userID string, now time.Time) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePosition(position); err != nil {
		return nil, err
	}
	return &Category{
		CategoryID: id,
		Name:       strings.TrimSpace(name),
		GroupID:    groupID,
		Position:   position,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// Rename changes the category name, re-validating it.
func (c *Category) Rename(name, userID string, now time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Touch(userID, now)
	return nil
}

// AssignToGroup moves the category into a group at the given position.
func (c *Category) AssignToGroup(groupID string, position int, userID string, now time.Time) error {
	if groupID == "" {
		return fmt.Errorf("%w: group ID must not be empty", apperrors.ErrValidation)
	}
	if err := validatePosition(position); err != nil {
		return err
	}
	c.GroupID = &groupID
	c.Position = position
	c.Touch(userID, now)
	return nil
}

// RemoveFromGroup detaches the category into the ungrouped scope at the
// given position.
func (c *Category) RemoveFromGroup(position int, userID string, now time.Time) error {
	if err := validatePosition(position); err != nil {
		return err
	}
	c.GroupID = nil
	c.Position = position
	c.Touch(userID, now)
	return nil
}

// ChangePosition sets an absolute rank within the current scope. It does not
// renumber siblings; callers own keeping the scope dense.
func (c *Category) ChangePosition(position int, userID string, now time.Time) error {
	if err := validatePosition(position); err != nil {
		return err
	}
	c.Position = position
	c.Touch(userID, now)
	return nil
}

// InScope reports whether the category currently lives in the given group
// scope (nil meaning the ungrouped scope).
func (c *Category) InScope(groupID *string) bool {
	if c.GroupID == nil || groupID == nil {
		return c.GroupID == nil && groupID == nil
	}
	return *c.GroupID == *groupID
}

func validatePosition(position int) error {
	if position < 1 {
		return fmt.Errorf("%w: position must be a positive integer, got %d", apperrors.ErrValidation, position)
	}
	return nil
}
