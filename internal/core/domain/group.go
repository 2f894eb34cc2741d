package domain

import (
	"strings"
	"time"
)

// Group is a named bucket for categories. Group names are globally unique,
// enforced by the service layer against the repository. Deleting a group
// detaches its categories; it never deletes them.
type Group struct {
	GroupID string `json:"groupID"` // Primary Key (UUID)
	Name    string `json:"name"`
	AuditFields
}

// NewGroup constructs a validated group.
func NewGroup(id, name, userID string, now time.Time) (*Group, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Group{
		GroupID: id,
		Name:    strings.TrimSpace(name),
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// Rename changes the group name, re-validating it.
func (g *Group) Rename(name, userID string, now time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	g.Name = strings.TrimSpace(name)
	g.Touch(userID, now)
	return nil
}
