package models

// Group is the persisted row form of a category group.
type Group struct {
	GroupID string `db:"group_id"`
	Name    string `db:"name"`
	AuditFields
}
