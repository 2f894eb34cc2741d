package models

// Category is the persisted row form of a category. GroupID is NULL for
// categories in the ungrouped scope; Position orders categories within
// their scope.
type Category struct {
	CategoryID string  `db:"category_id"`
	Name       string  `db:"name"`
	GroupID    *string `db:"group_id"`
	Position   int     `db:"position"`
	AuditFields
}
