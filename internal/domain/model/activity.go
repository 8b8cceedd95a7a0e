package model

import "time"

// PhotoRole distinguishes the two stored photo areas of an activity.
type PhotoRole string

const (
	PhotoRoleBefore PhotoRole = "before"
	PhotoRoleAfter  PhotoRole = "after"
)

// Valid reports whether the role names one of the stored photo areas.
func (r PhotoRole) Valid() bool {
	return r == PhotoRoleBefore || r == PhotoRoleAfter
}

// CleanupActivity describes a single submitted cleanup with before/after
// photo references. Immutable once created.
type CleanupActivity struct {
	ID             int64
	UserID         int64
	Location       string
	WasteCollected string
	WasteKg        float64
	BeforePhoto    string
	AfterPhoto     string
	PointsEarned   int
	CreatedAt      time.Time
}
