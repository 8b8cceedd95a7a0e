package repository

import (
	"context"
	"time"

	"github.com/greenloop/cleanearth/internal/domain/model"
)

// ActivityRepository describes persistence operations for cleanup activities.
type ActivityRepository interface {
	// CreateWithStats inserts the activity and applies its points and waste
	// weight to the owning user inside a single transaction. Either both
	// writes commit or neither does.
	CreateWithStats(ctx context.Context, activity *model.CleanupActivity) (*model.CleanupActivity, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error)
	// ListByUserBetween returns activities created in [from, to), oldest first.
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.CleanupActivity, error)
	// ListPhotoNames returns every stored photo name referenced by any
	// activity, across both roles.
	ListPhotoNames(ctx context.Context) ([]string, error)
}
