package repository

import (
	"context"

	"github.com/greenloop/cleanearth/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// Rank returns 1 + number of users with strictly more points.
	Rank(ctx context.Context, userID int64) (int, error)
	// ListByPoints returns all users ordered by points descending.
	ListByPoints(ctx context.Context) ([]model.User, error)
}
