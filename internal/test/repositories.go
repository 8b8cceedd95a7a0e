package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Add seeds a user, assigning an ID when missing.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user
}

// Create registers user unless the email exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrDuplicateEmail
	}
	return s.Add(&model.User{Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}), nil
}

// GetByEmail returns stored user or ErrNotFound.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByEmail[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// GetByID returns stored user or ErrNotFound.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// Rank counts users with strictly more points.
func (s *UserRepositoryStub) Rank(ctx context.Context, userID int64) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	rank := 1
	for _, other := range s.ByID {
		if other.Points > user.Points {
			rank++
		}
	}
	return rank, nil
}

// ListByPoints returns users ordered by points descending.
func (s *UserRepositoryStub) ListByPoints(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// ActivityRepositoryStub stores activities in-memory and mirrors the
// transactional stat update of the real repository.
type ActivityRepositoryStub struct {
	Users      *UserRepositoryStub
	Activities []model.CleanupActivity
	Next       int64
	CreateErr  error
	ListErr    error
	Now        func() time.Time
}

// NewActivityRepositoryStub constructs stub bound to a user stub.
func NewActivityRepositoryStub(users *UserRepositoryStub) *ActivityRepositoryStub {
	return &ActivityRepositoryStub{Users: users, Next: 1, Now: time.Now}
}

// CreateWithStats inserts the activity and applies stats atomically.
func (s *ActivityRepositoryStub) CreateWithStats(ctx context.Context, activity *model.CleanupActivity) (*model.CleanupActivity, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	owner, ok := s.Users.ByID[activity.UserID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	stored := *activity
	stored.ID = s.Next
	s.Next++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.Now()
	}
	s.Activities = append(s.Activities, stored)

	owner.Points += stored.PointsEarned
	owner.TotalCleanups++
	owner.TotalWaste += stored.WasteKg
	return &stored, nil
}

// ListRecentByUser returns newest activities first.
func (s *ActivityRepositoryStub) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var result []model.CleanupActivity
	for _, a := range s.Activities {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListPhotoNames returns every referenced photo name.
func (s *ActivityRepositoryStub) ListPhotoNames(ctx context.Context) ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var names []string
	for _, a := range s.Activities {
		names = append(names, a.BeforePhoto, a.AfterPhoto)
	}
	return names, nil
}

// ListByUserBetween returns activities created in [from, to), oldest first.
func (s *ActivityRepositoryStub) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.CleanupActivity, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var result []model.CleanupActivity
	for _, a := range s.Activities {
		if a.UserID == userID && !a.CreatedAt.Before(from) && a.CreatedAt.Before(to) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}
