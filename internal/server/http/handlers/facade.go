package handlers

import (
	"context"

	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password, confirm string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// CleanupFacade encapsulates cleanup submission operations exposed via HTTP.
type CleanupFacade interface {
	SubmitCleanup(ctx context.Context, userID int64, sub usecase.Submission) (*model.CleanupActivity, error)
	RecentCleanups(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error)
}

// ReportFacade provides ranking and activity reporting operations.
type ReportFacade interface {
	Rank(ctx context.Context, userID int64) (int, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	WeeklyActivity(ctx context.Context, userID int64) (*model.WeeklyReport, error)
	MonthlyActivity(ctx context.Context, userID int64) (*model.MonthlyReport, error)
}

// TrackerFacade aggregates the full set of operations used across handlers.
type TrackerFacade interface {
	AuthFacade
	CleanupFacade
	ReportFacade
}
