package app

import (
	"context"

	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/usecase"
)

// TrackerFacade is the application surface consumed by the HTTP layer. It
// aggregates the auth, cleanup, scoring and reporting use cases behind one
// dependency.
type TrackerFacade struct {
	auth    *usecase.AuthUseCase
	cleanup *usecase.CleanupUseCase
	scoring *usecase.ScoringUseCase
	reports *usecase.ReportingUseCase
}

func NewTrackerFacade(auth *usecase.AuthUseCase, cleanup *usecase.CleanupUseCase, scoring *usecase.ScoringUseCase, reports *usecase.ReportingUseCase) *TrackerFacade {
	return &TrackerFacade{auth: auth, cleanup: cleanup, scoring: scoring, reports: reports}
}

func (f *TrackerFacade) Register(ctx context.Context, name, email, password, confirm string) (*model.User, error) {
	return f.auth.Register(ctx, name, email, password, confirm)
}

func (f *TrackerFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *TrackerFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *TrackerFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *TrackerFacade) SubmitCleanup(ctx context.Context, userID int64, sub usecase.Submission) (*model.CleanupActivity, error) {
	return f.cleanup.Submit(ctx, userID, sub)
}

func (f *TrackerFacade) RecentCleanups(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error) {
	return f.cleanup.RecentByUser(ctx, userID, limit)
}

func (f *TrackerFacade) ReferencedPhotos(ctx context.Context) (map[string]struct{}, error) {
	return f.cleanup.ReferencedPhotos(ctx)
}

func (f *TrackerFacade) Rank(ctx context.Context, userID int64) (int, error) {
	return f.scoring.Rank(ctx, userID)
}

func (f *TrackerFacade) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return f.scoring.Leaderboard(ctx)
}

func (f *TrackerFacade) WeeklyActivity(ctx context.Context, userID int64) (*model.WeeklyReport, error) {
	return f.reports.WeeklyActivity(ctx, userID)
}

func (f *TrackerFacade) MonthlyActivity(ctx context.Context, userID int64) (*model.MonthlyReport, error) {
	return f.reports.MonthlyActivity(ctx, userID)
}
