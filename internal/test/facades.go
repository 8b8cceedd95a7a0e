package test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)
}

// Register returns a user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password, confirm string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password, confirm)
	}
	return &model.User{ID: 1, Name: name, Email: email}, nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserByID resolves the authenticated user.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Stub User", Email: "stub@example.com"}, nil
}

// CleanupFacadeStub provides controllable behaviour for upload endpoints.
type CleanupFacadeStub struct {
	SubmitFn func(context.Context, int64, usecase.Submission) (*model.CleanupActivity, error)
	RecentFn func(context.Context, int64, int) ([]model.CleanupActivity, error)
}

// SubmitCleanup delegates to provided function or returns default activity.
func (s CleanupFacadeStub) SubmitCleanup(ctx context.Context, userID int64, sub usecase.Submission) (*model.CleanupActivity, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, sub)
	}
	return &model.CleanupActivity{ID: 1, UserID: userID, Location: sub.Location, WasteKg: sub.WasteKg, PointsEarned: 10, CreatedAt: time.Unix(0, 0)}, nil
}

// RecentCleanups returns predefined activities for given user.
func (s CleanupFacadeStub) RecentCleanups(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error) {
	if s.RecentFn != nil {
		return s.RecentFn(ctx, userID, limit)
	}
	return []model.CleanupActivity{{ID: 1, UserID: userID, Location: "Park"}}, nil
}

// ReportFacadeStub simulates scoring and reporting operations.
type ReportFacadeStub struct {
	RankFn        func(context.Context, int64) (int, error)
	LeaderboardFn func(context.Context) ([]model.LeaderboardEntry, error)
	WeeklyFn      func(context.Context, int64) (*model.WeeklyReport, error)
	MonthlyFn     func(context.Context, int64) (*model.MonthlyReport, error)
}

// Rank returns stored rank or default.
func (s ReportFacadeStub) Rank(ctx context.Context, userID int64) (int, error) {
	if s.RankFn != nil {
		return s.RankFn(ctx, userID)
	}
	return 1, nil
}

// Leaderboard returns preconfigured entries.
func (s ReportFacadeStub) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	if s.LeaderboardFn != nil {
		return s.LeaderboardFn(ctx)
	}
	return []model.LeaderboardEntry{{Rank: 1, UserID: 1, Name: "Stub User", Points: 10}}, nil
}

// WeeklyActivity returns preconfigured weekly buckets.
func (s ReportFacadeStub) WeeklyActivity(ctx context.Context, userID int64) (*model.WeeklyReport, error) {
	if s.WeeklyFn != nil {
		return s.WeeklyFn(ctx, userID)
	}
	return &model.WeeklyReport{Labels: []string{"Mon"}, Counts: []int{1}}, nil
}

// MonthlyActivity returns preconfigured monthly buckets.
func (s ReportFacadeStub) MonthlyActivity(ctx context.Context, userID int64) (*model.MonthlyReport, error) {
	if s.MonthlyFn != nil {
		return s.MonthlyFn(ctx, userID)
	}
	return &model.MonthlyReport{Labels: []string{"Jan"}, Counts: []int{1}, WasteKg: []float64{1}}, nil
}

// TrackerFacadeStub aggregates facade dependencies for HTTP layer tests.
type TrackerFacadeStub struct {
	AuthFacadeStub
	CleanupFacadeStub
	ReportFacadeStub
}

// SavedPhoto records one PhotoStoreStub write.
type SavedPhoto struct {
	Role model.PhotoRole
	Ext  string
	Data []byte
}

// PhotoStoreStub captures saved photos in-memory.
type PhotoStoreStub struct {
	Saved  []SavedPhoto
	Fail   map[model.PhotoRole]error
	nextID int
}

// Save records the photo and returns a deterministic stored name.
func (s *PhotoStoreStub) Save(role model.PhotoRole, ext string, src io.Reader) (string, error) {
	if err := s.Fail[role]; err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, src); err != nil {
		return "", err
	}
	s.Saved = append(s.Saved, SavedPhoto{Role: role, Ext: ext, Data: buf.Bytes()})
	s.nextID++
	return fmt.Sprintf("%s-%d.%s", role, s.nextID, ext), nil
}
