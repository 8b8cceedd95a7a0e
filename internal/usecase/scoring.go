package usecase

import (
	"context"

	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/domain/repository"
)

// basePoints is the flat award per accepted cleanup. Deliberately not
// weighted by waste amount yet; CalculatePoints is the one place a future
// weighting rule would go.
const basePoints = 10

// ScoringUseCase computes submission awards and user ranking.
type ScoringUseCase struct {
	users repository.UserRepository
}

// NewScoringUseCase constructs ScoringUseCase.
func NewScoringUseCase(users repository.UserRepository) *ScoringUseCase {
	return &ScoringUseCase{users: users}
}

// CalculatePoints returns the award for a submission.
func (u *ScoringUseCase) CalculatePoints(_ *model.CleanupActivity) int {
	return basePoints
}

// Rank returns the user's competition rank: one plus the number of users
// with strictly more points, so ties share a rank.
func (u *ScoringUseCase) Rank(ctx context.Context, userID int64) (int, error) {
	return u.users.Rank(ctx, userID)
}

// Leaderboard returns all users ordered by points descending with
// competition ranks assigned.
func (u *ScoringUseCase) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	users, err := u.users.ListByPoints(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	rank := 0
	for i, usr := range users {
		if i == 0 || usr.Points != users[i-1].Points {
			rank = i + 1
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:          rank,
			UserID:        usr.ID,
			Name:          usr.Name,
			Points:        usr.Points,
			TotalCleanups: usr.TotalCleanups,
			TotalWaste:    usr.TotalWaste,
		})
	}
	return entries, nil
}
