package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/cleanearth/internal/domain/model"
	testhelpers "github.com/greenloop/cleanearth/internal/test"
	"github.com/greenloop/cleanearth/internal/usecase"
)

func TestCalculatePointsIsFlat(t *testing.T) {
	uc := usecase.NewScoringUseCase(testhelpers.NewUserRepositoryStub())

	assert.Equal(t, 10, uc.CalculatePoints(&model.CleanupActivity{WasteKg: 0.1}))
	assert.Equal(t, 10, uc.CalculatePoints(&model.CleanupActivity{WasteKg: 250, WasteCollected: "industrial debris"}))
}

func TestRankDistinctPoints(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewScoringUseCase(users)
	ctx := context.Background()

	// Strictly decreasing distinct points must produce ranks 1..N.
	ids := make([]int64, 0, 4)
	for i, points := range []int{40, 30, 20, 10} {
		u := users.Add(&model.User{Name: "U", Email: testhelpers.RandomASCIIString(8, 8) + "@example.com", Points: points})
		_ = i
		ids = append(ids, u.ID)
	}

	for i, id := range ids {
		rank, err := uc.Rank(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i+1, rank)
	}
}

func TestRankTiesShareRank(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewScoringUseCase(users)
	ctx := context.Background()

	top := users.Add(&model.User{Email: "top@example.com", Points: 50})
	tiedA := users.Add(&model.User{Email: "a@example.com", Points: 20})
	tiedB := users.Add(&model.User{Email: "b@example.com", Points: 20})

	rank, err := uc.Rank(ctx, top.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	for _, id := range []int64{tiedA.ID, tiedB.ID} {
		rank, err := uc.Rank(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, rank)
	}
}

func TestLeaderboardCompetitionRanking(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewScoringUseCase(users)

	users.Add(&model.User{Name: "First", Email: "1@example.com", Points: 50})
	users.Add(&model.User{Name: "TiedA", Email: "2@example.com", Points: 20})
	users.Add(&model.User{Name: "TiedB", Email: "3@example.com", Points: 20})
	users.Add(&model.User{Name: "Last", Email: "4@example.com", Points: 5})

	entries, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, []int{1, 2, 2, 4}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank})
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, 5, entries[3].Points)
}

func TestLeaderboardEmpty(t *testing.T) {
	uc := usecase.NewScoringUseCase(testhelpers.NewUserRepositoryStub())

	entries, err := uc.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
