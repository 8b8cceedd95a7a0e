package model

// LeaderboardEntry is one row of the community leaderboard. Rank uses
// competition ranking: users with equal points share the lower rank number
// and the next distinct score skips ahead.
type LeaderboardEntry struct {
	Rank          int
	UserID        int64
	Name          string
	Points        int
	TotalCleanups int
	TotalWaste    float64
}
