package dto

// DashboardResponse aggregates the signed-in user's overview.
type DashboardResponse struct {
	User           UserResponse       `json:"user"`
	Rank           int                `json:"rank"`
	RecentCleanups []ActivityResponse `json:"recent_cleanups"`
	Message        string             `json:"message"`
}

// ProfileResponse describes the profile page payload.
type ProfileResponse struct {
	User           UserResponse       `json:"user"`
	RecentCleanups []ActivityResponse `json:"recent_cleanups"`
}

// LeaderboardRow is one leaderboard position.
type LeaderboardRow struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Points        int     `json:"points"`
	TotalCleanups int     `json:"total_cleanups"`
	TotalWaste    float64 `json:"total_waste"`
}

// LeaderboardResponse lists all users by points with the caller's rank.
type LeaderboardResponse struct {
	Users    []LeaderboardRow `json:"users"`
	UserRank int              `json:"user_rank"`
}

// ChartSeries is a label-aligned weekly series.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// MonthlySeries extends ChartSeries with per-month waste totals.
type MonthlySeries struct {
	Labels  []string  `json:"labels"`
	Counts  []int     `json:"counts"`
	WasteKg []float64 `json:"waste_kg"`
}

// ChartsResponse carries both chart datasets.
type ChartsResponse struct {
	Weekly  ChartSeries   `json:"weekly"`
	Monthly MonthlySeries `json:"monthly"`
}
