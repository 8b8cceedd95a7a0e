package model

// WeeklyReport holds per-day activity counts for the seven calendar days
// ending today, oldest first. Labels and Counts always have equal length.
type WeeklyReport struct {
	Labels []string
	Counts []int
}

// MonthlyReport holds per-month activity counts and waste totals for the six
// calendar months ending with the current one, oldest first.
type MonthlyReport struct {
	Labels  []string
	Counts  []int
	WasteKg []float64
}
