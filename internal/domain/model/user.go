package model

import "time"

// User represents a registered community member with cumulative cleanup stats.
// Points, TotalCleanups and TotalWaste always mirror the aggregate of the
// user's accepted activities.
type User struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	Points        int
	TotalCleanups int
	TotalWaste    float64
	CreatedAt     time.Time
}
