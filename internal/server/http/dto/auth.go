package dto

import "time"

// SignupRequest captures the signup form fields.
type SignupRequest struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// LoginRequest captures the login form fields.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// UserResponse describes a user profile with cumulative stats.
type UserResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Points        int       `json:"points"`
	TotalCleanups int       `json:"total_cleanups"`
	TotalWaste    float64   `json:"total_waste"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrorResponse carries a human-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
