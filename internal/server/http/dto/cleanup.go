package dto

import "time"

// UploadRequest captures the non-file fields of the upload form.
type UploadRequest struct {
	Location       string  `form:"location"`
	WasteCollected string  `form:"waste_collected"`
	WasteKg        float64 `form:"waste_kg"`
}

// ActivityResponse describes one submitted cleanup.
type ActivityResponse struct {
	ID             int64     `json:"id"`
	Location       string    `json:"location"`
	WasteCollected string    `json:"waste_collected"`
	WasteKg        float64   `json:"waste_kg"`
	BeforePhoto    string    `json:"before_photo"`
	AfterPhoto     string    `json:"after_photo"`
	PointsEarned   int       `json:"points_earned"`
	CreatedAt      time.Time `json:"created_at"`
}
