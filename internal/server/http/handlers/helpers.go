package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/server/http/dto"
	"github.com/greenloop/cleanearth/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// safeRedirect keeps post-login redirects on this site.
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/dashboard"
	}
	return next
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Points:        user.Points,
		TotalCleanups: user.TotalCleanups,
		TotalWaste:    user.TotalWaste,
		CreatedAt:     user.CreatedAt,
	}
}

func toActivityResponse(activity model.CleanupActivity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:             activity.ID,
		Location:       activity.Location,
		WasteCollected: activity.WasteCollected,
		WasteKg:        activity.WasteKg,
		BeforePhoto:    activity.BeforePhoto,
		AfterPhoto:     activity.AfterPhoto,
		PointsEarned:   activity.PointsEarned,
		CreatedAt:      activity.CreatedAt,
	}
}

func toActivityResponses(activities []model.CleanupActivity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}
