package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/server/http/dto"
	"github.com/greenloop/cleanearth/internal/server/http/middleware"
)

const (
	dashboardRecentLimit = 3
	profileRecentLimit   = 5
)

// ReportHandler serves the dashboard, profile, leaderboard and chart data.
type ReportHandler struct {
	facade TrackerFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade TrackerFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Dashboard handles GET /dashboard.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID := CurrentUserID(c)

	user, err := h.facade.UserByID(c.Request.Context(), userID)
	if err != nil {
		h.userError(c, err)
		return
	}

	rank, err := h.facade.Rank(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading dashboard data"})
		return
	}

	recent, err := h.facade.RecentCleanups(c.Request.Context(), userID, dashboardRecentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		User:           toUserResponse(*user),
		Rank:           rank,
		RecentCleanups: toActivityResponses(recent),
		Message:        motivationalMessage(user.TotalCleanups),
	})
}

// Profile handles GET /profile.
func (h *ReportHandler) Profile(c *gin.Context) {
	userID := CurrentUserID(c)

	user, err := h.facade.UserByID(c.Request.Context(), userID)
	if err != nil {
		h.userError(c, err)
		return
	}

	recent, err := h.facade.RecentCleanups(c.Request.Context(), userID, profileRecentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading profile data"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		User:           toUserResponse(*user),
		RecentCleanups: toActivityResponses(recent),
	})
}

// Leaderboard handles GET /leaderboard.
func (h *ReportHandler) Leaderboard(c *gin.Context) {
	entries, err := h.facade.Leaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading leaderboard data"})
		return
	}

	rank, err := h.facade.Rank(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading leaderboard data"})
		return
	}

	rows := make([]dto.LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dto.LeaderboardRow{
			Rank:          e.Rank,
			Name:          e.Name,
			Points:        e.Points,
			TotalCleanups: e.TotalCleanups,
			TotalWaste:    e.TotalWaste,
		})
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{Users: rows, UserRank: rank})
}

// Charts handles GET /charts with weekly and monthly activity datasets.
func (h *ReportHandler) Charts(c *gin.Context) {
	userID := CurrentUserID(c)

	weekly, err := h.facade.WeeklyActivity(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading chart data"})
		return
	}

	monthly, err := h.facade.MonthlyActivity(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading chart data"})
		return
	}

	c.JSON(http.StatusOK, dto.ChartsResponse{
		Weekly:  dto.ChartSeries{Labels: weekly.Labels, Counts: weekly.Counts},
		Monthly: dto.MonthlySeries{Labels: monthly.Labels, Counts: monthly.Counts, WasteKg: monthly.WasteKg},
	})
}

// userError handles a failed current-user lookup. A vanished account means
// the session is stale, so the cookie is dropped and the browser re-logs in.
func (h *ReportHandler) userError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		middleware.ClearAuthCookie(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error loading user data"})
}

func motivationalMessage(totalCleanups int) string {
	switch {
	case totalCleanups == 0:
		return "Start your first cleanup and begin your eco-journey!"
	case totalCleanups < 5:
		return "Every cleanup makes our planet greener!"
	case totalCleanups < 10:
		return "Keep up the great work! Your efforts matter."
	default:
		return "Small actions lead to big changes. Continue your journey!"
	}
}
