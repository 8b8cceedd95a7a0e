package usecase

import (
	"context"
	"time"

	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/domain/repository"
)

const (
	weeklyDays    = 7
	monthlyMonths = 6
)

// ReportingUseCase aggregates persisted activities into chart-ready
// buckets. Read-only; every call recomputes from the repository.
type ReportingUseCase struct {
	activities repository.ActivityRepository
	now        func() time.Time
}

// NewReportingUseCase constructs ReportingUseCase with the wall clock.
func NewReportingUseCase(activities repository.ActivityRepository) *ReportingUseCase {
	return &ReportingUseCase{activities: activities, now: time.Now}
}

// WeeklyActivity buckets the user's activities into the seven calendar days
// ending today, oldest first, in the reporting clock's location.
func (u *ReportingUseCase) WeeklyActivity(ctx context.Context, userID int64) (*model.WeeklyReport, error) {
	now := u.now()
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(weeklyDays - 1))
	end := today.AddDate(0, 0, 1)

	activities, err := u.activities.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	report := &model.WeeklyReport{
		Labels: make([]string, weeklyDays),
		Counts: make([]int, weeklyDays),
	}
	index := make(map[string]int, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		day := start.AddDate(0, 0, i)
		report.Labels[i] = day.Format("Mon")
		index[day.Format("2006-01-02")] = i
	}

	for _, a := range activities {
		if i, ok := index[a.CreatedAt.In(loc).Format("2006-01-02")]; ok {
			report.Counts[i]++
		}
	}

	return report, nil
}

// MonthlyActivity buckets the user's activities into the six calendar
// months ending with the current one, oldest first. Month boundaries are
// true calendar spans; anchoring on the first of the month keeps AddDate
// exact across 28 to 31 day months and leap years.
func (u *ReportingUseCase) MonthlyActivity(ctx context.Context, userID int64) (*model.MonthlyReport, error) {
	now := u.now()
	loc := now.Location()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	start := currentMonth.AddDate(0, -(monthlyMonths - 1), 0)
	end := currentMonth.AddDate(0, 1, 0)

	activities, err := u.activities.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	report := &model.MonthlyReport{
		Labels:  make([]string, monthlyMonths),
		Counts:  make([]int, monthlyMonths),
		WasteKg: make([]float64, monthlyMonths),
	}
	index := make(map[string]int, monthlyMonths)
	for i := 0; i < monthlyMonths; i++ {
		month := start.AddDate(0, i, 0)
		report.Labels[i] = month.Format("Jan")
		index[month.Format("2006-01")] = i
	}

	for _, a := range activities {
		if i, ok := index[a.CreatedAt.In(loc).Format("2006-01")]; ok {
			report.Counts[i]++
			report.WasteKg[i] += a.WasteKg
		}
	}

	return report, nil
}
