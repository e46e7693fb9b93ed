// Package reports provides daily and weekly aggregation over the session
// history, plus the Markdown reflection files written by the end-of-day and
// weekly review rituals.
package reports

import (
	"time"

	"focus/internal/storage"
)

// DailyReport contains aggregated session data for a single day.
type DailyReport struct {
	Date           time.Time         `json:"date"`
	Sessions       []storage.Session `json:"sessions"`
	SessionCount   int               `json:"session_count"`
	CompletedCount int               `json:"completed_count"`
	FocusMinutes   int               `json:"focus_minutes"`
	Distractions   int               `json:"distractions"`
	CompletionRate float64           `json:"completion_rate"` // percent
	GeneratedAt    time.Time         `json:"generated_at"`
}

// TaskMinutes represents focus time grouped by task.
type TaskMinutes struct {
	Task    string `json:"task"`
	Minutes int    `json:"minutes"`
}

// DaySummary is one day's totals inside a weekly breakdown.
type DaySummary struct {
	Date         string `json:"date"` // YYYY-MM-DD
	DayOfWeek    string `json:"day_of_week"`
	SessionCount int    `json:"session_count"`
	FocusMinutes int    `json:"focus_minutes"`
}

// WeeklyReport contains aggregated session data for a Monday-based week.
type WeeklyReport struct {
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	SessionCount   int           `json:"session_count"`
	CompletedCount int           `json:"completed_count"`
	FocusMinutes   int           `json:"focus_minutes"`
	AvgMinutes     int           `json:"avg_minutes"`
	CompletionRate float64       `json:"completion_rate"` // percent
	ByTask         []TaskMinutes `json:"by_task"`
	DailyBreakdown []DaySummary  `json:"daily_breakdown"`

	// PeakHour is the hour-of-day with the most session starts, -1 if none.
	PeakHour int `json:"peak_hour"`

	// BestDay is the weekday with the most focus minutes, empty if none.
	BestDay string `json:"best_day"`

	GeneratedAt time.Time `json:"generated_at"`
}
