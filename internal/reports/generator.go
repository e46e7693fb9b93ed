package reports

import (
	"fmt"
	"sort"
	"time"

	"focus/internal/storage"
)

// Generator builds reports from stored session history.
type Generator struct {
	store *storage.Storage
}

// NewGenerator creates a report generator backed by the given storage.
func NewGenerator(store *storage.Storage) *Generator {
	return &Generator{store: store}
}

// GenerateDaily generates a report for the given day.
func (g *Generator) GenerateDaily(day time.Time) (*DailyReport, error) {
	store, err := g.store.LoadSessions()
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	sessions := g.store.SessionsOn(store, day.Format(storage.DateFormat))

	report := &DailyReport{
		Date:         storage.StartOfDay(day),
		Sessions:     sessions,
		SessionCount: len(sessions),
		GeneratedAt:  g.store.Now(),
	}
	for _, s := range sessions {
		if s.Completed {
			report.CompletedCount++
		}
		report.FocusMinutes += s.Minutes
		report.Distractions += s.Distractions
	}
	if report.SessionCount > 0 {
		report.CompletionRate = float64(report.CompletedCount) / float64(report.SessionCount) * 100
	}
	return report, nil
}

// GenerateWeekly generates a report for the week containing the given day.
// Weeks start on Monday.
func (g *Generator) GenerateWeekly(day time.Time) (*WeeklyReport, error) {
	start := storage.StartOfWeek(day)
	end := start.AddDate(0, 0, 7)
	store, err := g.store.LoadSessions()
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	sessions := g.store.SessionsBetween(store, start, end)

	report := &WeeklyReport{
		StartDate:    start,
		EndDate:      end.AddDate(0, 0, -1),
		SessionCount: len(sessions),
		PeakHour:     -1,
		GeneratedAt:  g.store.Now(),
	}

	byTask := map[string]int{}
	byHour := map[int]int{}
	byDay := map[string]*DaySummary{}
	for _, s := range sessions {
		if s.Completed {
			report.CompletedCount++
		}
		report.FocusMinutes += s.Minutes
		byTask[s.Task] += s.Minutes
		byHour[s.Timestamp.Hour()]++

		key := s.Timestamp.Format(storage.DateFormat)
		d, ok := byDay[key]
		if !ok {
			d = &DaySummary{Date: key, DayOfWeek: s.Timestamp.Weekday().String()}
			byDay[key] = d
		}
		d.SessionCount++
		d.FocusMinutes += s.Minutes
	}

	if report.SessionCount > 0 {
		report.CompletionRate = float64(report.CompletedCount) / float64(report.SessionCount) * 100
		report.AvgMinutes = report.FocusMinutes / report.SessionCount
	}

	for task, minutes := range byTask {
		report.ByTask = append(report.ByTask, TaskMinutes{Task: task, Minutes: minutes})
	}
	sort.Slice(report.ByTask, func(i, j int) bool {
		if report.ByTask[i].Minutes != report.ByTask[j].Minutes {
			return report.ByTask[i].Minutes > report.ByTask[j].Minutes
		}
		return report.ByTask[i].Task < report.ByTask[j].Task
	})

	peakCount := 0
	for hour, count := range byHour {
		if count > peakCount || (count == peakCount && hour < report.PeakHour) {
			report.PeakHour = hour
			peakCount = count
		}
	}

	bestMinutes := 0
	for _, d := range byDay {
		report.DailyBreakdown = append(report.DailyBreakdown, *d)
		if d.FocusMinutes > bestMinutes {
			report.BestDay = d.DayOfWeek
			bestMinutes = d.FocusMinutes
		}
	}
	sort.Slice(report.DailyBreakdown, func(i, j int) bool {
		return report.DailyBreakdown[i].Date < report.DailyBreakdown[j].Date
	})

	return report, nil
}
