package reports

import (
	"fmt"
	"strings"
)

// FormatDailyMarkdown formats a daily report as Markdown.
func FormatDailyMarkdown(report *DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Focus Report: %s\n\n", report.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- **Sessions:** %d (%d completed, %.0f%%)\n",
		report.SessionCount, report.CompletedCount, report.CompletionRate)
	fmt.Fprintf(&b, "- **Focus time:** %s\n", formatDuration(report.FocusMinutes))
	fmt.Fprintf(&b, "- **Distractions:** %d\n", report.Distractions)

	if len(report.Sessions) > 0 {
		fmt.Fprintf(&b, "\n## Sessions\n\n")
		for _, s := range report.Sessions {
			mark := "x"
			if !s.Completed {
				mark = " "
			}
			fmt.Fprintf(&b, "- [%s] %s %s (%d min", mark, s.Timestamp.Format("15:04"), s.Task, s.Minutes)
			if s.Distractions > 0 {
				fmt.Fprintf(&b, ", %d distractions", s.Distractions)
			}
			if !s.Completed && s.Reason != "" {
				fmt.Fprintf(&b, ", %s", s.Reason)
			}
			fmt.Fprintf(&b, ")\n")
		}
	}

	fmt.Fprintf(&b, "\n---\n*Generated %s*\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// FormatWeeklyMarkdown formats a weekly report as Markdown.
func FormatWeeklyMarkdown(report *WeeklyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Focus Report: %s to %s\n\n",
		report.StartDate.Format("Jan 2"), report.EndDate.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- **Sessions:** %d (%d completed, %.0f%%)\n",
		report.SessionCount, report.CompletedCount, report.CompletionRate)
	fmt.Fprintf(&b, "- **Focus time:** %s\n", formatDuration(report.FocusMinutes))
	if report.AvgMinutes > 0 {
		fmt.Fprintf(&b, "- **Average session:** %d min\n", report.AvgMinutes)
	}
	if report.BestDay != "" {
		fmt.Fprintf(&b, "- **Best day:** %s\n", report.BestDay)
	}
	if report.PeakHour >= 0 {
		fmt.Fprintf(&b, "- **Peak hour:** %02d:00\n", report.PeakHour)
	}

	if len(report.ByTask) > 0 {
		fmt.Fprintf(&b, "\n## Time by Task\n\n")
		fmt.Fprintf(&b, "| Task | Minutes |\n")
		fmt.Fprintf(&b, "|------|--------:|\n")
		for _, t := range report.ByTask {
			fmt.Fprintf(&b, "| %s | %d |\n", t.Task, t.Minutes)
		}
	}

	if len(report.DailyBreakdown) > 0 {
		fmt.Fprintf(&b, "\n## Daily Breakdown\n\n")
		fmt.Fprintf(&b, "| Date | Day | Sessions | Minutes |\n")
		fmt.Fprintf(&b, "|------|-----|---------:|--------:|\n")
		for _, d := range report.DailyBreakdown {
			fmt.Fprintf(&b, "| %s | %s | %d | %d |\n", d.Date, d.DayOfWeek, d.SessionCount, d.FocusMinutes)
		}
	}

	fmt.Fprintf(&b, "\n---\n*Generated %s*\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
