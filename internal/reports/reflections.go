package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focus/internal/fsutil"
	"focus/internal/storage"
)

// DailyReflection captures the answers of the end-of-day shutdown ritual.
type DailyReflection struct {
	Date             time.Time
	Win              string
	Drain            string
	TomorrowPriority string
	Energy           []storage.EnergyReading
}

const reflectionsDir = "reflections"

// ReflectionsDir returns the directory where reflection files are written,
// creating it on first use.
func (g *Generator) ReflectionsDir() (string, error) {
	dir := filepath.Join(g.store.GetDataDir(), reflectionsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reflections directory: %w", err)
	}
	return dir, nil
}

// WriteDailyReflection renders the end-of-day reflection as Markdown and
// writes it to reflections/YYYY-MM-DD.md, overwriting any earlier run for the
// same day. It returns the path written.
func (g *Generator) WriteDailyReflection(refl DailyReflection, report *DailyReport) (string, error) {
	dir, err := g.ReflectionsDir()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	date := refl.Date.Format(storage.DateFormat)
	fmt.Fprintf(&b, "# Daily Shutdown: %s\n\n", date)
	fmt.Fprintf(&b, "## Focus\n\n")
	fmt.Fprintf(&b, "- Sessions: %d (%d completed)\n", report.SessionCount, report.CompletedCount)
	fmt.Fprintf(&b, "- Focus time: %d min\n", report.FocusMinutes)
	fmt.Fprintf(&b, "- Distractions: %d\n", report.Distractions)
	for _, s := range report.Sessions {
		mark := "x"
		if !s.Completed {
			mark = " "
		}
		fmt.Fprintf(&b, "- [%s] %s (%d min)\n", mark, s.Task, s.Minutes)
	}

	if len(refl.Energy) > 0 {
		fmt.Fprintf(&b, "\n## Energy\n\n")
		for _, e := range refl.Energy {
			fmt.Fprintf(&b, "- %s: %d/10\n", e.Time, e.Level)
		}
	}

	fmt.Fprintf(&b, "\n## Reflection\n\n")
	fmt.Fprintf(&b, "**Biggest win:** %s\n\n", orDash(refl.Win))
	fmt.Fprintf(&b, "**What drained me:** %s\n\n", orDash(refl.Drain))
	fmt.Fprintf(&b, "**Tomorrow's one priority:** %s\n", orDash(refl.TomorrowPriority))

	path := filepath.Join(dir, date+".md")
	if err := fsutil.WriteFileAtomic(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing reflection: %w", err)
	}
	return path, nil
}

// WriteWeeklyReflection renders a weekly review as Markdown and writes it to
// reflections/week-YYYY-MM-DD.md, keyed by the Monday the week started on.
// It returns the path written.
func (g *Generator) WriteWeeklyReflection(review storage.WeeklyReview, report *WeeklyReport) (string, error) {
	dir, err := g.ReflectionsDir()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Weekly Review: week of %s\n\n", review.WeekStart)
	fmt.Fprintf(&b, "## Numbers\n\n")
	fmt.Fprintf(&b, "- Sessions: %d (%.0f%% completed)\n", report.SessionCount, report.CompletionRate)
	fmt.Fprintf(&b, "- Focus time: %d min\n", report.FocusMinutes)
	if report.BestDay != "" {
		fmt.Fprintf(&b, "- Best day: %s\n", report.BestDay)
	}
	if report.PeakHour >= 0 {
		fmt.Fprintf(&b, "- Peak hour: %02d:00\n", report.PeakHour)
	}
	if len(report.ByTask) > 0 {
		fmt.Fprintf(&b, "\n## Where the time went\n\n")
		for _, t := range report.ByTask {
			fmt.Fprintf(&b, "- %s: %d min\n", t.Task, t.Minutes)
		}
	}

	fmt.Fprintf(&b, "\n## Review\n\n")
	fmt.Fprintf(&b, "**What produced real results:** %s\n\n", orDash(review.ProducedResults))
	fmt.Fprintf(&b, "**What should I stop doing:** %s\n\n", orDash(review.StopDoing))
	fmt.Fprintf(&b, "**What deserves more time:** %s\n\n", orDash(review.MoreTime))
	fmt.Fprintf(&b, "**Next week's essential priority:** %s\n", orDash(review.NextPriority))

	path := filepath.Join(dir, "week-"+review.WeekStart+".md")
	if err := fsutil.WriteFileAtomic(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing weekly review: %w", err)
	}
	return path, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
