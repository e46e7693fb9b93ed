// Package main is the entry point for the focus application.
// This file contains the stats subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"focus/internal/gamify"
	"focus/internal/reports"
	"focus/internal/storage"
	"focus/internal/ui"
)

// statsHelpText is the help message for the stats subcommand.
const statsHelpText = `focus stats - Show focus statistics

USAGE:
    focus stats [OPTIONS] [RANGE]

OPTIONS:
    -h, --help     Show this help message

ARGUMENTS:
    RANGE          today (default), week, or all

DESCRIPTION:
    today  - Sessions and focus time for the current day
    week   - Per-day bar chart for the current week (Monday start)
    all    - Lifetime totals, level, and best streaks

EXAMPLES:
    focus stats
    focus stats week
    focus stats all
`

// runStats handles the "focus stats" subcommand.
func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, statsHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(statsHelpText)
		os.Exit(0)
	}

	rangeArg := "today"
	if fs.NArg() > 0 {
		rangeArg = fs.Arg(0)
	}

	_, store, styles := loadEnv()

	sessions, err := store.LoadSessions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sessions: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	switch rangeArg {
	case "today":
		statsToday(store, styles, sessions)
	case "week":
		statsWeek(store, styles, sessions)
	case "all":
		statsAll(styles, stats)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown range %q. Use today, week, or all.\n", rangeArg)
		os.Exit(1)
	}
}

func statsToday(store *storage.Storage, styles *ui.Styles, sessions *storage.SessionStore) {
	today := store.SessionsOn(sessions, store.Today())

	if len(today) == 0 {
		fmt.Println(styles.Panel("Today", styles.MutedStyle.Render("No sessions recorded yet.")))
		return
	}

	minutes := 0
	completed := 0
	distractions := 0
	lines := make([]string, 0, len(today)+4)
	for _, s := range today {
		minutes += s.Minutes
		distractions += s.Distractions
		mark := styles.SuccessStyle.Render("✓")
		if !s.Completed {
			mark = styles.ErrorStyle.Render("✗")
		} else {
			completed++
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s (%d min)",
			mark, s.Timestamp.Format("15:04"), s.Task, s.Minutes))
	}
	lines = append(lines, "",
		styles.KV("Completed", fmt.Sprintf("%d / %d", completed, len(today))),
		styles.KV("Focus time", ui.FormatMinutes(minutes)),
		styles.KV("Distractions", fmt.Sprintf("%d", distractions)),
	)
	fmt.Println(styles.Panel("Today", lines...))
}

func statsWeek(store *storage.Storage, styles *ui.Styles, sessions *storage.SessionStore) {
	week := store.WeekSessions(sessions)
	start := storage.StartOfWeek(store.Now())

	byDay := map[string]int{}
	total := 0
	for _, s := range week {
		byDay[s.Timestamp.Format(storage.DateFormat)] += s.Minutes
		total += s.Minutes
	}

	peak := 0
	for _, m := range byDay {
		peak = max(peak, m)
	}

	lines := make([]string, 0, 9)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		minutes := byDay[day.Format(storage.DateFormat)]
		frac := 0.0
		if peak > 0 {
			frac = float64(minutes) / float64(peak)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			styles.StatLabelStyle.Render(day.Format("Mon")),
			styles.Bar(frac, 16),
			ui.FormatMinutes(minutes)))
	}
	lines = append(lines, "",
		styles.KV("Sessions", fmt.Sprintf("%d", len(week))),
		styles.KV("Focus time", ui.FormatMinutes(total)),
	)

	if report, err := reports.NewGenerator(store).GenerateWeekly(store.Now()); err == nil && report.SessionCount > 0 {
		lines = append(lines,
			styles.KV("Completion rate", fmt.Sprintf("%.0f%%", report.CompletionRate)))
		if report.PeakHour >= 0 {
			lines = append(lines,
				styles.KV("Peak focus hour", fmt.Sprintf("%02d:00", report.PeakHour)))
		}
		if report.BestDay != "" {
			lines = append(lines,
				styles.KV("Most productive day", report.BestDay))
		}
	}

	title := fmt.Sprintf("Week of %s", start.Format("Jan 2"))
	fmt.Println(styles.Panel(title, lines...))
}

func statsAll(styles *ui.Styles, stats *storage.Stats) {
	level := gamify.ResolveLevel(stats.XP)

	avg := 0
	if stats.TotalSessions > 0 {
		avg = stats.TotalFocusMinutes / stats.TotalSessions
	}

	fmt.Println(styles.Panel("Lifetime",
		styles.LevelStyle.Render(fmt.Sprintf("Level %d: %s", level.Level, level.Title)),
		fmt.Sprintf("%s %d/%d XP", styles.Bar(float64(level.XPInto)/float64(level.XPForNext), 20), level.XPInto, level.XPForNext),
		"",
		styles.KV("Total XP", fmt.Sprintf("%d", stats.XP)),
		styles.KV("Sessions", fmt.Sprintf("%d", stats.TotalSessions)),
		styles.KV("Focus time", ui.FormatMinutes(stats.TotalFocusMinutes)),
		styles.KV("Average session", fmt.Sprintf("%d min", avg)),
		"",
		styles.StreakStyle.Render(fmt.Sprintf("Best daily streak: %d days", stats.Streaks.DailyBest)),
		styles.KV("Best session run", fmt.Sprintf("%d", stats.Streaks.RunBest)),
	))
}
