// Package main is the entry point for the focus application.
// This file contains the status subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"focus/internal/gamify"
	"focus/internal/ui"
)

// statusHelpText is the help message for the status subcommand.
const statusHelpText = `focus status - Show the active session or today's progress

USAGE:
    focus status [OPTIONS]

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    With a session in progress, shows the task, elapsed time, and time
    remaining. Otherwise shows today's sessions, focus time, XP, and level
    against your daily goals.
`

// runStatus handles the "focus status" subcommand.
func runStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, statusHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(statusHelpText)
		os.Exit(0)
	}

	cfg, store, styles := loadEnv()

	active, err := store.LoadActiveSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading active session: %v\n", err)
		os.Exit(1)
	}

	if active != nil {
		elapsed := store.Now().Sub(active.StartTime)
		total := time.Duration(active.Duration) * time.Minute
		remaining := max(total-elapsed, 0)

		lines := []string{
			styles.TaskStyle.Render(active.Task),
			"",
			styles.KV("Elapsed", ui.FormatClock(elapsed)),
			styles.KV("Remaining", ui.FormatClock(remaining)),
			styles.Bar(min(elapsed.Seconds()/total.Seconds(), 1), 24),
		}
		if active.Goal != "" {
			lines = append(lines, "", styles.KV("Goal", active.Goal))
		}
		if active.Intention != "" {
			lines = append(lines, styles.MutedStyle.Render(active.Intention))
		}
		fmt.Println(styles.Panel("Session in progress", lines...))
		return
	}

	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	sessionGoal := cfg.Goals.DailySessions
	if stats.Today.SessionGoal > 0 {
		sessionGoal = stats.Today.SessionGoal
	}

	level := gamify.ResolveLevel(stats.XP)
	lines := []string{
		styles.KV("Sessions", fmt.Sprintf("%d / %d", stats.Today.Sessions, sessionGoal)),
		styles.KV("Focus time", fmt.Sprintf("%s / %s",
			ui.FormatMinutes(stats.Today.FocusMinutes), ui.FormatMinutes(cfg.Goals.DailyFocusMinutes))),
		styles.KV("XP earned today", fmt.Sprintf("%d", stats.Today.XPEarned)),
		"",
		styles.LevelStyle.Render(fmt.Sprintf("Level %d: %s", level.Level, level.Title)),
		fmt.Sprintf("%s %d/%d XP", styles.Bar(float64(level.XPInto)/float64(level.XPForNext), 20), level.XPInto, level.XPForNext),
		styles.StreakStyle.Render(fmt.Sprintf("Daily streak: %d days", stats.Streaks.Daily)),
	}
	if stats.Today.EssentialTask != "" {
		lines = append(lines, "", styles.KV("Essential task", stats.Today.EssentialTask))
	}
	if sessions, err := store.LoadSessions(); err == nil {
		weekMinutes := 0
		for _, sess := range store.WeekSessions(sessions) {
			weekMinutes += sess.Minutes
		}
		if weekMinutes > 0 {
			lines = append(lines, styles.KV("This week", ui.FormatMinutes(weekMinutes)))
		}
	}
	fmt.Println(styles.Panel("Today", lines...))

	if stats.Today.Sessions == 0 {
		fmt.Println(styles.MutedStyle.Render("No sessions yet. Run 'focus start' to begin."))
	}
}
