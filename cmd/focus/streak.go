// Package main is the entry point for the focus application.
// This file contains the streak subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"focus/internal/storage"
	"focus/internal/ui"
)

// streakHelpText is the help message for the streak subcommand.
const streakHelpText = `focus streak - Show streaks and freeze credits

USAGE:
    focus streak [OPTIONS]

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    The daily streak counts consecutive days with enough completed sessions
    (3 by default). Missing one day with a freeze banked spends the freeze
    and keeps the streak alive; a freeze is earned every 7 streak days.

    The session run counts consecutive completed sessions and resets on any
    stopped or interrupted session.
`

// runStreak handles the "focus streak" subcommand.
func runStreak(args []string) {
	fs := flag.NewFlagSet("streak", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, streakHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(streakHelpText)
		os.Exit(0)
	}

	cfg, store, styles := loadEnv()

	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	streaks := stats.Streaks
	needed := max(cfg.Streaks.SessionsPerDay-stats.Today.Sessions, 0)

	lines := []string{
		styles.StreakStyle.Render(fmt.Sprintf("Daily streak: %d days", streaks.Daily)),
		styles.KV("Best daily streak", fmt.Sprintf("%d days", streaks.DailyBest)),
		"",
		styles.KV("Session run", fmt.Sprintf("%d", streaks.Run)),
		styles.KV("Best run", fmt.Sprintf("%d", streaks.RunBest)),
		"",
		styles.KV("Freezes banked", fmt.Sprintf("%d", streaks.Freezes)),
	}
	if needed > 0 {
		lines = append(lines, "",
			fmt.Sprintf("%d more session(s) today to keep the streak.", needed))
	} else {
		lines = append(lines, "",
			styles.SuccessStyle.Render("Today already counts toward the streak."))
	}

	if week := weekView(store, styles, cfg.Streaks.SessionsPerDay); week != nil {
		lines = append(lines, "")
		lines = append(lines, week...)
	}

	fmt.Println(styles.Panel("Streaks", lines...))
}

// weekView renders this week's days with a mark per day: a check when the
// day hit the streak threshold, a circle when it had any completed session.
func weekView(store *storage.Storage, styles *ui.Styles, threshold int) []string {
	sessions, err := store.LoadSessions()
	if err != nil {
		return nil
	}

	weekStart := storage.StartOfWeek(store.Now())
	today := storage.StartOfDay(store.Now())

	var names, marks []string
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		names = append(names, day.Format("Mon"))

		if day.After(today) {
			marks = append(marks, " · ")
			continue
		}
		completed := 0
		for _, sess := range store.SessionsOn(sessions, day.Format(storage.DateFormat)) {
			if sess.Completed {
				completed++
			}
		}
		switch {
		case threshold > 0 && completed >= threshold:
			marks = append(marks, styles.SuccessStyle.Render(" ✓ "))
		case completed > 0:
			marks = append(marks, " ○ ")
		default:
			marks = append(marks, " · ")
		}
	}

	return []string{
		styles.MutedStyle.Render(strings.Join(names, " ")),
		strings.Join(marks, " "),
	}
}
