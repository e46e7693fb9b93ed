// Package main is the entry point for the focus application.
// This file contains the gm (morning kickoff) subcommand handler.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"focus/internal/storage"
	"focus/internal/ui"
)

// gmHelpText is the help message for the gm subcommand.
const gmHelpText = `focus gm - Morning kickoff ritual

USAGE:
    focus gm [OPTIONS]

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    Sets up the day: pick the one essential task (carried over from
    yesterday's eod if you named one), set a session goal, and log your
    morning energy level. Run it once when you sit down.
`

// runGM handles the "focus gm" subcommand.
func runGM(args []string) {
	fs := flag.NewFlagSet("gm", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, gmHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(gmHelpText)
		os.Exit(0)
	}

	cfg, store, styles := loadEnv()

	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	lines := []string{
		styles.StreakStyle.Render(fmt.Sprintf("Daily streak: %d days", stats.Streaks.Daily)),
		styles.KV("Freezes banked", fmt.Sprintf("%d", stats.Streaks.Freezes)),
	}
	if recap := yesterdayRecap(store, styles); recap != "" {
		lines = append(lines, "", recap)
	}
	fmt.Println(styles.Panel("Good morning", lines...))

	prompt := ui.NewPrompter(styles)

	essential, err := prompt.Text("What is the ONE essential thing today?", stats.Today.EssentialTask)
	if abortedPrompt(err) {
		return
	}
	for essential != "" {
		truly, err := prompt.Confirm("Is this truly essential, not just urgent?", true)
		if abortedPrompt(err) {
			return
		}
		if truly {
			break
		}
		essential, err = prompt.Text("What actually matters most today?", "")
		if abortedPrompt(err) {
			return
		}
	}

	sessionGoal := cfg.Goals.DailySessions
	if stats.Today.SessionGoal > 0 {
		sessionGoal = stats.Today.SessionGoal
	}
	sessionGoal, err = prompt.Int("How many focus sessions will you do?", sessionGoal)
	if abortedPrompt(err) {
		return
	}

	energy, err := prompt.Int("Energy level right now? (1-10)", 7)
	if abortedPrompt(err) {
		return
	}
	energy = min(max(energy, 1), 10)

	stats.Today.EssentialTask = essential
	stats.Today.SessionGoal = sessionGoal
	stats.Today.EnergyReadings = append(stats.Today.EnergyReadings, storage.EnergyReading{
		Time:  store.Now().Format("15:04"),
		Level: energy,
	})

	if err := store.SaveStats(stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(styles.SuccessPanel("Plan set",
		styles.KV("Essential task", orNone(essential)),
		styles.KV("Session goal", fmt.Sprintf("%d", sessionGoal)),
		styles.KV("Energy", fmt.Sprintf("%d/10", energy)),
		"",
		styles.MutedStyle.Render("Run 'focus start' when you're ready."),
	))
}

// yesterdayRecap summarizes yesterday's completed sessions, or returns ""
// when there were none.
func yesterdayRecap(store *storage.Storage, styles *ui.Styles) string {
	sessions, err := store.LoadSessions()
	if err != nil {
		return ""
	}
	yesterday := store.Now().AddDate(0, 0, -1).Format(storage.DateFormat)

	completed, minutes := 0, 0
	for _, sess := range store.SessionsOn(sessions, yesterday) {
		if sess.Completed {
			completed++
			minutes += sess.Minutes
		}
	}
	if completed == 0 {
		return ""
	}
	return styles.KV("Yesterday", fmt.Sprintf("%d session(s), %s focused",
		completed, ui.FormatMinutes(minutes)))
}

// abortedPrompt reports whether the user bailed out of a prompt, printing a
// short notice when they did.
func abortedPrompt(err error) bool {
	if errors.Is(err, ui.ErrPromptAborted) {
		fmt.Println("Cancelled.")
		return true
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	return false
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
