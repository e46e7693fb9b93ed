// Package main is the entry point for the focus application.
// This file contains the eod (shutdown ritual) subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"focus/internal/reports"
	"focus/internal/storage"
	"focus/internal/ui"
)

// eodHelpText is the help message for the eod subcommand.
const eodHelpText = `focus eod - End-of-day shutdown ritual

USAGE:
    focus eod [OPTIONS]

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    Closes the day: reviews what you did, captures a short reflection, and
    names tomorrow's one priority (it becomes tomorrow's essential task).
    The reflection is saved as Markdown under reflections/ in the data
    directory.
`

// runEOD handles the "focus eod" subcommand.
func runEOD(args []string) {
	fs := flag.NewFlagSet("eod", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, eodHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(eodHelpText)
		os.Exit(0)
	}

	cfg, store, styles := loadEnv()

	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	gen := reports.NewGenerator(store)
	report, err := gen.GenerateDaily(store.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	sessionGoal := cfg.Goals.DailySessions
	if stats.Today.SessionGoal > 0 {
		sessionGoal = stats.Today.SessionGoal
	}
	goalLine := styles.KV("Sessions", fmt.Sprintf("%d / %d", report.SessionCount, sessionGoal))
	if report.SessionCount >= sessionGoal {
		goalLine += " " + styles.SuccessStyle.Render("goal met")
	}
	reviewLines := []string{
		goalLine,
		styles.KV("Focus time", ui.FormatMinutes(report.FocusMinutes)),
		styles.KV("Distractions", fmt.Sprintf("%d", report.Distractions)),
		styles.KV("XP earned", fmt.Sprintf("%d", stats.Today.XPEarned)),
	}
	if stats.Today.EssentialTask != "" {
		reviewLines = append(reviewLines,
			styles.KV("Essential task", stats.Today.EssentialTask))
	}
	fmt.Println(styles.Panel("Today in review", reviewLines...))

	prompt := ui.NewPrompter(styles)

	win, err := prompt.Text("Biggest win today?", "")
	if abortedPrompt(err) {
		return
	}
	drain, err := prompt.Text("What drained you?", "")
	if abortedPrompt(err) {
		return
	}
	energy, err := prompt.Int("Energy level now? (1-10)", 5)
	if abortedPrompt(err) {
		return
	}
	energy = min(max(energy, 1), 10)
	tomorrow, err := prompt.Text("ONE priority for tomorrow?", "")
	if abortedPrompt(err) {
		return
	}

	stats.Today.TomorrowFocus = tomorrow
	stats.Today.EnergyReadings = append(stats.Today.EnergyReadings, storage.EnergyReading{
		Time:  store.Now().Format("15:04"),
		Level: energy,
	})
	if err := store.SaveStats(stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stats: %v\n", err)
		os.Exit(1)
	}

	refl := reports.DailyReflection{
		Date:             store.Now(),
		Win:              win,
		Drain:            drain,
		TomorrowPriority: tomorrow,
		Energy:           stats.Today.EnergyReadings,
	}
	path, err := gen.WriteDailyReflection(refl, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing reflection: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(styles.SuccessPanel("Day closed",
		styles.KV("Reflection saved", path),
		styles.KV("Tomorrow's priority", orNone(tomorrow)),
		"",
		styles.MutedStyle.Render("Shut the laptop. The streak is safe until tomorrow."),
	))
}
