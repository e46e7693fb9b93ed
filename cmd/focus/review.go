// Package main is the entry point for the focus application.
// This file contains the review (weekly review) subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"focus/internal/reports"
	"focus/internal/storage"
	"focus/internal/ui"
)

// reviewHelpText is the help message for the review subcommand.
const reviewHelpText = `focus review - Weekly Essentialism review

USAGE:
    focus review [OPTIONS]

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    Looks back over the current week (Monday start) and walks through four
    questions: what produced real results, what to stop doing, what deserves
    more time, and next week's essential priority. Answers are appended to
    the stats record and saved as Markdown under reflections/.
`

// runReview handles the "focus review" subcommand.
func runReview(args []string) {
	fs := flag.NewFlagSet("review", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, reviewHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(reviewHelpText)
		os.Exit(0)
	}

	_, store, styles := loadEnv()

	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	gen := reports.NewGenerator(store)
	report, err := gen.GenerateWeekly(store.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	lines := []string{
		styles.KV("Sessions", fmt.Sprintf("%d (%.0f%% completed)", report.SessionCount, report.CompletionRate)),
		styles.KV("Focus time", ui.FormatMinutes(report.FocusMinutes)),
	}
	if report.BestDay != "" {
		lines = append(lines, styles.KV("Best day", report.BestDay))
	}
	if report.PeakHour >= 0 {
		lines = append(lines, styles.KV("Peak hour", fmt.Sprintf("%02d:00", report.PeakHour)))
	}
	for i, t := range report.ByTask {
		if i == 0 {
			lines = append(lines, "", styles.SubtitleStyle.Render("Where the time went:"))
		}
		if i == 5 {
			break
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", t.Task, ui.FormatMinutes(t.Minutes)))
	}
	fmt.Println(styles.Panel("This week", lines...))

	prompt := ui.NewPrompter(styles)

	produced, err := prompt.Text("What produced real results this week?", "")
	if abortedPrompt(err) {
		return
	}
	stop, err := prompt.Text("What should you stop doing?", "")
	if abortedPrompt(err) {
		return
	}
	more, err := prompt.Text("What deserves more time?", "")
	if abortedPrompt(err) {
		return
	}
	next, err := prompt.Text("Next week's essential priority?", "")
	if abortedPrompt(err) {
		return
	}

	review := storage.WeeklyReview{
		WeekStart:       report.StartDate.Format(storage.DateFormat),
		Date:            store.Today(),
		Sessions:        report.SessionCount,
		FocusMinutes:    report.FocusMinutes,
		ProducedResults: produced,
		StopDoing:       stop,
		MoreTime:        more,
		NextPriority:    next,
	}
	stats.WeeklyReviews = append(stats.WeeklyReviews, review)
	if err := store.SaveStats(stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stats: %v\n", err)
		os.Exit(1)
	}

	path, err := gen.WriteWeeklyReflection(review, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing review: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(styles.SuccessPanel("Week reviewed",
		styles.KV("Review saved", path),
		styles.KV("Next week's priority", orNone(next)),
	))
}
