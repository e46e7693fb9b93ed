// Package main is the entry point for the focus application.
// This file contains the start subcommand handler.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"focus/internal/notify"
	"focus/internal/session"
	"focus/internal/timer"
	"focus/internal/ui"
)

// startHelpText is the help message for the start subcommand.
const startHelpText = `focus start - Start a deep work session

USAGE:
    focus start [OPTIONS] [MINUTES] [TASK...]

OPTIONS:
    -d, --duration N   Session length in minutes
    -h, --help         Show this help message

ARGUMENTS:
    MINUTES            Session length in minutes (same as --duration)
    TASK               What you are working on. Prompted if omitted.

DESCRIPTION:
    Walks through the pre-session ritual (task, essentialism check, goal,
    distraction plan), then runs the countdown. Completing the session earns
    XP with bonuses for hitting your goal, zero distractions, and the first
    session of the day, multiplied by your streak, with a 10%% chance of a
    critical hit.

    Stopping early records the elapsed minutes without XP. Only one session
    can run at a time.

EXAMPLES:
    # Prompt for everything
    focus start

    # 45 minutes on a named task
    focus start 45 "write design doc"

    # Flag form
    focus start --duration 90
`

// runStart handles the "focus start" subcommand.
func runStart(args []string) {
	fs := flag.NewFlagSet("start", flag.ExitOnError)

	durationFlag := fs.Int("duration", 0, "session length in minutes")
	fs.IntVar(durationFlag, "d", 0, "session length in minutes (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, startHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(startHelpText)
		os.Exit(0)
	}

	// A leading integer argument is the duration; the rest is the task.
	duration := *durationFlag
	rest := fs.Args()
	if duration == 0 && len(rest) > 0 {
		if n, err := strconv.Atoi(rest[0]); err == nil && n > 0 {
			duration = n
			rest = rest[1:]
		}
	}
	task := strings.Join(rest, " ")

	cfg, store, styles := loadEnv()

	runner := &session.Runner{
		Store:    store,
		Config:   cfg,
		Notifier: notify.New(),
		Speaker:  notify.NewSpeaker(),
		Prompt:   ui.NewPrompter(styles),
		Countdown: func(task, intention string, total time.Duration) (timer.Result, error) {
			return ui.RunSession(task, intention, total, styles)
		},
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	outcome, err := runner.Run(duration, task)
	switch {
	case errors.Is(err, session.ErrSessionActive):
		fmt.Println(styles.WarningPanel("Session already in progress",
			"Finish or stop the current session first.",
			"Run 'focus status' to see it."))
		os.Exit(1)
	case errors.Is(err, session.ErrCancelled):
		fmt.Println(styles.MutedStyle.Render("Session cancelled. Go do the essential thing instead."))
		return
	case errors.Is(err, ui.ErrPromptAborted):
		fmt.Println(styles.MutedStyle.Render("Cancelled."))
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}

	if !outcome.Session.Completed {
		renderAborted(styles, outcome)
		return
	}

	renderCompleted(styles, outcome)
	offerBreak(styles, runner, outcome)
}

// renderCompleted shows the XP award, level progress, and streak state after
// a finished session.
func renderCompleted(styles *ui.Styles, outcome *session.Outcome) {
	var lines []string
	for _, item := range outcome.Award.Breakdown {
		if strings.HasPrefix(item, "CRITICAL") {
			lines = append(lines, styles.CritStyle.Render(item))
			continue
		}
		lines = append(lines, item)
	}
	lines = append(lines, "")
	lines = append(lines, styles.XPStyle.Render(fmt.Sprintf("Total: +%d XP", outcome.Award.Amount)))

	title := fmt.Sprintf("Session complete: %s (%d min)", outcome.Session.Task, outcome.Session.Minutes)
	fmt.Println(styles.SuccessPanel(title, lines...))

	level := outcome.LevelAfter
	levelLines := []string{
		styles.LevelStyle.Render(fmt.Sprintf("Level %d: %s", level.Level, level.Title)),
		fmt.Sprintf("%s %d/%d XP", styles.Bar(float64(level.XPInto)/float64(level.XPForNext), 20), level.XPInto, level.XPForNext),
	}
	if outcome.LevelAfter.Level > outcome.LevelBefore.Level {
		levelLines = append([]string{styles.CritStyle.Render("LEVEL UP!")}, levelLines...)
	}
	fmt.Println(styles.Panel("Progress", levelLines...))

	streaks := outcome.Stats.Streaks
	fmt.Println(styles.Panel("Streaks",
		styles.StreakStyle.Render(fmt.Sprintf("Daily streak: %d days", streaks.Daily)),
		styles.KV("Session run", fmt.Sprintf("%d", streaks.Run)),
		styles.KV("Freezes banked", fmt.Sprintf("%d", streaks.Freezes)),
	))
}

// renderAborted shows what was recorded for a stopped or interrupted session.
func renderAborted(styles *ui.Styles, outcome *session.Outcome) {
	sess := outcome.Session
	lines := []string{
		styles.KV("Recorded", fmt.Sprintf("%d min (%s)", sess.Minutes, sess.Reason)),
		styles.KV("Distractions", fmt.Sprintf("%d", sess.Distractions)),
		"",
		styles.MutedStyle.Render("No XP for partial sessions. Your run streak reset;"),
		styles.MutedStyle.Render("your daily streak is untouched."),
	}
	fmt.Println(styles.WarningPanel("Session ended early: "+sess.Task, lines...))
}

// offerBreak proposes the short or long break the session earned.
func offerBreak(styles *ui.Styles, runner *session.Runner, outcome *session.Outcome) {
	kind := "short"
	if outcome.LongBreak {
		kind = "long"
	}
	label := fmt.Sprintf("Take a %d-minute %s break now?", outcome.BreakMinutes, kind)
	yes, err := runner.Prompt.Confirm(label, true)
	if err != nil || !yes {
		return
	}

	notifyBreak(runner.Config, runner.Notifier, runner.Speaker, "Break time",
		fmt.Sprintf("%d minutes to recharge.", outcome.BreakMinutes), "")

	finished, err := ui.RunBreak(outcome.BreakMinutes, styles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running break: %v\n", err)
		return
	}
	if finished {
		notifyBreak(runner.Config, runner.Notifier, runner.Speaker, "Break over",
			"Ready for the next session.", "Break complete.")
		fmt.Println(styles.SuccessStyle.Render("Break over. Ready for the next session."))
	}
}
