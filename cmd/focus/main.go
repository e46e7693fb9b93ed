// Package main is the entry point for the focus application.
// It dispatches subcommands and falls back to starting a session.
package main

import (
	"flag"
	"fmt"
	"os"

	"focus/internal/config"
	"focus/internal/storage"
	"focus/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `focus - Deep work sessions with XP, levels, and streaks

USAGE:
    focus [OPTIONS]
    focus <command> [ARGS]

COMMANDS:
    start [MINUTES]  Start a focus session (alias: focus)
    break            Take a short break
    break --long     Take a long break
    status           Show the active session or today's progress
    stats [RANGE]    Show statistics (today, week, or all)
    streak           Show streaks and freeze credits
    gm               Morning kickoff ritual
    eod              End-of-day shutdown ritual
    review           Weekly Essentialism review
    export           Generate a daily report (Markdown)
    export --weekly  Generate a weekly report
    export -f json   Output report as JSON
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    focus is a terminal-based deep work timer that turns focus time into a
    game: XP for completed sessions, levels with titles, daily streaks with
    freeze credits, and the occasional critical hit.

    Running focus with no arguments shows the active session if one is in
    progress, otherwise it starts a new session.

SESSION KEYBINDINGS:
    p            Pause / resume
    d            Log a distraction
    s            Stop early (partial credit for elapsed time)
    Ctrl+C       Interrupt

DATA STORAGE:
    All data is stored in ~/.focus/ as plain JSON files:
        sessions.json         - Full session history
        stats.json            - XP, level, streaks, daily counters
        active_session.json   - Marker for a session in progress
        reflections/          - Markdown reflections from eod and review

CONFIGURATION:
    Optional config file: ~/.config/focus/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start a 20-minute session (default duration)
    focus start

    # Start a 45-minute session on a named task
    focus start 45 "write design doc"

    # Check progress
    focus status
    focus stats week
    focus streak

    # Morning and evening rituals
    focus gm
    focus eod

    # Show version
    focus --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "start", "focus":
			runStart(os.Args[2:])
			return
		case "break":
			runBreak(os.Args[2:])
			return
		case "status":
			runStatus(os.Args[2:])
			return
		case "stats":
			runStats(os.Args[2:])
			return
		case "streak":
			runStreak(os.Args[2:])
			return
		case "gm":
			runGM(os.Args[2:])
			return
		case "eod":
			runEOD(os.Args[2:])
			return
		case "review":
			runReview(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		}
	}

	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("focus version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Bare invocation: show the running session, or start a new one.
	_, store, _ := loadEnv()
	if store.HasActiveSession() {
		runStatus(nil)
		return
	}
	runStart(nil)
}

// loadEnv loads configuration, storage, and themed styles, exiting on error.
// Every subcommand starts here.
func loadEnv() (*config.Config, *storage.Storage, *ui.Styles) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	return cfg, store, ui.NewStylesFromTheme(&cfg.Theme)
}
