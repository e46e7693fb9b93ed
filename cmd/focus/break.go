// Package main is the entry point for the focus application.
// This file contains the break subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"focus/internal/config"
	"focus/internal/notify"
	"focus/internal/ui"
)

// breakHelpText is the help message for the break subcommand.
const breakHelpText = `focus break - Take a timed break

USAGE:
    focus break [OPTIONS] [MINUTES]

OPTIONS:
    -l, --long     Take a long break (default 15 minutes)
    -h, --help     Show this help message

ARGUMENTS:
    MINUTES        Break length in minutes. Overrides --long.

DESCRIPTION:
    Runs a countdown with a suggestion for what to do away from the screen.
    Press s to skip the rest of the break.

EXAMPLES:
    # Short break (default 5 minutes)
    focus break

    # Long break
    focus break --long

    # Custom length
    focus break 10
`

// runBreak handles the "focus break" subcommand.
func runBreak(args []string) {
	fs := flag.NewFlagSet("break", flag.ExitOnError)

	longFlag := fs.Bool("long", false, "take a long break")
	fs.BoolVar(longFlag, "l", false, "take a long break (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, breakHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(breakHelpText)
		os.Exit(0)
	}

	cfg, _, styles := loadEnv()

	minutes := cfg.Session.ShortBreak
	if *longFlag {
		minutes = cfg.Session.LongBreak
	}
	if fs.NArg() > 0 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid break length %q\n", fs.Arg(0))
			os.Exit(1)
		}
		minutes = n
	}

	notifier := notify.New()
	speaker := notify.NewSpeaker()
	notifyBreak(cfg, notifier, speaker, "Break time",
		fmt.Sprintf("%d minutes to recharge.", minutes), "")

	finished, err := ui.RunBreak(minutes, styles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running break: %v\n", err)
		os.Exit(1)
	}
	if finished {
		notifyBreak(cfg, notifier, speaker, "Break over",
			"Ready for the next session.", "Break complete.")
		fmt.Println(styles.SuccessStyle.Render("Break over. Ready for the next session."))
	}
}

// notifyBreak sends a best-effort break notification, with an optional voice
// announcement; failures are swallowed.
func notifyBreak(cfg *config.Config, notifier notify.Notifier, speaker notify.Speaker, title, message, speech string) {
	if !cfg.Notifications.Enabled {
		return
	}
	if notifier != nil {
		_ = notifier.SendWithSound(title, message, cfg.Notifications.Sound)
	}
	if speech != "" && speaker != nil && cfg.Notifications.Voice {
		_ = speaker.Speak(speech)
	}
}
