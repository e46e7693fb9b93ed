// Package session orchestrates a full focus session: intention prompts, the
// countdown, and the XP/streak/persistence updates that follow. All
// collaborators are injected so the flow is testable without a terminal.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"focus/internal/config"
	"focus/internal/gamify"
	"focus/internal/notify"
	"focus/internal/storage"
	"focus/internal/timer"
)

// ErrSessionActive signals that a session marker already exists. Callers
// redirect to the status view; this is not a failure.
var ErrSessionActive = errors.New("a session is already in progress")

// ErrCancelled signals that the user declined to start during the
// essentialism check.
var ErrCancelled = errors.New("session cancelled")

// Prompter collects answers from the user. The ui package provides the
// terminal implementation; tests script their own.
type Prompter interface {
	Text(label, def string) (string, error)
	Int(label string, def int) (int, error)
	Confirm(label string, def bool) (bool, error)
	Choice(label string, options []string, def string) (string, error)
}

// CountdownFunc runs the interactive countdown and reports its outcome.
type CountdownFunc func(task, intention string, total time.Duration) (timer.Result, error)

// Runner composes the session flow.
type Runner struct {
	Store     *storage.Storage
	Config    *config.Config
	Notifier  notify.Notifier
	Speaker   notify.Speaker
	Prompt    Prompter
	Countdown CountdownFunc
	Rand      *rand.Rand
}

// Outcome is everything the caller needs to render the post-session screens.
type Outcome struct {
	Session storage.Session
	Stats   storage.Stats // post-update snapshot

	// Completed sessions only
	Award        gamify.Award
	LevelBefore  gamify.LevelInfo
	LevelAfter   gamify.LevelInfo
	BreakMinutes int
	LongBreak    bool
}

// Run starts a focus session. Zero or negative duration and an empty task
// trigger interactive prompts. The active-session marker is created before
// the countdown and removed on every exit path.
func (r *Runner) Run(durationMinutes int, task string) (*Outcome, error) {
	if r.Store.HasActiveSession() {
		return nil, ErrSessionActive
	}

	cfg := r.Config

	if durationMinutes <= 0 {
		d, err := r.Prompt.Int("How long will you focus? (minutes)", cfg.Session.DefaultDuration)
		if err != nil {
			return nil, err
		}
		durationMinutes = d
	}
	if durationMinutes <= 0 {
		durationMinutes = cfg.Session.DefaultDuration
	}

	if task == "" {
		t, err := r.Prompt.Text("What are you working on?", "Deep work")
		if err != nil {
			return nil, err
		}
		task = t
	}

	essential, err := r.Prompt.Confirm("Is this essential to your goals?", true)
	if err != nil {
		return nil, err
	}
	if !essential {
		proceed, err := r.Prompt.Confirm("Consider: is this the right thing to work on? Continue anyway?", true)
		if err != nil {
			return nil, err
		}
		if !proceed {
			return nil, ErrCancelled
		}
	}

	goal, err := r.Prompt.Text("What specific outcome marks this session complete?", "")
	if err != nil {
		return nil, err
	}

	distraction, err := r.Prompt.Text("What might distract you?", "notifications")
	if err != nil {
		return nil, err
	}
	response, err := r.Prompt.Text(fmt.Sprintf("When you want to check %s, you will:", distraction), "note it and continue")
	if err != nil {
		return nil, err
	}
	intention := fmt.Sprintf("When I want to check %s, I will %s", distraction, response)

	active := &storage.ActiveSession{
		StartTime: r.Store.Now(),
		Task:      task,
		Duration:  durationMinutes,
		Goal:      goal,
		Intention: intention,
		Essential: essential,
	}
	if err := r.Store.SaveActiveSession(active); err != nil {
		return nil, err
	}
	// The marker is the sole source of truth for "session in progress";
	// leaking it wedges the tool, so removal covers every exit path.
	defer func() { _ = r.Store.ClearActiveSession() }()

	r.notify("Focus Mode", fmt.Sprintf("Starting %d-minute deep work session", durationMinutes), false)

	res, err := r.Countdown(task, intention, time.Duration(durationMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	if res.Completed {
		return r.finishCompleted(task, goal, intention, essential, res)
	}
	return r.finishAborted(task, goal, intention, essential, res)
}

func (r *Runner) finishCompleted(task, goal, intention string, essential bool, res timer.Result) (*Outcome, error) {
	cfg := r.Config

	r.notify("Focus Mode", "Session complete! Great work!", true)
	r.speak("Deep work session complete.")

	// A cancelled reflection prompt still records the completed session.
	outcome, err := r.Prompt.Choice("Did you achieve your goal?", []string{"y", "n", "partial"}, "y")
	if err != nil {
		outcome = string(storage.GoalAchieved)
	}
	resumeNote, err := r.Prompt.Text("Note for next session", "")
	if err != nil {
		resumeNote = ""
	}

	// Reload so a session that crossed midnight lands on the right day.
	stats, _ := r.Store.LoadStats()

	sess := storage.Session{
		Task:         task,
		Goal:         goal,
		Intention:    intention,
		GoalAchieved: storage.GoalOutcome(outcome),
		Distractions: res.Distractions,
		Minutes:      res.Minutes,
		Completed:    true,
		Essential:    essential,
		ResumeNote:   resumeNote,
		Timestamp:    r.Store.Now(),
	}

	award := gamify.ComputeXP(sess, *stats, cfg.Gamification, r.Rand)
	before := gamify.ResolveLevel(stats.XP)

	stats.XP += award.Amount
	after := gamify.ResolveLevel(stats.XP)
	stats.Level = after.Level

	stats.TotalSessions++
	stats.TotalFocusMinutes += sess.Minutes
	stats.Today.Sessions++
	stats.Today.FocusMinutes += sess.Minutes
	stats.Today.XPEarned += award.Amount

	stats.Streaks = gamify.UpdateStreaks(*stats, true, cfg.Streaks)

	if err := r.Store.AppendSession(sess); err != nil {
		return nil, err
	}
	if err := r.Store.SaveStats(stats); err != nil {
		return nil, err
	}

	if after.Level > before.Level {
		r.notify("Focus Mode", fmt.Sprintf("LEVEL UP! You reached level %d: %s", after.Level, after.Title), true)
		r.speak(fmt.Sprintf("Level up. You are now a %s.", after.Title))
	}

	breakMinutes := cfg.Session.ShortBreak
	longBreak := false
	if n := cfg.Session.SessionsBeforeLongBreak; n > 0 && stats.Today.Sessions%n == 0 {
		breakMinutes = cfg.Session.LongBreak
		longBreak = true
	}

	return &Outcome{
		Session:      sess,
		Stats:        *stats,
		Award:        award,
		LevelBefore:  before,
		LevelAfter:   after,
		BreakMinutes: breakMinutes,
		LongBreak:    longBreak,
	}, nil
}

func (r *Runner) finishAborted(task, goal, intention string, essential bool, res timer.Result) (*Outcome, error) {
	stats, _ := r.Store.LoadStats()

	sess := storage.Session{
		Task:         task,
		Goal:         goal,
		Intention:    intention,
		Distractions: res.Distractions,
		Minutes:      res.Minutes,
		Completed:    false,
		Reason:       storage.StopReason(res.Reason),
		Essential:    essential,
		Timestamp:    r.Store.Now(),
	}

	// An abort breaks the run streak but never the daily streak.
	stats.Streaks = gamify.UpdateStreaks(*stats, false, r.Config.Streaks)

	if err := r.Store.AppendSession(sess); err != nil {
		return nil, err
	}
	if err := r.Store.SaveStats(stats); err != nil {
		return nil, err
	}

	return &Outcome{Session: sess, Stats: *stats}, nil
}

// notify sends a best-effort desktop notification; failures are swallowed.
func (r *Runner) notify(title, message string, sound bool) {
	if r.Notifier == nil || !r.Config.Notifications.Enabled {
		return
	}
	if sound {
		_ = r.Notifier.SendWithSound(title, message, r.Config.Notifications.Sound)
		return
	}
	_ = r.Notifier.Send(title, message)
}

// speak reads a message aloud if voice announcements are enabled.
func (r *Runner) speak(message string) {
	if r.Speaker == nil || !r.Config.Notifications.Enabled || !r.Config.Notifications.Voice {
		return
	}
	_ = r.Speaker.Speak(message)
}
