// Package session orchestrates a full focus session.
// This file contains tests for the runner flow.
package session

import (
	"errors"
	"testing"
	"time"

	"focus/internal/config"
	"focus/internal/storage"
	"focus/internal/timer"
)

// acceptDefaults is a prompter that accepts every default answer.
type acceptDefaults struct{}

func (acceptDefaults) Text(label, def string) (string, error) { return def, nil }
func (acceptDefaults) Int(label string, def int) (int, error) { return def, nil }
func (acceptDefaults) Confirm(label string, def bool) (bool, error) {
	return def, nil
}
func (acceptDefaults) Choice(label string, options []string, def string) (string, error) {
	return def, nil
}

// declinePrompter answers no to every confirmation.
type declinePrompter struct {
	acceptDefaults
}

func (declinePrompter) Confirm(label string, def bool) (bool, error) { return false, nil }

// choicePrompter overrides the goal-outcome choice.
type choicePrompter struct {
	acceptDefaults
	choice string
}

func (p choicePrompter) Choice(label string, options []string, def string) (string, error) {
	return p.choice, nil
}

// scriptedCountdown returns a canned result and records what it was given.
type scriptedCountdown struct {
	result    timer.Result
	err       error
	task      string
	intention string
	total     time.Duration
	called    bool
}

func (c *scriptedCountdown) run(task, intention string, total time.Duration) (timer.Result, error) {
	c.called = true
	c.task = task
	c.intention = intention
	c.total = total
	return c.result, c.err
}

// newTestRunner builds a runner over temp storage with a fixed clock and
// notifications disabled.
func newTestRunner(t *testing.T, countdown *scriptedCountdown) *Runner {
	t.Helper()

	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error: %v", err)
	}
	store.SetNowFunc(func() time.Time {
		return time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	})

	cfg := config.Default()
	cfg.Notifications.Enabled = false

	return &Runner{
		Store:     store,
		Config:    cfg,
		Prompt:    acceptDefaults{},
		Countdown: countdown.run,
	}
}

// TestRunner_CompletedSession tests the full happy path.
func TestRunner_CompletedSession(t *testing.T) {
	countdown := &scriptedCountdown{
		result: timer.Result{Completed: true, Minutes: 25, Distractions: 0},
	}
	r := newTestRunner(t, countdown)

	outcome, err := r.Run(25, "write code")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if countdown.total != 25*time.Minute {
		t.Errorf("countdown total = %v, want 25m", countdown.total)
	}
	if countdown.task != "write code" {
		t.Errorf("countdown task = %q", countdown.task)
	}
	if countdown.intention == "" {
		t.Error("countdown got no implementation intention")
	}

	// First session, goal achieved, zero distractions, no streak.
	if outcome.Award.Amount != 110 {
		t.Errorf("Award.Amount = %d, want 110", outcome.Award.Amount)
	}
	if outcome.Stats.XP != 110 {
		t.Errorf("Stats.XP = %d, want 110", outcome.Stats.XP)
	}
	if outcome.Stats.TotalSessions != 1 || outcome.Stats.Today.Sessions != 1 {
		t.Errorf("session counters = %d/%d, want 1/1",
			outcome.Stats.TotalSessions, outcome.Stats.Today.Sessions)
	}
	if outcome.Stats.Streaks.Run != 1 {
		t.Errorf("run streak = %d, want 1", outcome.Stats.Streaks.Run)
	}
	if outcome.LongBreak || outcome.BreakMinutes != 5 {
		t.Errorf("break = %d min (long=%v), want short 5", outcome.BreakMinutes, outcome.LongBreak)
	}

	if r.Store.HasActiveSession() {
		t.Error("active session marker left behind")
	}

	sessions, _ := r.Store.LoadSessions()
	if len(sessions.Sessions) != 1 {
		t.Fatalf("history has %d records, want 1", len(sessions.Sessions))
	}
	rec := sessions.Sessions[0]
	if !rec.Completed || rec.Task != "write code" || rec.Minutes != 25 {
		t.Errorf("recorded session = %+v", rec)
	}
	if rec.GoalAchieved != storage.GoalAchieved {
		t.Errorf("GoalAchieved = %q, want y", rec.GoalAchieved)
	}
}

// TestRunner_PartialOutcomeRecorded tests the partial goal choice.
func TestRunner_PartialOutcomeRecorded(t *testing.T) {
	countdown := &scriptedCountdown{
		result: timer.Result{Completed: true, Minutes: 20},
	}
	r := newTestRunner(t, countdown)
	r.Prompt = choicePrompter{choice: "partial"}

	outcome, err := r.Run(20, "refactor")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// 50 + 7 + 20 + 25
	if outcome.Award.Amount != 102 {
		t.Errorf("Award.Amount = %d, want 102", outcome.Award.Amount)
	}
	if outcome.Session.GoalAchieved != storage.GoalPartial {
		t.Errorf("GoalAchieved = %q, want partial", outcome.Session.GoalAchieved)
	}
}

// TestRunner_StoppedSession tests the early-stop path: recorded without XP,
// run streak reset, marker removed.
func TestRunner_StoppedSession(t *testing.T) {
	countdown := &scriptedCountdown{
		result: timer.Result{Completed: false, Minutes: 3, Distractions: 2, Reason: timer.ReasonStopped},
	}
	r := newTestRunner(t, countdown)

	// Seed an existing run streak.
	stats, _ := r.Store.LoadStats()
	stats.Streaks.Run = 4
	stats.Streaks.RunBest = 4
	if err := r.Store.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats() error: %v", err)
	}

	outcome, err := r.Run(25, "write code")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if outcome.Session.Completed {
		t.Error("session recorded as completed")
	}
	if outcome.Session.Reason != storage.ReasonStopped {
		t.Errorf("Reason = %q, want stopped", outcome.Session.Reason)
	}
	if outcome.Session.Minutes != 3 {
		t.Errorf("Minutes = %d, want 3", outcome.Session.Minutes)
	}
	if outcome.Award.Amount != 0 {
		t.Errorf("Award.Amount = %d, want 0", outcome.Award.Amount)
	}
	if outcome.Stats.XP != 0 {
		t.Errorf("Stats.XP = %d, want 0", outcome.Stats.XP)
	}
	if outcome.Stats.Streaks.Run != 0 {
		t.Errorf("run streak = %d, want reset to 0", outcome.Stats.Streaks.Run)
	}
	if outcome.Stats.Streaks.RunBest != 4 {
		t.Errorf("RunBest = %d, want preserved 4", outcome.Stats.Streaks.RunBest)
	}
	if r.Store.HasActiveSession() {
		t.Error("active session marker left behind")
	}
}

// TestRunner_SessionActiveRejected tests the single-session invariant.
func TestRunner_SessionActiveRejected(t *testing.T) {
	countdown := &scriptedCountdown{result: timer.Result{Completed: true, Minutes: 25}}
	r := newTestRunner(t, countdown)

	marker := &storage.ActiveSession{StartTime: r.Store.Now(), Task: "other", Duration: 25}
	if err := r.Store.SaveActiveSession(marker); err != nil {
		t.Fatalf("SaveActiveSession() error: %v", err)
	}

	_, err := r.Run(25, "write code")
	if !errors.Is(err, ErrSessionActive) {
		t.Fatalf("Run() error = %v, want ErrSessionActive", err)
	}
	if countdown.called {
		t.Error("countdown ran despite active session")
	}
}

// TestRunner_MarkerClearedOnCountdownError tests marker cleanup on the
// failure exit path.
func TestRunner_MarkerClearedOnCountdownError(t *testing.T) {
	countdown := &scriptedCountdown{err: errors.New("terminal went away")}
	r := newTestRunner(t, countdown)

	if _, err := r.Run(25, "write code"); err == nil {
		t.Fatal("Run() swallowed countdown error")
	}
	if r.Store.HasActiveSession() {
		t.Error("active session marker left behind after error")
	}
}

// TestRunner_EssentialismDeclineCancels tests the double-decline exit.
func TestRunner_EssentialismDeclineCancels(t *testing.T) {
	countdown := &scriptedCountdown{result: timer.Result{Completed: true, Minutes: 25}}
	r := newTestRunner(t, countdown)
	r.Prompt = declinePrompter{}

	_, err := r.Run(25, "scroll feeds")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() error = %v, want ErrCancelled", err)
	}
	if countdown.called {
		t.Error("countdown ran after cancellation")
	}
	if r.Store.HasActiveSession() {
		t.Error("marker created for cancelled session")
	}

	sessions, _ := r.Store.LoadSessions()
	if len(sessions.Sessions) != 0 {
		t.Errorf("history has %d records, want 0", len(sessions.Sessions))
	}
}

// TestRunner_ThresholdSessionExtendsStreak tests that the session reaching
// the per-day threshold moves the daily streak.
func TestRunner_ThresholdSessionExtendsStreak(t *testing.T) {
	countdown := &scriptedCountdown{result: timer.Result{Completed: true, Minutes: 20}}
	r := newTestRunner(t, countdown)

	stats, _ := r.Store.LoadStats()
	stats.Today.Sessions = 2
	stats.Streaks.Daily = 1
	stats.Streaks.LastQualifyingDate = "2026-08-28"
	if err := r.Store.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats() error: %v", err)
	}

	outcome, err := r.Run(20, "third session")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if outcome.Stats.Today.Sessions != 3 {
		t.Fatalf("Today.Sessions = %d, want 3", outcome.Stats.Today.Sessions)
	}
	if outcome.Stats.Streaks.Daily != 2 {
		t.Errorf("Daily = %d, want extended to 2", outcome.Stats.Streaks.Daily)
	}
	if outcome.Stats.Streaks.LastQualifyingDate != "2026-08-29" {
		t.Errorf("LastQualifyingDate = %q, want 2026-08-29", outcome.Stats.Streaks.LastQualifyingDate)
	}
}

// TestRunner_LongBreakEveryFourth tests the long-break cadence.
func TestRunner_LongBreakEveryFourth(t *testing.T) {
	countdown := &scriptedCountdown{result: timer.Result{Completed: true, Minutes: 20}}
	r := newTestRunner(t, countdown)

	stats, _ := r.Store.LoadStats()
	stats.Today.Sessions = 3
	if err := r.Store.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats() error: %v", err)
	}

	outcome, err := r.Run(20, "fourth session")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !outcome.LongBreak || outcome.BreakMinutes != 15 {
		t.Errorf("break = %d min (long=%v), want long 15", outcome.BreakMinutes, outcome.LongBreak)
	}
}

// TestRunner_PromptedDuration tests the interactive duration fallback.
func TestRunner_PromptedDuration(t *testing.T) {
	countdown := &scriptedCountdown{result: timer.Result{Completed: true, Minutes: 20}}
	r := newTestRunner(t, countdown)

	if _, err := r.Run(0, ""); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if countdown.total != 20*time.Minute {
		t.Errorf("countdown total = %v, want default 20m", countdown.total)
	}
	if countdown.task != "Deep work" {
		t.Errorf("countdown task = %q, want default", countdown.task)
	}
}
