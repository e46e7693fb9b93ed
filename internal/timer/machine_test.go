// Package timer implements the countdown state machine.
// This file contains tests for the machine.
package timer

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for driving the machine in tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// TestMachine_NaturalExpiry tests a countdown running to completion.
func TestMachine_NaturalExpiry(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	if m.State() != StateRunning {
		t.Fatalf("State = %v, want running", m.State())
	}

	clock.advance(24 * time.Minute)
	if m.Tick() != StateRunning {
		t.Fatalf("finished a minute early")
	}

	clock.advance(1 * time.Minute)
	if m.Tick() != StateFinished {
		t.Fatalf("State = %v after full duration, want finished", m.State())
	}

	res := m.Result()
	if !res.Completed {
		t.Error("Result.Completed = false")
	}
	if res.Minutes != 25 {
		t.Errorf("Result.Minutes = %d, want planned 25", res.Minutes)
	}
	if res.Reason != "" {
		t.Errorf("Result.Reason = %q, want empty", res.Reason)
	}
}

// TestMachine_EarlyStopFloorsMinutes tests partial credit on stop.
func TestMachine_EarlyStopFloorsMinutes(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	// Stopping after 2 seconds floors to 0 minutes.
	clock.advance(2 * time.Second)
	m.Stop()

	res := m.Result()
	if res.Completed {
		t.Error("Result.Completed = true for stopped session")
	}
	if res.Minutes != 0 {
		t.Errorf("Result.Minutes = %d, want 0", res.Minutes)
	}
	if res.Reason != ReasonStopped {
		t.Errorf("Result.Reason = %q, want %q", res.Reason, ReasonStopped)
	}
}

// TestMachine_StopMidSession tests the floored elapsed minutes.
func TestMachine_StopMidSession(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	clock.advance(12*time.Minute + 59*time.Second)
	m.Stop()

	if got := m.Result().Minutes; got != 12 {
		t.Errorf("Result.Minutes = %d, want 12", got)
	}
}

// TestMachine_PauseExcluded tests that paused time never consumes countdown.
func TestMachine_PauseExcluded(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	clock.advance(10 * time.Minute)
	m.Pause()

	// A long pause leaves elapsed frozen.
	clock.advance(40 * time.Minute)
	if got := m.Elapsed(); got != 10*time.Minute {
		t.Errorf("Elapsed during pause = %v, want 10m", got)
	}
	if m.Tick() != StatePaused {
		t.Errorf("Tick during pause moved state to %v", m.Tick())
	}

	m.Resume()
	clock.advance(15 * time.Minute)
	if m.Tick() != StateFinished {
		t.Errorf("State = %v, want finished after 25 active minutes", m.State())
	}
}

// TestMachine_StopWhilePaused tests ending early from the paused state.
func TestMachine_StopWhilePaused(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	clock.advance(8 * time.Minute)
	m.Pause()
	clock.advance(5 * time.Minute)
	m.Stop()

	res := m.Result()
	if res.Minutes != 8 {
		t.Errorf("Result.Minutes = %d, want 8 active minutes", res.Minutes)
	}
	if res.Reason != ReasonStopped {
		t.Errorf("Result.Reason = %q, want %q", res.Reason, ReasonStopped)
	}
}

// TestMachine_InterruptReason tests the interrupt exit path.
func TestMachine_InterruptReason(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	clock.advance(3 * time.Minute)
	m.Interrupt()

	res := m.Result()
	if res.Reason != ReasonInterrupted {
		t.Errorf("Result.Reason = %q, want %q", res.Reason, ReasonInterrupted)
	}
	if res.Minutes != 3 {
		t.Errorf("Result.Minutes = %d, want 3", res.Minutes)
	}
}

// TestMachine_ResultFrozenAfterTerminal tests that the clock moving on after
// a terminal state does not change the recorded minutes.
func TestMachine_ResultFrozenAfterTerminal(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	clock.advance(5 * time.Minute)
	m.Stop()
	clock.advance(2 * time.Hour)

	if got := m.Result().Minutes; got != 5 {
		t.Errorf("Result.Minutes = %d after clock drift, want 5", got)
	}
}

// TestMachine_Distractions tests distraction logging rules.
func TestMachine_Distractions(t *testing.T) {
	clock := newFakeClock()
	m := New(25*time.Minute, clock.now)

	if !m.LogDistraction() {
		t.Error("LogDistraction() = false while running")
	}
	m.Pause()
	if m.LogDistraction() {
		t.Error("LogDistraction() = true while paused")
	}
	m.Resume()
	m.LogDistraction()
	m.Stop()
	if m.LogDistraction() {
		t.Error("LogDistraction() = true after stop")
	}

	if got := m.Result().Distractions; got != 2 {
		t.Errorf("Result.Distractions = %d, want 2", got)
	}
}

// TestMachine_Remaining tests the clamped remaining time.
func TestMachine_Remaining(t *testing.T) {
	clock := newFakeClock()
	m := New(10*time.Minute, clock.now)

	clock.advance(4 * time.Minute)
	if got := m.Remaining(); got != 6*time.Minute {
		t.Errorf("Remaining = %v, want 6m", got)
	}

	clock.advance(20 * time.Minute)
	if got := m.Remaining(); got != 0 {
		t.Errorf("Remaining = %v past expiry, want 0", got)
	}
}

// TestMachine_PauseResumeNoops tests state guards on pause and resume.
func TestMachine_PauseResumeNoops(t *testing.T) {
	clock := newFakeClock()
	m := New(10*time.Minute, clock.now)

	m.Resume() // not paused
	if m.State() != StateRunning {
		t.Errorf("Resume from running changed state to %v", m.State())
	}

	m.Stop()
	m.Pause() // terminal
	if m.State() != StateStopped {
		t.Errorf("Pause after stop changed state to %v", m.State())
	}
}
