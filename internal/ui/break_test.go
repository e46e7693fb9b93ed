package ui

import (
	"strings"
	"testing"
	"time"

	"focus/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestBreakModel(t *testing.T, minutes int) (breakModel, *sessionClock) {
	t.Helper()
	setupTest(t)
	clock := &sessionClock{t: time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)}
	machine := timer.New(time.Duration(minutes)*time.Minute, clock.now)
	return newBreakModel(machine, createTestStyles()), clock
}

func TestBreakModel_ViewShowsCountdown(t *testing.T) {
	model, _ := newTestBreakModel(t, 5)

	output := model.View()
	if !strings.Contains(output, "BREAK - 05:00 left") {
		t.Errorf("view should show the break countdown, got:\n%s", output)
	}
	if !strings.Contains(output, "Stand up and stretch") {
		t.Errorf("view should list break suggestions, got:\n%s", output)
	}
	if !strings.Contains(output, "s skip break") {
		t.Errorf("view should show the skip hint, got:\n%s", output)
	}
}

func TestBreakModel_SkipStops(t *testing.T) {
	model, _ := newTestBreakModel(t, 5)

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	model = next.(breakModel)

	if model.machine.State() != timer.StateStopped {
		t.Fatalf("state after s = %v, want stopped", model.machine.State())
	}
	if cmd == nil {
		t.Fatal("skip should return a quit command")
	}
	if got := model.View(); got != "" {
		t.Errorf("view after skip should be empty, got:\n%s", got)
	}
}

func TestBreakModel_TickQuitsWhenExpired(t *testing.T) {
	model, clock := newTestBreakModel(t, 5)
	clock.advance(5 * time.Minute)

	next, cmd := model.Update(tickMsg(clock.now()))
	model = next.(breakModel)

	if model.machine.State() != timer.StateFinished {
		t.Fatalf("state after expiry = %v, want finished", model.machine.State())
	}
	if cmd == nil {
		t.Fatal("expiry tick should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expiry tick command should quit the program")
	}
}
