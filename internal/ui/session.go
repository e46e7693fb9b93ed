package ui

import (
	"fmt"
	"strings"
	"time"

	"focus/internal/timer"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Poll cadence for the countdown loop. The faster tick while running keeps
// key handling responsive; the slower one while paused saves CPU.
const (
	runningTick = 100 * time.Millisecond
	pausedTick  = 500 * time.Millisecond

	flashDuration = 2 * time.Second
)

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sessionModel hosts the countdown state machine in a Bubble Tea loop,
// mapping ticks and key presses to machine transitions.
type sessionModel struct {
	machine   *timer.Machine
	bar       progress.Model
	styles    *Styles
	task      string
	intention string
	flash     string
	flashTil  time.Time
	width     int
}

func newSessionModel(machine *timer.Machine, task, intention string, styles *Styles) sessionModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return sessionModel{
		machine:   machine,
		bar:       bar,
		styles:    styles,
		task:      task,
		intention: intention,
		width:     80,
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tickCmd(runningTick)
}

func (m sessionModel) tickInterval() time.Duration {
	if m.machine.State() == timer.StatePaused {
		return pausedTick
	}
	return runningTick
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(50, max(20, msg.Width-20))
		return m, nil

	case tickMsg:
		if m.flash != "" && m.machine.Now().After(m.flashTil) {
			m.flash = ""
		}
		if m.machine.Tick(); m.machine.Done() {
			return m, tea.Quit
		}
		return m, tickCmd(m.tickInterval())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.machine.Interrupt()
		return m, tea.Quit

	case "p":
		if m.machine.State() == timer.StatePaused {
			m.machine.Resume()
		} else {
			m.machine.Pause()
		}
		return m, nil

	case "enter":
		m.machine.Resume()
		return m, nil

	case "s":
		m.machine.Stop()
		return m, tea.Quit

	case "d":
		if m.machine.LogDistraction() {
			m.flash = fmt.Sprintf("Distraction logged (%d). Remember: %s",
				m.machine.Distractions(), m.intention)
			m.flashTil = m.machine.Now().Add(flashDuration)
		}
		return m, nil
	}

	return m, nil
}

func (m sessionModel) View() string {
	if m.machine.Done() {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.TaskStyle.Render("Deep Work: " + m.task))
	b.WriteString("\n\n")

	total := m.machine.Total()
	fraction := 0.0
	if total > 0 {
		fraction = float64(m.machine.Elapsed()) / float64(total)
	}
	b.WriteString(m.bar.ViewAs(fraction))
	b.WriteString(fmt.Sprintf("  %s left", FormatClock(m.machine.Remaining())))
	b.WriteString("\n\n")

	if m.machine.State() == timer.StatePaused {
		b.WriteString(m.styles.TimerPausedStyle.Render("PAUSED"))
		b.WriteString(m.styles.HelpStyle.Render("  enter resume · s stop"))
	} else {
		b.WriteString(m.styles.TimerRunningStyle.Render("FOCUS"))
		b.WriteString(m.styles.HelpStyle.Render("  p pause · s stop · d log distraction"))
	}
	b.WriteString("\n")

	if n := m.machine.Distractions(); n > 0 {
		b.WriteString(m.styles.MutedStyle.Render(fmt.Sprintf("Distractions: %d", n)))
		b.WriteString("\n")
	}

	if m.flash != "" {
		b.WriteString(m.styles.WarningStyle.Render(m.flash))
		b.WriteString("\n")
	}

	return m.styles.PanelStyle.Render(b.String())
}

// RunSession runs the interactive countdown for a session and returns its
// outcome. A hosting error is treated as an interrupt so the caller always
// receives a well-formed result.
func RunSession(task, intention string, total time.Duration, styles *Styles) (timer.Result, error) {
	machine := timer.New(total, nil)
	model := newSessionModel(machine, task, intention, styles)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		machine.Interrupt()
		return machine.Result(), nil
	}

	if fm, ok := final.(sessionModel); ok {
		machine = fm.machine
	}
	if !machine.Done() {
		machine.Interrupt()
	}
	return machine.Result(), nil
}
