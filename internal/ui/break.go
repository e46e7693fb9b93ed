package ui

import (
	"fmt"
	"strings"
	"time"

	"focus/internal/timer"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

var breakSuggestions = []string{
	"Stand up and stretch",
	"Look away from the screen (20-20-20 rule)",
	"Hydrate",
	"Quick walk",
}

// breakModel runs a simple break countdown. Breaks can be skipped but not
// paused, and don't track distractions.
type breakModel struct {
	machine *timer.Machine
	bar     progress.Model
	styles  *Styles
}

func newBreakModel(machine *timer.Machine, styles *Styles) breakModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	return breakModel{machine: machine, bar: bar, styles: styles}
}

func (m breakModel) Init() tea.Cmd {
	return tickCmd(time.Second)
}

func (m breakModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.machine.Tick(); m.machine.Done() {
			return m, tea.Quit
		}
		return m, tickCmd(time.Second)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.machine.Interrupt()
			return m, tea.Quit
		case "s", "q":
			m.machine.Stop()
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m breakModel) View() string {
	if m.machine.Done() {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.TitleStyle.Render(
		fmt.Sprintf("BREAK - %s left", FormatClock(m.machine.Remaining()))))
	b.WriteString("\n\n")

	total := m.machine.Total()
	fraction := 0.0
	if total > 0 {
		fraction = float64(m.machine.Elapsed()) / float64(total)
	}
	b.WriteString(m.bar.ViewAs(fraction))
	b.WriteString("\n\n")

	for _, s := range breakSuggestions {
		b.WriteString(m.styles.MutedStyle.Render("  - " + s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render("s skip break"))

	return m.styles.PanelStyle.Render(b.String())
}

// RunBreak runs a break countdown for the given number of minutes. Returns
// true if the break ran to completion.
func RunBreak(minutes int, styles *Styles) (bool, error) {
	machine := timer.New(time.Duration(minutes)*time.Minute, nil)

	_, err := tea.NewProgram(newBreakModel(machine, styles)).Run()
	if err != nil {
		return false, nil
	}
	return machine.State() == timer.StateFinished, nil
}
