// Package ui provides the terminal interface for the focus app: one-shot
// question prompts, the session and break countdown views, and the panel
// rendering used by the CLI commands.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptAborted is returned when the user cancels a prompt (ctrl+c, esc).
var ErrPromptAborted = errors.New("prompt aborted")

// Prompter asks interactive questions on the terminal. It satisfies the
// session package's prompt collaborator.
type Prompter struct {
	styles *Styles
}

// NewPrompter creates a terminal prompter with the given styles.
func NewPrompter(styles *Styles) *Prompter {
	return &Prompter{styles: styles}
}

// promptModel is a minimal single-question input model.
type promptModel struct {
	label   string
	styles  *Styles
	input   textinput.Model
	done    bool
	aborted bool
}

func newPromptModel(styles *Styles, label, placeholder string) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 300
	ti.Width = 60
	ti.Focus()

	return promptModel{
		label:  label,
		styles: styles,
		input:  ti,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	label := m.styles.InputPromptStyle.Render(m.label)
	if m.done {
		// Leave a clean transcript line behind after the program exits.
		return fmt.Sprintf("%s %s\n", label, m.input.Value())
	}
	if m.aborted {
		return ""
	}
	return fmt.Sprintf("%s %s", label, m.input.View())
}

func (p *Prompter) ask(label, placeholder string) (string, error) {
	final, err := tea.NewProgram(newPromptModel(p.styles, label, placeholder)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(promptModel)
	if !ok || m.aborted {
		return "", ErrPromptAborted
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// Text asks a free-text question. An empty answer returns the default.
func (p *Prompter) Text(label, def string) (string, error) {
	answer, err := p.ask(label, def)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Int asks for an integer. Empty or unparseable answers return the default.
func (p *Prompter) Int(label string, def int) (int, error) {
	answer, err := p.ask(label, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(answer)
	if answer == "" || convErr != nil {
		return def, nil
	}
	return n, nil
}

// Confirm asks a yes/no question. Empty answers return the default.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	answer, err := p.ask(label+" "+hint, "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

// Choice asks the user to pick one of the given options. Answers that match
// no option return the default.
func (p *Prompter) Choice(label string, options []string, def string) (string, error) {
	answer, err := p.ask(fmt.Sprintf("%s (%s)", label, strings.Join(options, "/")), def)
	if err != nil {
		return "", err
	}
	answer = strings.ToLower(answer)
	for _, opt := range options {
		if answer == opt {
			return opt, nil
		}
	}
	return def, nil
}
