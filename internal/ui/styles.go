package ui

import (
	"focus/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, initialized with theme configuration.
type Styles struct {
	// Colors
	ColorPrimary lipgloss.Color
	ColorAccent  lipgloss.Color
	ColorMuted   lipgloss.Color
	ColorWarning lipgloss.Color
	ColorDanger  lipgloss.Color

	// Panels
	PanelStyle        lipgloss.Style // primary border
	PanelSuccessStyle lipgloss.Style
	PanelWarningStyle lipgloss.Style

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	MutedStyle    lipgloss.Style

	// Stats rendering
	StatLabelStyle lipgloss.Style
	StatValueStyle lipgloss.Style
	SuccessStyle   lipgloss.Style
	WarningStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style

	// Gamification
	XPStyle     lipgloss.Style
	LevelStyle  lipgloss.Style
	StreakStyle lipgloss.Style
	CritStyle   lipgloss.Style

	// Session view
	TimerRunningStyle lipgloss.Style
	TimerPausedStyle  lipgloss.Style
	TaskStyle         lipgloss.Style
	InputPromptStyle  lipgloss.Style
	HelpStyle         lipgloss.Style

	// Bar glyphs for week charts and level progress
	BarFilled string
	BarEmpty  string
}

// NewStylesFromTheme creates a Styles instance from theme configuration.
// Empty colors use the built-in defaults.
func NewStylesFromTheme(theme *config.ThemeConfig) *Styles {
	if theme == nil {
		theme = &config.ThemeConfig{}
	}

	primary := lipgloss.Color(pick(theme.Primary, "#06B6D4"))
	accent := lipgloss.Color(pick(theme.Accent, "#10B981"))
	muted := lipgloss.Color(pick(theme.Muted, "#6B7280"))
	warning := lipgloss.Color("#F59E0B")
	danger := lipgloss.Color("#EF4444")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	return &Styles{
		ColorPrimary: primary,
		ColorAccent:  accent,
		ColorMuted:   muted,
		ColorWarning: warning,
		ColorDanger:  danger,

		PanelStyle:        panel.BorderForeground(primary),
		PanelSuccessStyle: panel.BorderForeground(accent),
		PanelWarningStyle: panel.BorderForeground(warning),

		TitleStyle:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		SubtitleStyle: lipgloss.NewStyle().Foreground(muted),
		MutedStyle:    lipgloss.NewStyle().Foreground(muted),

		StatLabelStyle: lipgloss.NewStyle().Foreground(muted),
		StatValueStyle: lipgloss.NewStyle().Bold(true),
		SuccessStyle:   lipgloss.NewStyle().Foreground(accent),
		WarningStyle:   lipgloss.NewStyle().Foreground(warning),
		ErrorStyle:     lipgloss.NewStyle().Foreground(danger),

		XPStyle:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		LevelStyle:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		StreakStyle: lipgloss.NewStyle().Bold(true).Foreground(warning),
		CritStyle:   lipgloss.NewStyle().Bold(true).Foreground(danger),

		TimerRunningStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		TimerPausedStyle:  lipgloss.NewStyle().Bold(true).Foreground(warning),
		TaskStyle:         lipgloss.NewStyle().Bold(true),
		InputPromptStyle:  lipgloss.NewStyle().Foreground(primary),
		HelpStyle:         lipgloss.NewStyle().Foreground(muted),

		BarFilled: "█",
		BarEmpty:  "░",
	}
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
