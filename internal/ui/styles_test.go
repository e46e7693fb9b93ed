package ui

import (
	"testing"

	"focus/internal/config"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStyles_UsesThemeColors(t *testing.T) {
	theme := &config.ThemeConfig{
		Primary: "#FF0000",
		Accent:  "#00FF00",
		Muted:   "#0000FF",
	}

	styles := NewStylesFromTheme(theme)

	if styles.ColorPrimary != lipgloss.Color("#FF0000") {
		t.Errorf("ColorPrimary = %v, want #FF0000", styles.ColorPrimary)
	}
	if styles.ColorAccent != lipgloss.Color("#00FF00") {
		t.Errorf("ColorAccent = %v, want #00FF00", styles.ColorAccent)
	}
	if styles.ColorMuted != lipgloss.Color("#0000FF") {
		t.Errorf("ColorMuted = %v, want #0000FF", styles.ColorMuted)
	}
}

func TestNewStyles_UsesDefaults(t *testing.T) {
	styles := NewStylesFromTheme(&config.ThemeConfig{})

	if styles.ColorPrimary != lipgloss.Color("#06B6D4") {
		t.Errorf("ColorPrimary = %v, want default #06B6D4", styles.ColorPrimary)
	}
	if styles.ColorAccent != lipgloss.Color("#10B981") {
		t.Errorf("ColorAccent = %v, want default #10B981", styles.ColorAccent)
	}
	if styles.ColorMuted != lipgloss.Color("#6B7280") {
		t.Errorf("ColorMuted = %v, want default #6B7280", styles.ColorMuted)
	}
}

func TestNewStyles_NilThemeUsesDefaults(t *testing.T) {
	styles := NewStylesFromTheme(nil)

	if styles.ColorPrimary != lipgloss.Color("#06B6D4") {
		t.Errorf("ColorPrimary = %v, want default #06B6D4", styles.ColorPrimary)
	}
	if styles.BarFilled == "" || styles.BarEmpty == "" {
		t.Error("bar glyphs should be initialized")
	}
}
