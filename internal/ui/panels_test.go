package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h 0m"},
		{90, "1h 30m"},
		{135, "2h 15m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{90 * time.Second, "01:30"},
		{25 * time.Minute, "25:00"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{time.Hour + 5*time.Minute + 3*time.Second, "1:05:03"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestStyles_Bar(t *testing.T) {
	setupTest(t)
	styles := createTestStyles()

	tests := []struct {
		name       string
		fraction   float64
		width      int
		wantFilled int
		wantTotal  int
	}{
		{"half", 0.5, 10, 5, 10},
		{"empty", 0, 16, 0, 16},
		{"full", 1, 16, 16, 16},
		{"negative clamps to zero", -0.5, 8, 0, 8},
		{"over one clamps to full", 1.5, 8, 8, 8},
		{"zero width uses default", 0.5, 0, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := styles.Bar(tt.fraction, tt.width)
			filled := strings.Count(got, styles.BarFilled)
			empty := strings.Count(got, styles.BarEmpty)
			if filled != tt.wantFilled {
				t.Errorf("Bar(%v, %d) filled = %d, want %d", tt.fraction, tt.width, filled, tt.wantFilled)
			}
			if filled+empty != tt.wantTotal {
				t.Errorf("Bar(%v, %d) total glyphs = %d, want %d", tt.fraction, tt.width, filled+empty, tt.wantTotal)
			}
		})
	}
}

func TestStyles_KV(t *testing.T) {
	setupTest(t)
	styles := createTestStyles()

	got := styles.KV("Focus time", "1h 15m")
	if !strings.Contains(got, "Focus time: ") {
		t.Errorf("KV() = %q, want label with separator", got)
	}
	if !strings.Contains(got, "1h 15m") {
		t.Errorf("KV() = %q, want value present", got)
	}
}

func TestStyles_Panel(t *testing.T) {
	setupTest(t)
	styles := createTestStyles()

	got := styles.Panel("Today", "Sessions: 3", "Focus: 75m")
	for _, want := range []string{"Today", "Sessions: 3", "Focus: 75m"} {
		if !strings.Contains(got, want) {
			t.Errorf("Panel() missing %q in:\n%s", want, got)
		}
	}

	// Title-only panel has no body block.
	got = styles.Panel("Streaks")
	if !strings.Contains(got, "Streaks") {
		t.Errorf("Panel() missing title in:\n%s", got)
	}
}

func TestStyles_WarningPanel(t *testing.T) {
	setupTest(t)
	styles := createTestStyles()

	got := styles.WarningPanel("Session aborted", "No XP for partial sessions.")
	if !strings.Contains(got, "Session aborted") || !strings.Contains(got, "No XP") {
		t.Errorf("WarningPanel() = %q, want title and body", got)
	}
}
