package ui

import (
	"fmt"
	"strings"
	"time"
)

// Panel renders a bordered panel with a title line and body lines.
func (s *Styles) Panel(title string, lines ...string) string {
	body := s.TitleStyle.Render(title)
	if len(lines) > 0 {
		body += "\n\n" + strings.Join(lines, "\n")
	}
	return s.PanelStyle.Render(body)
}

// SuccessPanel renders a panel with the success border.
func (s *Styles) SuccessPanel(title string, lines ...string) string {
	body := s.SuccessStyle.Bold(true).Render(title)
	if len(lines) > 0 {
		body += "\n\n" + strings.Join(lines, "\n")
	}
	return s.PanelSuccessStyle.Render(body)
}

// WarningPanel renders a panel with the warning border.
func (s *Styles) WarningPanel(title string, lines ...string) string {
	body := s.WarningStyle.Bold(true).Render(title)
	if len(lines) > 0 {
		body += "\n\n" + strings.Join(lines, "\n")
	}
	return s.PanelWarningStyle.Render(body)
}

// KV renders a "Label: value" stat line.
func (s *Styles) KV(label, value string) string {
	return s.StatLabelStyle.Render(label+": ") + s.StatValueStyle.Render(value)
}

// Bar renders a fixed-width progress bar of filled/empty glyphs.
func (s *Styles) Bar(fraction float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat(s.BarFilled, filled) + strings.Repeat(s.BarEmpty, width-filled)
}

// FormatMinutes formats a minute count as "Xh Ym" or "Ym".
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatClock formats a duration as MM:SS (or H:MM:SS over an hour).
func FormatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	sec := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
