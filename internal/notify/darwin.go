//go:build darwin

// Package notify provides desktop notification and speech support.
// This file implements macOS notifications (osascript) and speech (say).
package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

type darwinNotifier struct{}

func newPlatformNotifier() Notifier {
	return &darwinNotifier{}
}

// Send sends a notification without sound.
func (n *darwinNotifier) Send(title, message string) error {
	return n.sendNotification(title, message, "")
}

// SendWithSound sends a notification with the named sound ("Glass", "Ping", ...).
func (n *darwinNotifier) SendWithSound(title, message, sound string) error {
	if sound == "" {
		sound = "default"
	}
	return n.sendNotification(title, message, sound)
}

// IsSupported returns true if osascript is available.
func (n *darwinNotifier) IsSupported() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

func (n *darwinNotifier) sendNotification(title, message, sound string) error {
	title = escapeAppleScript(title)
	message = escapeAppleScript(message)

	script := fmt.Sprintf(`display notification %q with title %q`, message, title)
	if sound != "" {
		script += fmt.Sprintf(` sound name %q`, escapeAppleScript(sound))
	}

	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}

// escapeAppleScript escapes special characters for AppleScript strings.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

type darwinSpeaker struct{}

func newPlatformSpeaker() Speaker {
	return &darwinSpeaker{}
}

// Speak reads the message aloud using the macOS say command.
func (s *darwinSpeaker) Speak(message string) error {
	cmd := exec.Command("say", message)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("say failed: %w", err)
	}
	return nil
}

// IsSupported returns true if say is available.
func (s *darwinSpeaker) IsSupported() bool {
	_, err := exec.LookPath("say")
	return err == nil
}
