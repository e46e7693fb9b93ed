//go:build linux

// Package notify provides desktop notification and speech support.
// This file implements Linux notifications (notify-send) and speech
// (espeak or spd-say, whichever is installed).
package notify

import (
	"fmt"
	"os/exec"
)

type linuxNotifier struct{}

func newPlatformNotifier() Notifier {
	return &linuxNotifier{}
}

// Send sends a notification without sound.
func (n *linuxNotifier) Send(title, message string) error {
	return n.sendNotification(title, message, false)
}

// SendWithSound sends a notification with an urgency hint. Actual sound
// depends on the notification daemon configuration; the sound name is
// ignored on Linux.
func (n *linuxNotifier) SendWithSound(title, message, sound string) error {
	return n.sendNotification(title, message, true)
}

// IsSupported returns true if notify-send is available.
func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

func (n *linuxNotifier) sendNotification(title, message string, sound bool) error {
	args := []string{
		"--app-name=focus",
		title,
		message,
	}
	if sound {
		args = append([]string{"--urgency=normal"}, args...)
	}

	cmd := exec.Command("notify-send", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}

type linuxSpeaker struct {
	binary string
}

func newPlatformSpeaker() Speaker {
	for _, bin := range []string{"espeak", "spd-say"} {
		if _, err := exec.LookPath(bin); err == nil {
			return &linuxSpeaker{binary: bin}
		}
	}
	return &linuxSpeaker{}
}

// Speak reads the message aloud using the detected speech binary.
func (s *linuxSpeaker) Speak(message string) error {
	if s.binary == "" {
		return nil
	}
	cmd := exec.Command(s.binary, message)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", s.binary, err)
	}
	return nil
}

// IsSupported returns true if a speech binary was found.
func (s *linuxSpeaker) IsSupported() bool {
	return s.binary != ""
}
