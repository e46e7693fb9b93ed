//go:build !darwin && !linux

// Package notify provides desktop notification and speech support.
// This file provides no-op implementations for unsupported platforms.
package notify

type stubNotifier struct{}

func newPlatformNotifier() Notifier {
	return &stubNotifier{}
}

func (n *stubNotifier) Send(title, message string) error                 { return nil }
func (n *stubNotifier) SendWithSound(title, message, sound string) error { return nil }
func (n *stubNotifier) IsSupported() bool                                { return false }

type stubSpeaker struct{}

func newPlatformSpeaker() Speaker {
	return &stubSpeaker{}
}

func (s *stubSpeaker) Speak(message string) error { return nil }
func (s *stubSpeaker) IsSupported() bool          { return false }
