// Package notify provides cross-platform desktop notification and speech
// support. It shells out to native mechanisms on macOS (osascript, say) and
// Linux (notify-send, espeak). All calls are best-effort: failures are
// swallowed by callers and never interrupt a session.
package notify

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Send sends a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound sends a notification with the given sound name.
	// An empty sound name uses the platform default.
	SendWithSound(title, message, sound string) error

	// IsSupported returns true if notifications work on this platform.
	IsSupported() bool
}

// Speaker defines the interface for spoken announcements.
type Speaker interface {
	// Speak reads the message aloud.
	Speak(message string) error

	// IsSupported returns true if speech works on this platform.
	IsSupported() bool
}

type noopNotifier struct{}

func (noopNotifier) Send(title, message string) error                 { return nil }
func (noopNotifier) SendWithSound(title, message, sound string) error { return nil }
func (noopNotifier) IsSupported() bool                                { return false }

type noopSpeaker struct{}

func (noopSpeaker) Speak(message string) error { return nil }
func (noopSpeaker) IsSupported() bool          { return false }

// New creates a platform-specific notifier, or a no-op notifier when the
// platform has no supported mechanism.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return noopNotifier{}
	}
	return n
}

// NewSpeaker creates a platform-specific speaker, or a no-op speaker when
// the platform has no supported mechanism.
func NewSpeaker() Speaker {
	s := newPlatformSpeaker()
	if s == nil || !s.IsSupported() {
		return noopSpeaker{}
	}
	return s
}
