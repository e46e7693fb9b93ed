// Package timer implements the countdown state machine driving a focus
// session. The machine is pure aside from reading an injectable clock: the
// hosting UI feeds it ticks and control events and renders from its state.
package timer

import "time"

// State is the lifecycle state of a countdown.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateFinished
	StateStopped
	StateInterrupted
)

// String returns a short display name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	case StateStopped:
		return "stopped"
	case StateInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Reasons carried on an aborted result.
const (
	ReasonStopped     = "stopped"
	ReasonInterrupted = "interrupted"
)

// Result is the outcome of a finished countdown.
type Result struct {
	Completed    bool
	Distractions int
	Minutes      int    // planned minutes when completed, floored elapsed otherwise
	Reason       string // ReasonStopped or ReasonInterrupted when aborted
}

// Machine tracks one countdown. Paused time is excluded from elapsed-time
// calculations, so pausing never consumes the countdown.
type Machine struct {
	total        time.Duration
	now          func() time.Time
	start        time.Time
	ended        time.Time
	pausedFor    time.Duration
	pauseStart   time.Time
	state        State
	distractions int
}

// New starts a countdown over the given total duration. A nil clock defaults
// to time.Now; tests inject a fake.
func New(total time.Duration, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{
		total: total,
		now:   now,
		start: now(),
		state: StateRunning,
	}
}

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Now returns the current time on the machine's clock, so hosting code can
// share it for time-based UI state.
func (m *Machine) Now() time.Time { return m.now() }

// Done reports whether the machine reached a terminal state.
func (m *Machine) Done() bool {
	return m.state == StateFinished || m.state == StateStopped || m.state == StateInterrupted
}

// Total returns the planned countdown duration.
func (m *Machine) Total() time.Duration { return m.total }

// Distractions returns the number of logged distractions.
func (m *Machine) Distractions() int { return m.distractions }

// Elapsed returns countdown time consumed so far, excluding paused time.
// While paused the value is frozen at the instant the pause began.
func (m *Machine) Elapsed() time.Duration {
	switch {
	case m.state == StatePaused:
		return m.pauseStart.Sub(m.start) - m.pausedFor
	case !m.ended.IsZero():
		return m.ended.Sub(m.start) - m.pausedFor
	default:
		return m.now().Sub(m.start) - m.pausedFor
	}
}

// Remaining returns the countdown time left, never negative.
func (m *Machine) Remaining() time.Duration {
	left := m.total - m.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Tick advances the machine against the clock: a running countdown whose
// elapsed time reached the total finishes. Returns the resulting state.
func (m *Machine) Tick() State {
	if m.state == StateRunning && m.Elapsed() >= m.total {
		m.state = StateFinished
		m.ended = m.now()
	}
	return m.state
}

// Pause suspends a running countdown, recording the pause start instant.
func (m *Machine) Pause() {
	if m.state != StateRunning {
		return
	}
	m.pauseStart = m.now()
	m.state = StatePaused
}

// Resume continues a paused countdown, folding the pause span into the total
// pause offset.
func (m *Machine) Resume() {
	if m.state != StatePaused {
		return
	}
	m.pausedFor += m.now().Sub(m.pauseStart)
	m.state = StateRunning
}

// Stop ends the countdown at the user's request, from running or paused.
func (m *Machine) Stop() {
	m.endEarly(StateStopped)
}

// Interrupt ends the countdown due to an external interrupt signal.
func (m *Machine) Interrupt() {
	m.endEarly(StateInterrupted)
}

func (m *Machine) endEarly(terminal State) {
	switch m.state {
	case StatePaused:
		m.pausedFor += m.now().Sub(m.pauseStart)
		m.state = terminal
		m.ended = m.now()
	case StateRunning:
		m.state = terminal
		m.ended = m.now()
	}
}

// LogDistraction increments the distraction counter. Distractions only count
// while the countdown is actively running.
func (m *Machine) LogDistraction() bool {
	if m.state != StateRunning {
		return false
	}
	m.distractions++
	return true
}

// Result reports the countdown outcome. Valid once Done returns true; calling
// it earlier reports the countdown as if it were interrupted now.
func (m *Machine) Result() Result {
	res := Result{Distractions: m.distractions}

	switch m.state {
	case StateFinished:
		res.Completed = true
		res.Minutes = int(m.total.Minutes())
	case StateStopped:
		res.Minutes = int(m.Elapsed().Minutes())
		res.Reason = ReasonStopped
	default:
		res.Minutes = int(m.Elapsed().Minutes())
		res.Reason = ReasonInterrupted
	}
	return res
}
