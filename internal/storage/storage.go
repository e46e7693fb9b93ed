package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focus/internal/fsutil"
)

// Storage handles all file I/O operations for the focus data directory.
type Storage struct {
	dataDir string
	now     func() time.Time // injectable clock for deterministic tests
}

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	maxTaskLen      = 200
	maxGoalLen      = 300
	maxIntentionLen = 300

	sessionsFile = "sessions.json"
	statsFile    = "stats.json"
	activeFile   = "active_session.json"

	// DateFormat is the calendar-day format used throughout the data files.
	DateFormat = "2006-01-02"
)

// New creates a new Storage instance with the given data directory.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{dataDir: dataDir, now: time.Now}

	if err := s.initFiles(); err != nil {
		return nil, err
	}

	return s, nil
}

// SetNowFunc overrides the clock used by time-dependent storage operations.
// Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the current calendar day as YYYY-MM-DD.
func (s *Storage) Today() string {
	return s.Now().Format(DateFormat)
}

// GetDataDir returns the path to the data directory.
func (s *Storage) GetDataDir() string {
	return s.dataDir
}

// initFiles creates default JSON files if they don't exist. The active
// session marker is deliberately not created: its presence means a session
// is in progress.
func (s *Storage) initFiles() error {
	if !fileExists(s.path(sessionsFile)) {
		if err := s.SaveSessions(&SessionStore{Sessions: []Session{}}); err != nil {
			return err
		}
	}

	if !fileExists(s.path(statsFile)) {
		stats := s.defaultStats()
		if err := s.SaveStats(&stats); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) defaultStats() Stats {
	return Stats{
		Level: 1,
		Today: TodayState{Date: s.Today()},
	}
}

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	path := s.path(filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}

func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.writeJSONAtomic(filename, v)
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
}

func (s *Storage) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try the backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			corruptPath := fmt.Sprintf("%s.corrupt.%s", path, s.Now().Format("20060102-150405"))
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSONAtomic(filename, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file (best effort) and reset.
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, s.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	_ = s.writeJSONAtomic(filename, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}

// ============================================================================
// Session history
// ============================================================================

// LoadSessions reads the session history from disk.
func (s *Storage) LoadSessions() (*SessionStore, error) {
	store := SessionStore{Sessions: []Session{}}
	err := s.loadJSONWithRecovery(sessionsFile, &store)
	return &store, err
}

// SaveSessions writes the session history to disk.
func (s *Storage) SaveSessions(store *SessionStore) error {
	return s.writeJSONAtomic(sessionsFile, store)
}

// AppendSession validates and appends a session record to the history.
func (s *Storage) AppendSession(sess Session) error {
	sess.Task = strings.TrimSpace(sess.Task)
	sess.Goal = strings.TrimSpace(sess.Goal)

	if sess.Task == "" {
		return fmt.Errorf("session task is required")
	}
	if len(sess.Task) > maxTaskLen {
		return fmt.Errorf("session task too long (max %d)", maxTaskLen)
	}
	if len(sess.Goal) > maxGoalLen {
		return fmt.Errorf("session goal too long (max %d)", maxGoalLen)
	}
	if len(sess.Intention) > maxIntentionLen {
		return fmt.Errorf("session intention too long (max %d)", maxIntentionLen)
	}
	if sess.Minutes < 0 {
		return fmt.Errorf("session minutes must be non-negative")
	}
	if sess.Distractions < 0 {
		return fmt.Errorf("session distractions must be non-negative")
	}
	if sess.Completed && sess.Reason != "" {
		return fmt.Errorf("completed session cannot carry a stop reason")
	}
	if !sess.Completed && sess.Reason != ReasonStopped && sess.Reason != ReasonInterrupted {
		return fmt.Errorf("aborted session needs reason %q or %q", ReasonStopped, ReasonInterrupted)
	}
	if sess.Timestamp.IsZero() {
		sess.Timestamp = s.Now()
	}

	store, err := s.LoadSessions()
	if err != nil {
		return err
	}

	store.Sessions = append(store.Sessions, sess)
	return s.SaveSessions(store)
}

// SessionsOn returns all sessions recorded on the given calendar day.
func (s *Storage) SessionsOn(store *SessionStore, date string) []Session {
	var out []Session
	for _, sess := range store.Sessions {
		if sess.Timestamp.Format(DateFormat) == date {
			out = append(out, sess)
		}
	}
	return out
}

// SessionsBetween returns all sessions with start <= timestamp < end.
func (s *Storage) SessionsBetween(store *SessionStore, start, end time.Time) []Session {
	var out []Session
	for _, sess := range store.Sessions {
		if !sess.Timestamp.Before(start) && sess.Timestamp.Before(end) {
			out = append(out, sess)
		}
	}
	return out
}

// WeekSessions returns all sessions from the current Monday-based week.
func (s *Storage) WeekSessions(store *SessionStore) []Session {
	start := StartOfWeek(s.Now())
	return s.SessionsBetween(store, start, start.AddDate(0, 0, 7))
}

// ============================================================================
// Running stats
// ============================================================================

// LoadStats reads the running stats record, rolling the day sub-record over
// if it is from a previous date. The rollover is lazy: it persists only when
// a mutation is saved.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := s.defaultStats()
	err := s.loadJSONWithRecovery(statsFile, &stats)
	if stats.Level < 1 {
		stats.Level = 1
	}
	s.rollDay(&stats)
	return &stats, err
}

// SaveStats writes the running stats record to disk.
func (s *Storage) SaveStats(stats *Stats) error {
	return s.writeJSONAtomic(statsFile, stats)
}

// rollDay resets the today sub-record when its stored date is not the current
// date. Yesterday's tomorrow-priority carries over as today's essential task.
func (s *Storage) rollDay(stats *Stats) {
	today := s.Today()
	if stats.Today.Date == today {
		return
	}
	stats.Today = TodayState{
		Date:          today,
		EssentialTask: stats.Today.TomorrowFocus,
	}
}

// ============================================================================
// Active session marker
// ============================================================================

// HasActiveSession reports whether a session marker is present.
func (s *Storage) HasActiveSession() bool {
	return fileExists(s.path(activeFile))
}

// LoadActiveSession returns the active session marker, or nil when no session
// is in progress.
func (s *Storage) LoadActiveSession() (*ActiveSession, error) {
	data, err := os.ReadFile(s.path(activeFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", activeFile, err)
	}

	var active ActiveSession
	if err := json.Unmarshal(data, &active); err != nil {
		// A broken marker would otherwise wedge the tool in "session active".
		_ = os.Remove(s.path(activeFile))
		return nil, nil
	}
	return &active, nil
}

// SaveActiveSession writes the active session marker.
func (s *Storage) SaveActiveSession(active *ActiveSession) error {
	data, err := json.MarshalIndent(active, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", activeFile, err)
	}
	if err := fsutil.WriteFileAtomic(s.path(activeFile), data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", activeFile, err)
	}
	return nil
}

// ClearActiveSession removes the active session marker. Removing an absent
// marker is not an error.
func (s *Storage) ClearActiveSession() error {
	if err := os.Remove(s.path(activeFile)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", activeFile, err)
	}
	return nil
}

// ============================================================================
// Calendar helpers
// ============================================================================

// StartOfDay returns local midnight of the given time.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// DaysBetween returns the whole calendar days from date a to date b, both in
// YYYY-MM-DD form. Returns 0 and false if either date fails to parse.
func DaysBetween(a, b string) (int, bool) {
	ta, errA := time.Parse(DateFormat, a)
	tb, errB := time.Parse(DateFormat, b)
	if errA != nil || errB != nil {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}
