package storage

import "time"

// GoalOutcome records whether the user achieved the goal they declared at
// session start.
type GoalOutcome string

const (
	GoalAchieved GoalOutcome = "y"
	GoalMissed   GoalOutcome = "n"
	GoalPartial  GoalOutcome = "partial"
	GoalNone     GoalOutcome = "" // aborted sessions carry no outcome
)

// StopReason records why a session ended before its planned duration.
type StopReason string

const (
	ReasonStopped     StopReason = "stopped"
	ReasonInterrupted StopReason = "interrupted"
)

// Session represents one completed or aborted focus attempt.
// Records are immutable once written; history is append-only.
type Session struct {
	Task         string      `json:"task"`
	Goal         string      `json:"goal"`
	Intention    string      `json:"intention,omitempty"`
	GoalAchieved GoalOutcome `json:"goal_achieved,omitempty"`
	Distractions int         `json:"distractions"`
	Minutes      int         `json:"minutes"`
	Completed    bool        `json:"completed"`
	Reason       StopReason  `json:"reason,omitempty"`
	Essential    bool        `json:"essential,omitempty"`
	ResumeNote   string      `json:"resume_note,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// SessionStore holds the full session history.
type SessionStore struct {
	Sessions []Session `json:"sessions"`
}

// StreakState tracks daily streaks, session run streaks, and freeze credits.
type StreakState struct {
	// Daily is the count of consecutive qualifying days
	Daily int `json:"daily"`

	// DailyBest is the longest daily streak ever reached
	DailyBest int `json:"daily_best"`

	// Run is the count of consecutive completed sessions without an abort
	Run int `json:"run"`

	// RunBest is the longest run ever reached
	RunBest int `json:"run_best"`

	// Freezes is the number of banked credits that bridge one missed day each
	Freezes int `json:"freezes"`

	// LastQualifyingDate is the last day (YYYY-MM-DD) that met the threshold
	LastQualifyingDate string `json:"last_qualifying_date,omitempty"`
}

// EnergyReading is a self-reported energy level captured during rituals.
type EnergyReading struct {
	Time  string `json:"time"` // HH:MM
	Level int    `json:"level"`
}

// TodayState holds per-day counters, reset lazily when Date falls behind the
// current date.
type TodayState struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Sessions       int             `json:"sessions"`
	FocusMinutes   int             `json:"focus_minutes"`
	XPEarned       int             `json:"xp_earned"`
	SessionGoal    int             `json:"session_goal,omitempty"`
	EssentialTask  string          `json:"essential_task,omitempty"`
	TomorrowFocus  string          `json:"tomorrow_priority,omitempty"`
	EnergyReadings []EnergyReading `json:"energy_readings,omitempty"`
}

// Stats is the single running aggregate record for the installation.
// XP only increases; session and minute totals only increase via completed
// sessions.
type Stats struct {
	XP                int            `json:"xp"`
	Level             int            `json:"level"`
	TotalSessions     int            `json:"total_sessions"`
	TotalFocusMinutes int            `json:"total_focus_minutes"`
	Streaks           StreakState    `json:"streaks"`
	Today             TodayState     `json:"today"`
	WeeklyReviews     []WeeklyReview `json:"weekly_reviews,omitempty"`
}

// WeeklyReview captures the answers of a weekly Essentialism review.
type WeeklyReview struct {
	WeekStart       string `json:"week_start"` // YYYY-MM-DD (Monday)
	Date            string `json:"date"`
	Sessions        int    `json:"sessions"`
	FocusMinutes    int    `json:"focus_minutes"`
	ProducedResults string `json:"produced_results,omitempty"`
	StopDoing       string `json:"stop_doing,omitempty"`
	MoreTime        string `json:"more_time,omitempty"`
	NextPriority    string `json:"next_priority,omitempty"`
}

// ActiveSession marks a session in progress. The file's presence is the sole
// source of truth for "is a session currently active".
type ActiveSession struct {
	StartTime time.Time `json:"start_time"`
	Task      string    `json:"task"`
	Duration  int       `json:"duration"` // planned minutes
	Goal      string    `json:"goal"`
	Intention string    `json:"intention,omitempty"`
	Essential bool      `json:"essential,omitempty"`
}
