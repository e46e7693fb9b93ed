package gamify

import (
	"focus/internal/config"
	"focus/internal/storage"
)

// UpdateStreaks returns the streak state after one session outcome. It is a
// pure transform over stats; the caller persists. It must run once per
// session event, after the today counters were already updated for the
// session being recorded.
//
// An aborted session breaks the run streak and leaves the daily streak
// untouched. A completed session extends the run, and triggers daily streak
// evaluation only on the exact session that reaches the per-day threshold,
// which keeps the evaluation idempotent within a calendar day.
func UpdateStreaks(stats storage.Stats, completed bool, cfg config.StreaksConfig) storage.StreakState {
	st := stats.Streaks

	if !completed {
		st.Run = 0
		return st
	}

	st.Run++
	if st.Run > st.RunBest {
		st.RunBest = st.Run
	}

	threshold := cfg.SessionsPerDay
	if threshold <= 0 {
		threshold = 3
	}
	if stats.Today.Sessions != threshold {
		return st
	}

	today := stats.Today.Date
	if st.LastQualifyingDate == today {
		return st
	}

	gap, ok := storage.DaysBetween(st.LastQualifyingDate, today)
	switch {
	case st.LastQualifyingDate == "" || !ok:
		st.Daily = 1
	case gap == 1:
		st.Daily++
	case gap == 2 && st.Freezes > 0:
		// A freeze bridges exactly one missed day.
		st.Freezes--
		st.Daily++
	default:
		st.Daily = 1
	}

	if st.Daily > st.DailyBest {
		st.DailyBest = st.Daily
	}

	earnEvery := cfg.FreezeEarnDays
	if earnEvery <= 0 {
		earnEvery = 7
	}
	if st.Daily > 0 && st.Daily%earnEvery == 0 {
		st.Freezes++
	}

	st.LastQualifyingDate = today
	return st
}
