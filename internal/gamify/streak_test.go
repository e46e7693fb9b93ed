// Package gamify implements the XP, level, and streak calculations.
// This file contains tests for streak updates.
package gamify

import (
	"testing"

	"focus/internal/config"
	"focus/internal/storage"
)

func streakTestConfig() config.StreaksConfig {
	return config.StreaksConfig{SessionsPerDay: 3, FreezeEarnDays: 7}
}

// streakStats builds stats with the given streak state and today counters.
func streakStats(st storage.StreakState, date string, sessionsToday int) storage.Stats {
	return storage.Stats{
		Streaks: st,
		Today:   storage.TodayState{Date: date, Sessions: sessionsToday},
	}
}

// TestUpdateStreaks_AbortResetsRunOnly tests that an aborted session clears
// the run streak and nothing else.
func TestUpdateStreaks_AbortResetsRunOnly(t *testing.T) {
	st := storage.StreakState{Daily: 4, DailyBest: 6, Run: 9, RunBest: 12, Freezes: 1, LastQualifyingDate: "2026-08-28"}
	got := UpdateStreaks(streakStats(st, "2026-08-29", 1), false, streakTestConfig())

	if got.Run != 0 {
		t.Errorf("Run = %d, want 0", got.Run)
	}
	if got.Daily != 4 || got.DailyBest != 6 || got.RunBest != 12 || got.Freezes != 1 {
		t.Errorf("abort touched more than the run streak: %+v", got)
	}
	if got.LastQualifyingDate != "2026-08-28" {
		t.Errorf("LastQualifyingDate = %q, want unchanged", got.LastQualifyingDate)
	}
}

// TestUpdateStreaks_RunGrowsWithBest tests run counting.
func TestUpdateStreaks_RunGrowsWithBest(t *testing.T) {
	st := storage.StreakState{Run: 5, RunBest: 5}
	got := UpdateStreaks(streakStats(st, "2026-08-29", 1), true, streakTestConfig())

	if got.Run != 6 {
		t.Errorf("Run = %d, want 6", got.Run)
	}
	if got.RunBest != 6 {
		t.Errorf("RunBest = %d, want 6", got.RunBest)
	}
}

// TestUpdateStreaks_BelowThresholdNoDailyChange tests that the daily streak
// only moves on the session that reaches the threshold.
func TestUpdateStreaks_BelowThresholdNoDailyChange(t *testing.T) {
	st := storage.StreakState{Daily: 2, LastQualifyingDate: "2026-08-28"}

	for _, sessions := range []int{1, 2, 4, 5} {
		got := UpdateStreaks(streakStats(st, "2026-08-29", sessions), true, streakTestConfig())
		if got.Daily != 2 {
			t.Errorf("sessions=%d: Daily = %d, want 2", sessions, got.Daily)
		}
		if got.LastQualifyingDate != "2026-08-28" {
			t.Errorf("sessions=%d: LastQualifyingDate moved to %q", sessions, got.LastQualifyingDate)
		}
	}
}

// TestUpdateStreaks_DailyTransitions tests gap handling at the threshold.
func TestUpdateStreaks_DailyTransitions(t *testing.T) {
	tests := []struct {
		name        string
		last        string
		daily       int
		freezes     int
		wantDaily   int
		wantFreezes int
	}{
		{"first qualifying day ever", "", 0, 0, 1, 0},
		{"consecutive day extends", "2026-08-28", 3, 0, 4, 0},
		{"one missed day with freeze", "2026-08-27", 3, 2, 4, 1},
		{"one missed day without freeze", "2026-08-27", 3, 0, 1, 0},
		{"two missed days resets despite freeze", "2026-08-26", 3, 5, 1, 5},
		{"garbage date resets", "not-a-date", 3, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := storage.StreakState{Daily: tt.daily, Freezes: tt.freezes, LastQualifyingDate: tt.last}
			got := UpdateStreaks(streakStats(st, "2026-08-29", 3), true, streakTestConfig())

			if got.Daily != tt.wantDaily {
				t.Errorf("Daily = %d, want %d", got.Daily, tt.wantDaily)
			}
			if got.Freezes != tt.wantFreezes {
				t.Errorf("Freezes = %d, want %d", got.Freezes, tt.wantFreezes)
			}
			if got.LastQualifyingDate != "2026-08-29" {
				t.Errorf("LastQualifyingDate = %q, want 2026-08-29", got.LastQualifyingDate)
			}
		})
	}
}

// TestUpdateStreaks_IdempotentWithinDay tests that a day that already
// qualified cannot qualify again.
func TestUpdateStreaks_IdempotentWithinDay(t *testing.T) {
	st := storage.StreakState{Daily: 5, DailyBest: 5, LastQualifyingDate: "2026-08-29"}
	got := UpdateStreaks(streakStats(st, "2026-08-29", 3), true, streakTestConfig())

	if got.Daily != 5 {
		t.Errorf("Daily = %d, want 5", got.Daily)
	}
}

// TestUpdateStreaks_FreezeEarnedEverySeventhDay tests freeze accrual.
func TestUpdateStreaks_FreezeEarnedEverySeventhDay(t *testing.T) {
	st := storage.StreakState{Daily: 6, LastQualifyingDate: "2026-08-28"}
	got := UpdateStreaks(streakStats(st, "2026-08-29", 3), true, streakTestConfig())

	if got.Daily != 7 {
		t.Fatalf("Daily = %d, want 7", got.Daily)
	}
	if got.Freezes != 1 {
		t.Errorf("Freezes = %d, want 1", got.Freezes)
	}

	// Day 8 should not earn another.
	next := UpdateStreaks(streakStats(got, "2026-08-30", 3), true, streakTestConfig())
	if next.Freezes != 1 {
		t.Errorf("Freezes after day 8 = %d, want 1", next.Freezes)
	}
}

// TestUpdateStreaks_FreezeSpendStillEarns tests that a bridged day landing on
// a multiple of seven earns the freeze back.
func TestUpdateStreaks_FreezeSpendStillEarns(t *testing.T) {
	// Daily 6, missed one day, a freeze banked: bridging makes day 7.
	st := storage.StreakState{Daily: 6, Freezes: 1, LastQualifyingDate: "2026-08-27"}
	got := UpdateStreaks(streakStats(st, "2026-08-29", 3), true, streakTestConfig())

	if got.Daily != 7 {
		t.Fatalf("Daily = %d, want 7", got.Daily)
	}
	// Spent one, earned one.
	if got.Freezes != 1 {
		t.Errorf("Freezes = %d, want 1", got.Freezes)
	}
}

// TestUpdateStreaks_DailyBestTracks tests the high-water mark.
func TestUpdateStreaks_DailyBestTracks(t *testing.T) {
	st := storage.StreakState{Daily: 9, DailyBest: 9, LastQualifyingDate: "2026-08-28"}
	got := UpdateStreaks(streakStats(st, "2026-08-29", 3), true, streakTestConfig())

	if got.DailyBest != 10 {
		t.Errorf("DailyBest = %d, want 10", got.DailyBest)
	}
}
