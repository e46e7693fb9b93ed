// Package gamify implements the XP, level, and streak calculations.
// This file contains tests for XP awards.
package gamify

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"focus/internal/config"
	"focus/internal/storage"
)

// xpTestConfig returns the stock gamification numbers.
func xpTestConfig() config.GamificationConfig {
	return config.Default().Gamification
}

// xpTestSession returns a completed session with the given outcome and
// distraction count.
func xpTestSession(outcome storage.GoalOutcome, distractions int) storage.Session {
	return storage.Session{
		Task:         "write tests",
		GoalAchieved: outcome,
		Distractions: distractions,
		Minutes:      20,
		Completed:    true,
		Timestamp:    time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
}

// xpTestStats returns stats where the session is the first of its day.
func xpTestStats() storage.Stats {
	return storage.Stats{
		Today: storage.TodayState{Date: "2026-08-29", Sessions: 0},
	}
}

// TestComputeXP_AllBonuses tests the canonical best case: goal achieved,
// zero distractions, first session of the day, no streak.
func TestComputeXP_AllBonuses(t *testing.T) {
	award := ComputeXP(xpTestSession(storage.GoalAchieved, 0), xpTestStats(), xpTestConfig(), nil)

	// 50 base + 15 goal + 20 no-distraction + 25 first session
	if award.Amount != 110 {
		t.Errorf("Amount = %d, want 110", award.Amount)
	}
	if award.Critical {
		t.Error("Critical = true with nil rng")
	}
	if len(award.Breakdown) != 4 {
		t.Errorf("Breakdown has %d items, want 4: %v", len(award.Breakdown), award.Breakdown)
	}
}

// TestComputeXP_PartialGoal tests the floored half bonus for partial progress.
func TestComputeXP_PartialGoal(t *testing.T) {
	award := ComputeXP(xpTestSession(storage.GoalPartial, 0), xpTestStats(), xpTestConfig(), nil)

	// 50 + 7 (floor of 15/2) + 20 + 25
	if award.Amount != 102 {
		t.Errorf("Amount = %d, want 102", award.Amount)
	}
}

// TestComputeXP_MissedGoalWithDistractions tests the bare base award.
func TestComputeXP_MissedGoalWithDistractions(t *testing.T) {
	sess := xpTestSession(storage.GoalMissed, 3)
	stats := xpTestStats()
	stats.Today.Sessions = 2 // not the first of the day

	award := ComputeXP(sess, stats, xpTestConfig(), nil)
	if award.Amount != 50 {
		t.Errorf("Amount = %d, want 50", award.Amount)
	}
}

// TestComputeXP_FirstSessionStaleDate tests that a stale today record counts
// as the first session of the day even with a nonzero counter.
func TestComputeXP_FirstSessionStaleDate(t *testing.T) {
	stats := xpTestStats()
	stats.Today.Date = "2026-08-28"
	stats.Today.Sessions = 5

	award := ComputeXP(xpTestSession(storage.GoalMissed, 1), stats, xpTestConfig(), nil)

	// 50 base + 25 first session
	if award.Amount != 75 {
		t.Errorf("Amount = %d, want 75", award.Amount)
	}
}

// TestComputeXP_StreakMultiplier tests the multiplier applied to the running
// total after the additive bonuses.
func TestComputeXP_StreakMultiplier(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		want   int
	}{
		{"no streak", 0, 110},
		{"one day is x1.1", 1, 121},
		{"five days is x1.5", 5, 165},
		{"ten days is x2.0", 10, 220},
		{"cap holds past ten", 25, 220},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := xpTestStats()
			stats.Streaks.Daily = tt.streak

			award := ComputeXP(xpTestSession(storage.GoalAchieved, 0), stats, xpTestConfig(), nil)
			if award.Amount != tt.want {
				t.Errorf("Amount = %d, want %d", award.Amount, tt.want)
			}
		})
	}
}

// TestComputeXP_CriticalHit tests the final doubling.
func TestComputeXP_CriticalHit(t *testing.T) {
	cfg := xpTestConfig()
	cfg.CriticalHitChance = 1.0
	rng := rand.New(rand.NewSource(42))

	award := ComputeXP(xpTestSession(storage.GoalAchieved, 0), xpTestStats(), cfg, rng)

	if !award.Critical {
		t.Fatal("Critical = false with guaranteed chance")
	}
	if award.Amount != 220 {
		t.Errorf("Amount = %d, want 220", award.Amount)
	}
	last := award.Breakdown[len(award.Breakdown)-1]
	if !strings.HasPrefix(last, "CRITICAL HIT") {
		t.Errorf("last breakdown item = %q, want critical hit line", last)
	}
}

// TestComputeXP_NoCriticalAtZeroChance tests that a zero chance never crits.
func TestComputeXP_NoCriticalAtZeroChance(t *testing.T) {
	cfg := xpTestConfig()
	cfg.CriticalHitChance = 0
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		award := ComputeXP(xpTestSession(storage.GoalAchieved, 0), xpTestStats(), cfg, rng)
		if award.Critical {
			t.Fatal("Critical = true with zero chance")
		}
	}
}

// TestComputeXP_CritAppliesAfterMultiplier tests the ordering: additive
// bonuses, then streak multiplier, then the doubling.
func TestComputeXP_CritAppliesAfterMultiplier(t *testing.T) {
	cfg := xpTestConfig()
	cfg.CriticalHitChance = 1.0
	stats := xpTestStats()
	stats.Streaks.Daily = 5

	award := ComputeXP(xpTestSession(storage.GoalAchieved, 0), stats, cfg, rand.New(rand.NewSource(7)))

	// (110 additive * 1.5) = 165, then doubled
	if award.Amount != 330 {
		t.Errorf("Amount = %d, want 330", award.Amount)
	}
}
