package gamify

import (
	"fmt"
	"math/rand"

	"focus/internal/config"
	"focus/internal/storage"
)

// Award is the XP amount granted for a completed session, with an itemized
// breakdown for display.
type Award struct {
	Amount    int
	Breakdown []string
	Critical  bool
}

// ComputeXP calculates the XP award for a completed session.
//
// Bonuses are additive and independently triggerable, except the streak
// multiplier (applied to the running total after all additive bonuses) and
// the critical hit (doubles the running total last). The rng drives only the
// critical-hit trial; callers inject a seeded source in tests.
func ComputeXP(sess storage.Session, stats storage.Stats, cfg config.GamificationConfig, rng *rand.Rand) Award {
	total := cfg.BaseXP
	breakdown := []string{fmt.Sprintf("Session complete: +%d", cfg.BaseXP)}

	switch sess.GoalAchieved {
	case storage.GoalAchieved:
		total += cfg.GoalBonus
		breakdown = append(breakdown, fmt.Sprintf("Goal achieved: +%d", cfg.GoalBonus))
	case storage.GoalPartial:
		half := cfg.GoalBonus / 2
		total += half
		breakdown = append(breakdown, fmt.Sprintf("Partial progress: +%d", half))
	}

	if sess.Distractions == 0 {
		total += cfg.NoDistractionBonus
		breakdown = append(breakdown, fmt.Sprintf("Zero distractions: +%d", cfg.NoDistractionBonus))
	}

	if firstSessionOfDay(sess, stats) {
		total += cfg.FirstSessionBonus
		breakdown = append(breakdown, fmt.Sprintf("First session today: +%d", cfg.FirstSessionBonus))
	}

	if stats.Streaks.Daily > 0 {
		mult := 1.0 + float64(stats.Streaks.Daily)*cfg.StreakMultiplier
		if mult > 2.0 {
			mult = 2.0
		}
		if mult > 1.0 {
			bonus := int(float64(total) * (mult - 1.0))
			total += bonus
			breakdown = append(breakdown, fmt.Sprintf("Streak multiplier x%.1f: +%d", mult, bonus))
		}
	}

	critical := rng != nil && rng.Float64() < cfg.CriticalHitChance
	if critical {
		breakdown = append(breakdown, fmt.Sprintf("CRITICAL HIT x2: +%d", total))
		total *= 2
	}

	return Award{Amount: total, Breakdown: breakdown, Critical: critical}
}

// firstSessionOfDay reports whether the session is the first qualifying one
// of its calendar day: either the stored today record is stale, or its
// session counter is still zero.
func firstSessionOfDay(sess storage.Session, stats storage.Stats) bool {
	if stats.Today.Date != sess.Timestamp.Format(storage.DateFormat) {
		return true
	}
	return stats.Today.Sessions == 0
}
