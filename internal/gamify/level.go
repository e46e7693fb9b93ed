// Package gamify implements the XP, level, and streak calculations for the
// focus app. All functions are pure: they take resolved stats and config and
// return derived values, leaving persistence to the caller.
package gamify

// tier describes a band of level-ups sharing a fixed XP cost.
type tier struct {
	levelUps int
	cost     int
}

// Level-up costs are tiered, not uniform: the first five level-ups cost 100
// XP each, the next five 250, and so on. Past level 21 every level costs
// openEndedCost indefinitely.
var tiers = []tier{
	{levelUps: 5, cost: 100},
	{levelUps: 5, cost: 250},
	{levelUps: 5, cost: 400},
	{levelUps: 5, cost: 600},
}

const openEndedCost = 800

// LevelInfo describes the level derived from a cumulative XP total.
type LevelInfo struct {
	Level     int
	Title     string
	XPInto    int // XP accumulated toward the next level
	XPForNext int // cost of the next level-up
}

// ResolveLevel maps cumulative XP to level, title, and progress toward the
// next level. Negative XP is clamped to 0 rather than propagated as a fault.
func ResolveLevel(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := 1
	remaining := xp

	for _, t := range tiers {
		for i := 0; i < t.levelUps; i++ {
			if remaining < t.cost {
				return LevelInfo{Level: level, Title: TitleFor(level), XPInto: remaining, XPForNext: t.cost}
			}
			remaining -= t.cost
			level++
		}
	}

	for remaining >= openEndedCost {
		remaining -= openEndedCost
		level++
	}

	return LevelInfo{Level: level, Title: TitleFor(level), XPInto: remaining, XPForNext: openEndedCost}
}

// TitleFor returns the display title for a level.
//
// The title bands (1-5, 6-10, ...) are offset by one level from the tier cost
// bands above, which roll over at 6, 11, 16, 21. That mismatch ships as-is:
// it is long-standing observed behavior and "fixing" it would silently change
// every user's displayed title.
func TitleFor(level int) string {
	switch {
	case level <= 5:
		return "Apprentice"
	case level <= 10:
		return "Focused"
	case level <= 15:
		return "Deep Worker"
	case level <= 20:
		return "Flow Master"
	default:
		return "Productivity Legend"
	}
}
