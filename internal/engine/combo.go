package engine

import "math"

// ComboMultiplier converts the shared habit combo counter into an XP
// multiplier: the first play is 1.0, every consecutive play adds step,
// capped at max. combo=1 -> 1.0, combo=11 -> 3.0 at the default 0.2 step.
func ComboMultiplier(combo int, step, max float64) float64 {
	if combo < 1 {
		return 1.0
	}
	m := 1 + float64(combo-1)*step
	return math.Min(max, m)
}

// HabitReward computes the XP and gold for a habit play at the given combo
// level. Gold is derived from the XP actually granted, not the base value.
func HabitReward(baseXP, combo int, step, max float64, goldDivisor int) (xp, gold int) {
	if baseXP < 0 {
		baseXP = 0
	}
	if goldDivisor <= 0 {
		goldDivisor = 3
	}
	xp = int(math.Round(float64(baseXP) * ComboMultiplier(combo, step, max)))
	gold = int(math.Round(float64(xp) / float64(goldDivisor)))
	return xp, gold
}

// bumpCombo / dropCombo maintain the counter. The combo is shared across
// all habits and only ever decreases through an explicit undo; day
// rollover does not touch it.
func bumpCombo(combo int) int {
	return combo + 1
}

func dropCombo(combo int) int {
	if combo <= 0 {
		return 0
	}
	return combo - 1
}
