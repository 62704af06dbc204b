package engine

import (
	"fmt"
	"math"
)

// GrantXP adds amount XP to the character and applies the leveling loop:
// while xp >= xpToNext, carry the overflow into the next level and grow the
// threshold by the growth factor. Each level gained emits its own log entry
// and notification, so a single large grant can fire several.
//
// Negative amounts are treated as zero: XP never goes down and levels are
// never demoted through this path.
func GrantXP(c *Character, amount int, growth float64) []Event {
	if amount < 0 {
		amount = 0
	}
	if growth <= 1 {
		growth = 1.3
	}
	if c.XPToNext <= 0 {
		c.XPToNext = 100
	}

	c.XP += amount

	var events []Event
	for c.XP >= c.XPToNext {
		c.XP -= c.XPToNext
		c.Level++
		c.XPToNext = int(math.Floor(float64(c.XPToNext) * growth))
		events = append(events,
			logEvent(fmt.Sprintf("The wanderer has reached Level %d!", c.Level)),
			notifyEvent(fmt.Sprintf("LEVEL UP! You are now Level %d!", c.Level)),
		)
	}
	return events
}

// GrantGold adds amount gold. Negative amounts are ignored; spending gold
// goes through the shop, not the ledger.
func GrantGold(c *Character, amount int) {
	if amount < 0 {
		return
	}
	c.Gold += amount
}
