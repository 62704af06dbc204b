package engine

import "testing"

func newChar(level, xp, xpToNext, gold int) *Character {
	return &Character{Level: level, XP: xp, XPToNext: xpToNext, Gold: gold}
}

func TestGrantXPSingleLevelUp(t *testing.T) {
	c := newChar(1, 90, 100, 0)
	events := GrantXP(c, 30, 1.3)

	if c.Level != 2 {
		t.Fatalf("level=%d, want 2", c.Level)
	}
	if c.XP != 20 {
		t.Fatalf("xp=%d, want 20", c.XP)
	}
	if c.XPToNext != 130 {
		t.Fatalf("xpToNext=%d, want 130", c.XPToNext)
	}
	if got := len(Notifications(events)); got != 1 {
		t.Fatalf("notifications=%d, want 1", got)
	}
}

func TestGrantXPMultiLevelGrant(t *testing.T) {
	// 100 to clear level 1, 130 to clear level 2; 250 leaves 20 at level 3.
	c := newChar(1, 0, 100, 0)
	events := GrantXP(c, 250, 1.3)

	if c.Level != 3 {
		t.Fatalf("level=%d, want 3", c.Level)
	}
	if c.XP != 20 {
		t.Fatalf("xp=%d, want 20", c.XP)
	}
	if c.XPToNext != 169 {
		t.Fatalf("xpToNext=%d, want 169", c.XPToNext)
	}
	// One log entry and one notification per level gained.
	logs, notifies := 0, 0
	for _, e := range events {
		switch e.Kind {
		case EventLog:
			logs++
		case EventNotify:
			notifies++
		}
	}
	if logs != 2 || notifies != 2 {
		t.Fatalf("events: %d logs, %d notifications, want 2 each", logs, notifies)
	}
}

func TestGrantXPInvariantHolds(t *testing.T) {
	c := newChar(1, 0, 100, 0)
	grants := []int{0, 1, 99, 100, 1000, 7, 12345, 3}
	prevLevel := c.Level

	for _, amount := range grants {
		GrantXP(c, amount, 1.3)
		if c.XP < 0 || c.XP >= c.XPToNext {
			t.Fatalf("after grant %d: xp=%d outside [0,%d)", amount, c.XP, c.XPToNext)
		}
		if c.Level < prevLevel {
			t.Fatalf("level decreased: %d -> %d", prevLevel, c.Level)
		}
		prevLevel = c.Level
	}
}

func TestGrantXPRejectsNegative(t *testing.T) {
	c := newChar(2, 50, 130, 0)
	events := GrantXP(c, -500, 1.3)

	if c.XP != 50 || c.Level != 2 {
		t.Fatalf("negative grant mutated state: level=%d xp=%d", c.Level, c.XP)
	}
	if len(events) != 0 {
		t.Fatalf("negative grant emitted %d events", len(events))
	}
}

func TestGrantGold(t *testing.T) {
	c := newChar(1, 0, 100, 10)
	GrantGold(c, 40)
	if c.Gold != 50 {
		t.Fatalf("gold=%d, want 50", c.Gold)
	}
	GrantGold(c, -999)
	if c.Gold != 50 {
		t.Fatalf("negative gold grant mutated balance: %d", c.Gold)
	}
}
