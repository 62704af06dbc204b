package engine

import "testing"

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Character: Character{Level: 1, XPToNext: 100},
		Today:     "2026-08-10",
	}
}

func TestEvaluateNothingUnlockedOnFreshState(t *testing.T) {
	snap := emptySnapshot()
	unlocked, events := EvaluateAchievements(snap)
	if len(unlocked) != 0 || len(events) != 0 {
		t.Fatalf("fresh state unlocked %d achievements", len(unlocked))
	}
}

func TestEvaluateFirstQuestEver(t *testing.T) {
	snap := emptySnapshot()
	// Completed on a prior day still counts: the predicate is "ever".
	snap.Quests = []Quest{{ID: "q1", Done: true, DoneDate: "2026-08-01"}}

	unlocked, _ := EvaluateAchievements(snap)
	if len(unlocked) != 1 || unlocked[0].ID != "first_steps" {
		t.Fatalf("unlocked=%v, want first_steps", unlocked)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	snap := emptySnapshot()
	snap.Quests = []Quest{{ID: "q1", Done: true}}

	first, firstEvents := EvaluateAchievements(snap)
	if len(first) != 1 || len(firstEvents) != 2 {
		t.Fatalf("first pass: %d unlocks, %d events", len(first), len(firstEvents))
	}

	second, secondEvents := EvaluateAchievements(snap)
	if len(second) != 0 || len(secondEvents) != 0 {
		t.Fatalf("re-evaluation fired again: %d unlocks", len(second))
	}
	if len(snap.Character.Achievements) != 1 {
		t.Fatalf("unlocked set grew: %v", snap.Character.Achievements)
	}
}

func TestEvaluateMultipleUnlocksInOnePass(t *testing.T) {
	snap := emptySnapshot()
	snap.Character.Level = 5
	snap.Character.Gold = 500
	snap.Quests = []Quest{
		{Tier: TierBoss, Done: true}, {Tier: TierBoss, Done: true},
		{Tier: TierBoss, Done: true}, {Tier: TierBoss, Done: true},
		{Tier: TierBoss, Done: true},
	}

	unlocked, events := EvaluateAchievements(snap)
	want := []string{"first_steps", "boss_slayer", "level_5", "rich_adventurer"}
	if len(unlocked) != len(want) {
		t.Fatalf("unlocked %d, want %d: %v", len(unlocked), len(want), unlocked)
	}
	for i, id := range want {
		if unlocked[i].ID != id {
			t.Fatalf("unlock order[%d]=%s, want %s (catalog order)", i, unlocked[i].ID, id)
		}
	}
	// One log entry per unlock.
	logs := 0
	for _, e := range events {
		if e.Kind == EventLog {
			logs++
		}
	}
	if logs != len(want) {
		t.Fatalf("log events=%d, want %d", logs, len(want))
	}
}

func TestEvaluateStreakSeven(t *testing.T) {
	snap := emptySnapshot()
	snap.Dashboard = Dashboard{DayStreak: 6, LastActiveDate: "2026-08-09"}
	EvaluateDayStreak(&snap.Dashboard, "2026-08-10")
	if snap.Dashboard.DayStreak != 7 {
		t.Fatalf("streak=%d, want 7", snap.Dashboard.DayStreak)
	}

	unlocked, _ := EvaluateAchievements(snap)
	ids := map[string]bool{}
	for _, u := range unlocked {
		ids[u.ID] = true
	}
	if !ids["consistency"] || !ids["streak_starter"] {
		t.Fatalf("want streak badges at 7 days, got %v", unlocked)
	}
}

func TestEvaluateSurvivalAll(t *testing.T) {
	snap := emptySnapshot()
	// No survival quests at all: not satisfied.
	if CondSurvivalAll.satisfied(snap) {
		t.Fatalf("survival_all satisfied with no survival quests")
	}
	snap.Quests = []Quest{
		{Tier: TierSurvival, Done: true},
		{Tier: TierSurvival, Done: false},
	}
	if CondSurvivalAll.satisfied(snap) {
		t.Fatalf("survival_all satisfied with an open survival quest")
	}
	snap.Quests[1].Done = true
	if !CondSurvivalAll.satisfied(snap) {
		t.Fatalf("survival_all not satisfied with all survival quests done")
	}
}

func TestEvaluateHabitsFiveVsComboFive(t *testing.T) {
	snap := emptySnapshot()
	// Five distinct habits played today without a 5x combo (undos in between).
	for i := 0; i < 5; i++ {
		snap.Habits = append(snap.Habits, Habit{PlayedDates: []Day{snap.Today}})
	}
	snap.Combo = 2

	unlocked, _ := EvaluateAchievements(snap)
	ids := map[string]bool{}
	for _, u := range unlocked {
		ids[u.ID] = true
	}
	if !ids["habit_builder"] {
		t.Fatalf("habit_builder not unlocked with 5 habits played today")
	}
	if ids["combo_master"] {
		t.Fatalf("combo_master unlocked at combo=2")
	}

	snap.Combo = 5
	unlocked, _ = EvaluateAchievements(snap)
	if len(unlocked) != 1 || unlocked[0].ID != "combo_master" {
		t.Fatalf("combo_master not unlocked at combo=5: %v", unlocked)
	}
}

func TestEvaluateWeeklyAll(t *testing.T) {
	snap := emptySnapshot()
	if CondWeeklyAll.satisfied(snap) {
		t.Fatalf("weekly_all satisfied with an empty main list")
	}
	snap.Weekly.Main = []WeeklyItem{{Completed: true}, {Completed: true}}
	if !CondWeeklyAll.satisfied(snap) {
		t.Fatalf("weekly_all not satisfied with all main items done")
	}
}

func TestCatalogHasTwelveUniqueIDs(t *testing.T) {
	defs := Catalog()
	if len(defs) != 12 {
		t.Fatalf("catalog size=%d, want 12", len(defs))
	}
	seen := map[string]bool{}
	for _, d := range defs {
		if seen[d.ID] {
			t.Fatalf("duplicate achievement id %q", d.ID)
		}
		seen[d.ID] = true
	}
}
