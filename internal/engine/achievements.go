package engine

import "fmt"

// Condition is the closed set of achievement predicates. Keeping this an
// enum (rather than string tags looked up at runtime) makes an unhandled
// condition a compile-time concern.
type Condition int

const (
	CondFirstQuest  Condition = iota // >=1 quest completed, ever
	CondStreak3                      // day streak >= 3
	CondHabits5                      // >=5 habit cards played today
	CondBoss5                        // >=5 boss quests completed, lifetime
	CondSurvivalAll                  // survival quests exist and all are done
	CondVault3                       // >=3 distinct vault items pulled at least once
	CondLevel5                       // level >= 5
	CondGold500                      // gold >= 500
	CondCombo5                       // combo counter >= 5
	CondWeeklyAll                    // non-empty weekly main list, all completed
	CondStreak7                      // day streak >= 7
	CondLevel10                      // level >= 10
)

// AchievementDef is a static catalog entry; only the character's unlocked
// set ever changes at runtime.
type AchievementDef struct {
	ID        string
	Name      string
	Icon      string
	Desc      string
	Condition Condition
}

// Catalog returns the achievement definitions in evaluation order.
func Catalog() []AchievementDef {
	return []AchievementDef{
		{ID: "first_steps", Name: "First Steps", Icon: "👣", Desc: "Complete your first quest", Condition: CondFirstQuest},
		{ID: "streak_starter", Name: "Streak Starter", Icon: "🔥", Desc: "3-day streak", Condition: CondStreak3},
		{ID: "habit_builder", Name: "Habit Builder", Icon: "🃏", Desc: "Play 5 habit cards in a day", Condition: CondHabits5},
		{ID: "boss_slayer", Name: "Boss Slayer", Icon: "👹", Desc: "Complete 5 boss quests", Condition: CondBoss5},
		{ID: "survivor", Name: "Survivor", Icon: "🛡", Desc: "Complete all survival quests", Condition: CondSurvivalAll},
		{ID: "vault_diver", Name: "Vault Diver", Icon: "📦", Desc: "Pull 3 items from the vault", Condition: CondVault3},
		{ID: "level_5", Name: "Level 5", Icon: "⭐", Desc: "Reach Level 5", Condition: CondLevel5},
		{ID: "rich_adventurer", Name: "Rich Adventurer", Icon: "🪙", Desc: "Accumulate 500 gold", Condition: CondGold500},
		{ID: "combo_master", Name: "Combo Master", Icon: "💥", Desc: "Get a 5x habit combo", Condition: CondCombo5},
		{ID: "weekly_champion", Name: "Weekly Champion", Icon: "📜", Desc: "Complete all weekly main quests", Condition: CondWeeklyAll},
		{ID: "consistency", Name: "Consistency", Icon: "📅", Desc: "7-day streak", Condition: CondStreak7},
		{ID: "legend", Name: "Legend", Icon: "🏆", Desc: "Reach Level 10", Condition: CondLevel10},
	}
}

func (c Condition) satisfied(s *Snapshot) bool {
	switch c {
	case CondFirstQuest:
		return countDoneQuests(s.Quests) >= 1
	case CondStreak3:
		return s.Dashboard.DayStreak >= 3
	case CondHabits5:
		return countHabitsPlayed(s.Habits, s.Today) >= 5
	case CondBoss5:
		return countDoneQuestsByTier(s.Quests, TierBoss) >= 5
	case CondSurvivalAll:
		return allSurvivalDone(s.Quests)
	case CondVault3:
		return countPulledVaultItems(s.Vault) >= 3
	case CondLevel5:
		return s.Character.Level >= 5
	case CondGold500:
		return s.Character.Gold >= 500
	case CondCombo5:
		return s.Combo >= 5
	case CondWeeklyAll:
		return allWeeklyMainDone(&s.Weekly)
	case CondStreak7:
		return s.Dashboard.DayStreak >= 7
	case CondLevel10:
		return s.Character.Level >= 10
	default:
		return false
	}
}

// EvaluateAchievements checks every not-yet-unlocked definition against the
// snapshot and unlocks, in catalog order, all whose predicate holds. Each
// unlock is recorded on the character exactly once, ever, and emits one log
// entry plus one notification. Re-satisfying an unlocked condition is a
// no-op.
func EvaluateAchievements(s *Snapshot) ([]AchievementDef, []Event) {
	var unlocked []AchievementDef
	var events []Event

	for _, def := range Catalog() {
		if s.Character.HasAchievement(def.ID) {
			continue
		}
		if !def.Condition.satisfied(s) {
			continue
		}
		s.Character.Achievements = append(s.Character.Achievements, def.ID)
		unlocked = append(unlocked, def)
		events = append(events,
			logEvent(fmt.Sprintf("🏆 Achievement unlocked: %q — %s", def.Name, def.Desc)),
			notifyEvent(fmt.Sprintf("🏆 Achievement Unlocked: %s %s!", def.Icon, def.Name)),
		)
	}
	return unlocked, events
}

func countDoneQuests(quests []Quest) int {
	n := 0
	for i := range quests {
		if quests[i].Done {
			n++
		}
	}
	return n
}

func countDoneQuestsByTier(quests []Quest, tier Tier) int {
	n := 0
	for i := range quests {
		if quests[i].Done && quests[i].Tier == tier {
			n++
		}
	}
	return n
}

func allSurvivalDone(quests []Quest) bool {
	found := false
	for i := range quests {
		if quests[i].Tier != TierSurvival {
			continue
		}
		found = true
		if !quests[i].Done {
			return false
		}
	}
	return found
}

func countHabitsPlayed(habits []Habit, today Day) int {
	n := 0
	for i := range habits {
		if habits[i].PlayedOn(today) {
			n++
		}
	}
	return n
}

func countPulledVaultItems(vault []VaultItem) int {
	n := 0
	for i := range vault {
		if vault[i].PulledCount > 0 {
			n++
		}
	}
	return n
}

func allWeeklyMainDone(w *WeeklyPlan) bool {
	if len(w.Main) == 0 {
		return false
	}
	for i := range w.Main {
		if !w.Main[i].Completed {
			return false
		}
	}
	return true
}
