package engine

import "wanderquest/internal/store"

// Defaults is the documented default structure for every persisted key,
// applied whenever a stored value is absent or corrupt.
func Defaults() map[string]any {
	return map[string]any{
		store.KeySettings: Settings{
			Name:      "Wanderer",
			CharClass: "ranger",
			APIURL:    "https://api.openai.com/v1/chat/completions",
			Model:     "gpt-4o-mini",
			Theme:     "light",
			Lang:      "en",
		},
		store.KeyCharacter: Character{
			Level:    1,
			XP:       0,
			XPToNext: 100,
			Gold:     50,
			Equipped: map[Slot]Item{
				SlotWeapon:    {Name: "Starter Blade", Icon: "🗡"},
				SlotArmor:     {Name: "Worn Cloak", Icon: "👘"},
				SlotAccessory: {Name: "Lucky Charm", Icon: "📿"},
			},
			Inventory:    []Item{},
			Achievements: []string{},
		},
		store.KeyDashboard: Dashboard{
			DayStatus: DayGreen,
			Stats: Stats{
				Stamina: 70, Diet: 50, Sleep: 60,
				Spirit: 65, Focus: 40, Mood: 55,
			},
		},
		store.KeyTasks:      []Quest{},
		store.KeyBacklog:    []VaultItem{},
		store.KeyWeeklyPlan: WeeklyPlan{Main: []WeeklyItem{}, Side: []WeeklyItem{}},
		store.KeyHabits:     []Habit{},
		store.KeyHabitCombo: 0,
		store.KeyTransitionCards: []TransitionCard{
			{ID: "t1", Name: "Take out trash", Icon: "🗑"},
			{ID: "t2", Name: "Soak feet in warm water", Icon: "🦶"},
			{ID: "t3", Name: "Gaze into distance for 1 min", Icon: "👀"},
			{ID: "t4", Name: "Stand up and stretch", Icon: "🧘"},
			{ID: "t5", Name: "Close eyes, rest 10 min", Icon: "😌"},
			{ID: "t6", Name: "Go pour a glass of water", Icon: "💧"},
			{ID: "t7", Name: "Step outside for fresh air", Icon: "🌿"},
			{ID: "t8", Name: "Tidy one small area", Icon: "✨"},
			{ID: "t9", Name: "Play one song you like", Icon: "🎵"},
			{ID: "t10", Name: "Text a friend", Icon: "💬"},
		},
		store.KeyMedications: []Medication{},
		store.KeyLogs:        []Record{},
		store.KeyAdventureLog: []AdventureEntry{
			{Time: "Dawn", Text: "A new day begins. The wanderer awakens..."},
		},
		store.KeyShopItems: []ShopItem{
			{ID: "s1", Name: "Iron Sword", Icon: "⚔", Desc: "+2 Task Focus", Price: 100, Type: "weapon"},
			{ID: "s2", Name: "Leather Armor", Icon: "🛡", Desc: "+1 HP Regen", Price: 80, Type: "armor"},
			{ID: "s3", Name: "Focus Amulet", Icon: "🔮", Desc: "+3 Focus MP", Price: 120, Type: "accessory"},
			{ID: "s4", Name: "Traveler's Map", Icon: "🗺", Desc: "Unlock vault hint", Price: 60, Type: "misc"},
			{ID: "s5", Name: "Healing Potion", Icon: "🧪", Desc: "Restore 20 HP", Price: 30, Type: "consumable"},
			{ID: "s6", Name: "Mana Crystal", Icon: "💎", Desc: "Restore 20 MP", Price: 30, Type: "consumable"},
			{ID: "s7", Name: "Phoenix Feather", Icon: "🪶", Desc: "Revive from burnout", Price: 200, Type: "misc"},
			{ID: "s8", Name: "Enchanted Cloak", Icon: "🧥", Desc: "+5 All Stats", Price: 300, Type: "armor"},
		},
	}
}
