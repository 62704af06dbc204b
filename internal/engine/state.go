package engine

import "time"

// Day is a calendar date in the user's local time, stored as "2006-01-02".
// All streak and rollover logic compares Days, never instants.
type Day string

const dayLayout = "2006-01-02"

func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

func (d Day) IsZero() bool { return d == "" }

func (d Day) Time() (time.Time, error) {
	return time.Parse(dayLayout, string(d))
}

// DaysBetween returns b - a in whole days. An error means one of the
// values is not a valid date (e.g. hand-edited persisted state).
func DaysBetween(a, b Day) (int, error) {
	ta, err := a.Time()
	if err != nil {
		return 0, err
	}
	tb, err := b.Time()
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

func (d Day) AddDays(n int) Day {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return DayOf(t.AddDate(0, 0, n))
}

// TimeOfDay names the current stretch of the day for adventure-log entries.
func TimeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return "Deep Night"
	case h < 9:
		return "Dawn"
	case h < 12:
		return "Morning"
	case h < 14:
		return "Midday"
	case h < 17:
		return "Afternoon"
	case h < 20:
		return "Dusk"
	case h < 23:
		return "Evening"
	default:
		return "Night"
	}
}

type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

func (s Slot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotArmor, SlotAccessory:
		return true
	default:
		return false
	}
}

type Item struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Character is the player's persistent progression state. It is mutated
// only through ledger operations and never deleted outside a full reset.
type Character struct {
	Level        int           `json:"level"`
	XP           int           `json:"xp"`
	XPToNext     int           `json:"xpToNext"`
	Gold         int           `json:"gold"`
	Inventory    []Item        `json:"inventory"`
	Equipped     map[Slot]Item `json:"equipped"`
	Achievements []string      `json:"achievements"`
}

func (c *Character) HasAchievement(id string) bool {
	for _, a := range c.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

type DayStatus string

const (
	DayGreen  DayStatus = "green"
	DayYellow DayStatus = "yellow"
	DayRed    DayStatus = "red"
)

type Stats struct {
	Stamina int `json:"stamina"`
	Diet    int `json:"diet"`
	Sleep   int `json:"sleep"`
	Spirit  int `json:"spirit"`
	Focus   int `json:"focus"`
	Mood    int `json:"mood"`
}

type Dashboard struct {
	DayStatus      DayStatus `json:"dayStatus"`
	Stats          Stats     `json:"stats"`
	DayStreak      int       `json:"dayStreak"`
	LastActiveDate Day       `json:"lastActiveDate"`
}

type Tier string

const (
	TierBoss     Tier = "boss"
	TierSurvival Tier = "survival"
	TierSide     Tier = "side"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierBoss, TierSurvival, TierSide:
		return true
	default:
		return false
	}
}

// ParseTier falls back to side for missing/unknown input.
func ParseTier(s string) Tier {
	t := Tier(s)
	if t.IsValid() {
		return t
	}
	return TierSide
}

type Quest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tier        Tier   `json:"tier"`
	Energy      int    `json:"energy,omitempty"`
	XP          int    `json:"xp"`
	Gold        int    `json:"gold"`
	Notes       string `json:"notes,omitempty"`
	Done        bool   `json:"done"`
	DoneDate    Day    `json:"doneDate,omitempty"`
	CreatedDate Day    `json:"createdDate"`
}

type Habit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tier        Tier   `json:"tier"`
	XP          int    `json:"xp"`
	Icon        string `json:"icon"`
	Streak      int    `json:"streak"`
	PlayedDates []Day  `json:"playedDates"`
	TotalPlays  int    `json:"totalPlays"`
}

func (h *Habit) PlayedOn(d Day) bool {
	for _, p := range h.PlayedDates {
		if p == d {
			return true
		}
	}
	return false
}

type WeeklyItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type WeeklyPlan struct {
	WeekStart Day          `json:"weekStart"`
	Main      []WeeklyItem `json:"main"`
	Side      []WeeklyItem `json:"side"`
	Review    string       `json:"review"`
}

type VaultItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Notes       string `json:"notes,omitempty"`
	CreatedDate Day    `json:"createdDate"`
	PulledCount int    `json:"pulledCount"`
}

type TransitionCard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ShopItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Desc   string `json:"desc"`
	Price  int    `json:"price"`
	Type   string `json:"type"`
	Bought bool   `json:"bought"`
}

type Medication struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}

type Meal struct {
	Type string `json:"type"`
	Desc string `json:"desc"`
}

// Record is one campfire-log entry. Which fields are set depends on Type
// (daily, sleep, diet, meds, journal, weekly archive).
type Record struct {
	Type     string       `json:"type"`
	Date     Day          `json:"date"`
	Time     string       `json:"time,omitempty"`
	Recap    string       `json:"recap,omitempty"`
	Weight   string       `json:"weight,omitempty"`
	Pain     string       `json:"pain,omitempty"`
	Bedtime  string       `json:"bedtime,omitempty"`
	Waketime string       `json:"waketime,omitempty"`
	Quality  int          `json:"quality,omitempty"`
	Notes    string       `json:"notes,omitempty"`
	Meals    []Meal       `json:"meals,omitempty"`
	Water    int          `json:"water,omitempty"`
	Taken    []string     `json:"taken,omitempty"`
	Entry    string       `json:"entry,omitempty"`
	Main     []WeeklyItem `json:"main,omitempty"`
	Side     []WeeklyItem `json:"side,omitempty"`
	Review   string       `json:"review,omitempty"`
}

type AdventureEntry struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

type Settings struct {
	Name      string `json:"name"`
	CharClass string `json:"charClass"`
	APIKey    string `json:"apiKey"`
	APIURL    string `json:"apiUrl"`
	Model     string `json:"model"`
	Sound     bool   `json:"sound"`
	Theme     string `json:"theme"`
	Lang      string `json:"lang"`
}

// Snapshot is the full aggregate state the achievement evaluator and the
// chat companion read. Operations load it from the store, mutate the parts
// they own and write those parts back.
type Snapshot struct {
	Settings  Settings
	Character Character
	Dashboard Dashboard
	Quests    []Quest
	Vault     []VaultItem
	Weekly    WeeklyPlan
	Habits    []Habit
	Combo     int
	Today     Day
}
