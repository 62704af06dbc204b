package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Reward is an XP/gold pair granted by a fixed-value action.
type Reward struct {
	XP   int `yaml:"xp" json:"xp"`
	Gold int `yaml:"gold" json:"gold"`
}

// Balance holds every reward tunable. Values ship with defaults matching
// the progression curve the app was balanced around; a YAML file can
// override any subset of them.
type Balance struct {
	// XPGrowthFactor multiplies xpToNext on each level-up.
	XPGrowthFactor float64 `yaml:"xp_growth_factor" json:"xp_growth_factor"`

	// Combo multiplier: 1 + (combo-1)*step, capped at max.
	ComboStep float64 `yaml:"combo_step" json:"combo_step"`
	ComboMax  float64 `yaml:"combo_max" json:"combo_max"`
	// Habit gold = round(awarded XP / divisor).
	HabitGoldDivisor int `yaml:"habit_gold_divisor" json:"habit_gold_divisor"`

	WeeklyMain      Reward `yaml:"weekly_main" json:"weekly_main"`
	WeeklySide      Reward `yaml:"weekly_side" json:"weekly_side"`
	VaultPull       Reward `yaml:"vault_pull" json:"vault_pull"`
	RoutineComplete Reward `yaml:"routine_complete" json:"routine_complete"`
	RoutineBail     Reward `yaml:"routine_bail" json:"routine_bail"`
	Transition      Reward `yaml:"transition" json:"transition"`

	DailyLogXP   int `yaml:"daily_log_xp" json:"daily_log_xp"`
	SleepLogXP   int `yaml:"sleep_log_xp" json:"sleep_log_xp"`
	DietLogXP    int `yaml:"diet_log_xp" json:"diet_log_xp"`
	MedsLogXP    int `yaml:"meds_log_xp" json:"meds_log_xp"`
	JournalLogXP int `yaml:"journal_log_xp" json:"journal_log_xp"`
}

func DefaultBalance() Balance {
	return Balance{
		XPGrowthFactor:   1.3,
		ComboStep:        0.2,
		ComboMax:         3.0,
		HabitGoldDivisor: 3,
		WeeklyMain:       Reward{XP: 25, Gold: 15},
		WeeklySide:       Reward{XP: 15, Gold: 8},
		VaultPull:        Reward{XP: 15, Gold: 10},
		RoutineComplete:  Reward{XP: 20, Gold: 10},
		RoutineBail:      Reward{XP: 5},
		Transition:       Reward{XP: 3, Gold: 2},
		DailyLogXP:       5,
		SleepLogXP:       3,
		DietLogXP:        3,
		MedsLogXP:        3,
		JournalLogXP:     5,
	}
}

// DefaultBalancePath is ~/.wanderquest.yaml, overridable via WQ_BALANCE.
func DefaultBalancePath() (string, error) {
	if p := os.Getenv("WQ_BALANCE"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".wanderquest.yaml"), nil
}

// LoadBalance reads the balance file at path on top of the defaults.
// A missing file is not an error; a malformed one is.
func LoadBalance(path string) (Balance, error) {
	bal := DefaultBalance()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bal, nil
		}
		return bal, fmt.Errorf("read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &bal); err != nil {
		return DefaultBalance(), fmt.Errorf("parse balance file: %w", err)
	}
	return bal, nil
}
