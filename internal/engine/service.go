package engine

import (
	"context"
	"fmt"
	"time"

	"wanderquest/internal/config"
	"wanderquest/internal/store"
)

// Service wires the engine to the persistence collaborator. Every operation
// follows the same shape: load the state it needs, apply a pure mutation,
// write the changed keys back, append log-kind events to the adventure log
// and hand the full event list to the caller for rendering.
type Service struct {
	store *store.Store
	bal   config.Balance
	now   func() time.Time
}

func NewService(st *store.Store, bal config.Balance) *Service {
	return &Service{store: st, bal: bal, now: time.Now}
}

// SetClock replaces the time source. Tests use this to pin the calendar day.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func (s *Service) Balance() config.Balance { return s.bal }

func (s *Service) today() Day { return DayOf(s.now()) }

// Snapshot loads the full aggregate state.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Today: s.today()}
	loads := []struct {
		key string
		dst any
	}{
		{store.KeySettings, &snap.Settings},
		{store.KeyCharacter, &snap.Character},
		{store.KeyDashboard, &snap.Dashboard},
		{store.KeyTasks, &snap.Quests},
		{store.KeyBacklog, &snap.Vault},
		{store.KeyWeeklyPlan, &snap.Weekly},
		{store.KeyHabits, &snap.Habits},
		{store.KeyHabitCombo, &snap.Combo},
	}
	for _, l := range loads {
		if err := s.store.Load(ctx, l.key, l.dst); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// save writes the given snapshot keys back, one store write per key.
func (s *Service) save(ctx context.Context, snap *Snapshot, keys ...string) error {
	for _, key := range keys {
		var v any
		switch key {
		case store.KeySettings:
			v = snap.Settings
		case store.KeyCharacter:
			v = snap.Character
		case store.KeyDashboard:
			v = snap.Dashboard
		case store.KeyTasks:
			v = snap.Quests
		case store.KeyBacklog:
			v = snap.Vault
		case store.KeyWeeklyPlan:
			v = snap.Weekly
		case store.KeyHabits:
			v = snap.Habits
		case store.KeyHabitCombo:
			v = snap.Combo
		default:
			return fmt.Errorf("save: unknown snapshot key %q", key)
		}
		if err := s.store.Save(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}

// appendAdventureLog lands every log-kind event in the adventure log,
// stamped with the current stretch of day.
func (s *Service) appendAdventureLog(ctx context.Context, events []Event) error {
	var entries []AdventureEntry
	tod := TimeOfDay(s.now())
	for _, e := range events {
		if e.Kind == EventLog {
			entries = append(entries, AdventureEntry{Time: tod, Text: e.Text})
		}
	}
	if len(entries) == 0 {
		return nil
	}

	var log []AdventureEntry
	if err := s.store.Load(ctx, store.KeyAdventureLog, &log); err != nil {
		return err
	}
	log = append(log, entries...)
	return s.store.Save(ctx, store.KeyAdventureLog, log)
}

// finish is the common tail of every reward-granting operation: evaluate
// achievements, persist the character, write the adventure log.
func (s *Service) finish(ctx context.Context, snap *Snapshot, events []Event) ([]AchievementDef, []Event, error) {
	unlocked, achEvents := EvaluateAchievements(snap)
	events = append(events, achEvents...)
	if err := s.save(ctx, snap, store.KeyCharacter); err != nil {
		return nil, nil, err
	}
	if err := s.appendAdventureLog(ctx, events); err != nil {
		return nil, nil, err
	}
	return unlocked, events, nil
}

// StartDay runs the once-per-session day transition: advance the day streak
// and roll the weekly plan over if the calendar week changed. Idempotent
// within the same calendar day.
func (s *Service) StartDay(ctx context.Context) ([]Event, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var events []Event
	changed := EvaluateDayStreak(&snap.Dashboard, snap.Today)
	if err := s.save(ctx, snap, store.KeyDashboard); err != nil {
		return nil, err
	}

	rolled, err := s.ensureCurrentWeek(ctx, snap)
	if err != nil {
		return nil, err
	}
	if rolled {
		events = append(events, notifyEvent("A new week begins. The campaign board is clear."))
	}

	if changed {
		_, events, err = s.finish(ctx, snap, events)
		if err != nil {
			return nil, err
		}
	}
	return events, nil
}

// SetDayStatus records the self-reported energy level; the engine reads it
// but never writes it on its own.
func (s *Service) SetDayStatus(ctx context.Context, status DayStatus) error {
	switch status {
	case DayGreen, DayYellow, DayRed:
	default:
		return fmt.Errorf("invalid day status: %q", status)
	}
	var dash Dashboard
	if err := s.store.Load(ctx, store.KeyDashboard, &dash); err != nil {
		return err
	}
	dash.DayStatus = status
	return s.store.Save(ctx, store.KeyDashboard, &dash)
}

// AdventureLog returns the append-only activity history.
func (s *Service) AdventureLog(ctx context.Context) ([]AdventureEntry, error) {
	var log []AdventureEntry
	if err := s.store.Load(ctx, store.KeyAdventureLog, &log); err != nil {
		return nil, err
	}
	return log, nil
}

// Settings / SaveSettings expose the settings key for the CLI and the chat
// companion.
func (s *Service) GetSettings(ctx context.Context) (Settings, error) {
	var st Settings
	err := s.store.Load(ctx, store.KeySettings, &st)
	return st, err
}

func (s *Service) SaveSettings(ctx context.Context, st Settings) error {
	return s.store.Save(ctx, store.KeySettings, st)
}
