package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wanderquest/internal/store"
)

type AddHabitInput struct {
	Name string
	Tier Tier
	XP   int
	Icon string
}

// HabitResult reports a habit play or undo.
type HabitResult struct {
	Habit       Habit
	Undone      bool
	Combo       int
	Multiplier  float64
	XPAwarded   int
	GoldAwarded int
	LevelBefore int
	LevelAfter  int
	Unlocked    []AchievementDef
	Events      []Event
}

func (s *Service) AddHabit(ctx context.Context, in AddHabitInput) (*Habit, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if !in.Tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %q", in.Tier)
	}
	if in.XP < 0 {
		return nil, fmt.Errorf("habit xp must be non-negative")
	}
	icon := in.Icon
	if icon == "" {
		icon = "✨"
	}

	var habits []Habit
	if err := s.store.Load(ctx, store.KeyHabits, &habits); err != nil {
		return nil, err
	}
	h := Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Tier:        in.Tier,
		XP:          in.XP,
		Icon:        icon,
		PlayedDates: []Day{},
	}
	habits = append(habits, h)
	if err := s.store.Save(ctx, store.KeyHabits, habits); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Service) ListHabits(ctx context.Context) ([]Habit, error) {
	var habits []Habit
	if err := s.store.Load(ctx, store.KeyHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *Service) DeleteHabit(ctx context.Context, id string) error {
	var habits []Habit
	if err := s.store.Load(ctx, store.KeyHabits, &habits); err != nil {
		return err
	}
	kept := habits[:0]
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return s.store.Save(ctx, store.KeyHabits, kept)
}

// PlayHabit marks a habit card played for today. Playing a card already
// played today is the undo path: it removes today's play, drops the combo
// by one and claws back nothing.
//
// On a play: the habit streak continues if yesterday was played, otherwise
// restarts at 1; the shared combo rises by one; XP is the habit's base
// value times the combo multiplier, gold a third of the XP granted.
func (s *Service) PlayHabit(ctx context.Context, id string) (*HabitResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range snap.Habits {
		if snap.Habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	h := &snap.Habits[idx]

	if h.PlayedOn(snap.Today) {
		h.unmarkPlayed(snap.Today)
		snap.Combo = dropCombo(snap.Combo)
		if err := s.save(ctx, snap, store.KeyHabits, store.KeyHabitCombo); err != nil {
			return nil, err
		}
		return &HabitResult{Habit: *h, Undone: true, Combo: snap.Combo}, nil
	}

	h.markPlayed(snap.Today)
	snap.Combo = bumpCombo(snap.Combo)

	mult := ComboMultiplier(snap.Combo, s.bal.ComboStep, s.bal.ComboMax)
	xp, gold := HabitReward(h.XP, snap.Combo, s.bal.ComboStep, s.bal.ComboMax, s.bal.HabitGoldDivisor)

	levelBefore := snap.Character.Level
	events := GrantXP(&snap.Character, xp, s.bal.XPGrowthFactor)
	GrantGold(&snap.Character, gold)
	events = append(events,
		logEvent(fmt.Sprintf("Played habit card: %q (+%dXP, %dx combo)", h.Name, xp, snap.Combo)),
		notifyEvent(fmt.Sprintf("%s %s! +%dXP (%dx combo)", h.Icon, h.Name, xp, snap.Combo)),
	)

	if err := s.save(ctx, snap, store.KeyHabits, store.KeyHabitCombo); err != nil {
		return nil, err
	}
	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}

	return &HabitResult{
		Habit:       *h,
		Combo:       snap.Combo,
		Multiplier:  mult,
		XPAwarded:   xp,
		GoldAwarded: gold,
		LevelBefore: levelBefore,
		LevelAfter:  snap.Character.Level,
		Unlocked:    unlocked,
		Events:      events,
	}, nil
}

// Combo returns the current shared combo counter.
func (s *Service) ComboCount(ctx context.Context) (int, error) {
	var combo int
	if err := s.store.Load(ctx, store.KeyHabitCombo, &combo); err != nil {
		return 0, err
	}
	return combo, nil
}
