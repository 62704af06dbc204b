package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wanderquest/internal/store"
)

// WeekStartOf returns the Monday of t's calendar week.
func WeekStartOf(t time.Time) Day {
	offset := (int(t.Weekday()) + 6) % 7
	return DayOf(t.AddDate(0, 0, -offset))
}

// ensureCurrentWeek rolls the weekly plan over when the stored weekStart no
// longer matches this week's Monday. A non-empty outgoing plan is archived
// to the campfire logs before being cleared. Returns true on rollover.
func (s *Service) ensureCurrentWeek(ctx context.Context, snap *Snapshot) (bool, error) {
	weekStart := WeekStartOf(s.now())
	if snap.Weekly.WeekStart == weekStart {
		return false, nil
	}

	if !snap.Weekly.WeekStart.IsZero() && (len(snap.Weekly.Main) > 0 || len(snap.Weekly.Side) > 0) {
		var logs []Record
		if err := s.store.Load(ctx, store.KeyLogs, &logs); err != nil {
			return false, err
		}
		logs = append(logs, Record{
			Type:   "weekly",
			Date:   snap.Weekly.WeekStart,
			Main:   snap.Weekly.Main,
			Side:   snap.Weekly.Side,
			Review: snap.Weekly.Review,
		})
		if err := s.store.Save(ctx, store.KeyLogs, logs); err != nil {
			return false, err
		}
	}

	snap.Weekly = WeeklyPlan{
		WeekStart: weekStart,
		Main:      []WeeklyItem{},
		Side:      []WeeklyItem{},
	}
	if err := s.save(ctx, snap, store.KeyWeeklyPlan); err != nil {
		return false, err
	}
	return true, nil
}

type WeeklyKind string

const (
	WeeklyMain WeeklyKind = "main"
	WeeklySide WeeklyKind = "side"
)

func (k WeeklyKind) IsValid() bool { return k == WeeklyMain || k == WeeklySide }

type WeeklyResult struct {
	Item        WeeklyItem
	Completed   bool
	XPAwarded   int
	GoldAwarded int
	Unlocked    []AchievementDef
	Events      []Event
}

func (s *Service) AddWeeklyItem(ctx context.Context, kind WeeklyKind, name string) (*WeeklyItem, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid weekly kind: %q", kind)
	}
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ensureCurrentWeek(ctx, snap); err != nil {
		return nil, err
	}

	item := WeeklyItem{ID: uuid.NewString(), Name: n}
	if kind == WeeklyMain {
		snap.Weekly.Main = append(snap.Weekly.Main, item)
	} else {
		snap.Weekly.Side = append(snap.Weekly.Side, item)
	}
	if err := s.save(ctx, snap, store.KeyWeeklyPlan); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) WeeklyPlanNow(ctx context.Context) (*WeeklyPlan, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ensureCurrentWeek(ctx, snap); err != nil {
		return nil, err
	}
	return &snap.Weekly, nil
}

// ToggleWeeklyItem flips a campaign goal. Completion pays the fixed weekly
// reward through the ledger; un-completing pays nothing back.
func (s *Service) ToggleWeeklyItem(ctx context.Context, kind WeeklyKind, id string) (*WeeklyResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid weekly kind: %q", kind)
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ensureCurrentWeek(ctx, snap); err != nil {
		return nil, err
	}

	items := snap.Weekly.Main
	reward := s.bal.WeeklyMain
	if kind == WeeklySide {
		items = snap.Weekly.Side
		reward = s.bal.WeeklySide
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("weekly item %s: %w", id, ErrNotFound)
	}
	item := &items[idx]
	item.Completed = !item.Completed

	if !item.Completed {
		if err := s.save(ctx, snap, store.KeyWeeklyPlan); err != nil {
			return nil, err
		}
		return &WeeklyResult{Item: *item, Completed: false}, nil
	}

	events := GrantXP(&snap.Character, reward.XP, s.bal.XPGrowthFactor)
	GrantGold(&snap.Character, reward.Gold)
	events = append(events,
		logEvent(fmt.Sprintf("Weekly %s quest done: %q (+%dXP)", kind, item.Name, reward.XP)),
		notifyEvent(fmt.Sprintf("Weekly quest done! +%dXP +%dG", reward.XP, reward.Gold)),
	)

	if err := s.save(ctx, snap, store.KeyWeeklyPlan); err != nil {
		return nil, err
	}
	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}

	return &WeeklyResult{
		Item:        *item,
		Completed:   true,
		XPAwarded:   reward.XP,
		GoldAwarded: reward.Gold,
		Unlocked:    unlocked,
		Events:      events,
	}, nil
}

func (s *Service) SaveWeeklyReview(ctx context.Context, review string) error {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	if _, err := s.ensureCurrentWeek(ctx, snap); err != nil {
		return err
	}
	snap.Weekly.Review = review
	return s.save(ctx, snap, store.KeyWeeklyPlan)
}
