package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wanderquest/internal/store"
)

// RecordResult reports a campfire-log save and its small XP reward.
type RecordResult struct {
	Record    Record
	XPAwarded int
	Unlocked  []AchievementDef
	Events    []Event
}

func (s *Service) recordXP(kind string) int {
	switch kind {
	case "daily":
		return s.bal.DailyLogXP
	case "sleep":
		return s.bal.SleepLogXP
	case "diet":
		return s.bal.DietLogXP
	case "meds":
		return s.bal.MedsLogXP
	case "journal":
		return s.bal.JournalLogXP
	default:
		return 0
	}
}

// SaveRecord appends one entry to the campfire logs and grants the logging
// XP for its type. Unknown types are stored but grant nothing.
func (s *Service) SaveRecord(ctx context.Context, rec Record) (*RecordResult, error) {
	if rec.Type == "" {
		return nil, fmt.Errorf("record type is required")
	}
	rec.Date = s.today()
	if rec.Time == "" {
		rec.Time = TimeOfDay(s.now())
	}

	var logs []Record
	if err := s.store.Load(ctx, store.KeyLogs, &logs); err != nil {
		return nil, err
	}
	logs = append(logs, rec)
	if err := s.store.Save(ctx, store.KeyLogs, logs); err != nil {
		return nil, err
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	xp := s.recordXP(rec.Type)
	events := GrantXP(&snap.Character, xp, s.bal.XPGrowthFactor)
	events = append(events, logEvent(fmt.Sprintf("Campfire log saved (%s). +%dXP", rec.Type, xp)))

	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}
	return &RecordResult{Record: rec, XPAwarded: xp, Unlocked: unlocked, Events: events}, nil
}

func (s *Service) ListRecords(ctx context.Context) ([]Record, error) {
	var logs []Record
	if err := s.store.Load(ctx, store.KeyLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Service) ListMedications(ctx context.Context) ([]Medication, error) {
	var meds []Medication
	if err := s.store.Load(ctx, store.KeyMedications, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

func (s *Service) AddMedication(ctx context.Context, name, when string) (*Medication, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if when == "" {
		when = "anytime"
	}
	meds, err := s.ListMedications(ctx)
	if err != nil {
		return nil, err
	}
	med := Medication{ID: uuid.NewString(), Name: n, Time: when}
	meds = append(meds, med)
	if err := s.store.Save(ctx, store.KeyMedications, meds); err != nil {
		return nil, err
	}
	return &med, nil
}

func (s *Service) DeleteMedication(ctx context.Context, id string) error {
	meds, err := s.ListMedications(ctx)
	if err != nil {
		return err
	}
	kept := meds[:0]
	found := false
	for _, m := range meds {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("medication %s: %w", id, ErrNotFound)
	}
	return s.store.Save(ctx, store.KeyMedications, kept)
}
