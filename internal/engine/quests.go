package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wanderquest/internal/store"
)

var ErrNotFound = errors.New("not found")

type AddQuestInput struct {
	Name   string
	Tier   Tier
	Energy int
	XP     int
	Gold   int
	Notes  string
}

// QuestResult reports what a quest toggle did, including every event the
// caller should render.
type QuestResult struct {
	Quest       Quest
	Completed   bool
	XPAwarded   int
	GoldAwarded int
	LevelBefore int
	LevelAfter  int
	Unlocked    []AchievementDef
	Events      []Event
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

func (s *Service) AddQuest(ctx context.Context, in AddQuestInput) (*Quest, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if !in.Tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %q", in.Tier)
	}
	if in.XP < 0 || in.Gold < 0 {
		return nil, errors.New("rewards must be non-negative")
	}

	var quests []Quest
	if err := s.store.Load(ctx, store.KeyTasks, &quests); err != nil {
		return nil, err
	}

	q := Quest{
		ID:          uuid.NewString(),
		Name:        name,
		Tier:        in.Tier,
		Energy:      in.Energy,
		XP:          in.XP,
		Gold:        in.Gold,
		Notes:       in.Notes,
		CreatedDate: s.today(),
	}
	quests = append(quests, q)
	if err := s.store.Save(ctx, store.KeyTasks, quests); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *Service) ListQuests(ctx context.Context) ([]Quest, error) {
	var quests []Quest
	if err := s.store.Load(ctx, store.KeyTasks, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	var quests []Quest
	if err := s.store.Load(ctx, store.KeyTasks, &quests); err != nil {
		return err
	}
	kept := quests[:0]
	found := false
	for _, q := range quests {
		if q.ID == id {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return fmt.Errorf("quest %s: %w", id, ErrNotFound)
	}
	return s.store.Save(ctx, store.KeyTasks, kept)
}

// ToggleQuest flips a quest's completion. The transition to completed
// grants the quest's rewards through the ledger exactly once per
// transition; flipping back to incomplete claws nothing back.
func (s *Service) ToggleQuest(ctx context.Context, id string) (*QuestResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range snap.Quests {
		if snap.Quests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("quest %s: %w", id, ErrNotFound)
	}
	q := &snap.Quests[idx]

	if q.Done {
		q.Done = false
		q.DoneDate = ""
		if err := s.save(ctx, snap, store.KeyTasks); err != nil {
			return nil, err
		}
		return &QuestResult{Quest: *q, Completed: false}, nil
	}

	q.Done = true
	q.DoneDate = snap.Today

	levelBefore := snap.Character.Level
	events := GrantXP(&snap.Character, q.XP, s.bal.XPGrowthFactor)
	GrantGold(&snap.Character, q.Gold)
	events = append(events,
		logEvent(fmt.Sprintf("Completed quest: %q (+%dXP, +%dG)", q.Name, q.XP, q.Gold)),
		notifyEvent(fmt.Sprintf("Quest complete! +%dXP +%dG", q.XP, q.Gold)),
	)

	if err := s.save(ctx, snap, store.KeyTasks); err != nil {
		return nil, err
	}
	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}

	return &QuestResult{
		Quest:       *q,
		Completed:   true,
		XPAwarded:   q.XP,
		GoldAwarded: q.Gold,
		LevelBefore: levelBefore,
		LevelAfter:  snap.Character.Level,
		Unlocked:    unlocked,
		Events:      events,
	}, nil
}
