package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wanderquest/internal/store"
)

type AddVaultInput struct {
	Name     string
	Category string
	Notes    string
}

type PullResult struct {
	Item     VaultItem
	Quest    Quest
	Unlocked []AchievementDef
	Events   []Event
}

func (s *Service) AddVaultItem(ctx context.Context, in AddVaultInput) (*VaultItem, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	cat := in.Category
	if cat == "" {
		cat = "action"
	}

	var vault []VaultItem
	if err := s.store.Load(ctx, store.KeyBacklog, &vault); err != nil {
		return nil, err
	}
	item := VaultItem{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    cat,
		Notes:       in.Notes,
		CreatedDate: s.today(),
	}
	vault = append(vault, item)
	if err := s.store.Save(ctx, store.KeyBacklog, vault); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) ListVault(ctx context.Context) ([]VaultItem, error) {
	var vault []VaultItem
	if err := s.store.Load(ctx, store.KeyBacklog, &vault); err != nil {
		return nil, err
	}
	return vault, nil
}

func (s *Service) DeleteVaultItem(ctx context.Context, id string) error {
	var vault []VaultItem
	if err := s.store.Load(ctx, store.KeyBacklog, &vault); err != nil {
		return err
	}
	kept := vault[:0]
	found := false
	for _, v := range vault {
		if v.ID == id {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		return fmt.Errorf("vault item %s: %w", id, ErrNotFound)
	}
	return s.store.Save(ctx, store.KeyBacklog, kept)
}

// PullVaultItem promotes a vault item to a side quest on the board. The
// item stays in the vault with its pulledCount bumped — pulling the same
// item again later is allowed, but only distinct pulled items count toward
// the Vault Diver badge.
func (s *Service) PullVaultItem(ctx context.Context, id string) (*PullResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range snap.Vault {
		if snap.Vault[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("vault item %s: %w", id, ErrNotFound)
	}
	item := &snap.Vault[idx]

	notes := ""
	if item.Notes != "" {
		notes = "From vault: " + item.Notes
	}
	q := Quest{
		ID:          uuid.NewString(),
		Name:        item.Name,
		Tier:        TierSide,
		Energy:      1,
		XP:          s.bal.VaultPull.XP,
		Gold:        s.bal.VaultPull.Gold,
		Notes:       notes,
		CreatedDate: snap.Today,
	}
	snap.Quests = append(snap.Quests, q)
	item.PulledCount++

	events := []Event{
		logEvent(fmt.Sprintf("Pulled %q from the vault to the quest board", item.Name)),
		notifyEvent(fmt.Sprintf("Pulled %q to Quest Board!", item.Name)),
	}

	if err := s.save(ctx, snap, store.KeyTasks, store.KeyBacklog); err != nil {
		return nil, err
	}
	unlocked, events, err := s.finish(ctx, snap, events)
	if err != nil {
		return nil, err
	}

	return &PullResult{Item: *item, Quest: q, Unlocked: unlocked, Events: events}, nil
}
