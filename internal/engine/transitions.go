package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"wanderquest/internal/store"
)

func (s *Service) ListTransitionCards(ctx context.Context) ([]TransitionCard, error) {
	var cards []TransitionCard
	if err := s.store.Load(ctx, store.KeyTransitionCards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Service) AddTransitionCard(ctx context.Context, name, icon string) (*TransitionCard, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if icon == "" {
		icon = "🎯"
	}
	cards, err := s.ListTransitionCards(ctx)
	if err != nil {
		return nil, err
	}
	card := TransitionCard{ID: uuid.NewString(), Name: n, Icon: icon}
	cards = append(cards, card)
	if err := s.store.Save(ctx, store.KeyTransitionCards, cards); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *Service) DeleteTransitionCard(ctx context.Context, id string) error {
	cards, err := s.ListTransitionCards(ctx)
	if err != nil {
		return err
	}
	kept := cards[:0]
	found := false
	for _, c := range cards {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("transition card %s: %w", id, ErrNotFound)
	}
	return s.store.Save(ctx, store.KeyTransitionCards, kept)
}
