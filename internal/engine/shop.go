package engine

import (
	"context"
	"fmt"

	"wanderquest/internal/store"
)

// NotEnoughGoldError is returned when a purchase exceeds the character's
// gold; the shop never lets the balance go negative.
type NotEnoughGoldError struct {
	Price int
	Gold  int
}

func (e NotEnoughGoldError) Error() string {
	return fmt.Sprintf("not enough gold: need %d, have %d", e.Price, e.Gold)
}

type BuyResult struct {
	Item     ShopItem
	GoldLeft int
	Events   []Event
}

func (s *Service) ListShop(ctx context.Context) ([]ShopItem, error) {
	var items []ShopItem
	if err := s.store.Load(ctx, store.KeyShopItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// BuyItem debits the price, marks the item bought and adds it to the
// character's inventory in acquisition order.
func (s *Service) BuyItem(ctx context.Context, id string) (*BuyResult, error) {
	items, err := s.ListShop(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("shop item %s: %w", id, ErrNotFound)
	}
	item := &items[idx]
	if item.Bought {
		return nil, fmt.Errorf("item %q is already owned", item.Name)
	}

	var char Character
	if err := s.store.Load(ctx, store.KeyCharacter, &char); err != nil {
		return nil, err
	}
	if char.Gold < item.Price {
		return nil, NotEnoughGoldError{Price: item.Price, Gold: char.Gold}
	}

	item.Bought = true
	char.Gold -= item.Price
	char.Inventory = append(char.Inventory, Item{ID: item.ID, Name: item.Name, Icon: item.Icon})

	if err := s.store.Save(ctx, store.KeyShopItems, items); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, store.KeyCharacter, &char); err != nil {
		return nil, err
	}

	events := []Event{
		logEvent(fmt.Sprintf("Purchased %s from the shop", item.Name)),
		notifyEvent(fmt.Sprintf("Bought %s!", item.Name)),
	}
	if err := s.appendAdventureLog(ctx, events); err != nil {
		return nil, err
	}
	return &BuyResult{Item: *item, GoldLeft: char.Gold, Events: events}, nil
}

// EquipItem moves an owned item into an equipment slot; at most one item
// per slot, the previous occupant goes back to being inventory-only.
func (s *Service) EquipItem(ctx context.Context, slot Slot, itemID string) error {
	if !slot.IsValid() {
		return fmt.Errorf("invalid slot: %q", slot)
	}
	var char Character
	if err := s.store.Load(ctx, store.KeyCharacter, &char); err != nil {
		return err
	}

	var owned *Item
	for i := range char.Inventory {
		if char.Inventory[i].ID == itemID {
			owned = &char.Inventory[i]
			break
		}
	}
	if owned == nil {
		return fmt.Errorf("item %s is not in the inventory: %w", itemID, ErrNotFound)
	}

	if char.Equipped == nil {
		char.Equipped = map[Slot]Item{}
	}
	char.Equipped[slot] = *owned
	return s.store.Save(ctx, store.KeyCharacter, &char)
}
