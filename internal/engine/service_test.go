package engine

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"wanderquest/internal/config"
	"wanderquest/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := store.Open(ctx, path, zap.NewNop(), Defaults())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	svc := NewService(st, config.DefaultBalance())
	// Monday morning, pinned.
	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	})
	return svc
}

func TestToggleQuestGrantsOncePerTransition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q, err := svc.AddQuest(ctx, AddQuestInput{Name: "Slay the inbox", Tier: TierBoss, XP: 40, Gold: 20})
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}

	res, err := svc.ToggleQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("ToggleQuest: %v", err)
	}
	if !res.Completed || res.XPAwarded != 40 || res.GoldAwarded != 20 {
		t.Fatalf("result=%+v", res)
	}

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Character.XP != 40 {
		t.Fatalf("xp=%d, want 40", snap.Character.XP)
	}
	if snap.Character.Gold != 70 { // 50 starting + 20
		t.Fatalf("gold=%d, want 70", snap.Character.Gold)
	}
	if !snap.Character.HasAchievement("first_steps") {
		t.Fatalf("first quest did not unlock first_steps")
	}

	// Un-complete: no clawback.
	undo, err := svc.ToggleQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("ToggleQuest undo: %v", err)
	}
	if undo.Completed {
		t.Fatalf("expected undo")
	}
	snap, _ = svc.Snapshot(ctx)
	if snap.Character.XP != 40 || snap.Character.Gold != 70 {
		t.Fatalf("undo clawed back rewards: xp=%d gold=%d", snap.Character.XP, snap.Character.Gold)
	}

	// Re-complete: grants again (each transition to completed pays once).
	if _, err := svc.ToggleQuest(ctx, q.ID); err != nil {
		t.Fatalf("ToggleQuest re-complete: %v", err)
	}
	snap, _ = svc.Snapshot(ctx)
	if snap.Character.XP != 80 {
		t.Fatalf("xp=%d after re-complete, want 80", snap.Character.XP)
	}
}

func TestPlayHabitComboAndUndo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Stretch", "Hydrate", "Walk"} {
		h, err := svc.AddHabit(ctx, AddHabitInput{Name: name, Tier: TierSide, XP: 10})
		if err != nil {
			t.Fatalf("AddHabit: %v", err)
		}
		ids = append(ids, h.ID)
	}

	var last *HabitResult
	for _, id := range ids {
		var err error
		last, err = svc.PlayHabit(ctx, id)
		if err != nil {
			t.Fatalf("PlayHabit: %v", err)
		}
	}
	if last.Combo != 3 {
		t.Fatalf("combo=%d, want 3", last.Combo)
	}
	if last.Multiplier != 1.4 {
		t.Fatalf("multiplier=%v, want 1.4", last.Multiplier)
	}
	if last.XPAwarded != 14 {
		t.Fatalf("xp=%d, want 14", last.XPAwarded)
	}

	// Undo the third play: combo drops, nothing clawed back.
	charBefore, _ := svc.Snapshot(ctx)
	undo, err := svc.PlayHabit(ctx, ids[2])
	if err != nil {
		t.Fatalf("PlayHabit undo: %v", err)
	}
	if !undo.Undone || undo.Combo != 2 {
		t.Fatalf("undo=%+v, want combo 2", undo)
	}
	charAfter, _ := svc.Snapshot(ctx)
	if charAfter.Character.XP != charBefore.Character.XP {
		t.Fatalf("undo changed xp: %d -> %d", charBefore.Character.XP, charAfter.Character.XP)
	}
	if charAfter.Habits[2].PlayedOn(charAfter.Today) {
		t.Fatalf("habit still marked played after undo")
	}
}

func TestStartDayIdempotentWithinDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.StartDay(ctx); err != nil {
		t.Fatalf("StartDay: %v", err)
	}
	snap, _ := svc.Snapshot(ctx)
	if snap.Dashboard.DayStreak != 1 {
		t.Fatalf("streak=%d, want 1", snap.Dashboard.DayStreak)
	}

	if _, err := svc.StartDay(ctx); err != nil {
		t.Fatalf("StartDay again: %v", err)
	}
	snap, _ = svc.Snapshot(ctx)
	if snap.Dashboard.DayStreak != 1 {
		t.Fatalf("same-day streak bumped to %d", snap.Dashboard.DayStreak)
	}

	// Next day: streak continues and weekly stays (same week).
	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 11, 9, 0, 0, 0, time.UTC)
	})
	if _, err := svc.StartDay(ctx); err != nil {
		t.Fatalf("StartDay next day: %v", err)
	}
	snap, _ = svc.Snapshot(ctx)
	if snap.Dashboard.DayStreak != 2 {
		t.Fatalf("streak=%d, want 2", snap.Dashboard.DayStreak)
	}
}

func TestStreakSevenUnlocksConsistency(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		d := day.AddDate(0, 0, i)
		svc.SetClock(func() time.Time { return d })
		if _, err := svc.StartDay(ctx); err != nil {
			t.Fatalf("StartDay day %d: %v", i, err)
		}
	}

	snap, _ := svc.Snapshot(ctx)
	if snap.Dashboard.DayStreak != 7 {
		t.Fatalf("streak=%d, want 7", snap.Dashboard.DayStreak)
	}
	if !snap.Character.HasAchievement("consistency") {
		t.Fatalf("consistency not unlocked at 7-day streak")
	}
	if !snap.Character.HasAchievement("streak_starter") {
		t.Fatalf("streak_starter not unlocked on the way to 7")
	}
}

func TestVaultPullCreatesSideQuest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var pulled *PullResult
	for _, name := range []string{"Learn lockpicking", "Fix the shelf", "Call the bank"} {
		item, err := svc.AddVaultItem(ctx, AddVaultInput{Name: name, Category: "action"})
		if err != nil {
			t.Fatalf("AddVaultItem: %v", err)
		}
		pulled, err = svc.PullVaultItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("PullVaultItem: %v", err)
		}
	}

	if pulled.Quest.Tier != TierSide {
		t.Fatalf("pulled quest tier=%s, want side", pulled.Quest.Tier)
	}
	if pulled.Item.PulledCount != 1 {
		t.Fatalf("pulledCount=%d, want 1", pulled.Item.PulledCount)
	}

	snap, _ := svc.Snapshot(ctx)
	if len(snap.Quests) != 3 {
		t.Fatalf("quests=%d, want 3", len(snap.Quests))
	}
	if !snap.Character.HasAchievement("vault_diver") {
		t.Fatalf("vault_diver not unlocked after 3 distinct pulls")
	}
}

func TestBuyItemDebitsGoldAndFillsInventory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Healing Potion costs 30; starting gold is 50.
	res, err := svc.BuyItem(ctx, "s5")
	if err != nil {
		t.Fatalf("BuyItem: %v", err)
	}
	if res.GoldLeft != 20 {
		t.Fatalf("gold=%d, want 20", res.GoldLeft)
	}

	if _, err := svc.BuyItem(ctx, "s5"); err == nil {
		t.Fatalf("expected error re-buying an owned item")
	}
	if _, err := svc.BuyItem(ctx, "s8"); err == nil {
		t.Fatalf("expected not-enough-gold error")
	}

	snap, _ := svc.Snapshot(ctx)
	if len(snap.Character.Inventory) != 1 || snap.Character.Inventory[0].ID != "s5" {
		t.Fatalf("inventory=%v", snap.Character.Inventory)
	}
	if snap.Character.Gold != 20 {
		t.Fatalf("gold=%d, want 20", snap.Character.Gold)
	}
}

func TestAdventureLogRecordsLevelUps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q, err := svc.AddQuest(ctx, AddQuestInput{Name: "Epic deed", Tier: TierBoss, XP: 250, Gold: 0})
	if err != nil {
		t.Fatalf("AddQuest: %v", err)
	}
	res, err := svc.ToggleQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("ToggleQuest: %v", err)
	}
	if res.LevelAfter != 3 {
		t.Fatalf("level=%d, want 3 (two level-ups from one grant)", res.LevelAfter)
	}

	log, err := svc.AdventureLog(ctx)
	if err != nil {
		t.Fatalf("AdventureLog: %v", err)
	}
	levelUps := 0
	for _, e := range log {
		if strings.HasPrefix(e.Text, "The wanderer has reached") {
			levelUps++
		}
	}
	if levelUps != 2 {
		t.Fatalf("level-up log entries=%d, want 2", levelUps)
	}
}
