package engine

import (
	"context"
	"testing"
	"time"
)

func TestWeeklyCompletionPaysFixedReward(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	main, err := svc.AddWeeklyItem(ctx, WeeklyMain, "Ship the report")
	if err != nil {
		t.Fatalf("AddWeeklyItem: %v", err)
	}
	side, err := svc.AddWeeklyItem(ctx, WeeklySide, "Water the plants")
	if err != nil {
		t.Fatalf("AddWeeklyItem side: %v", err)
	}

	res, err := svc.ToggleWeeklyItem(ctx, WeeklyMain, main.ID)
	if err != nil {
		t.Fatalf("ToggleWeeklyItem: %v", err)
	}
	if res.XPAwarded != 25 || res.GoldAwarded != 15 {
		t.Fatalf("main reward=%d/%d, want 25/15", res.XPAwarded, res.GoldAwarded)
	}
	if !res.Item.Completed {
		t.Fatalf("item not marked completed")
	}

	res, err = svc.ToggleWeeklyItem(ctx, WeeklySide, side.ID)
	if err != nil {
		t.Fatalf("ToggleWeeklyItem side: %v", err)
	}
	if res.XPAwarded != 15 || res.GoldAwarded != 8 {
		t.Fatalf("side reward=%d/%d, want 15/8", res.XPAwarded, res.GoldAwarded)
	}

	// Un-complete pays nothing back.
	snapBefore, _ := svc.Snapshot(ctx)
	undo, err := svc.ToggleWeeklyItem(ctx, WeeklyMain, main.ID)
	if err != nil {
		t.Fatalf("ToggleWeeklyItem undo: %v", err)
	}
	if undo.Completed || undo.XPAwarded != 0 {
		t.Fatalf("undo=%+v", undo)
	}
	snapAfter, _ := svc.Snapshot(ctx)
	if snapAfter.Character.XP != snapBefore.Character.XP {
		t.Fatalf("undo changed xp: %d -> %d", snapBefore.Character.XP, snapAfter.Character.XP)
	}
}

func TestWeeklyRolloverArchivesOldPlan(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddWeeklyItem(ctx, WeeklyMain, "Finish the chapter")
	if err != nil {
		t.Fatalf("AddWeeklyItem: %v", err)
	}
	if _, err := svc.ToggleWeeklyItem(ctx, WeeklyMain, item.ID); err != nil {
		t.Fatalf("ToggleWeeklyItem: %v", err)
	}
	if err := svc.SaveWeeklyReview(ctx, "A slow but steady week."); err != nil {
		t.Fatalf("SaveWeeklyReview: %v", err)
	}

	// Jump to the next Monday.
	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	})

	plan, err := svc.WeeklyPlanNow(ctx)
	if err != nil {
		t.Fatalf("WeeklyPlanNow: %v", err)
	}
	if plan.WeekStart != "2026-08-17" {
		t.Fatalf("weekStart=%s, want 2026-08-17", plan.WeekStart)
	}
	if len(plan.Main) != 0 || len(plan.Side) != 0 || plan.Review != "" {
		t.Fatalf("plan not cleared on rollover: %+v", plan)
	}

	records, err := svc.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	var archived *Record
	for i := range records {
		if records[i].Type == "weekly" {
			archived = &records[i]
		}
	}
	if archived == nil {
		t.Fatalf("no weekly archive record written")
	}
	if archived.Date != "2026-08-10" {
		t.Fatalf("archived weekStart=%s, want 2026-08-10", archived.Date)
	}
	if len(archived.Main) != 1 || !archived.Main[0].Completed {
		t.Fatalf("archived main items=%+v", archived.Main)
	}
	if archived.Review != "A slow but steady week." {
		t.Fatalf("archived review=%q", archived.Review)
	}
}

func TestWeeklyEmptyPlanRollsWithoutArchive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.WeeklyPlanNow(ctx); err != nil {
		t.Fatalf("WeeklyPlanNow: %v", err)
	}

	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	})
	if _, err := svc.WeeklyPlanNow(ctx); err != nil {
		t.Fatalf("WeeklyPlanNow after rollover: %v", err)
	}

	records, err := svc.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	for _, r := range records {
		if r.Type == "weekly" {
			t.Fatalf("empty plan was archived: %+v", r)
		}
	}
}
