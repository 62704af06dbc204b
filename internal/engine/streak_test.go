package engine

import "testing"

func TestDayStreakFirstRun(t *testing.T) {
	d := &Dashboard{}
	changed := EvaluateDayStreak(d, "2026-08-10")
	if !changed || d.DayStreak != 1 {
		t.Fatalf("streak=%d changed=%v, want 1/true", d.DayStreak, changed)
	}
	if d.LastActiveDate != "2026-08-10" {
		t.Fatalf("lastActiveDate=%s", d.LastActiveDate)
	}
}

func TestDayStreakSameDayIdempotent(t *testing.T) {
	d := &Dashboard{DayStreak: 4, LastActiveDate: "2026-08-10"}
	for i := 0; i < 3; i++ {
		if changed := EvaluateDayStreak(d, "2026-08-10"); changed {
			t.Fatalf("pass %d mutated a same-day streak", i)
		}
	}
	if d.DayStreak != 4 {
		t.Fatalf("streak=%d, want 4", d.DayStreak)
	}
}

func TestDayStreakContinues(t *testing.T) {
	d := &Dashboard{DayStreak: 6, LastActiveDate: "2026-08-09"}
	EvaluateDayStreak(d, "2026-08-10")
	if d.DayStreak != 7 {
		t.Fatalf("streak=%d, want 7", d.DayStreak)
	}
}

func TestDayStreakGapResets(t *testing.T) {
	d := &Dashboard{DayStreak: 6, LastActiveDate: "2026-08-07"}
	EvaluateDayStreak(d, "2026-08-10")
	if d.DayStreak != 1 {
		t.Fatalf("streak=%d after gap, want 1", d.DayStreak)
	}
}

func TestDayStreakBadDateResets(t *testing.T) {
	for _, last := range []Day{"not-a-date", "2026-08-20"} { // unparseable, future
		d := &Dashboard{DayStreak: 6, LastActiveDate: last}
		EvaluateDayStreak(d, "2026-08-10")
		if d.DayStreak != 1 {
			t.Fatalf("lastActive=%s: streak=%d, want 1", last, d.DayStreak)
		}
		if d.LastActiveDate != "2026-08-10" {
			t.Fatalf("lastActive not advanced: %s", d.LastActiveDate)
		}
	}
}

func TestHabitStreakContinuesFromYesterday(t *testing.T) {
	h := &Habit{Streak: 2, PlayedDates: []Day{"2026-08-08", "2026-08-09"}, TotalPlays: 2}
	h.markPlayed("2026-08-10")
	if h.Streak != 3 {
		t.Fatalf("streak=%d, want 3", h.Streak)
	}
	if h.TotalPlays != 3 {
		t.Fatalf("totalPlays=%d, want 3", h.TotalPlays)
	}
}

func TestHabitStreakGapRestartsAtOne(t *testing.T) {
	h := &Habit{Streak: 5, PlayedDates: []Day{"2026-08-05"}, TotalPlays: 5}
	h.markPlayed("2026-08-10")
	if h.Streak != 1 {
		t.Fatalf("streak=%d after gap, want 1", h.Streak)
	}
}

func TestHabitUndoRemovesTodayOnly(t *testing.T) {
	h := &Habit{PlayedDates: []Day{"2026-08-09"}, TotalPlays: 1}
	h.markPlayed("2026-08-10")
	h.unmarkPlayed("2026-08-10")

	if h.PlayedOn("2026-08-10") {
		t.Fatalf("today still marked played after undo")
	}
	if !h.PlayedOn("2026-08-09") {
		t.Fatalf("undo touched a prior day")
	}
	if h.TotalPlays != 1 {
		t.Fatalf("totalPlays=%d, want 1", h.TotalPlays)
	}
}

func TestWeekStartOf(t *testing.T) {
	cases := map[string]Day{
		"2026-08-10": "2026-08-10", // Monday
		"2026-08-12": "2026-08-10", // Wednesday
		"2026-08-16": "2026-08-10", // Sunday
		"2026-08-17": "2026-08-17", // next Monday
	}
	for in, want := range cases {
		tm, err := Day(in).Time()
		if err != nil {
			t.Fatalf("parse %s: %v", in, err)
		}
		if got := WeekStartOf(tm); got != want {
			t.Fatalf("WeekStartOf(%s)=%s, want %s", in, got, want)
		}
	}
}
