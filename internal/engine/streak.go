package engine

// EvaluateDayStreak advances the day-level engagement streak. It runs once
// per session and is idempotent within a calendar day: lastActiveDate is
// the guard, so the streak is never bumped twice for the same date.
//
//   - no lastActiveDate yet: streak = 1
//   - lastActiveDate == today: no-op
//   - lastActiveDate == yesterday: streak + 1
//   - anything else (2+ day gap, future or unparseable date): reset to 1
//
// Returns true when the streak value changed.
func EvaluateDayStreak(d *Dashboard, today Day) bool {
	if d.LastActiveDate == today {
		return false
	}

	before := d.DayStreak
	switch {
	case d.LastActiveDate.IsZero():
		d.DayStreak = 1
	default:
		diff, err := DaysBetween(d.LastActiveDate, today)
		if err != nil || diff != 1 {
			d.DayStreak = 1
		} else {
			d.DayStreak++
		}
	}
	d.LastActiveDate = today
	return d.DayStreak != before
}

// markPlayed records today's play and updates the habit streak: continuous
// if yesterday was played, otherwise back to 1. A gap never counts.
func (h *Habit) markPlayed(today Day) {
	h.PlayedDates = append(h.PlayedDates, today)
	h.TotalPlays++
	if h.PlayedOn(today.AddDays(-1)) {
		h.Streak++
	} else {
		h.Streak = 1
	}
}

// unmarkPlayed undoes today's play. It only removes today from the played
// set and decrements totalPlays; it does not try to repair a streak that a
// previous day already broke.
func (h *Habit) unmarkPlayed(today Day) {
	kept := h.PlayedDates[:0]
	for _, d := range h.PlayedDates {
		if d != today {
			kept = append(kept, d)
		}
	}
	h.PlayedDates = kept
	if h.TotalPlays > 0 {
		h.TotalPlays--
	}
	if h.Streak > 0 {
		h.Streak--
	}
}
