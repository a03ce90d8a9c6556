package recurrence

import (
	"time"

	"opsboard/internal/model"
)

// Matches reports whether a task is due on the given calendar day. The day is
// caller-supplied (kiosk-local); nothing here reads the system clock, so the
// same resolver backs today views, week previews, streak walks and
// leaderboard denominators without drift.
//
// A recurring task never matches a day before its creation date. A recurring
// task with an empty RecurringType is treated as weekly. Malformed day lists
// match nothing.
func Matches(task model.Task, on time.Time) bool {
	day := DateStr(on)

	if !task.IsRecurring {
		return task.DueDate != nil && DateStr(*task.DueDate) == day
	}

	if !task.CreatedAt.IsZero() && day < DateStr(task.CreatedAt) {
		return false
	}

	recurType := task.RecurringType
	if recurType == "" {
		recurType = model.RecurWeekly
	}

	switch recurType {
	case model.RecurDaily:
		return true
	case model.RecurWeekly:
		_, ok := decodeWeekdaySet(task.RecurringDays)[WeekdayToken(on)]
		return ok
	case model.RecurBiweekly:
		if _, ok := decodeWeekdaySet(task.RecurringDays)[WeekdayToken(on)]; !ok {
			return false
		}
		return biweeklyParityFires(task, on)
	case model.RecurMonthly:
		_, ok := decodeMonthDaySet(task.RecurringDays)[on.Day()]
		return ok
	default:
		// Unknown type from the store: not due, not a fault.
		return false
	}
}

// biweeklyParityFires checks the alternating-week rule. The anchor is the
// Monday of the task's creation week; rows without a creation timestamp fall
// back to the epoch week, which can flip parity for legacy data (kept to match
// the stored history, see DESIGN.md).
func biweeklyParityFires(task model.Task, on time.Time) bool {
	anchor := task.CreatedAt
	if anchor.IsZero() {
		anchor = time.Unix(0, 0).UTC()
	}
	evenWeek := WeeksBetween(anchor, on)%2 == 0
	if task.BiweeklyStart == model.BiweeklyNext {
		return !evenWeek
	}
	return evenWeek
}
