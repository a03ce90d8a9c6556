package gamification

import (
	"time"

	"opsboard/internal/model"
	"opsboard/internal/recurrence"
)

// Streak day counts that trigger a celebration in the dashboard.
var streakMilestones = map[int]bool{7: true, 14: true, 30: true, 60: true, 100: true, 365: true}

// Every 30th consecutive day banks one freeze token.
const freezeAwardInterval = 30

// CompletionResult reports what a completion did to a location's streak.
type CompletionResult struct {
	CurrentStreak int
	LongestStreak int
	// Milestone is the streak day landed on exactly (7, 14, 30, ...), 0 if none.
	Milestone     int
	FreezeAwarded bool
	Counted       bool
}

// Normalize applies the read-side streak rule: a last completion older than
// yesterday breaks the streak unless a freeze token is available, in which
// case one token is consumed and the streak is preserved. Consuming a token
// advances LastCompletionDate to yesterday, which makes repeated reads on the
// same day no-ops instead of draining the bank.
//
// The returned flag is true when the record changed and should be persisted.
func Normalize(rec model.Streak, today time.Time) (model.Streak, bool) {
	if rec.CurrentStreak <= 0 || rec.LastCompletionDate == "" {
		return rec, false
	}

	yesterday := recurrence.DateStr(today.AddDate(0, 0, -1))
	if rec.LastCompletionDate >= yesterday {
		return rec, false
	}
	// A malformed stored date compares lower than any real day key and is
	// treated as "no completion", breaking the streak below.
	if _, ok := recurrence.ParseDate(rec.LastCompletionDate); !ok {
		rec.CurrentStreak = 0
		rec.LastCompletionDate = ""
		return rec, true
	}

	if rec.StreakFreezeAvailable > 0 {
		rec.StreakFreezeAvailable--
		rec.LastCompletionDate = yesterday
		return rec, true
	}

	rec.CurrentStreak = 0
	return rec, true
}

// RecordCompletion applies the write-side streak rule for a completion on the
// given day. It is idempotent per location per calendar day: a duplicate
// same-day signal returns the record unchanged with Counted false. Freeze
// tokens are never consumed here; only Normalize absorbs missed days.
func RecordCompletion(rec model.Streak, today time.Time) (model.Streak, CompletionResult) {
	day := recurrence.DateStr(today)
	yesterday := recurrence.DateStr(today.AddDate(0, 0, -1))

	if rec.LastCompletionDate == day {
		return rec, CompletionResult{
			CurrentStreak: rec.CurrentStreak,
			LongestStreak: rec.LongestStreak,
		}
	}

	if rec.LastCompletionDate == yesterday && rec.CurrentStreak > 0 {
		rec.CurrentStreak++
	} else {
		rec.CurrentStreak = 1
	}
	rec.LastCompletionDate = day
	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}

	res := CompletionResult{
		CurrentStreak: rec.CurrentStreak,
		LongestStreak: rec.LongestStreak,
		Counted:       true,
	}
	if rec.CurrentStreak%freezeAwardInterval == 0 {
		rec.StreakFreezeAvailable++
		res.FreezeAwarded = true
	}
	if streakMilestones[rec.CurrentStreak] {
		res.Milestone = rec.CurrentStreak
	}
	return rec, res
}
