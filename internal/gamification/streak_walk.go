package gamification

import (
	"time"

	"opsboard/internal/model"
	"opsboard/internal/recurrence"
	"opsboard/internal/schedule"
)

// Walk depth cap; a streak older than this is treated as its cap.
const maxWalkDays = 730

// StreakFromHistory derives a location's streak straight from the ledger,
// walking backward day-by-day from yesterday. A day with due tasks and at
// least one completion extends the streak; a day with due tasks and none ends
// it; a day with nothing scheduled is skipped without breaking. Today counts
// when already completed.
//
// This is the audit path: the stored streak row is authoritative (it carries
// freeze consumption, which the ledger cannot reconstruct), but a freshly
// rebuilt history must never exceed it by more than the frozen days.
func StreakFromHistory(tasks []model.Task, completions []model.Completion, locationID uint, today time.Time) int {
	completedDays := make(map[string]bool, len(completions))
	for _, c := range completions {
		if c.LocationID == locationID {
			completedDays[c.CompletedDate] = true
		}
	}

	streak := 0
	if completedDays[recurrence.DateStr(today)] {
		streak++
	}

	locID := locationID
	for offset := 1; offset <= maxWalkDays; offset++ {
		day := today.AddDate(0, 0, -offset)
		due := schedule.DueOn(tasks, &locID, day, schedule.Options{})
		if len(due) == 0 {
			continue
		}
		if !completedDays[recurrence.DateStr(day)] {
			break
		}
		streak++
	}
	return streak
}
