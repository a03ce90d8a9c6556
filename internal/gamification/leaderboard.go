package gamification

import (
	"math"
	"sort"
	"time"

	"opsboard/internal/model"
	"opsboard/internal/recurrence"
	"opsboard/internal/schedule"
)

// LeaderboardEntry is a location's weekly aggregate. Computed fresh per
// request, never persisted.
type LeaderboardEntry struct {
	LocationID     uint   `json:"location_id"`
	LocationName   string `json:"location_name"`
	StoreNumber    string `json:"store_number"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
	CompletionPct  int    `json:"completion_pct"`
	BasePoints     int    `json:"base_points"`
	BonusPoints    int    `json:"bonus_points"`
	TotalPoints    int    `json:"total_points"`
	Rank           int    `json:"rank"`
}

// Rank aggregates each location's week (Monday through Sunday of the week
// containing weekStart) and orders the result by completion percentage, then
// total points. Tied (pct, points) pairs share a rank number and the next
// distinct pair takes its 1-based position: 1,1,3 rather than 1,1,2.
func Rank(locations []model.Location, tasks []model.Task, completions []model.Completion, weekStart time.Time) []LeaderboardEntry {
	monday := recurrence.StartOfWeek(weekStart)

	done := make(map[completionKey]model.Completion, len(completions))
	for _, c := range completions {
		done[completionKey{c.TaskID, c.LocationID, c.CompletedDate}] = c
	}

	entries := make([]LeaderboardEntry, 0, len(locations))
	for _, loc := range locations {
		entry := LeaderboardEntry{
			LocationID:   loc.ID,
			LocationName: loc.Name,
			StoreNumber:  loc.StoreNumber,
		}
		locID := loc.ID
		for offset := 0; offset < 7; offset++ {
			day := monday.AddDate(0, 0, offset)
			dayKey := recurrence.DateStr(day)
			for _, task := range schedule.DueOn(tasks, &locID, day, schedule.Options{}) {
				entry.TotalTasks++
				if c, ok := done[completionKey{task.ID, loc.ID, dayKey}]; ok {
					entry.CompletedTasks++
					entry.BasePoints += c.PointsEarned
					entry.BonusPoints += c.BonusPoints
				}
			}
		}
		entry.TotalPoints = entry.BasePoints + entry.BonusPoints
		if entry.TotalTasks > 0 {
			entry.CompletionPct = int(math.Round(float64(entry.CompletedTasks) / float64(entry.TotalTasks) * 100))
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CompletionPct != entries[j].CompletionPct {
			return entries[i].CompletionPct > entries[j].CompletionPct
		}
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].LocationName < entries[j].LocationName
	})

	// Competition ranking: compare against the immediate predecessor.
	for i := range entries {
		if i > 0 && entries[i].CompletionPct == entries[i-1].CompletionPct &&
			entries[i].TotalPoints == entries[i-1].TotalPoints {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
	return entries
}

type completionKey struct {
	taskID     uint
	locationID uint
	date       string
}
