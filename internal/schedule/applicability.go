package schedule

import (
	"sort"
	"time"

	"opsboard/internal/model"
	"opsboard/internal/recurrence"
)

// Options controls which view of the schedule a caller gets.
type Options struct {
	// TodayView excludes hidden tasks and tasks opted out of the today list.
	// Leaderboard and streak callers leave it false so denominators count
	// every scheduled task.
	TodayView bool
}

// DueOn returns the tasks due on the given day for a location, ordered by due
// time ascending (tasks without a due time sort last). A nil locationID means
// "all locations"; tasks with a nil LocationID apply to every location.
func DueOn(tasks []model.Task, locationID *uint, on time.Time, opts Options) []model.Task {
	var due []model.Task
	for _, task := range tasks {
		if task.LocationID != nil && locationID != nil && *task.LocationID != *locationID {
			continue
		}
		if opts.TodayView && (task.IsHidden || !task.ShowInToday) {
			continue
		}
		if recurrence.Matches(task, on) {
			due = append(due, task)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].DueTime, due[j].DueTime
		switch {
		case a == b:
			return false
		case a == "":
			return false
		case b == "":
			return true
		default:
			return a < b
		}
	})
	return due
}
