package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/model"
	"opsboard/internal/recurrence"
	"opsboard/internal/schedule"
)

// Monday 2025-06-02.
var testWeek = day(2025, time.June, 2)

func globalDaily(id uint, points int) model.Task {
	return model.Task{
		ID:            id,
		Points:        points,
		IsRecurring:   true,
		RecurringType: model.RecurDaily,
		ShowInToday:   true,
		CreatedAt:     day(2025, time.January, 1),
	}
}

func completionsFor(taskID, locationID uint, days int, points, bonus int) []model.Completion {
	out := make([]model.Completion, 0, days)
	for offset := 0; offset < days; offset++ {
		d := testWeek.AddDate(0, 0, offset)
		out = append(out, model.Completion{
			TaskID:        taskID,
			LocationID:    locationID,
			CompletedDate: recurrence.DateStr(d),
			CompletedAt:   d.Add(10 * time.Hour),
			PointsEarned:  points,
			BonusPoints:   bonus,
		})
	}
	return out
}

func TestRank_CompetitionRanking(t *testing.T) {
	locations := []model.Location{
		{ID: 1, Name: "Downtown", StoreNumber: "001"},
		{ID: 2, Name: "Riverside", StoreNumber: "002"},
		{ID: 3, Name: "Uptown", StoreNumber: "003"},
	}
	tasks := []model.Task{globalDaily(1, 10)}

	var completions []model.Completion
	completions = append(completions, completionsFor(1, 1, 7, 10, 0)...) // 100%
	completions = append(completions, completionsFor(1, 2, 7, 10, 0)...) // 100%, same points
	completions = append(completions, completionsFor(1, 3, 3, 10, 0)...) // lower

	entries := Rank(locations, tasks, completions, testWeek)

	assert.Equal(t, []int{1, 1, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank},
		"ties share a rank, next entry takes its sorted position")
	assert.Equal(t, uint(3), entries[2].LocationID)
}

func TestRank_PointsBreakPercentageTies(t *testing.T) {
	locations := []model.Location{
		{ID: 1, Name: "Downtown"},
		{ID: 2, Name: "Riverside"},
	}
	tasks := []model.Task{globalDaily(1, 10)}

	var completions []model.Completion
	completions = append(completions, completionsFor(1, 1, 7, 10, 0)...)
	completions = append(completions, completionsFor(1, 2, 7, 10, 5)...) // same pct, more points via bonus

	entries := Rank(locations, tasks, completions, testWeek)

	assert.Equal(t, uint(2), entries[0].LocationID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 105, entries[0].TotalPoints)
	assert.Equal(t, 35, entries[0].BonusPoints)
}

func TestRank_AggregatesWeekTotals(t *testing.T) {
	locations := []model.Location{{ID: 1, Name: "Downtown"}}
	tasks := []model.Task{
		globalDaily(1, 10),
		{
			ID: 2, Points: 25, IsRecurring: true,
			RecurringType: model.RecurWeekly, RecurringDays: `["mon","thu"]`,
			ShowInToday: true, CreatedAt: day(2025, time.January, 1),
		},
	}
	completions := completionsFor(1, 1, 4, 10, 2)

	entries := Rank(locations, tasks, completions, testWeek)
	entry := entries[0]

	assert.Equal(t, 9, entry.TotalTasks, "7 daily + 2 weekly")
	assert.Equal(t, 4, entry.CompletedTasks)
	assert.Equal(t, 44, entry.CompletionPct, "round(4/9*100)")
	assert.Equal(t, 40, entry.BasePoints)
	assert.Equal(t, 8, entry.BonusPoints)
}

func TestRank_ZeroScheduledTasks(t *testing.T) {
	locations := []model.Location{{ID: 1, Name: "Downtown"}}

	entries := Rank(locations, nil, nil, testWeek)

	assert.Equal(t, 0, entries[0].TotalTasks)
	assert.Equal(t, 0, entries[0].CompletionPct)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestRank_HiddenTasksCountInDenominator(t *testing.T) {
	hidden := globalDaily(1, 10)
	hidden.IsHidden = true
	locations := []model.Location{{ID: 1, Name: "Downtown"}}

	entries := Rank(locations, []model.Task{hidden}, nil, testWeek)
	assert.Equal(t, 7, entries[0].TotalTasks, "today-view filter must not apply here")
}

// The denominator the ranker reports must equal what day-by-day applicability
// queries produce, so the calendar and the leaderboard can never disagree.
func TestRank_DenominatorMatchesDayByDayApplicability(t *testing.T) {
	locations := []model.Location{{ID: 4, Name: "Downtown"}}
	tasks := []model.Task{
		globalDaily(1, 10),
		{
			ID: 2, Points: 25, IsRecurring: true,
			RecurringType: model.RecurBiweekly, RecurringDays: `["wed"]`,
			BiweeklyStart: model.BiweeklyThis, ShowInToday: true,
			CreatedAt: day(2025, time.May, 20),
		},
		{
			ID: 3, Points: 30, IsRecurring: true,
			RecurringType: model.RecurMonthly, RecurringDays: `[4]`,
			ShowInToday: true, CreatedAt: day(2025, time.January, 1),
		},
	}

	wantTotal := 0
	locID := uint(4)
	for offset := 0; offset < 7; offset++ {
		wantTotal += len(schedule.DueOn(tasks, &locID, testWeek.AddDate(0, 0, offset), schedule.Options{}))
	}

	entries := Rank(locations, tasks, nil, testWeek)
	assert.Equal(t, wantTotal, entries[0].TotalTasks)
}
