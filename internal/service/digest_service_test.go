package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/model"
)

func TestDailyDigest_RendersChecklistStreakAndStanding(t *testing.T) {
	task := dailyTask(1, 10)
	task.Title = "Open safe & count drawer"
	task.DueTime = "08:30"
	tasks := newMockTaskStore(task)

	streaks := newMockStreakStore()
	streaks.records[1] = model.Streak{
		LocationID: 1, CurrentStreak: 12, LongestStreak: 20,
		LastCompletionDate: "2025-06-13", StreakFreezeAvailable: 1,
	}
	streakSvc := NewStreakService(streaks)

	ledger := &mockLedger{totals: map[uint]int{1: 650}}
	locations := &mockLocationLister{locations: []model.Location{{ID: 1, Name: "Downtown"}}}
	leaderboardSvc := NewLeaderboardService(locations, tasks, ledger)
	taskSvc := NewTaskService(tasks, newMockCompletionWriter(), streakSvc)

	svc := NewDigestService(taskSvc, streakSvc, leaderboardSvc)
	digest, err := svc.DailyDigest(context.Background(), 1, "Downtown", time.Date(2025, time.June, 14, 7, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Contains(t, digest, "Downtown")
	assert.Contains(t, digest, "08:30 · Open safe &amp; count drawer (10 pts)")
	assert.Contains(t, digest, "Streak: <b>12 days</b>")
	assert.Contains(t, digest, "❄️ 1 freeze")
	assert.Contains(t, digest, "Level 4 — Shift Lead")
	assert.Contains(t, digest, "#1 of 1")
}

func TestDailyDigest_EmptyChecklist(t *testing.T) {
	tasks := newMockTaskStore()
	streakSvc := NewStreakService(newMockStreakStore())
	leaderboardSvc := NewLeaderboardService(&mockLocationLister{}, tasks, &mockLedger{})
	taskSvc := NewTaskService(tasks, newMockCompletionWriter(), streakSvc)

	svc := NewDigestService(taskSvc, streakSvc, leaderboardSvc)
	digest, err := svc.DailyDigest(context.Background(), 1, "Downtown", time.Date(2025, time.June, 14, 7, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Contains(t, digest, "nothing scheduled")
}
