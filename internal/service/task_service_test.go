package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"opsboard/internal/model"
)

type mockTaskStore struct {
	tasks   map[uint]model.Task
	listErr error
}

func newMockTaskStore(tasks ...model.Task) *mockTaskStore {
	m := &mockTaskStore{tasks: make(map[uint]model.Task)}
	for _, task := range tasks {
		m.tasks[task.ID] = task
	}
	return m
}

func (m *mockTaskStore) Create(ctx context.Context, task *model.Task) error {
	if task.ID == 0 {
		task.ID = uint(len(m.tasks) + 1)
	}
	m.tasks[task.ID] = *task
	return nil
}

func (m *mockTaskStore) ListAll(ctx context.Context) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]model.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		out = append(out, task)
	}
	return out, nil
}

func (m *mockTaskStore) FindByID(ctx context.Context, taskID uint) (*model.Task, error) {
	task, ok := m.tasks[taskID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &task, nil
}

type mockCompletionWriter struct {
	seen map[string]bool
	last *model.Completion
}

func newMockCompletionWriter() *mockCompletionWriter {
	return &mockCompletionWriter{seen: make(map[string]bool)}
}

func (m *mockCompletionWriter) Create(ctx context.Context, completion *model.Completion) (bool, error) {
	key := fmt.Sprintf("%d/%d/%s", completion.TaskID, completion.LocationID, completion.CompletedDate)
	if m.seen[key] {
		return false, nil
	}
	m.seen[key] = true
	m.last = completion
	return true, nil
}

type mockStreakStore struct {
	records map[uint]model.Streak
}

func newMockStreakStore() *mockStreakStore {
	return &mockStreakStore{records: make(map[uint]model.Streak)}
}

func (m *mockStreakStore) Mutate(ctx context.Context, locationID uint, fn func(*model.Streak) error) (*model.Streak, error) {
	rec := m.records[locationID]
	rec.LocationID = locationID
	if err := fn(&rec); err != nil {
		return nil, err
	}
	m.records[locationID] = rec
	return &rec, nil
}

func newTestTaskService(tasks ...model.Task) (*TaskService, *mockCompletionWriter, *mockStreakStore) {
	store := newMockTaskStore(tasks...)
	completions := newMockCompletionWriter()
	streaks := newMockStreakStore()
	svc := NewTaskService(store, completions, NewStreakService(streaks))
	return svc, completions, streaks
}

func dailyTask(id uint, points int) model.Task {
	return model.Task{
		ID:            id,
		Points:        points,
		IsRecurring:   true,
		RecurringType: model.RecurDaily,
		ShowInToday:   true,
		CreatedAt:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestComplete_AwardsPointsBonusAndStreak(t *testing.T) {
	svc, completions, streaks := newTestTaskService(dailyTask(1, 10))
	// 08:15 local lands the early-bird bonus.
	completedAt := time.Date(2025, time.June, 14, 8, 15, 0, 0, time.UTC)

	res, err := svc.Complete(context.Background(), 7, 1, completedAt)

	assert.NoError(t, err)
	assert.False(t, res.AlreadyDone)
	assert.Equal(t, 10, res.Completion.PointsEarned)
	assert.Equal(t, 5, res.Completion.BonusPoints)
	assert.Equal(t, "2025-06-14", res.Completion.CompletedDate)
	assert.Equal(t, 1, res.Streak.CurrentStreak)
	assert.True(t, res.Streak.Counted)
	assert.Equal(t, "2025-06-14", streaks.records[7].LastCompletionDate)
	assert.NotNil(t, completions.last)
}

func TestComplete_DuplicateSameDayDoesNotTouchStreak(t *testing.T) {
	svc, _, streaks := newTestTaskService(dailyTask(1, 10))
	completedAt := time.Date(2025, time.June, 14, 14, 0, 0, 0, time.UTC)

	first, err := svc.Complete(context.Background(), 7, 1, completedAt)
	assert.NoError(t, err)
	assert.False(t, first.AlreadyDone)

	second, err := svc.Complete(context.Background(), 7, 1, completedAt.Add(time.Hour))
	assert.NoError(t, err)
	assert.True(t, second.AlreadyDone)
	assert.Equal(t, 1, streaks.records[7].CurrentStreak, "streak incremented once")
}

func TestComplete_AfternoonHasNoBonus(t *testing.T) {
	svc, _, _ := newTestTaskService(dailyTask(1, 10))

	res, err := svc.Complete(context.Background(), 7, 1, time.Date(2025, time.June, 14, 15, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Completion.BonusPoints)
}

func TestComplete_RejectsTaskNotDueToday(t *testing.T) {
	weekly := model.Task{
		ID: 1, Points: 10, IsRecurring: true,
		RecurringType: model.RecurWeekly, RecurringDays: `["mon"]`,
		ShowInToday: true, CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	svc, _, _ := newTestTaskService(weekly)

	// 2025-06-14 is a Saturday.
	_, err := svc.Complete(context.Background(), 7, 1, time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestComplete_RejectsWrongLocation(t *testing.T) {
	scoped := dailyTask(1, 10)
	owner := uint(3)
	scoped.LocationID = &owner
	svc, _, _ := newTestTaskService(scoped)

	_, err := svc.Complete(context.Background(), 7, 1, time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestDueToday_AppliesTodayFilter(t *testing.T) {
	visible := dailyTask(1, 10)
	hidden := dailyTask(2, 10)
	hidden.IsHidden = true
	svc, _, _ := newTestTaskService(visible, hidden)

	due, err := svc.DueToday(context.Background(), nil, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Len(t, due, 1)
	assert.Equal(t, uint(1), due[0].ID)
}

func TestWeekPreview_SevenDaysMondayFirst(t *testing.T) {
	svc, _, _ := newTestTaskService(dailyTask(1, 10))

	preview, err := svc.WeekPreview(context.Background(), nil, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Len(t, preview, 7)
	assert.Equal(t, "2025-06-02", preview[0].Date)
	assert.Equal(t, "2025-06-08", preview[6].Date)
	for _, dayPreview := range preview {
		assert.Len(t, dayPreview.Tasks, 1)
	}
}

func TestCreateTask_RequiresTitle(t *testing.T) {
	svc, _, _ := newTestTaskService()
	_, err := svc.CreateTask(context.Background(), TaskInput{})
	assert.Error(t, err)
}

func TestCreateTask_DefaultsBiweeklyAnchor(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.CreateTask(context.Background(), TaskInput{
		Title:         "Freezer log",
		IsRecurring:   true,
		RecurringType: model.RecurBiweekly,
		RecurringDays: `["wed"]`,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.BiweeklyThis, task.BiweeklyStart)
	assert.True(t, task.ShowInToday)
	assert.Equal(t, 10, task.Points, "default points")
}
