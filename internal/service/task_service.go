package service

import (
	"context"
	"fmt"
	"time"

	"opsboard/internal/gamification"
	"opsboard/internal/model"
	"opsboard/internal/recurrence"
	"opsboard/internal/schedule"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	LocationID    *uint
	Title         string
	Description   string
	Points        int
	IsRecurring   bool
	RecurringType string
	RecurringDays string
	BiweeklyStart string
	DueDate       *time.Time
	DueTime       string
}

type taskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListAll(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, taskID uint) (*model.Task, error)
}

type completionWriter interface {
	Create(ctx context.Context, completion *model.Completion) (bool, error)
}

// CompleteResult is what a kiosk gets back after checking off a task.
type CompleteResult struct {
	Completion model.Completion
	Streak     gamification.CompletionResult
	// AlreadyDone is true when the task was completed earlier the same day;
	// the stored completion is returned unchanged.
	AlreadyDone bool
}

// DayPreview is one day of the dashboard's week calendar.
type DayPreview struct {
	Date  string
	Tasks []model.Task
}

// TaskService wraps task-related business logic.
type TaskService struct {
	tasks       taskStore
	completions completionWriter
	streaks     *StreakService
}

func NewTaskService(tasks taskStore, completions completionWriter, streaks *StreakService) *TaskService {
	return &TaskService{tasks: tasks, completions: completions, streaks: streaks}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	task := model.Task{
		LocationID:  input.LocationID,
		Title:       input.Title,
		Description: input.Description,
		Points:      input.Points,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		ShowInToday: true,
	}
	if task.Points <= 0 {
		task.Points = 10
	}

	if input.IsRecurring {
		task.IsRecurring = true
		task.RecurringType = input.RecurringType
		task.RecurringDays = input.RecurringDays
		if task.RecurringType == model.RecurBiweekly {
			task.BiweeklyStart = input.BiweeklyStart
			if task.BiweeklyStart == "" {
				task.BiweeklyStart = model.BiweeklyThis
			}
		}
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DueToday returns the location's visible checklist for the caller-local day.
func (s *TaskService) DueToday(ctx context.Context, locationID *uint, today time.Time) ([]model.Task, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.DueOn(tasks, locationID, today, schedule.Options{TodayView: true}), nil
}

// WeekPreview fans the applicability engine across the 7 days of the week
// containing the given day, Monday first. The calendar view keeps hidden
// tasks visible, so the today filter stays off.
func (s *TaskService) WeekPreview(ctx context.Context, locationID *uint, weekOf time.Time) ([]DayPreview, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	monday := recurrence.StartOfWeek(weekOf)
	preview := make([]DayPreview, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		preview = append(preview, DayPreview{
			Date:  recurrence.DateStr(day),
			Tasks: schedule.DueOn(tasks, locationID, day, schedule.Options{}),
		})
	}
	return preview, nil
}

// Complete checks a task off for a location. The completion earns the task's
// base points plus an early-bird bonus, and feeds the streak. Completing the
// same task twice on one day is a no-op reported via AlreadyDone.
func (s *TaskService) Complete(ctx context.Context, locationID, taskID uint, completedAt time.Time) (*CompleteResult, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task.LocationID != nil && *task.LocationID != locationID {
		return nil, fmt.Errorf("task %d does not apply to location %d", taskID, locationID)
	}
	if !recurrence.Matches(*task, completedAt) {
		return nil, fmt.Errorf("task %d is not due on %s", taskID, recurrence.DateStr(completedAt))
	}

	completion := model.Completion{
		TaskID:        task.ID,
		LocationID:    locationID,
		CompletedDate: recurrence.DateStr(completedAt),
		CompletedAt:   completedAt,
		PointsEarned:  task.Points,
		BonusPoints:   gamification.TimeOfDayBonus(completedAt),
	}

	created, err := s.completions.Create(ctx, &completion)
	if err != nil {
		return nil, err
	}

	result := CompleteResult{Completion: completion, AlreadyDone: !created}
	if created {
		streakRes, err := s.streaks.OnCompletion(ctx, locationID, completedAt)
		if err != nil {
			return nil, err
		}
		result.Streak = streakRes
	}
	return &result, nil
}
