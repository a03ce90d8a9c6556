package service

import (
	"context"
	"time"

	"opsboard/internal/gamification"
	"opsboard/internal/model"
	"opsboard/internal/recurrence"
)

type locationLister interface {
	ListAll(ctx context.Context) ([]model.Location, error)
}

type completionLedger interface {
	ListByDateRange(ctx context.Context, locationID *uint, from, to string) ([]model.Completion, error)
	TotalPoints(ctx context.Context, locationID uint) (int, error)
}

// LeaderboardService computes the weekly ranking and level snapshots.
type LeaderboardService struct {
	locations   locationLister
	tasks       taskStore
	completions completionLedger
}

func NewLeaderboardService(locations locationLister, tasks taskStore, completions completionLedger) *LeaderboardService {
	return &LeaderboardService{locations: locations, tasks: tasks, completions: completions}
}

// Week ranks every location over the Monday–Sunday week containing weekOf.
func (s *LeaderboardService) Week(ctx context.Context, weekOf time.Time) ([]gamification.LeaderboardEntry, error) {
	locations, err := s.locations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	monday := recurrence.StartOfWeek(weekOf)
	sunday := monday.AddDate(0, 0, 6)
	completions, err := s.completions.ListByDateRange(ctx, nil, recurrence.DateStr(monday), recurrence.DateStr(sunday))
	if err != nil {
		return nil, err
	}

	return gamification.Rank(locations, tasks, completions, monday), nil
}

// Level maps a location's lifetime points onto the level ladder.
func (s *LeaderboardService) Level(ctx context.Context, locationID uint) (gamification.LevelSnapshot, error) {
	total, err := s.completions.TotalPoints(ctx, locationID)
	if err != nil {
		return gamification.LevelSnapshot{}, err
	}
	return gamification.LevelFor(total), nil
}
