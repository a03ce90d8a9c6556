package service

import (
	"context"
	"time"

	"opsboard/internal/gamification"
	"opsboard/internal/model"
)

// streakStore is the single-row read-modify-write contract the engine needs.
// *repository.StreakRepository satisfies it; the transaction inside Mutate is
// what keeps concurrent completion signals from double-incrementing.
type streakStore interface {
	Mutate(ctx context.Context, locationID uint, fn func(*model.Streak) error) (*model.Streak, error)
}

// StreakService applies the streak rules against the store.
type StreakService struct {
	streaks streakStore
}

func NewStreakService(streaks streakStore) *StreakService {
	return &StreakService{streaks: streaks}
}

// Get returns the location's streak after read-side normalization: a missed
// day either consumes a freeze token or breaks the streak. Normalization is
// idempotent per day, so dashboards can poll freely.
func (s *StreakService) Get(ctx context.Context, locationID uint, today time.Time) (*model.Streak, error) {
	return s.streaks.Mutate(ctx, locationID, func(rec *model.Streak) error {
		normalized, _ := gamification.Normalize(*rec, today)
		*rec = normalized
		return nil
	})
}

// OnCompletion runs the write-side streak increment for a completion on the
// given day. Duplicate same-day signals leave the row unchanged.
func (s *StreakService) OnCompletion(ctx context.Context, locationID uint, today time.Time) (gamification.CompletionResult, error) {
	var result gamification.CompletionResult
	_, err := s.streaks.Mutate(ctx, locationID, func(rec *model.Streak) error {
		updated, res := gamification.RecordCompletion(*rec, today)
		*rec = updated
		result = res
		return nil
	})
	if err != nil {
		return gamification.CompletionResult{}, err
	}
	return result, nil
}
