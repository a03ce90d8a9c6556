package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsboard/internal/model"
)

// CompletionRepository is the ledger of finished tasks.
type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Create inserts a completion. A duplicate (task, location, date) row is left
// untouched and reported via the returned flag so completion signals stay
// idempotent per calendar day.
func (r *CompletionRepository) Create(ctx context.Context, completion *model.Completion) (created bool, err error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_id"}, {Name: "location_id"}, {Name: "completed_date"}},
			DoNothing: true,
		}).
		Create(completion)
	if res.Error != nil {
		return false, fmt.Errorf("create completion: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *CompletionRepository) FindByTaskAndDate(ctx context.Context, taskID, locationID uint, date string) (*model.Completion, error) {
	var completion model.Completion
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND location_id = ? AND completed_date = ?", taskID, locationID, date).
		First(&completion).Error
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

// ListByDateRange returns completions with completed_date in [from, to],
// optionally scoped to one location. Dates are YYYY-MM-DD keys, so string
// comparison orders them correctly.
func (r *CompletionRepository) ListByDateRange(ctx context.Context, locationID *uint, from, to string) ([]model.Completion, error) {
	q := r.db.WithContext(ctx).Where("completed_date >= ? AND completed_date <= ?", from, to)
	if locationID != nil {
		q = q.Where("location_id = ?", *locationID)
	}
	var completions []model.Completion
	if err := q.Order("completed_date ASC, completed_at ASC").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// TotalPoints sums a location's lifetime earned points (base plus bonus) for
// the level engine.
func (r *CompletionRepository) TotalPoints(ctx context.Context, locationID uint) (int, error) {
	var total *int
	err := r.db.WithContext(ctx).
		Model(&model.Completion{}).
		Select("SUM(points_earned + bonus_points)").
		Where("location_id = ?", locationID).
		Scan(&total).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("sum points: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
