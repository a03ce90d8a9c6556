package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"opsboard/internal/model"
)

// StreakRepository owns the one mutable row per location the engine writes.
type StreakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

// GetOrCreate returns the location's streak row, creating a zeroed one on
// first access. A missing row is never an error.
func (r *StreakRepository) GetOrCreate(ctx context.Context, locationID uint) (*model.Streak, error) {
	var streak model.Streak
	db := r.db.WithContext(ctx)
	err := db.Where("location_id = ?", locationID).First(&streak).Error
	switch {
	case err == nil:
		return &streak, nil
	case err == gorm.ErrRecordNotFound:
		streak = model.Streak{LocationID: locationID}
		if err := db.Create(&streak).Error; err != nil {
			return nil, fmt.Errorf("create streak: %w", err)
		}
		return &streak, nil
	default:
		return nil, fmt.Errorf("find streak: %w", err)
	}
}

// Mutate runs fn against the location's streak row inside a transaction, so
// two near-simultaneous completion signals cannot both read the same state
// and double-increment. The row is created with zero defaults if absent.
func (r *StreakRepository) Mutate(ctx context.Context, locationID uint, fn func(*model.Streak) error) (*model.Streak, error) {
	var out model.Streak
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var streak model.Streak
		err := tx.Where("location_id = ?", locationID).First(&streak).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			streak = model.Streak{LocationID: locationID}
			if err := tx.Create(&streak).Error; err != nil {
				return fmt.Errorf("create streak: %w", err)
			}
		case err != nil:
			return fmt.Errorf("find streak: %w", err)
		}
		if err := fn(&streak); err != nil {
			return err
		}
		if err := tx.Save(&streak).Error; err != nil {
			return fmt.Errorf("save streak: %w", err)
		}
		out = streak
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
