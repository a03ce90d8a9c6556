package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"opsboard/internal/model"
)

// LocationRepository handles CRUD for franchise locations.
type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// GetOrCreate finds a location by store number, creating it on first sight.
func (r *LocationRepository) GetOrCreate(ctx context.Context, storeNumber, name string) (*model.Location, error) {
	var location model.Location
	db := r.db.WithContext(ctx)
	err := db.Where("store_number = ?", storeNumber).First(&location).Error
	switch {
	case err == nil:
		return &location, nil
	case err == gorm.ErrRecordNotFound:
		location = model.Location{StoreNumber: storeNumber, Name: name}
		if err := db.Create(&location).Error; err != nil {
			return nil, fmt.Errorf("create location: %w", err)
		}
		return &location, nil
	default:
		return nil, fmt.Errorf("find location: %w", err)
	}
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*model.Location, error) {
	var location model.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
