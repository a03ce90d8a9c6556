package model

import "time"

// Completion records that a location finished a task on a calendar day.
// The unique index makes a second completion of the same task on the same
// day a no-op at the store level.
type Completion struct {
	ID            uint   `gorm:"primaryKey"`
	TaskID        uint   `gorm:"index;uniqueIndex:idx_task_location_date"`
	LocationID    uint   `gorm:"index;uniqueIndex:idx_task_location_date"`
	CompletedDate string `gorm:"uniqueIndex:idx_task_location_date"` // YYYY-MM-DD
	CompletedAt   time.Time
	PointsEarned  int
	BonusPoints   int
	CreatedAt     time.Time
}
