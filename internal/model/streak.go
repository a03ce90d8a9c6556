package model

import "time"

// Streak is the one mutable row the gamification engine owns, one per
// location. Created lazily on first read or completion.
type Streak struct {
	ID                    uint `gorm:"primaryKey"`
	LocationID            uint `gorm:"uniqueIndex"`
	CurrentStreak         int
	LongestStreak         int
	LastCompletionDate    string // YYYY-MM-DD, empty until first completion
	StreakFreezeAvailable int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
