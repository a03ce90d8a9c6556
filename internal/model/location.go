package model

import "time"

// Location is a franchise store that owns tasks, completions and a streak.
type Location struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"index"`
	StoreNumber    string `gorm:"uniqueIndex"`
	TelegramChatID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
