package model

import "time"

// Recurrence types a task may carry. An empty RecurringType on a recurring
// task is treated as weekly.
const (
	RecurDaily    = "daily"
	RecurWeekly   = "weekly"
	RecurBiweekly = "biweekly"
	RecurMonthly  = "monthly"
)

// BiweeklyStart values anchor which of the two alternating weeks a biweekly
// task fires on, relative to its creation week.
const (
	BiweeklyThis = "this"
	BiweeklyNext = "next"
)

// Task is a single checklist item. A nil LocationID means the task applies to
// every location.
type Task struct {
	ID            uint  `gorm:"primaryKey"`
	LocationID    *uint `gorm:"index"`
	Title         string
	Description   string
	Points        int    `gorm:"default:10"`
	IsRecurring   bool   `gorm:"default:false"`
	RecurringType string // daily, weekly, biweekly, monthly
	// RecurringDays is an opaque encoded list: weekday tokens ("sun".."sat")
	// for weekly/biweekly, day-of-month integers for monthly. Stored as a
	// JSON array; a malformed value means "no days configured".
	RecurringDays string
	BiweeklyStart string     // this | next
	DueDate       *time.Time // one-shot tasks only
	DueTime       string     // HH:MM, display and sort key
	IsHidden      bool       `gorm:"default:false"`
	ShowInToday   bool       `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
