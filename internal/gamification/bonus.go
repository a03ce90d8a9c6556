package gamification

import "time"

// TimeOfDayBonus rewards early completions: before 09:00 local +5 points,
// before 12:00 +2, otherwise nothing. Uses the completion timestamp's own
// location, which the kiosk supplies.
func TimeOfDayBonus(completedAt time.Time) int {
	switch {
	case completedAt.Hour() < 9:
		return 5
	case completedAt.Hour() < 12:
		return 2
	default:
		return 0
	}
}
