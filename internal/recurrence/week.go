package recurrence

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// DateStr formats a time as the calendar-day key used throughout the engine.
func DateStr(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD day key. The boolean is false for anything
// malformed; callers treat that as "no such day" rather than an error.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartOfWeek returns Monday 00:00 of the week containing t, in t's location.
// Week start is always Monday, independent of locale.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// time.Weekday has Sunday == 0; shift so Monday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeeksBetween counts whole weeks from the Monday of a's week to the Monday
// of b's week. Rounding absorbs DST-shifted week lengths.
func WeeksBetween(a, b time.Time) int {
	diff := StartOfWeek(b).Sub(StartOfWeek(a))
	return int(math.Round(diff.Hours() / (24 * 7)))
}

// WeekdayToken maps a weekday to the stored token form ("sun".."sat").
func WeekdayToken(t time.Time) string {
	return weekdayTokens[t.Weekday()]
}

var weekdayTokens = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}
