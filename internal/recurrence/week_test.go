package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek_AlwaysMonday(t *testing.T) {
	// Week of Monday 2025-06-02.
	monday := day(2025, time.June, 2)
	for offset := 0; offset < 7; offset++ {
		got := StartOfWeek(monday.AddDate(0, 0, offset))
		assert.Equal(t, monday, got, "offset %d", offset)
	}

	// Sunday belongs to the week that started six days earlier.
	assert.Equal(t, monday, StartOfWeek(day(2025, time.June, 8)))
	assert.Equal(t, day(2025, time.June, 9), StartOfWeek(day(2025, time.June, 9)))
}

func TestWeeksBetween(t *testing.T) {
	a := day(2025, time.June, 3) // Tuesday, week of Jun 2

	assert.Equal(t, 0, WeeksBetween(a, day(2025, time.June, 6)))
	assert.Equal(t, 1, WeeksBetween(a, day(2025, time.June, 9)))
	assert.Equal(t, 2, WeeksBetween(a, day(2025, time.June, 16)))
	assert.Equal(t, -1, WeeksBetween(a, day(2025, time.May, 30)))
}

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2025-06-02")
	assert.True(t, ok)
	assert.Equal(t, day(2025, time.June, 2), parsed)

	for _, raw := range []string{"", "yesterday", "2025-6-2", "2025-13-40"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestWeekdayToken(t *testing.T) {
	tokens := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	monday := day(2025, time.June, 2)
	for i, want := range tokens {
		assert.Equal(t, want, WeekdayToken(monday.AddDate(0, 0, i)))
	}
}
