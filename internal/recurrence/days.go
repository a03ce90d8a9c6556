package recurrence

import (
	"encoding/json"
	"strings"
)

// The day list on a task is an opaque encoded string owned by the dashboard
// UI. It is decoded once per evaluation into a typed set; any malformed value
// decodes to the empty set ("no days configured"), never an error.

func decodeWeekdaySet(raw string) map[string]struct{} {
	var tokens []string
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[strings.ToLower(strings.TrimSpace(tok))] = struct{}{}
	}
	return set
}

func decodeMonthDaySet(raw string) map[int]struct{} {
	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil
	}
	set := make(map[int]struct{}, len(days))
	for _, d := range days {
		if d >= 1 && d <= 31 {
			set[d] = struct{}{}
		}
	}
	return set
}
