package gamification

import "math"

// LevelTier is one row of the fixed level ladder.
type LevelTier struct {
	Level      int
	Title      string
	XPRequired int
}

// The ladder is fixed at ten tiers with strictly ascending thresholds.
var levelTiers = []LevelTier{
	{1, "Trainee Crew", 0},
	{2, "Opening Shift", 100},
	{3, "Closing Shift", 300},
	{4, "Shift Lead", 600},
	{5, "Floor Captain", 1000},
	{6, "Store Ace", 1500},
	{7, "Regional Contender", 2500},
	{8, "Franchise Star", 4000},
	{9, "Operations Legend", 6000},
	{10, "Hall of Fame", 10000},
}

// LevelSnapshot describes where a point total sits on the ladder.
type LevelSnapshot struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	XPRequired  int    `json:"xp_required"`
	XPToNext    int    `json:"xp_to_next"`
	ProgressPct int    `json:"progress_pct"`
}

// LevelFor maps a cumulative point total to its tier. Negative totals clamp
// to the first tier; at the top tier progress is pinned to 100.
func LevelFor(totalXP int) LevelSnapshot {
	if totalXP < 0 {
		totalXP = 0
	}

	idx := 0
	for i, tier := range levelTiers {
		if totalXP >= tier.XPRequired {
			idx = i
		}
	}
	current := levelTiers[idx]

	snap := LevelSnapshot{
		Level:      current.Level,
		Title:      current.Title,
		XPRequired: current.XPRequired,
	}
	if idx == len(levelTiers)-1 {
		snap.ProgressPct = 100
		return snap
	}

	next := levelTiers[idx+1]
	snap.XPToNext = next.XPRequired - totalXP
	span := next.XPRequired - current.XPRequired
	if span <= 0 {
		// A non-ascending table should be impossible; avoid dividing by zero
		// if one ships anyway.
		snap.ProgressPct = 100
		return snap
	}
	snap.ProgressPct = int(math.Round(float64(totalXP-current.XPRequired) / float64(span) * 100))
	return snap
}

// LevelTable exposes the ladder for the dashboard's level screen.
func LevelTable() []LevelTier {
	out := make([]LevelTier, len(levelTiers))
	copy(out, levelTiers)
	return out
}
