package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"
)

// DigestService builds the per-location daily summary pushed to each store's
// Telegram channel.
type DigestService struct {
	taskSvc        *TaskService
	streakSvc      *StreakService
	leaderboardSvc *LeaderboardService
}

func NewDigestService(taskSvc *TaskService, streakSvc *StreakService, leaderboardSvc *LeaderboardService) *DigestService {
	return &DigestService{taskSvc: taskSvc, streakSvc: streakSvc, leaderboardSvc: leaderboardSvc}
}

// DailyDigest renders the HTML digest for one location on the given
// caller-local day: today's checklist, streak state and weekly standing.
func (s *DigestService) DailyDigest(ctx context.Context, locationID uint, locationName string, now time.Time) (string, error) {
	locID := locationID
	due, err := s.taskSvc.DueToday(ctx, &locID, now)
	if err != nil {
		return "", err
	}

	streak, err := s.streakSvc.Get(ctx, locationID, now)
	if err != nil {
		return "", err
	}

	entries, err := s.leaderboardSvc.Week(ctx, now)
	if err != nil {
		return "", err
	}

	level, err := s.leaderboardSvc.Level(ctx, locationID)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📋 <b>%s — daily checklist</b>\n", html.EscapeString(locationName)))
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("Mon, 02 Jan 2006")))

	builder.WriteString("✅ <b>Due today</b>\n")
	if len(due) == 0 {
		builder.WriteString("— nothing scheduled\n")
	} else {
		for _, task := range due {
			line := html.EscapeString(strings.TrimSpace(task.Title))
			if task.DueTime != "" {
				line = task.DueTime + " · " + line
			}
			builder.WriteString(fmt.Sprintf("• %s (%d pts)\n", line, task.Points))
		}
	}

	builder.WriteString(fmt.Sprintf("\n🔥 Streak: <b>%d days</b>", streak.CurrentStreak))
	if streak.StreakFreezeAvailable > 0 {
		builder.WriteString(fmt.Sprintf(" · ❄️ %d freeze", streak.StreakFreezeAvailable))
	}
	builder.WriteString(fmt.Sprintf("\n🏅 Level %d — %s", level.Level, html.EscapeString(level.Title)))

	for _, entry := range entries {
		if entry.LocationID == locationID {
			builder.WriteString(fmt.Sprintf("\n🏆 This week: #%d of %d (%d%% done, %d pts)",
				entry.Rank, len(entries), entry.CompletionPct, entry.TotalPoints))
			break
		}
	}

	return strings.TrimSpace(builder.String()), nil
}
