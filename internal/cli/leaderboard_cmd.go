package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// LeaderboardCmd returns the command printing the current week's ranking.
func LeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the weekly location leaderboard",
		RunE:  runLeaderboard,
	}
	cmd.Flags().String("week-of", "", "Any date (YYYY-MM-DD) inside the target week; defaults to today")
	return cmd
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	weekOf := time.Now()
	if raw, _ := cmd.Flags().GetString("week-of"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --week-of %q: %w", raw, err)
		}
		weekOf = parsed
	}

	entries, err := e.leaderboardSvc.Week(cmd.Context(), weekOf)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no locations yet")
		return nil
	}

	gold := color.New(color.FgYellow, color.Bold)
	dim := color.New(color.Faint)

	fmt.Printf("%-4s %-24s %-8s %6s %6s %7s\n", "#", "LOCATION", "STORE", "DONE", "PCT", "POINTS")
	for _, entry := range entries {
		line := fmt.Sprintf("%-4d %-24s %-8s %3d/%-3d %5d%% %7d",
			entry.Rank, entry.LocationName, entry.StoreNumber,
			entry.CompletedTasks, entry.TotalTasks, entry.CompletionPct, entry.TotalPoints)
		switch {
		case entry.Rank == 1:
			gold.Println(line)
		case entry.TotalTasks == 0:
			dim.Println(line)
		default:
			fmt.Println(line)
		}
	}
	return nil
}
