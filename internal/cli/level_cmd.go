package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// LevelCmd returns the command showing where a location sits on the ladder.
func LevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "level <location-id>",
		Short: "Show a location's level and XP progress",
		Args:  cobra.ExactArgs(1),
		RunE:  runLevel,
	}
}

func runLevel(cmd *cobra.Command, args []string) error {
	locationID, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid location id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	snap, err := e.leaderboardSvc.Level(cmd.Context(), uint(locationID))
	if err != nil {
		return err
	}

	color.New(color.Bold).Printf("Level %d — %s\n", snap.Level, snap.Title)
	fmt.Printf("progress: %d%%\n", snap.ProgressPct)
	if snap.XPToNext > 0 {
		fmt.Printf("to next level: %d XP\n", snap.XPToNext)
	} else {
		fmt.Println("top of the ladder")
	}
	return nil
}
