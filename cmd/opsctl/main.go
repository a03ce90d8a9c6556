package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opsboard/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsctl",
		Short: "opsctl - admin tool for the opsboard gamification engine",
		Long: `opsctl inspects and manages the franchise operations board:
weekly leaderboards, per-location streaks and levels, and demo seed data.`,
	}

	rootCmd.AddCommand(cli.LeaderboardCmd())
	rootCmd.AddCommand(cli.StreakCmd())
	rootCmd.AddCommand(cli.LevelCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
