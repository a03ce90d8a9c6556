package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"opsboard/internal/model"
	"opsboard/internal/service"
)

// SeedCmd returns the command loading demo data into a fresh database.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo locations and tasks",
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := cmd.Context()

	downtown, err := e.locations.GetOrCreate(ctx, "001", "Downtown")
	if err != nil {
		return err
	}
	riverside, err := e.locations.GetOrCreate(ctx, "002", "Riverside")
	if err != nil {
		return err
	}

	inputs := []service.TaskInput{
		{Title: "Open safe and count drawer", Points: 10, IsRecurring: true, RecurringType: model.RecurDaily, DueTime: "08:30"},
		{Title: "Deep-clean fryers", Points: 25, IsRecurring: true, RecurringType: model.RecurWeekly, RecurringDays: `["mon","thu"]`, DueTime: "21:00"},
		{Title: "Walk-in freezer temperature log", Points: 15, IsRecurring: true, RecurringType: model.RecurBiweekly, RecurringDays: `["wed"]`, BiweeklyStart: model.BiweeklyThis, DueTime: "10:00"},
		{Title: "Submit inventory count", Points: 30, IsRecurring: true, RecurringType: model.RecurMonthly, RecurringDays: `[1,15]`, DueTime: "17:00"},
		{LocationID: &downtown.ID, Title: "Patio furniture teardown", Points: 20, IsRecurring: true, RecurringType: model.RecurWeekly, RecurringDays: `["sun"]`},
	}
	for _, input := range inputs {
		if _, err := e.taskSvc.CreateTask(ctx, input); err != nil {
			return err
		}
	}

	fmt.Printf("seeded %d tasks for locations %s and %s\n", len(inputs), downtown.Name, riverside.Name)
	return nil
}
