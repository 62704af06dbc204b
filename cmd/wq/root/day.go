package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Start the day and set today's energy level",
	}
	cmd.AddCommand(newDayStartCmd(), newDaySetCmd())
	return cmd
}

func newDayStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Advance the day streak and roll the week over if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events, err := svc.StartDay(ctx)
			if err != nil {
				return err
			}
			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Day started"))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days", snap.Dashboard.DayStreak)))
			printNotifications(cmd, events)
			return nil
		},
	}
}

func newDaySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <green|yellow|red>",
		Short: "Record today's self-reported energy level",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("status is required (green|yellow|red)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			status := engine.DayStatus(args[0])
			if err := svc.SetDayStatus(ctx, status); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Day status", ui.DayStatusText(args[0])))
			if status == engine.DayRed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Low-power mode: survival quests only. Be gentle today."))
			}
			return nil
		},
	}
}

func printNotifications(cmd *cobra.Command, events []engine.Event) {
	for _, text := range engine.Notifications(events) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" "+text))
	}
}

func printUnlocked(cmd *cobra.Command, unlocked []engine.AchievementDef) {
	for _, a := range unlocked {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %s\n",
			ui.IconTrophy, ui.Gold.Render(a.Name), ui.Muted.Render(a.Desc))
	}
}
