package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Print a guided step-by-step routine",
		Long:  "Prints a guided routine for right now. Mornings get the wake-up script,\nlate nights the wind-down one; --kind overrides the pick.\nReport back with `wq routine done` or `wq routine bail`.",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, steps := engine.RoutineFor(engine.RoutineKind(kind), time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, fmt.Sprintf("Routine: %s", k)))
			for i, step := range steps {
				fmt.Fprintf(out, "%2d. %s\n", i+1, step.Text)
				if step.Sub != "" {
					fmt.Fprintf(out, "    %s\n", ui.Muted.Render(step.Sub))
				}
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("When you're through: `wq routine done -k %s` (or `bail` if you had to stop)", k)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Routine (general|morning|paralysis|night)")
	cmd.AddCommand(newRoutineFinishCmd("done", true), newRoutineFinishCmd("bail", false))
	return cmd
}

func newRoutineFinishCmd(use string, finished bool) *cobra.Command {
	var kind string
	short := "Claim the reward for a finished routine"
	if !finished {
		short = "Step out of a routine early (small XP for trying)"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			k, _ := engine.RoutineFor(engine.RoutineKind(kind), time.Now())
			res, err := svc.FinishRoutine(ctx, k, finished)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Finished {
				fmt.Fprintf(out, "%s Routine complete: +%dXP +%dG\n", ui.IconDone, res.XPAwarded, res.GoldAwarded)
			} else {
				fmt.Fprintf(out, "Stepping out is fine. +%dXP for trying.\n", res.XPAwarded)
			}
			printUnlocked(cmd, res.Unlocked)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Routine (general|morning|paralysis|night)")
	return cmd
}
