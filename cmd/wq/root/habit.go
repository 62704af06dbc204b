package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage and play habit cards",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitListCmd(), newHabitPlayCmd(), newHabitRmCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var tier string
	var xp int
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit card",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			h, err := svc.AddHabit(ctx, engine.AddHabitInput{
				Name: args[0],
				Tier: engine.ParseTier(tier),
				XP:   xp,
				Icon: icon,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added habit card %s %q (base %dXP)\n", ui.IconPlus, h.Icon, h.Name, h.XP)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+h.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tier, "tier", "t", "side", "Tier (boss|survival|side)")
	cmd.Flags().IntVar(&xp, "xp", 10, "Base XP per play")
	cmd.Flags().StringVar(&icon, "icon", "", "Card icon")
	return cmd
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habit cards with streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, fmt.Sprintf("Habit Deck (combo %dx)", snap.Combo)))
			if len(snap.Habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty — add one with `wq habit add`)"))
				return nil
			}
			for _, h := range snap.Habits {
				mark := "( )"
				if h.PlayedOn(snap.Today) {
					mark = ui.Good.Render("(x)")
				}
				fmt.Fprintf(out, "%s %s %s — streak %d, %d plays %s\n",
					mark, h.Icon, h.Name, h.Streak, h.TotalPlays, ui.Muted.Render(h.ID))
			}
			return nil
		},
	}
}

func newHabitPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id>",
		Short: "Play a habit card (play again today to undo)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id is required")
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

			res, err := svc.PlayHabit(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Undone {
				fmt.Fprintf(out, "Undid today's play of %q (combo %dx).\n", res.Habit.Name, res.Combo)
				return nil
			}
			fmt.Fprintf(out, "%s %s %q: +%dXP +%dG (%dx combo, x%.1f)\n",
				ui.IconSparkle, res.Habit.Icon, res.Habit.Name,
				res.XPAwarded, res.GoldAwarded, res.Combo, res.Multiplier)
			if res.LevelAfter > res.LevelBefore {
				fmt.Fprintf(out, "%s → Level %d\n", ui.BadgeLevelUp, res.LevelAfter)
			}
			printUnlocked(cmd, res.Unlocked)
			return nil
		},
	}
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit card",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id is required")
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

			if err := svc.DeleteHabit(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
