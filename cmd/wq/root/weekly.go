package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newWeeklyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Plan and track this week's campaign",
	}
	cmd.AddCommand(newWeeklyAddCmd(), newWeeklyListCmd(), newWeeklyDoneCmd(), newWeeklyReviewCmd())
	return cmd
}

func weeklyKindFlag(cmd *cobra.Command, side *bool) {
	cmd.Flags().BoolVar(side, "side", false, "Side goal instead of main")
}

func pickKind(side bool) engine.WeeklyKind {
	if side {
		return engine.WeeklySide
	}
	return engine.WeeklyMain
}

func newWeeklyAddCmd() *cobra.Command {
	var side bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a weekly goal",
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

			item, err := svc.AddWeeklyItem(ctx, pickKind(side), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s goal %q\n", ui.IconPlus, pickKind(side), item.Name)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+item.ID))
			return nil
		},
	}
	weeklyKindFlag(cmd, &side)
	return cmd
}

func newWeeklyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show this week's plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			plan, err := svc.WeeklyPlanNow(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Weekly Campaign — week of "+string(plan.WeekStart)))
			printWeeklySection(out, "Main", plan.Main)
			printWeeklySection(out, "Side", plan.Side)
			if plan.Review != "" {
				fmt.Fprintln(out, ui.H2.Render("Review"))
				fmt.Fprintln(out, plan.Review)
			}
			return nil
		},
	}
}

func printWeeklySection(out io.Writer, title string, items []engine.WeeklyItem) {
	fmt.Fprintln(out, ui.H2.Render(title))
	if len(items) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(none)"))
		return
	}
	for _, item := range items {
		mark := "[ ]"
		if item.Completed {
			mark = ui.Good.Render("[x]")
		}
		fmt.Fprintf(out, "%s %s %s\n", mark, item.Name, ui.Muted.Render(item.ID))
	}
}

func newWeeklyDoneCmd() *cobra.Command {
	var side bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a weekly goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("goal id is required")
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

			res, err := svc.ToggleWeeklyItem(ctx, pickKind(side), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Completed {
				fmt.Fprintf(out, "Reopened %q.\n", res.Item.Name)
				return nil
			}
			fmt.Fprintf(out, "%s Weekly goal done: %q (+%dXP +%dG)\n", ui.IconDone, res.Item.Name, res.XPAwarded, res.GoldAwarded)
			printUnlocked(cmd, res.Unlocked)
			return nil
		},
	}
	weeklyKindFlag(cmd, &side)
	return cmd
}

func newWeeklyReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <text...>",
		Short: "Write this week's review",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("review text is required")
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

			if err := svc.SaveWeeklyReview(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Review saved.")
			return nil
		},
	}
}
