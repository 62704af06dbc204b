package root

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"wanderquest/internal/ui"
)

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a random transition card",
		Long:  "Draws one random transition card — a tiny physical action to break a stuck\nmoment. Do it, then claim the reward with `wq draw done <name>`.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			card, err := svc.DrawTransition(ctx, rand.Intn)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDice, "Transition Card"))
			fmt.Fprintf(out, "%s %s\n", card.Icon, card.Name)
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("When it's done: `wq draw done %q`", card.Name)))
			return nil
		},
	}
	cmd.AddCommand(newDrawDoneCmd(), newDrawAddCmd(), newDrawListCmd(), newDrawRmCmd())
	return cmd
}

func newDrawDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <name>",
		Short: "Claim the reward for a done transition",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("card name is required")
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

			res, err := svc.CompleteTransition(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s +%dXP +%dG. Nicely done.\n", ui.IconDone, res.XPAwarded, res.GoldAwarded)
			printUnlocked(cmd, res.Unlocked)
			return nil
		},
	}
}

func newDrawAddCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a transition card to the pool",
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

			card, err := svc.AddTransitionCard(ctx, args[0], icon)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %q to the pool\n", ui.IconPlus, card.Icon, card.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "", "Card icon")
	return cmd
}

func newDrawListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the transition card pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cards, err := svc.ListTransitionCards(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDice, "Transition Cards"))
			for _, c := range cards {
				fmt.Fprintf(out, "- %s %s %s\n", c.Icon, c.Name, ui.Muted.Render(c.ID))
			}
			return nil
		},
	}
}

func newDrawRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a transition card from the pool",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("card id is required")
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

			if err := svc.DeleteTransitionCard(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}
}
