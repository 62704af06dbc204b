package root

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage the quest board",
	}
	cmd.AddCommand(newQuestAddCmd(), newQuestListCmd(), newQuestDoneCmd(), newQuestRmCmd())
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var tier string
	var xp, gold, energy int
	var notes string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quest",
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

			q, err := svc.AddQuest(ctx, engine.AddQuestInput{
				Name:   args[0],
				Tier:   engine.ParseTier(tier),
				XP:     xp,
				Gold:   gold,
				Energy: energy,
				Notes:  notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s quest %q (+%dXP +%dG on completion)\n",
				ui.IconPlus, ui.TierText(string(q.Tier)), q.Name, q.XP, q.Gold)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+q.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tier, "tier", "t", "side", "Tier (boss|survival|side)")
	cmd.Flags().IntVar(&xp, "xp", 15, "XP reward")
	cmd.Flags().IntVar(&gold, "gold", 8, "Gold reward")
	cmd.Flags().IntVarP(&energy, "energy", "e", 1, "Energy cost (1-3)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests grouped by tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.ListQuests(ctx)
			if err != nil {
				return err
			}

			tierOrder := map[engine.Tier]int{engine.TierBoss: 0, engine.TierSurvival: 1, engine.TierSide: 2}
			sort.SliceStable(quests, func(i, j int) bool {
				return tierOrder[quests[i].Tier] < tierOrder[quests[j].Tier]
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quest Board"))
			shown := 0
			var prev engine.Tier
			for _, q := range quests {
				if q.Done && !all {
					continue
				}
				if q.Tier != prev {
					fmt.Fprintln(out, ui.H2.Render(ui.TierIcon(string(q.Tier))+" "+string(q.Tier)))
					prev = q.Tier
				}
				mark := "[ ]"
				if q.Done {
					mark = ui.Good.Render("[x]")
				}
				fmt.Fprintf(out, "%s %s %s (+%dXP +%dG)\n", mark, q.Name, ui.Muted.Render(q.ID), q.XP, q.Gold)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no open quests — add one with `wq quest add`)"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")
	return cmd
}

func newQuestDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a quest's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
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

			res, err := svc.ToggleQuest(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Completed {
				fmt.Fprintf(out, "Reopened %q.\n", res.Quest.Name)
				return nil
			}
			fmt.Fprintf(out, "%s Completed %q: +%dXP +%dG\n", ui.IconDone, res.Quest.Name, res.XPAwarded, res.GoldAwarded)
			if res.LevelAfter > res.LevelBefore {
				fmt.Fprintf(out, "%s → Level %d\n", ui.BadgeLevelUp, res.LevelAfter)
			}
			printUnlocked(cmd, res.Unlocked)
			return nil
		},
	}
}

func newQuestRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
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

			if err := svc.DeleteQuest(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
