package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Stash someday-items and pull them onto the board",
	}
	cmd.AddCommand(newVaultAddCmd(), newVaultListCmd(), newVaultPullCmd(), newVaultRmCmd())
	return cmd
}

func newVaultAddCmd() *cobra.Command {
	var category, notes string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Stash an item in the vault",
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

			item, err := svc.AddVaultItem(ctx, engine.AddVaultInput{
				Name:     args[0],
				Category: category,
				Notes:    notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Stashed %q in the vault\n", ui.IconVault, item.Name)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+item.ID))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "action", "Category")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newVaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vault items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := svc.ListVault(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconVault, "The Vault"))
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty — stash someday-items with `wq vault add`)"))
				return nil
			}
			for _, item := range items {
				pulled := ""
				if item.PulledCount > 0 {
					pulled = ui.Muted.Render(fmt.Sprintf(" (pulled %dx)", item.PulledCount))
				}
				fmt.Fprintf(out, "- %s [%s]%s %s\n", item.Name, item.Category, pulled, ui.Muted.Render(item.ID))
			}
			return nil
		},
	}
}

func newVaultPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <id>",
		Short: "Pull an item onto the quest board as a side quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("vault item id is required")
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

			res, err := svc.PullVaultItem(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Pulled %q to the quest board (+%dXP +%dG on completion)\n",
				ui.IconVault, res.Quest.Name, res.Quest.XP, res.Quest.Gold)
			printUnlocked(cmd, res.Unlocked)
			return nil
		},
	}
}

func newVaultRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a vault item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("vault item id is required")
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

			if err := svc.DeleteVaultItem(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
