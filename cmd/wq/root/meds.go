package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/ui"
)

func newMedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meds",
		Short: "Manage the medication list",
	}
	cmd.AddCommand(newMedsAddCmd(), newMedsListCmd(), newMedsRmCmd())
	return cmd
}

func newMedsAddCmd() *cobra.Command {
	var when string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a medication",
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

			med, err := svc.AddMedication(ctx, args[0], when)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s (%s)\n", ui.IconMedication, med.Name, med.Time)
			return nil
		},
	}
	cmd.Flags().StringVarP(&when, "time", "t", "", "When to take it (morning|noon|evening|anytime)")
	return cmd
}

func newMedsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List medications",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			meds, err := svc.ListMedications(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMedication, "Medications"))
			if len(meds) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, m := range meds {
				fmt.Fprintf(out, "- %s (%s) %s\n", m.Name, m.Time, ui.Muted.Render(m.ID))
			}
			return nil
		},
	}
}

func newMedsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a medication",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("medication id is required")
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

			if err := svc.DeleteMedication(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}
}
