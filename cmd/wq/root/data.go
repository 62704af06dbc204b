package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wanderquest/internal/ui"
)

func newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import or reset the save file",
	}
	cmd.AddCommand(newDataExportCmd(), newDataImportCmd(), newDataResetCmd())
	return cmd
}

func newDataExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all state to a JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			blob, err := st.ExportAll(ctx)
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(blob))
				return nil
			}
			if err := os.WriteFile(outPath, blob, 0o600); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func newDataImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported snapshot",
		Long:  "Imports a snapshot produced by `wq data export`. The file is validated\nbefore anything is written; a malformed snapshot changes nothing.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("snapshot file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.ImportAll(ctx, blob); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" Imported.")
			return nil
		},
	}
}

func newDataResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all state and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render("This erases your character, quests and logs.")+" Type 'reset' to confirm: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				if strings.TrimSpace(line) != "reset" {
					return errors.New("aborted")
				}
			}

			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.ResetAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "A fresh page. The wanderer awakens anew.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
