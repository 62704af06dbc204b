package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the adventure log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			log, err := svc.AdventureLog(ctx)
			if err != nil {
				return err
			}
			if limit > 0 && len(log) > limit {
				log = log[len(log)-limit:]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Adventure Log"))
			for _, e := range log {
				fmt.Fprintf(out, "%s %s\n", ui.Muted.Render("["+e.Time+"]"), e.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 30, "Show at most N entries")
	return cmd
}
