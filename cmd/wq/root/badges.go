package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show unlocked and locked achievements",
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
			defs := engine.Catalog()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Badges (%d/%d)", len(snap.Character.Achievements), len(defs))))
			for _, d := range defs {
				if snap.Character.HasAchievement(d.ID) {
					fmt.Fprintf(out, "%s %s — %s\n", d.Icon, ui.Gold.Render(d.Name), d.Desc)
				} else {
					fmt.Fprintf(out, "🔒 %s\n", ui.Muted.Render(d.Name+" — "+d.Desc))
				}
			}
			return nil
		},
	}
}
