package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show character, streaks and today's board",
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
			c := snap.Character

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("%s the %s", snap.Settings.Name, snap.Settings.CharClass)))
			fmt.Fprintln(out, ui.LabelValue("Level", c.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d", c.XP, c.XPToNext)))
			fmt.Fprintln(out, ui.LabelValue("Gold", ui.Gold.Render(fmt.Sprintf("%d", c.Gold))))
			fmt.Fprintln(out, ui.LabelValue("Day", ui.DayStatusText(string(snap.Dashboard.DayStatus))))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days", snap.Dashboard.DayStreak)))
			fmt.Fprintln(out, ui.LabelValue("Combo", fmt.Sprintf("%dx", snap.Combo)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("⚔ Equipment"))
			for _, slot := range []engine.Slot{engine.SlotWeapon, engine.SlotArmor, engine.SlotAccessory} {
				if item, ok := c.Equipped[slot]; ok {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(string(slot)+":"), item.Icon, item.Name)
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(string(slot)+":"), ui.Muted.Render("(empty)"))
				}
			}
			fmt.Fprintln(out, "")

			open, done := 0, 0
			for _, q := range snap.Quests {
				if q.Done {
					done++
				} else {
					open++
				}
			}
			playedToday := 0
			for _, h := range snap.Habits {
				if h.PlayedOn(snap.Today) {
					playedToday++
				}
			}
			fmt.Fprintln(out, ui.H2.Render("🗺 Today"))
			fmt.Fprintf(out, "- %s %d open, %d done\n", ui.Key.Render("Quests:"), open, done)
			fmt.Fprintf(out, "- %s %d of %d played\n", ui.Key.Render("Habits:"), playedToday, len(snap.Habits))
			fmt.Fprintf(out, "- %s %d stored\n", ui.Key.Render("Vault:"), len(snap.Vault))
			fmt.Fprintf(out, "- %s %d of %d\n", ui.Key.Render("Badges:"), len(c.Achievements), len(engine.Catalog()))

			return nil
		},
	}
	return cmd
}
