package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Write campfire logs (daily, sleep, diet, meds, journal)",
	}
	cmd.AddCommand(
		newRecordDailyCmd(),
		newRecordSleepCmd(),
		newRecordDietCmd(),
		newRecordMedsCmd(),
		newRecordJournalCmd(),
		newRecordListCmd(),
	)
	return cmd
}

func saveRecord(cmd *cobra.Command, rec engine.Record) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := svc.SaveRecord(ctx, rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Logged (%s). +%dXP\n", ui.IconCampfire, rec.Type, res.XPAwarded)
	printUnlocked(cmd, res.Unlocked)
	return nil
}

func newRecordDailyCmd() *cobra.Command {
	var weight, pain string

	cmd := &cobra.Command{
		Use:   "daily <recap...>",
		Short: "Daily recap",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("recap text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveRecord(cmd, engine.Record{
				Type:   "daily",
				Recap:  strings.Join(args, " "),
				Weight: weight,
				Pain:   pain,
			})
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "", "Weight note")
	cmd.Flags().StringVar(&pain, "pain", "", "Pain/discomfort note")
	return cmd
}

func newRecordSleepCmd() *cobra.Command {
	var bedtime, waketime, notes string
	var quality int

	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Sleep log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveRecord(cmd, engine.Record{
				Type:     "sleep",
				Bedtime:  bedtime,
				Waketime: waketime,
				Quality:  quality,
				Notes:    notes,
			})
		},
	}
	cmd.Flags().StringVar(&bedtime, "bed", "", "Bedtime (e.g. 23:30)")
	cmd.Flags().StringVar(&waketime, "wake", "", "Wake time")
	cmd.Flags().IntVar(&quality, "quality", 3, "Sleep quality (1-5)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newRecordDietCmd() *cobra.Command {
	var meals []string
	var water int

	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Diet log",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := engine.Record{Type: "diet", Water: water}
			for _, m := range meals {
				kind, desc, found := strings.Cut(m, ":")
				if !found {
					kind, desc = "meal", m
				}
				rec.Meals = append(rec.Meals, engine.Meal{Type: kind, Desc: desc})
			}
			return saveRecord(cmd, rec)
		},
	}
	cmd.Flags().StringArrayVarP(&meals, "meal", "m", nil, `Meal as "type:desc" (repeatable)`)
	cmd.Flags().IntVarP(&water, "water", "w", 0, "Glasses of water")
	return cmd
}

func newRecordMedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meds <name...>",
		Short: "Medications taken today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one medication name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveRecord(cmd, engine.Record{Type: "meds", Taken: args})
		},
	}
}

func newRecordJournalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "journal <entry...>",
		Short: "Free-form journal entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("entry text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveRecord(cmd, engine.Record{Type: "journal", Entry: strings.Join(args, " ")})
		},
	}
}

func newRecordListCmd() *cobra.Command {
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent campfire logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := svc.ListRecords(ctx)
			if err != nil {
				return err
			}

			var filtered []engine.Record
			for _, r := range records {
				if kind != "" && r.Type != kind {
					continue
				}
				filtered = append(filtered, r)
			}
			if limit > 0 && len(filtered) > limit {
				filtered = filtered[len(filtered)-limit:]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCampfire, "Campfire Logs"))
			if len(filtered) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no logs yet)"))
				return nil
			}
			for _, r := range filtered {
				fmt.Fprintf(out, "%s [%s] %s\n", ui.Muted.Render(string(r.Date)), r.Type, recordSummary(r))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", "", "Filter by type")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Show at most N entries")
	return cmd
}

func recordSummary(r engine.Record) string {
	switch r.Type {
	case "daily":
		return r.Recap
	case "sleep":
		return fmt.Sprintf("%s → %s, quality %d", r.Bedtime, r.Waketime, r.Quality)
	case "diet":
		return fmt.Sprintf("%d meals, %d water", len(r.Meals), r.Water)
	case "meds":
		return strings.Join(r.Taken, ", ")
	case "journal":
		return r.Entry
	case "weekly":
		return fmt.Sprintf("weekly archive: %d main, %d side", len(r.Main), len(r.Side))
	default:
		return ""
	}
}
