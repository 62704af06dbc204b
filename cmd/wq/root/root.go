package root

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"wanderquest/internal/ui"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "wq",
	Short:         "Wanderquest — a life-management RPG in your terminal",
	Long:          "Wanderquest is a local-first CLI/TUI that turns daily life into an RPG:\nquests, habit cards, streaks, combos, a vault for someday-items and a shop.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// Optional .env for WQ_DB / WQ_BALANCE overrides; missing file is fine.
	_ = godotenv.Load()

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(
		newStatusCmd(),
		newDayCmd(),
		newQuestCmd(),
		newHabitCmd(),
		newVaultCmd(),
		newWeeklyCmd(),
		newRoutineCmd(),
		newDrawCmd(),
		newRecordCmd(),
		newMedsCmd(),
		newShopCmd(),
		newBadgesCmd(),
		newHistoryCmd(),
		newDataCmd(),
		newBoardCmd(),
		newChatCmd(),
		newSettingsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
