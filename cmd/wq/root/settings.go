package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.GetSettings(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Settings"))
			fmt.Fprintln(out, ui.LabelValue("Name", st.Name))
			fmt.Fprintln(out, ui.LabelValue("Class", st.CharClass))
			fmt.Fprintln(out, ui.LabelValue("Model", st.Model))
			fmt.Fprintln(out, ui.LabelValue("API URL", st.APIURL))
			key := "(not set)"
			if st.APIKey != "" {
				key = "set"
			}
			fmt.Fprintln(out, ui.LabelValue("API key", key))
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var name, class, apiKey, apiURL, model string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings via flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.GetSettings(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				st.Name = name
			}
			if cmd.Flags().Changed("class") {
				st.CharClass = class
			}
			if cmd.Flags().Changed("api-key") {
				st.APIKey = apiKey
			}
			if cmd.Flags().Changed("api-url") {
				st.APIURL = apiURL
			}
			if cmd.Flags().Changed("model") {
				st.Model = model
			}
			if err := svc.SaveSettings(ctx, st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Character name")
	cmd.Flags().StringVar(&class, "class", "", "Character class")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Companion API key")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Companion API URL")
	cmd.Flags().StringVar(&model, "model", "", "Companion model")
	return cmd
}
