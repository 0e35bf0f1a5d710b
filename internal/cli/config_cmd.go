package cli

import (
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the project Configurations section",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the project configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Projects.Config(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), cfg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConfig(cfg))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	var (
		start       string
		workingDays int
		assignees   []string
		tags        []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change configuration values; lists replace the stored ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Projects.Config(cmd.Context())
			touched := changed(cmd, "start") || changed(cmd, "working-days") ||
				changed(cmd, "assignee") || changed(cmd, "tag")
			if changed(cmd, "start") {
				cfg.StartDate = start
			}
			if changed(cmd, "working-days") {
				cfg.WorkingDaysPerWeek = workingDays
			}
			if changed(cmd, "assignee") {
				cfg.Assignees = assignees
			}
			if changed(cmd, "tag") {
				cfg.Tags = tags
			}

			if interactive {
				if err := runConfigForm(app, &cfg); err != nil {
					return err
				}
			} else if !touched {
				return fmt.Errorf("nothing to set: pass at least one flag (or --interactive)")
			}

			if err := app.Projects.SaveConfig(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Project start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&workingDays, "working-days", 0, "Working days per week (1-7)")
	cmd.Flags().StringSliceVar(&assignees, "assignee", nil, "Assignees (comma-separated or repeated)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (comma-separated or repeated)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the configuration with a form")
	return cmd
}
