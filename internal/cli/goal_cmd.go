package cli

import (
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List goals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoalList(app.Goals.List(cmd.Context())))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Show a goal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := app.Goals.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoal(*g))
				return nil
			},
		},
		newGoalAddCmd(app),
		newGoalUpdateCmd(app),
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a goal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Goals.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

type goalFlags struct {
	goalType    string
	status      string
	kpi         string
	start       string
	end         string
	description string
}

func (f *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(newEnumValue(&f.goalType, sortedKeys(domain.ValidGoalTypes)), "type", "Goal type: enterprise or project")
	cmd.Flags().Var(newEnumValue(&f.status, sortedKeys(domain.ValidGoalStatuses)), "status", "Goal status")
	cmd.Flags().StringVar(&f.kpi, "kpi", "", "Key performance indicator")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.description, "desc", "", "Description")
}

func (f *goalFlags) patch(cmd *cobra.Command) domain.GoalPatch {
	var p domain.GoalPatch
	if changed(cmd, "type") {
		t := domain.GoalType(f.goalType)
		p.Type = &t
	}
	if changed(cmd, "status") {
		s := domain.GoalStatus(f.status)
		p.Status = &s
	}
	if changed(cmd, "kpi") {
		p.KPI = &f.kpi
	}
	if changed(cmd, "start") {
		p.StartDate = &f.start
	}
	if changed(cmd, "end") {
		p.EndDate = &f.end
	}
	if changed(cmd, "desc") {
		p.Description = &f.description
	}
	return p
}

func newGoalAddCmd(app *App) *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := domain.NewGoal(args[0])
			flags.patch(cmd).Apply(&g)
			created, err := app.Goals.Add(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s: %s\n", created.ID, created.Title)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var (
		title string
		flags goalFlags
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a goal; only the given flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.patch(cmd)
			if changed(cmd, "title") {
				p.Title = &title
			}
			if p == (domain.GoalPatch{}) {
				return fmt.Errorf("nothing to update: pass at least one flag")
			}
			g, err := app.Goals.Update(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s: %s\n", g.ID, g.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	flags.register(cmd)
	return cmd
}
