package cli

import (
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage Board tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskAddCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app, "done", true),
		newTaskDoneCmd(app, "undone", false),
		newTaskMoveCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

// taskConfigFlags binds the inline attribute flags shared by add and update.
type taskConfigFlags struct {
	tags      []string
	due       string
	assignee  string
	priority  int
	effort    int
	blockedBy []string
	milestone string
}

func (f *taskConfigFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Tags (comma-separated or repeated)")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.assignee, "assignee", "", "Assignee")
	cmd.Flags().IntVar(&f.priority, "priority", 0, "Priority 1 (highest) to 5")
	cmd.Flags().IntVar(&f.effort, "effort", 0, "Effort estimate")
	cmd.Flags().StringSliceVar(&f.blockedBy, "blocked-by", nil, "IDs of blocking tasks")
	cmd.Flags().StringVar(&f.milestone, "milestone", "", "Milestone name")
}

// apply copies every flag the user set onto cfg.
func (f *taskConfigFlags) apply(cmd *cobra.Command, cfg *domain.TaskConfig) bool {
	touched := false
	set := func(name string, fn func()) {
		if changed(cmd, name) {
			fn()
			touched = true
		}
	}
	set("tag", func() { cfg.Tag = f.tags })
	set("due", func() { cfg.DueDate = f.due })
	set("assignee", func() { cfg.Assignee = f.assignee })
	set("priority", func() { cfg.Priority = f.priority })
	set("effort", func() { cfg.Effort = f.effort })
	set("blocked-by", func() { cfg.BlockedBy = f.blockedBy })
	set("milestone", func() { cfg.Milestone = f.milestone })
	return touched
}

func newTaskListCmd(app *App) *cobra.Command {
	var (
		section string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context(), section)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), tasks)
			}
			sections := app.Tasks.Sections(cmd.Context())
			if section != "" {
				sections = []string{section}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(sections, tasks))
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "Only list this section")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), task)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(*task))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		id          string
		section     string
		parent      string
		description []string
		interactive bool
		cfg         taskConfigFlags
	)

	cmd := &cobra.Command{
		Use:   "add [TITLE]",
		Short: "Add a task, optionally as a subtask",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := domain.Task{ID: id, Section: section, Description: description}
			if len(args) == 1 {
				task.Title = args[0]
			}
			cfg.apply(cmd, &task.Config)

			if interactive {
				if err := runTaskForm(app, cmd, &task); err != nil {
					return err
				}
			} else if len(args) == 0 {
				return fmt.Errorf("a title is required (or use --interactive)")
			}

			created, err := app.Tasks.Add(cmd.Context(), task, parent)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s [%s]\n", created.ID, created.Title, created.Section)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Explicit task ID (default: next number)")
	cmd.Flags().StringVar(&section, "section", "", "Board section (default: first section)")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent task ID")
	cmd.Flags().StringArrayVar(&description, "desc", nil, "Description line (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the task with a form")
	cfg.register(cmd)
	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var (
		title       string
		description []string
		cfg         taskConfigFlags
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a task; only the given flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Tasks.Get(ctx, args[0])
			if err != nil {
				return err
			}

			var patch domain.TaskPatch
			if changed(cmd, "title") {
				patch.Title = &title
			}
			if changed(cmd, "desc") {
				patch.Description = &description
			}
			next := current.Config
			if cfg.apply(cmd, &next) {
				patch.Config = &next
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: pass at least one flag")
			}

			updated, err := app.Tasks.Update(ctx, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", updated.ID, updated.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringArrayVar(&description, "desc", nil, "Replace the description (repeat per line)")
	cfg.register(cmd)
	return cmd
}

func newTaskDoneCmd(app *App, use string, completed bool) *cobra.Command {
	short := "Mark a task completed"
	if !completed {
		short = "Mark a task not completed"
	}
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.SetCompleted(cmd.Context(), args[0], completed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s marked %s\n", args[0], use)
			return nil
		},
	}
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID SECTION",
		Short: "Move a top-level task and its subtasks to another section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Move(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}
}
