package cli

import (
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/repository"
	"github.com/alexanderramin/mdplanner/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Tasks    service.TaskService
	Notes    service.NoteService
	Goals    service.GoalService
	Canvas   service.CanvasService
	Mindmaps service.MindmapService
	Import   service.ImportService

	// IsInteractive reports whether forms can be shown. Nil means never.
	IsInteractive func() bool
}

// Opener wires an App for the document at path. It runs once per command,
// after --file has been parsed.
type Opener func(path string) *App

// NewApp wires every service over one store.
func NewApp(store repository.Store, observers ...service.UseCaseObserver) *App {
	return &App{
		Projects: service.NewProjectService(store, observers...),
		Tasks:    service.NewTaskService(store, observers...),
		Notes:    service.NewNoteService(store, store, observers...),
		Goals:    service.NewGoalService(store, store, observers...),
		Canvas:   service.NewCanvasService(store, store, observers...),
		Mindmaps: service.NewMindmapService(store, store, observers...),
		Import:   service.NewImportService(store, observers...),
	}
}

// NewRootCmd creates the top-level "mdplanner" command and registers all
// subcommands. defaultFile seeds the --file flag.
func NewRootCmd(open Opener, defaultFile string) *cobra.Command {
	app := &App{}
	var file string

	root := &cobra.Command{
		Use:           "mdplanner",
		Short:         "Plan a project in a single Markdown file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("no document given: pass --file or set MDPLANNER_FILE")
			}
			*app = *open(file)
			cmd.SetContext(service.WithCorrelationID(cmd.Context(), uuid.NewString()))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", defaultFile, "Markdown document to operate on")

	root.AddCommand(
		newInitCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newNoteCmd(app),
		newGoalCmd(app),
		newPostItCmd(app),
		newMindmapCmd(app),
		newConfigCmd(app),
	)

	return root
}
