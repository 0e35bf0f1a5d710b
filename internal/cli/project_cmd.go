package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/markdown"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init NAME",
		Short: "Create a new project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Init(cmd.Context(), args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s\n", strings.TrimSpace(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")
	return cmd
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect and manage the project document",
	}

	cmd.AddCommand(
		newProjectShowCmd(app),
		newProjectSectionsCmd(app),
		newProjectRewriteCmd(app),
		newProjectRenameCmd(app),
		newProjectDescribeCmd(app),
		newProjectExportCmd(app),
		newProjectImportCmd(app),
	)

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a project summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Projects.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectSummary(sum))
			return nil
		},
	}
}

func newProjectSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List Board sections in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Projects.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSections(sum))
			return nil
		},
	}
}

func newProjectRewriteCmd(app *App) *cobra.Command {
	var sections []string

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Replace the Board section order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.RewriteSections(cmd.Context(), sections); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sections: %s\n", strings.Join(app.Tasks.Sections(cmd.Context()), ", "))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&sections, "sections", nil, "Comma-separated section names, in order")
	_ = cmd.MarkFlagRequired("sections")
	return cmd
}

func newProjectRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME",
		Short: "Change the project title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Rename(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed project to %s\n", strings.TrimSpace(args[0]))
			return nil
		},
	}
}

func newProjectDescribeCmd(app *App) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "describe [LINE...]",
		Short: "Replace the project description",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if from != "" {
				text, err := readText(cmd, "", from)
				if err != nil {
					return err
				}
				lines = markdown.SplitLines(text)
			}
			if err := app.Projects.SetDescription(cmd.Context(), lines); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Description set (%d lines)\n", len(lines))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Read the description from a file (- for stdin)")
	return cmd
}

// projectExport is the serialized form of a whole document.
type projectExport struct {
	Name        string               `json:"name" yaml:"name"`
	Description []string             `json:"description" yaml:"description"`
	Config      domain.ProjectConfig `json:"config" yaml:"config"`
	Sections    []string             `json:"sections" yaml:"sections"`
	Tasks       []domain.Task        `json:"tasks" yaml:"tasks"`
	Notes       []domain.Note        `json:"notes" yaml:"notes"`
	Goals       []domain.Goal        `json:"goals" yaml:"goals"`
	PostIts     []domain.PostIt      `json:"postIts" yaml:"postIts"`
	Mindmaps    []domain.Mindmap     `json:"mindmaps" yaml:"mindmaps"`
}

func newProjectExport(doc *markdown.Document) projectExport {
	return projectExport{
		Name:        doc.Info.Name,
		Description: doc.Info.Description,
		Config:      doc.Config,
		Sections:    doc.Sections,
		Tasks:       doc.Tasks,
		Notes:       doc.Info.Notes,
		Goals:       doc.Info.Goals,
		PostIts:     doc.Info.PostIts,
		Mindmaps:    doc.Info.Mindmaps,
	}
}

func encodeExport(w io.Writer, doc *markdown.Document, format string) error {
	export := newProjectExport(doc)
	switch format {
	case "json":
		return writeJSON(w, export)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func newProjectExportCmd(app *App) *cobra.Command {
	format := "json"
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the parsed project as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Projects.Document(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				return encodeExport(cmd.OutOrStdout(), doc, format)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := encodeExport(f, doc, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", doc.Info.Name, output)
			return nil
		},
	}
	cmd.Flags().Var(newEnumValue(&format, []string{"json", "yaml"}), "format", "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newProjectImportCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import FILE.json",
		Short: "Create the document from a JSON project snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProject(cmd.Context(), args[0], force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported project %s: %d tasks, %d notes, %d goals, %d post-its, %d mindmaps\n",
				result.Name, result.TaskCount, result.NoteCount, result.GoalCount, result.PostItCount, result.MindmapCount)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")
	return cmd
}
