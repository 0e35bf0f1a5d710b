package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/markdown"
	"github.com/spf13/cobra"
)

func newMindmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mindmap",
		Short: "Manage mindmaps",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List mindmaps",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMindmapList(app.Mindmaps.List(cmd.Context())))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Show a mindmap as a tree",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := app.Mindmaps.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMindmap(*m))
				return nil
			},
		},
		newMindmapAddCmd(app),
		newMindmapUpdateCmd(app),
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a mindmap",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Mindmaps.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed mindmap %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

// readOutline parses a bullet outline given inline (with literal "\n"
// separators allowed) or from a file.
func readOutline(cmd *cobra.Command, inline, from string) ([]domain.OutlineEntry, error) {
	text, err := readText(cmd, strings.ReplaceAll(inline, `\n`, "\n"), from)
	if err != nil {
		return nil, err
	}
	return markdown.ParseOutline(markdown.SplitLines(text)), nil
}

func newMindmapAddCmd(app *App) *cobra.Command {
	var outline, from string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a mindmap from an indented bullet outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readOutline(cmd, outline, from)
			if err != nil {
				return err
			}
			m, err := app.Mindmaps.Add(cmd.Context(), args[0], entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added mindmap %s: %s (%d nodes)\n", m.ID, m.Title, len(m.Nodes))
			return nil
		},
	}
	cmd.Flags().StringVar(&outline, "outline", "", "Outline text, e.g. \"- root\\n  - child\"")
	cmd.Flags().StringVar(&from, "from", "", "Read the outline from a file (- for stdin)")
	return cmd
}

func newMindmapUpdateCmd(app *App) *cobra.Command {
	var title, outline, from string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a mindmap or replace its outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p domain.MindmapPatch
			if changed(cmd, "title") {
				p.Title = &title
			}
			if changed(cmd, "outline") || changed(cmd, "from") {
				entries, err := readOutline(cmd, outline, from)
				if err != nil {
					return err
				}
				p.Nodes = &entries
			}
			if p.Title == nil && p.Nodes == nil {
				return fmt.Errorf("nothing to update: pass --title, --outline or --from")
			}
			m, err := app.Mindmaps.Update(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated mindmap %s: %s (%d nodes)\n", m.ID, m.Title, len(m.Nodes))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&outline, "outline", "", "Replacement outline text")
	cmd.Flags().StringVar(&from, "from", "", "Read the replacement outline from a file (- for stdin)")
	return cmd
}
