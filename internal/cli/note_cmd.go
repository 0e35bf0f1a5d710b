package cli

import (
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNoteList(app.Notes.List(cmd.Context())))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Show a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				note, err := app.Notes.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				blocks, err := app.Notes.Blocks(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNote(*note, blocks))
				return nil
			},
		},
		newNoteAddCmd(app),
		newNoteUpdateCmd(app),
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Notes.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed note %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var content, from string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readText(cmd, content, from)
			if err != nil {
				return err
			}
			note, err := app.Notes.Add(cmd.Context(), args[0], body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s: %s\n", note.ID, note.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Note body")
	cmd.Flags().StringVar(&from, "from", "", "Read the body from a file (- for stdin)")
	return cmd
}

func newNoteUpdateCmd(app *App) *cobra.Command {
	var title, content, from string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a note's title or body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.NotePatch
			if changed(cmd, "title") {
				patch.Title = &title
			}
			if changed(cmd, "content") || changed(cmd, "from") {
				body, err := readText(cmd, content, from)
				if err != nil {
					return err
				}
				patch.Content = &body
			}
			if patch.Title == nil && patch.Content == nil {
				return fmt.Errorf("nothing to update: pass --title, --content or --from")
			}
			note, err := app.Notes.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s: %s\n", note.ID, note.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New body")
	cmd.Flags().StringVar(&from, "from", "", "Read the new body from a file (- for stdin)")
	return cmd
}
