package cli

import (
	"fmt"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/spf13/cobra"
)

func newPostItCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "postit",
		Aliases: []string{"canvas"},
		Short:   "Manage Canvas sticky notes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List sticky notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPostItList(app.Canvas.List(cmd.Context())))
				return nil
			},
		},
		newPostItAddCmd(app),
		newPostItUpdateCmd(app),
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a sticky note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Canvas.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed post-it %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

type postItFlags struct {
	content string
	color   string
	x, y    int
	width   int
	height  int
}

func (f *postItFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "Text; newlines become line breaks")
	cmd.Flags().Var(newEnumValue(&f.color, sortedKeys(domain.ValidPostItColors)), "color", "Note color")
	cmd.Flags().IntVar(&f.x, "x", 0, "Horizontal position")
	cmd.Flags().IntVar(&f.y, "y", 0, "Vertical position")
	cmd.Flags().IntVar(&f.width, "width", 0, "Width")
	cmd.Flags().IntVar(&f.height, "height", 0, "Height")
}

func (f *postItFlags) patch(cmd *cobra.Command, current domain.PostIt) domain.PostItPatch {
	var p domain.PostItPatch
	if changed(cmd, "content") {
		p.Content = &f.content
	}
	if changed(cmd, "color") {
		c := domain.PostItColor(f.color)
		p.Color = &c
	}
	if changed(cmd, "x") || changed(cmd, "y") {
		pos := current.Position
		if changed(cmd, "x") {
			pos.X = f.x
		}
		if changed(cmd, "y") {
			pos.Y = f.y
		}
		p.Position = &pos
	}
	if changed(cmd, "width") || changed(cmd, "height") {
		var size domain.Size
		if current.Size != nil {
			size = *current.Size
		}
		if changed(cmd, "width") {
			size.Width = f.width
		}
		if changed(cmd, "height") {
			size.Height = f.height
		}
		p.Size = &size
	}
	return p
}

func newPostItAddCmd(app *App) *cobra.Command {
	var flags postItFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a sticky note to the Canvas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p domain.PostIt
			flags.patch(cmd, p).Apply(&p)
			created, err := app.Canvas.Add(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added post-it %s (%s)\n", created.ID, created.Color)
			return nil
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newPostItUpdateCmd(app *App) *cobra.Command {
	var flags postItFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a sticky note; only the given flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Canvas.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := flags.patch(cmd, *current)
			if p == (domain.PostItPatch{}) {
				return fmt.Errorf("nothing to update: pass at least one flag")
			}
			updated, err := app.Canvas.Update(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated post-it %s\n", updated.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
