package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/cli/formatter"
	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("interactive forms need a terminal; pass the values as flags instead")

// plannerHuhTheme returns a custom huh theme using the formatter's Gruvbox palette.
func plannerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runForm shows form on the terminal, or fails when no terminal is attached.
func runForm(app *App, form *huh.Form) error {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return errNotInteractive
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("cancelled")
		}
		return err
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// runTaskForm lets the user fill in or adjust a new task. Values already set
// from flags are shown as defaults.
func runTaskForm(app *App, cmd *cobra.Command, task *domain.Task) error {
	sections := app.Tasks.Sections(cmd.Context())
	if task.Section == "" && len(sections) > 0 {
		task.Section = sections[0]
	}
	options := make([]huh.Option[string], 0, len(sections))
	for _, s := range sections {
		options = append(options, huh.NewOption(s, s))
	}

	tags := strings.Join(task.Config.Tag, ", ")
	priority := ""
	if task.Config.Priority > 0 {
		priority = strconv.Itoa(task.Config.Priority)
	}
	effort := ""
	if task.Config.Effort > 0 {
		effort = strconv.Itoa(task.Config.Effort)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&task.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Section").
				Options(options...).
				Value(&task.Section),
		),
		huh.NewGroup(
			huh.NewInput().Title("Assignee (optional)").Value(&task.Config.Assignee),
			dateInput("Due Date (YYYY-MM-DD, blank for none)", &task.Config.DueDate),
			huh.NewInput().Title("Priority 1-5 (optional)").Placeholder("3").Value(&priority).Validate(validatePriority),
			huh.NewInput().Title("Effort (optional)").Placeholder("1").Value(&effort).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Tags (comma-separated)").Value(&tags),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)

	if err := runForm(app, form); err != nil {
		return err
	}

	task.Config.Tag = splitList(tags)
	task.Config.Priority, _ = strconv.Atoi(priority)
	task.Config.Effort, _ = strconv.Atoi(effort)
	return nil
}

// runConfigForm edits the Configurations section in place.
func runConfigForm(app *App, cfg *domain.ProjectConfig) error {
	days := strconv.Itoa(cfg.WorkingDaysPerWeek)
	assignees := strings.Join(cfg.Assignees, ", ")
	tags := strings.Join(cfg.Tags, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			dateInput("Start Date", &cfg.StartDate),
			huh.NewInput().Title("Working Days per Week").Value(&days).Validate(validateWorkingDays),
			huh.NewInput().Title("Assignees (comma-separated)").Value(&assignees),
			huh.NewInput().Title("Tags (comma-separated)").Value(&tags),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)

	if err := runForm(app, form); err != nil {
		return err
	}

	cfg.WorkingDaysPerWeek, _ = strconv.Atoi(days)
	cfg.Assignees = splitList(assignees)
	cfg.Tags = splitList(tags)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validatePriority(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < domain.MinPriority || v > domain.MaxPriority {
		return fmt.Errorf("enter a number from %d to %d", domain.MinPriority, domain.MaxPriority)
	}
	return nil
}

func validateWorkingDays(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 7 {
		return fmt.Errorf("enter a number from 1 to 7")
	}
	return nil
}
