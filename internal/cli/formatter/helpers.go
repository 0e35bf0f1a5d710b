package formatter

import (
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Checkbox renders the completion state of a task.
func Checkbox(completed bool) string {
	if completed {
		return StyleGreen.Render("[✔]")
	}
	return StyleDim.Render("[ ]")
}

// Truncate shortens s to at most n visible runes, marking the cut with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// OrDash returns s, or a dimmed "--" when s is empty.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}

// TaskBadges lists the set attributes of a task config as short labels.
func TaskBadges(cfg domain.TaskConfig) string {
	var parts []string
	if cfg.Priority != 0 {
		parts = append(parts, PriorityBadge(cfg.Priority))
	}
	if cfg.DueDate != "" {
		parts = append(parts, StyleYellow.Render("due "+cfg.DueDate))
	}
	if cfg.Assignee != "" {
		parts = append(parts, StylePurple.Render("@"+cfg.Assignee))
	}
	for _, tag := range cfg.Tag {
		parts = append(parts, StyleBlue.Render("#"+tag))
	}
	if cfg.Effort != 0 {
		parts = append(parts, Dim("effort "+itoa(cfg.Effort)))
	}
	if len(cfg.BlockedBy) > 0 {
		parts = append(parts, StyleRed.Render("blocked by "+strings.Join(cfg.BlockedBy, ",")))
	}
	if cfg.Milestone != "" {
		parts = append(parts, StyleGreen.Render("◆ "+cfg.Milestone))
	}
	return strings.Join(parts, " ")
}
