package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorPink   = lipgloss.Color("#f5a3b8")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorOrange
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GoalStatusPill returns a colored indicator such as "● AT RISK".
func GoalStatusPill(status domain.GoalStatus) string {
	label := "● " + strings.ToUpper(strings.ReplaceAll(string(status), "-", " "))
	switch status {
	case domain.GoalOnTrack, domain.GoalSuccess:
		return StyleGreen.Render(label)
	case domain.GoalAtRisk:
		return StyleYellow.Render(label)
	case domain.GoalLate, domain.GoalFailed:
		return StyleRed.Render(label)
	case domain.GoalPlanning:
		return StyleBlue.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// PostItSwatch renders a colored square followed by the color name.
func PostItSwatch(color domain.PostItColor) string {
	var c lipgloss.Color
	switch color {
	case domain.ColorYellow:
		c = ColorYellow
	case domain.ColorPink:
		c = ColorPink
	case domain.ColorBlue:
		c = ColorBlue
	case domain.ColorGreen:
		c = ColorGreen
	case domain.ColorPurple:
		c = ColorPurple
	case domain.ColorOrange:
		c = ColorOrange
	default:
		c = ColorDim
	}
	return lipgloss.NewStyle().Foreground(c).Render("■ " + string(color))
}

// PriorityBadge renders P1..P5; P1 and P2 stand out. Zero renders as "--".
func PriorityBadge(priority int) string {
	if priority == 0 {
		return Dim("--")
	}
	label := fmt.Sprintf("P%d", priority)
	switch {
	case priority == 1:
		return StyleRed.Render(label)
	case priority == 2:
		return StyleYellow.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
