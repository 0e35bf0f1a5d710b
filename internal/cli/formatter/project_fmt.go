package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// FormatProjectSummary renders the project card: metadata on the left,
// per-section progress on the right.
func FormatProjectSummary(sum *service.ProjectSummary) string {
	var left strings.Builder
	left.WriteString(StyleBold.Render(sum.Name) + "\n")
	for _, line := range sum.Description {
		left.WriteString(Dim(Truncate(line, 60)) + "\n")
	}
	left.WriteString("\n")
	left.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START   "), StyleFg.Render(sum.Config.StartDate)))
	left.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("WEEKDAYS"), sum.Config.WorkingDaysPerWeek))
	left.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TASKS   "), fmt.Sprintf("%d/%d done", sum.Completed, sum.Tasks)))
	left.WriteString(fmt.Sprintf("%s  %d notes · %d goals · %d post-its · %d mindmaps",
		StyleDim.Render("CONTENT "), sum.Notes, sum.Goals, sum.PostIts, sum.Mindmaps))

	rows := make([][]string, 0, len(sum.Sections))
	for _, s := range sum.Sections {
		rows = append(rows, []string{s.Section, fmt.Sprintf("%d/%d", s.Completed, s.Total), ProgressBar(s.Completed, s.Total, 12)})
	}
	right := RenderTable([]string{"SECTION", "DONE", "PROGRESS"}, rows)

	combined := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "    ", strings.TrimRight(right, "\n"))
	return RenderBox("", combined)
}

// ProgressBar renders done/total as a fixed-width bar.
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	return StyleGreen.Render(strings.Repeat("█", filled)) + Dim(strings.Repeat("░", width-filled))
}

// FormatConfig renders the Configurations section.
func FormatConfig(cfg domain.ProjectConfig) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START DATE  "), cfg.StartDate))
	b.WriteString(fmt.Sprintf("%s  %d\n", StyleDim.Render("WORKING DAYS"), cfg.WorkingDaysPerWeek))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ASSIGNEES   "), OrDash(strings.Join(cfg.Assignees, ", "))))
	b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("TAGS        "), OrDash(strings.Join(cfg.Tags, ", "))))
	return RenderBox("Configuration", b.String())
}

// FormatSections lists Board sections with their task counts.
func FormatSections(sum *service.ProjectSummary) string {
	rows := make([][]string, 0, len(sum.Sections))
	for i, s := range sum.Sections {
		rows = append(rows, []string{itoa(i + 1), Bold(s.Section), itoa(s.Total)})
	}
	return RenderTable([]string{"#", "SECTION", "TASKS"}, rows)
}
