package markdown

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/inlineconfig"
)

const (
	startDateLabel   = "Start Date:"
	workingDaysLabel = "Working Days:"
	assigneesLabel   = "Assignees:"
	tagsLabel        = "Tags:"
)

// scanConfigurations reads `Key: value` lines and the Assignees/Tags list
// blocks. A blank line closes the current list. cfg carries the defaults.
func scanConfigurations(lines []string, start int, cfg domain.ProjectConfig) (domain.ProjectConfig, int) {
	var list *[]string
	i := start
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if isSectionEnd(line, SectionConfigurations) {
			break
		}
		switch {
		case strings.HasPrefix(line, startDateLabel):
			if v := strings.TrimSpace(line[len(startDateLabel):]); v != "" {
				cfg.StartDate = v
			}
		case strings.HasPrefix(line, workingDaysLabel):
			n, ok := inlineconfig.LeadingInt(line[len(workingDaysLabel):])
			if !ok || n <= 0 {
				n = domain.DefaultWorkingDays
			}
			cfg.WorkingDaysPerWeek = n
		case line == assigneesLabel:
			list = &cfg.Assignees
		case line == tagsLabel:
			list = &cfg.Tags
		case strings.HasPrefix(line, "- ") && list != nil:
			if v := strings.TrimSpace(line[2:]); v != "" {
				*list = append(*list, v)
			}
		case line == "":
			list = nil
		}
	}
	cfg.Assignees = dedupe(cfg.Assignees)
	cfg.Tags = dedupe(cfg.Tags)
	return cfg, i
}

// renderConfigurationsBody writes the section content without the
// boundary marker or heading. It ends with a blank line.
func renderConfigurationsBody(cfg domain.ProjectConfig, today string) []string {
	out := []string{startDateLabel + " " + domain.Coalesce(cfg.StartDate, today)}
	if cfg.WorkingDaysPerWeek > 0 && cfg.WorkingDaysPerWeek != domain.DefaultWorkingDays {
		out = append(out, workingDaysLabel+" "+strconv.Itoa(cfg.WorkingDaysPerWeek))
	}
	out = append(out, "")
	if assignees := dedupe(cfg.Assignees); len(assignees) > 0 {
		out = append(out, assigneesLabel)
		for _, a := range assignees {
			out = append(out, "- "+a)
		}
		out = append(out, "")
	}
	if tags := dedupe(cfg.Tags); len(tags) > 0 {
		out = append(out, tagsLabel)
		for _, t := range tags {
			out = append(out, "- "+t)
		}
		out = append(out, "")
	}
	return out
}

func renderConfigurations(cfg domain.ProjectConfig, today string) []string {
	out := []string{SectionConfigurations.Marker(), SectionConfigurations.Heading(), ""}
	return append(out, renderConfigurationsBody(cfg, today)...)
}
