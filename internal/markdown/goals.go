package markdown

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
	"github.com/alexanderramin/mdplanner/internal/inlineconfig"
)

// goalHeadingPattern anchors a goal heading: a title followed by a
// non-empty config block at the end of the line.
var goalHeadingPattern = regexp.MustCompile(`^## (.+?)\s*\{(.+)\}$`)

func isGoalBodyEnd(trimmed string) bool {
	return isEntityHeading(trimmed) || isSectionEnd(trimmed, SectionGoals)
}

// scanGoals only accepts `## Title {config}` headings; other `## ` lines
// and their bodies are skipped without producing a goal.
func scanGoals(lines []string, start int, alloc *idalloc.Allocator) ([]domain.Goal, int) {
	var goals []domain.Goal
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isSectionEnd(trimmed, SectionGoals) {
			break
		}
		if !isEntityHeading(trimmed) || !goalHeadingPattern.MatchString(trimmed) {
			i++
			continue
		}
		title, cfg, ok := inlineconfig.SplitTrailing(strings.TrimSpace(trimmed[3:]))
		if !ok || title == "" {
			i++
			continue
		}

		goal := domain.NewGoal(title)
		inlineconfig.DecodeGoal(inlineconfig.Parse(cfg), &goal)
		i++

		var description []string
		for i < len(lines) {
			t := strings.TrimSpace(lines[i])
			if isGoalBodyEnd(t) {
				break
			}
			i++
			if t == "" {
				continue
			}
			if goal.ID == "" {
				if id, ok := classIDComment(t, string(idalloc.Goal)); ok {
					goal.ID = id
					continue
				}
			}
			description = append(description, t)
		}
		if goal.ID == "" {
			goal.ID = alloc.Next(idalloc.Goal)
		}
		goal.Description = strings.Join(description, "\n")
		goals = append(goals, goal)
	}
	return goals, i
}

func renderGoals(goals []domain.Goal) []string {
	out := []string{SectionGoals.Marker(), SectionGoals.Heading(), ""}
	for _, g := range goals {
		heading := "## " + g.Title
		if cfg := inlineconfig.Format(inlineconfig.EncodeGoal(withGoalDefaults(g))); cfg != "" {
			heading += " " + cfg
		}
		out = append(out, heading, "", renderIDComment(g.ID))
		for _, line := range SplitLines(strings.TrimSpace(g.Description)) {
			if t := strings.TrimSpace(line); t != "" {
				out = append(out, t)
			}
		}
		out = append(out, "")
	}
	return out
}

// withGoalDefaults guarantees a non-empty config block, since a heading
// without one would not parse back as a goal.
func withGoalDefaults(g domain.Goal) domain.Goal {
	if g.Type == "" {
		g.Type = domain.GoalProject
	}
	if g.Status == "" {
		g.Status = domain.GoalPlanning
	}
	return g
}
