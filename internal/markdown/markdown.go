// Package markdown maps a project document to the domain model and back.
//
// A document is a `# Name` title, a free-text description and six fixed
// sections, each introduced by an HTML comment boundary and a matching
// heading:
//
//	<!-- Configurations -->
//	# Configurations
//
// Every section has a scanner that consumes the lines of its region and a
// renderer that writes the region back in the same conventions, so that
// parse(render(parse(text))) equals parse(text).
package markdown

import (
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
)

// Section names a fixed top-level region of the document.
type Section string

const (
	SectionConfigurations Section = "Configurations"
	SectionNotes          Section = "Notes"
	SectionGoals          Section = "Goals"
	SectionCanvas         Section = "Canvas"
	SectionMindmap        Section = "Mindmap"
	SectionBoard          Section = "Board"
)

// SectionOrder is the order in which sections are written.
var SectionOrder = []Section{
	SectionConfigurations,
	SectionNotes,
	SectionGoals,
	SectionCanvas,
	SectionMindmap,
	SectionBoard,
}

// Marker returns the boundary comment, e.g. `<!-- Board -->`.
func (s Section) Marker() string { return "<!-- " + string(s) + " -->" }

// Heading returns the section heading, e.g. `# Board`.
func (s Section) Heading() string { return "# " + string(s) }

func sectionForMarker(trimmed string) (Section, bool) {
	for _, s := range SectionOrder {
		if trimmed == s.Marker() {
			return s, true
		}
	}
	return "", false
}

func sectionForHeading(trimmed string) (Section, bool) {
	for _, s := range SectionOrder {
		if trimmed == s.Heading() {
			return s, true
		}
	}
	return "", false
}

// isTopHeading reports a level-one heading (`# X`, not `## X`).
func isTopHeading(trimmed string) bool {
	return strings.HasPrefix(trimmed, "# ")
}

func isEntityHeading(trimmed string) bool {
	return strings.HasPrefix(trimmed, "## ")
}

// isSectionEnd is the common termination rule: any boundary marker, or a
// top-level heading other than the section's own.
func isSectionEnd(trimmed string, own Section) bool {
	if _, ok := sectionForMarker(trimmed); ok {
		return true
	}
	return isTopHeading(trimmed) && trimmed != own.Heading()
}

var idCommentPattern = regexp.MustCompile(`^<!-- id: ([A-Za-z0-9_-]+) -->$`)

// idComment returns the ID carried by an `<!-- id: X -->` line.
func idComment(trimmed string) (string, bool) {
	m := idCommentPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// classIDComment matches an ID comment of one entity class only.
func classIDComment(trimmed, class string) (string, bool) {
	id, ok := idComment(trimmed)
	if !ok || !strings.HasPrefix(id, class+"_") {
		return "", false
	}
	return id, true
}

func renderIDComment(id string) string {
	return "<!-- id: " + id + " -->"
}

// SplitLines splits document text on newlines, dropping carriage returns.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// trimBlankLines removes blank lines at both ends.
func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}

// Timestamp formats t the way note timestamps are exchanged (ISO 8601, UTC,
// millisecond precision).
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// Document is the full in-memory form of one project file.
type Document struct {
	Info   domain.ProjectInfo
	Config domain.ProjectConfig
	Tasks  []domain.Task
	// Sections are the Board columns in document order.
	Sections []string
}
