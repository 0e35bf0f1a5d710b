package markdown

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
)

// mindmapIndent is the number of spaces per nesting level.
const mindmapIndent = 2

var bulletPattern = regexp.MustCompile(`^(\s*)[-*+] (.+)$`)

// ParseOutline reads an indented bullet list into outline entries. Lines
// that are not bullets are ignored.
func ParseOutline(lines []string) []domain.OutlineEntry {
	var out []domain.OutlineEntry
	for _, line := range lines {
		m := bulletPattern.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		indent := strings.ReplaceAll(m[1], "\t", strings.Repeat(" ", mindmapIndent))
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		out = append(out, domain.OutlineEntry{Text: text, Level: len(indent) / mindmapIndent})
	}
	return out
}

// RenderOutline writes entries as an indented bullet list.
func RenderOutline(entries []domain.OutlineEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.Repeat(" ", e.Level*mindmapIndent)+"- "+e.Text)
	}
	return out
}

func scanMindmaps(lines []string, start int, alloc *idalloc.Allocator) ([]domain.Mindmap, int) {
	var mindmaps []domain.Mindmap
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isSectionEnd(trimmed, SectionMindmap) {
			break
		}
		if !isEntityHeading(trimmed) {
			i++
			continue
		}
		m := domain.Mindmap{Title: strings.TrimSpace(trimmed[3:])}
		i++

		var body []string
		for i < len(lines) {
			t := strings.TrimSpace(lines[i])
			if isEntityHeading(t) || isSectionEnd(t, SectionMindmap) {
				break
			}
			if m.ID == "" {
				if id, ok := classIDComment(t, string(idalloc.Mindmap)); ok {
					m.ID = id
					i++
					continue
				}
			}
			body = append(body, lines[i])
			i++
		}
		if m.ID == "" {
			m.ID = alloc.Next(idalloc.Mindmap)
		}
		m.Nodes = domain.LinkMindmapNodes(m.ID, ParseOutline(body))
		mindmaps = append(mindmaps, m)
	}
	return mindmaps, i
}

func renderMindmaps(mindmaps []domain.Mindmap) []string {
	out := []string{SectionMindmap.Marker(), SectionMindmap.Heading(), ""}
	for _, m := range mindmaps {
		out = append(out, "## "+m.Title, "", renderIDComment(m.ID))
		out = append(out, RenderOutline(m.Outline())...)
		out = append(out, "")
	}
	return out
}
