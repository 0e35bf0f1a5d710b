package markdown

import (
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
)

// noteLookahead is how many lines after a `## ` line are searched for a
// note ID comment before the heading is treated as note content.
const noteLookahead = 4

// isNotesEnd differs from isSectionEnd: note bodies may hold their own
// `#` headings, so only boundary markers and known section headings end
// the section.
func isNotesEnd(trimmed string) bool {
	if _, ok := sectionForMarker(trimmed); ok {
		return true
	}
	s, ok := sectionForHeading(trimmed)
	return ok && s != SectionNotes
}

// startsNewNote reports whether the `## ` line at i opens a new note, which
// is only the case when a note ID comment follows within the lookahead.
func startsNewNote(lines []string, i int) bool {
	end := min(i+1+noteLookahead, len(lines))
	for k := i + 1; k < end; k++ {
		trimmed := strings.TrimSpace(lines[k])
		if _, ok := classIDComment(trimmed, string(idalloc.Note)); ok {
			return true
		}
		if strings.HasPrefix(trimmed, "##") || isNotesEnd(trimmed) {
			return false
		}
	}
	return false
}

func scanNotes(lines []string, start int, alloc *idalloc.Allocator, now string) ([]domain.Note, int) {
	var notes []domain.Note
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isNotesEnd(trimmed) {
			break
		}
		if !isEntityHeading(trimmed) {
			i++
			continue
		}

		title := strings.TrimSpace(trimmed[3:])
		i++
		var body []string
		for i < len(lines) {
			t := strings.TrimSpace(lines[i])
			if isNotesEnd(t) {
				break
			}
			if isEntityHeading(t) && startsNewNote(lines, i) {
				break
			}
			body = append(body, strings.TrimRight(lines[i], " \t"))
			i++
		}

		id := ""
		content := make([]string, 0, len(body))
		for _, line := range body {
			if id == "" {
				if found, ok := classIDComment(strings.TrimSpace(line), string(idalloc.Note)); ok {
					id = found
					continue
				}
			}
			content = append(content, line)
		}
		if id == "" {
			id = alloc.Next(idalloc.Note)
		}
		notes = append(notes, domain.Note{
			ID:        id,
			Title:     title,
			Content:   strings.Join(trimBlankLines(content), "\n"),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return notes, i
}

func renderNotes(notes []domain.Note) []string {
	out := []string{SectionNotes.Marker(), SectionNotes.Heading(), ""}
	for _, n := range notes {
		out = append(out, "## "+n.Title, "", renderIDComment(n.ID))
		out = append(out, trimBlankLines(SplitLines(n.Content))...)
		out = append(out, "")
	}
	return out
}
