package markdown

import (
	"errors"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
)

// ErrBlockNotFound is returned by in-place writers when the block they
// should replace is not present in the text.
var ErrBlockNotFound = errors.New("block not found")

// Rewriter produces new document text from the current text. Regenerate
// discards the input and renders a model; the patch writers splice a
// single region and leave every other byte alone.
type Rewriter interface {
	Rewrite(content string) (string, error)
}

// Regenerate renders the whole document from Doc.
type Regenerate struct {
	Doc   Document
	Today string
}

func (r Regenerate) Rewrite(string) (string, error) {
	return Render(r.Doc, r.Today), nil
}

// ConfigPatch replaces the Configurations section, or inserts one in front
// of the first section when the document has none.
type ConfigPatch struct {
	Config domain.ProjectConfig
	Today  string
}

func (r ConfigPatch) Rewrite(content string) (string, error) {
	lines := strings.Split(content, "\n")
	block := renderConfigurations(r.Config, r.Today)

	if start, end, ok := sectionRegion(lines, SectionConfigurations); ok {
		return splice(lines, start, end, block), nil
	}
	return splice(lines, insertionPoint(lines, SectionConfigurations), -1, block), nil
}

// PostItPatch writes a single sticky note into the Canvas section. With
// Insert set the note is appended to the section, creating the section if
// needed; otherwise the block carrying the note's ID comment is replaced.
//
// Existing lists the section's notes in document order as parsed. On insert,
// any of their blocks without an ID comment gets one, so generated IDs
// survive the write.
type PostItPatch struct {
	PostIt   domain.PostIt
	Insert   bool
	Existing []domain.PostIt
}

func (r PostItPatch) Rewrite(content string) (string, error) {
	lines := strings.Split(content, "\n")
	block := renderPostIt(r.PostIt)

	start, end, ok := sectionRegion(lines, SectionCanvas)
	if r.Insert {
		if !ok {
			section := append([]string{SectionCanvas.Marker(), SectionCanvas.Heading(), ""}, block...)
			return splice(lines, insertionPoint(lines, SectionCanvas), -1, section), nil
		}
		lines, end = stampPostItIDs(lines, start, end, r.Existing)
		return splice(lines, end, -1, block), nil
	}
	if !ok {
		return "", ErrBlockNotFound
	}

	idLine := renderIDComment(r.PostIt.ID)
	for i := start; i < end; i++ {
		if strings.TrimSpace(lines[i]) != idLine {
			continue
		}
		from := i
		for from > start && !isEntityHeading(strings.TrimSpace(lines[from])) {
			from--
		}
		if !isEntityHeading(strings.TrimSpace(lines[from])) {
			return "", ErrBlockNotFound
		}
		to := i + 1
		for to < end && !isEntityHeading(strings.TrimSpace(lines[to])) {
			to++
		}
		return splice(lines, from, to, block), nil
	}
	return "", ErrBlockNotFound
}

// stampPostItIDs adds an ID comment under every note heading in
// lines[start:end] whose block has none, pairing headings with postIts by
// position. It returns the new lines and the shifted region end.
func stampPostItIDs(lines []string, start, end int, postIts []domain.PostIt) ([]string, int) {
	out := make([]string, 0, len(lines)+2*len(postIts))
	out = append(out, lines[:start]...)
	k := 0
	for i := start; i < end; i++ {
		out = append(out, lines[i])
		if !isEntityHeading(strings.TrimSpace(lines[i])) {
			continue
		}
		if k < len(postIts) && !blockHasID(lines[i+1:end], string(idalloc.PostIt)) {
			out = append(out, "", renderIDComment(postIts[k].ID))
		}
		k++
	}
	shifted := len(out)
	return append(out, lines[end:]...), shifted
}

// blockHasID reports whether the entity block starting at lines[0] carries
// an ID comment of the given class before the next entity heading.
func blockHasID(lines []string, class string) bool {
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if isEntityHeading(t) {
			return false
		}
		if _, ok := classIDComment(t, class); ok {
			return true
		}
	}
	return false
}

// sectionRegion locates a section from its marker (or its heading when the
// marker is missing) up to the line where its scanner would stop.
func sectionRegion(lines []string, section Section) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == section.Marker() && indentOf(line) == 0 {
			next := i + 1
			for next < len(lines) && strings.TrimSpace(lines[next]) == "" {
				next++
			}
			if next < len(lines) && strings.TrimSpace(lines[next]) == section.Heading() {
				start = i
				end = next + 1
				break
			}
			continue
		}
		if trimmed == section.Heading() && indentOf(line) == 0 {
			start = i
			end = i + 1
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	for end < len(lines) {
		trimmed := strings.TrimSpace(lines[end])
		if section == SectionBoard && indentOf(lines[end]) > 0 {
			end++
			continue
		}
		if section == SectionNotes && isNotesEnd(trimmed) {
			break
		}
		if section != SectionNotes && isSectionEnd(trimmed, section) {
			break
		}
		end++
	}
	// A trailing empty element stands for the final newline; keep it after
	// the region.
	if end == len(lines) && end > start && lines[end-1] == "" {
		end--
	}
	return start, end, true
}

// insertionPoint finds where a missing section goes: in front of the first
// present section that follows it in SectionOrder, or at the end.
func insertionPoint(lines []string, section Section) int {
	after := false
	var later []Section
	for _, s := range SectionOrder {
		if after {
			later = append(later, s)
		}
		if s == section {
			after = true
		}
	}
	for _, s := range later {
		if start, _, ok := sectionRegion(lines, s); ok {
			return start
		}
	}
	end := len(lines)
	if end > 0 && lines[end-1] == "" {
		end--
	}
	return end
}

// splice replaces lines[from:to] with block. to < 0 means insert at from.
// A blank separator line is added in front of block when the preceding
// line is not blank.
func splice(lines []string, from, to int, block []string) string {
	if to < 0 {
		to = from
	}
	out := make([]string, 0, len(lines)+len(block)+1)
	out = append(out, lines[:from]...)
	if from > 0 && strings.TrimSpace(lines[from-1]) != "" {
		out = append(out, "")
	}
	out = append(out, block...)
	rest := lines[to:]
	// block already ends with the blank line that the final newline needs.
	if len(rest) == 1 && rest[0] == "" && len(block) > 0 && block[len(block)-1] == "" {
		rest = nil
	}
	out = append(out, rest...)
	return strings.Join(out, "\n")
}
