package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
	"github.com/alexanderramin/mdplanner/internal/inlineconfig"
)

// postItHeaderRunes caps the heading summary of a sticky note.
const postItHeaderRunes = 40

func isPostItBodyEnd(trimmed string) bool {
	return isEntityHeading(trimmed) || isSectionEnd(trimmed, SectionCanvas)
}

func scanCanvas(lines []string, start int, alloc *idalloc.Allocator) ([]domain.PostIt, int) {
	var postIts []domain.PostIt
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isSectionEnd(trimmed, SectionCanvas) {
			break
		}
		if !isEntityHeading(trimmed) {
			i++
			continue
		}
		var p domain.PostIt
		header, cfg, _ := inlineconfig.SplitTrailing(strings.TrimSpace(trimmed[3:]))
		inlineconfig.DecodePostIt(inlineconfig.Parse(cfg), &p)
		i++

		var body []string
		for i < len(lines) {
			t := strings.TrimSpace(lines[i])
			if isPostItBodyEnd(t) {
				break
			}
			i++
			if p.ID == "" {
				if id, ok := classIDComment(t, string(idalloc.PostIt)); ok {
					p.ID = id
					// Anything between the heading and the ID comment is not content.
					body = body[:0]
					continue
				}
			}
			body = append(body, strings.TrimRight(lines[i-1], " \t"))
		}
		if p.ID == "" {
			p.ID = alloc.Next(idalloc.PostIt)
		}

		content := trimBlankLines(body)
		if len(content) > 0 {
			p.Content = strings.Join(content, domain.PostItLineBreak)
		} else {
			p.Content = header
		}
		postIts = append(postIts, p)
	}
	return postIts, i
}

// postItHeader summarizes the first visual line of the content.
func postItHeader(content string) string {
	lines := domain.PostItLines(content)
	if len(lines) == 0 {
		return ""
	}
	first := strings.TrimSpace(lines[0])
	if utf8.RuneCountInString(first) > postItHeaderRunes {
		runes := []rune(first)
		first = strings.TrimSpace(string(runes[:postItHeaderRunes])) + "..."
	}
	return first
}

func renderPostIt(p domain.PostIt) []string {
	heading := "## "
	if header := postItHeader(p.Content); header != "" {
		heading += header + " "
	}
	heading += inlineconfig.Format(inlineconfig.EncodePostIt(p))
	out := []string{heading, "", renderIDComment(p.ID)}
	out = append(out, trimBlankLines(domain.PostItLines(p.Content))...)
	return append(out, "")
}

func renderCanvas(postIts []domain.PostIt) []string {
	out := []string{SectionCanvas.Marker(), SectionCanvas.Heading(), ""}
	for _, p := range postIts {
		out = append(out, renderPostIt(p)...)
	}
	return out
}
