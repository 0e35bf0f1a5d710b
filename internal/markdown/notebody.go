package markdown

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/inlineconfig"
)

// Enhanced notes structure their content with comment markers:
//
//	<!-- paragraph -->
//	Free text.
//
//	<!-- custom-section: Roadmap {type: timeline} -->
//	### Q1 {date: 2024-03-31}
//	Ship v1.
//	<!-- /custom-section -->
//
// The body is scanned with the same contract as document sections: each
// block scanner takes the lines and a start index and returns the block
// and the index to resume from.

const (
	paragraphMarker  = "<!-- paragraph -->"
	customSectionEnd = "<!-- /custom-section -->"
	itemPrefix       = "### "
)

var customSectionPattern = regexp.MustCompile(`^<!-- custom-section:\s*(.*?)\s*-->$`)

func isBlockStart(trimmed string) bool {
	return trimmed == paragraphMarker || customSectionPattern.MatchString(trimmed)
}

// IsEnhancedNote reports whether content carries block markers.
func IsEnhancedNote(content string) bool {
	for _, line := range SplitLines(content) {
		if isBlockStart(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// ParseNoteBody splits note content into blocks. Text in front of the first
// marker becomes a paragraph. A custom section without a closing marker
// ends at the next block marker.
func ParseNoteBody(content string) []domain.NoteBlock {
	lines := SplitLines(content)
	var blocks []domain.NoteBlock

	lead, i := scanParagraph(lines, 0)
	if lead.Content != "" {
		blocks = append(blocks, lead)
	}
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == paragraphMarker:
			var p domain.NoteBlock
			p, i = scanParagraph(lines, i+1)
			blocks = append(blocks, p)
		case customSectionPattern.MatchString(trimmed):
			var s domain.NoteBlock
			s, i = scanCustomSection(lines, i)
			blocks = append(blocks, s)
		default:
			i++
		}
	}
	return blocks
}

func scanParagraph(lines []string, start int) (domain.NoteBlock, int) {
	i := start
	var body []string
	for i < len(lines) && !isBlockStart(strings.TrimSpace(lines[i])) {
		body = append(body, strings.TrimRight(lines[i], " \t"))
		i++
	}
	return domain.NoteBlock{
		Kind:    domain.BlockParagraph,
		Content: strings.Join(trimBlankLines(body), "\n"),
	}, i
}

// scanCustomSection reads from the opening marker at start. Lines before
// the first `### ` item are not part of any item and are dropped.
func scanCustomSection(lines []string, start int) (domain.NoteBlock, int) {
	m := customSectionPattern.FindStringSubmatch(strings.TrimSpace(lines[start]))
	title, cfg, ok := inlineconfig.SplitTrailing(m[1])
	if !ok {
		title = m[1]
	}
	block := domain.NoteBlock{
		Kind:   domain.BlockCustomSection,
		Title:  strings.TrimSpace(title),
		Layout: domain.SectionTabs,
	}
	if v, found := inlineconfig.Parse(cfg).Get("type"); found && domain.ValidCustomSectionTypes[v] {
		block.Layout = domain.CustomSectionType(v)
	}

	i := start + 1
	var (
		item *domain.SectionItem
		body []string
	)
	flush := func() {
		if item == nil {
			return
		}
		item.Content = strings.Join(trimBlankLines(body), "\n")
		block.Items = append(block.Items, *item)
		item, body = nil, nil
	}
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == customSectionEnd {
			i++
			break
		}
		if isBlockStart(trimmed) {
			break
		}
		if strings.HasPrefix(trimmed, itemPrefix) {
			flush()
			item = parseSectionItem(strings.TrimSpace(trimmed[len(itemPrefix):]))
		} else if item != nil {
			body = append(body, strings.TrimRight(lines[i], " \t"))
		}
		i++
	}
	flush()
	return block, i
}

func parseSectionItem(heading string) *domain.SectionItem {
	title, cfg, ok := inlineconfig.SplitTrailing(heading)
	if !ok {
		return &domain.SectionItem{Title: heading}
	}
	item := &domain.SectionItem{Title: strings.TrimSpace(title)}
	for _, kv := range inlineconfig.Parse(cfg) {
		item.Attributes = append(item.Attributes, domain.Attribute{Key: kv.Key, Value: kv.Value})
	}
	return item
}

// RenderNoteBody writes blocks back into note content.
func RenderNoteBody(blocks []domain.NoteBlock) string {
	var out []string
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "")
		}
		switch b.Kind {
		case domain.BlockCustomSection:
			out = append(out, renderCustomSection(b)...)
		default:
			out = append(out, paragraphMarker)
			out = append(out, trimBlankLines(SplitLines(b.Content))...)
		}
	}
	return strings.Join(out, "\n")
}

func renderCustomSection(b domain.NoteBlock) []string {
	layout := b.Layout
	if layout == "" {
		layout = domain.SectionTabs
	}
	header := strings.TrimSpace(b.Title)
	if header != "" {
		header += " "
	}
	header += inlineconfig.Format(inlineconfig.Pairs{{Key: "type", Value: string(layout)}})
	out := []string{"<!-- custom-section: " + header + " -->"}
	for _, item := range b.Items {
		heading := itemPrefix + item.Title
		pairs := make(inlineconfig.Pairs, 0, len(item.Attributes))
		for _, a := range item.Attributes {
			pairs = append(pairs, inlineconfig.Pair{Key: a.Key, Value: a.Value})
		}
		if cfg := inlineconfig.Format(pairs); cfg != "" {
			heading += " " + cfg
		}
		out = append(out, heading)
		out = append(out, trimBlankLines(SplitLines(item.Content))...)
		out = append(out, "")
	}
	return append(out, customSectionEnd)
}
