package markdown

import (
	"strings"
	"time"

	"github.com/alexanderramin/mdplanner/internal/domain"
	"github.com/alexanderramin/mdplanner/internal/idalloc"
)

// Parser turns document text into a Document. Now stamps note timestamps
// and the default start date; it defaults to time.Now.
type Parser struct {
	Now func() time.Time
}

func (p Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Parse never fails: unrecognized or malformed lines are skipped and every
// well-formed entity is returned. Entities without an ID get one from a
// single allocator seeded with content, so IDs within one parse are unique.
func (p Parser) Parse(content string) *Document {
	now := p.now()
	lines := SplitLines(content)
	alloc := idalloc.New(content)

	doc := &Document{
		Info:   domain.EmptyProjectInfo(),
		Config: domain.DefaultProjectConfig(now),
		Tasks:  []domain.Task{},
	}
	stamp := Timestamp(now)

	var (
		titled      bool
		inSections  bool
		description []string
	)
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if _, ok := sectionForMarker(trimmed); ok {
			inSections = true
			i++
			continue
		}
		if section, ok := sectionForHeading(trimmed); ok {
			inSections = true
			i = p.scanSection(doc, section, lines, i+1, alloc, stamp)
			continue
		}
		if inSections {
			// Unknown content between sections is not part of the model.
			i++
			continue
		}
		if !titled {
			if isTopHeading(trimmed) {
				doc.Info.Name = strings.TrimSpace(trimmed[2:])
				titled = true
			}
			i++
			continue
		}
		description = append(description, strings.TrimRight(lines[i], " \t"))
		i++
	}

	doc.Info.Description = append([]string{}, trimBlankLines(description)...)
	if len(doc.Sections) == 0 {
		doc.Sections = append([]string{}, domain.DefaultBoardSections...)
	}
	return doc
}

func (p Parser) scanSection(doc *Document, section Section, lines []string, start int, alloc *idalloc.Allocator, stamp string) int {
	switch section {
	case SectionConfigurations:
		cfg, next := scanConfigurations(lines, start, doc.Config)
		doc.Config = cfg
		return next
	case SectionNotes:
		notes, next := scanNotes(lines, start, alloc, stamp)
		doc.Info.Notes = append(doc.Info.Notes, notes...)
		return next
	case SectionGoals:
		goals, next := scanGoals(lines, start, alloc)
		doc.Info.Goals = append(doc.Info.Goals, goals...)
		return next
	case SectionCanvas:
		postIts, next := scanCanvas(lines, start, alloc)
		doc.Info.PostIts = append(doc.Info.PostIts, postIts...)
		return next
	case SectionMindmap:
		mindmaps, next := scanMindmaps(lines, start, alloc)
		doc.Info.Mindmaps = append(doc.Info.Mindmaps, mindmaps...)
		return next
	case SectionBoard:
		tasks, sections, next := scanBoard(lines, start, alloc)
		doc.Tasks = append(doc.Tasks, tasks...)
		for _, s := range sections {
			if !contains(doc.Sections, s) {
				doc.Sections = append(doc.Sections, s)
			}
		}
		return next
	}
	return start
}

// Parse uses a Parser with the wall clock.
func Parse(content string) *Document {
	return Parser{}.Parse(content)
}
