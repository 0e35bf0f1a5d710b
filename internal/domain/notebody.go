package domain

type NoteBlockKind string

const (
	BlockParagraph     NoteBlockKind = "paragraph"
	BlockCustomSection NoteBlockKind = "custom-section"
)

type CustomSectionType string

const (
	SectionTabs      CustomSectionType = "tabs"
	SectionTimeline  CustomSectionType = "timeline"
	SectionSplitView CustomSectionType = "split-view"
)

// ValidCustomSectionTypes is the canonical set of custom section layouts.
var ValidCustomSectionTypes = map[string]bool{
	"tabs": true, "timeline": true, "split-view": true,
}

// Attribute is one ordered key/value pair of an item's inline config.
type Attribute struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// SectionItem is a tab, a timeline entry or a split-view pane.
type SectionItem struct {
	Title      string      `json:"title" yaml:"title"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Content    string      `json:"content" yaml:"content"`
}

// NoteBlock is one block of an enhanced note. Paragraphs use Content;
// custom sections use Title, Layout and Items.
type NoteBlock struct {
	Kind    NoteBlockKind     `json:"kind" yaml:"kind"`
	Content string            `json:"content,omitempty" yaml:"content,omitempty"`
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Layout  CustomSectionType `json:"layout,omitempty" yaml:"layout,omitempty"`
	Items   []SectionItem     `json:"items,omitempty" yaml:"items,omitempty"`
}
