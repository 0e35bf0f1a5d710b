package domain

import "strings"

// PostItLineBreak separates visual lines inside sticky note content.
const PostItLineBreak = "<br>"

type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type PostIt struct {
	ID       string      `json:"id" yaml:"id"`
	Content  string      `json:"content" yaml:"content"`
	Color    PostItColor `json:"color" yaml:"color"`
	Position Position    `json:"position" yaml:"position"`
	Size     *Size       `json:"size,omitempty" yaml:"size,omitempty"`
}

type PostItPatch struct {
	Content  *string      `json:"content,omitempty"`
	Color    *PostItColor `json:"color,omitempty"`
	Position *Position    `json:"position,omitempty"`
	Size     *Size        `json:"size,omitempty"`
}

func (p PostItPatch) Apply(pi *PostIt) {
	if p.Content != nil {
		pi.Content = NormalizePostItContent(*p.Content)
	}
	if p.Color != nil {
		pi.Color = *p.Color
	}
	if p.Position != nil {
		pi.Position = *p.Position
	}
	if p.Size != nil {
		size := *p.Size
		pi.Size = &size
	}
}

// NormalizePostItContent converts newlines to the stored <br> separator.
func NormalizePostItContent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", PostItLineBreak)
}

// PostItLines splits stored content back into visual lines.
func PostItLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(NormalizePostItContent(content), PostItLineBreak)
}
