package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title     string
	ID        string // shown dimmed in front of the title when set
	Level     int
	IsLast    bool
	Completed bool
	Detail    string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders TreeItems as an indented tree using box-drawing
// connectors. Items are expected in pre-order with IsLast set on the final
// sibling of each parent. Completed items get a green ✔ and a dimmed title;
// details are aligned in a column to the right.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		detail  string
	}
	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// open[d] records whether the ancestor at depth d still has siblings
	// below, which decides between a pipe and blank indent.
	var open []bool
	for idx, item := range items {
		if item.Level < len(open) {
			open = open[:item.Level]
		}
		var prefix strings.Builder
		if item.Level > 0 {
			for d := 1; d < item.Level; d++ {
				if d < len(open) && !open[d] {
					prefix.WriteString(treeBlank)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		for len(open) <= item.Level {
			open = append(open, true)
		}
		open[item.Level] = !item.IsLast

		title := item.Title
		if item.Completed {
			title = StyleGreen.Render("✔ ") + Dim(title)
		}
		if item.ID != "" {
			title = Dim("("+item.ID+") ") + title
		}
		content := prefix.String() + title
		lines[idx].content = content
		lines[idx].detail = item.Detail
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.detail == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.detail + "\n")
	}
	return b.String()
}
