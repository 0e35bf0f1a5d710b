package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mdplanner/internal/domain"
)

// FormatNoteList renders notes as a table with a one-line preview.
func FormatNoteList(notes []domain.Note) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		preview := strings.SplitN(strings.TrimSpace(n.Content), "\n", 2)[0]
		rows = append(rows, []string{Dim(n.ID), Bold(n.Title), Dim(Truncate(preview, 48))})
	}
	return RenderBox("Notes", RenderTable([]string{"ID", "TITLE", "PREVIEW"}, rows))
}

// FormatNote renders a note. Enhanced notes are shown block by block.
func FormatNote(n domain.Note, blocks []domain.NoteBlock) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(n.Title) + "  " + Dim(n.ID) + "\n")
	if n.UpdatedAt != "" {
		b.WriteString(Dim("updated "+n.UpdatedAt) + "\n")
	}
	for _, block := range blocks {
		b.WriteString("\n")
		switch block.Kind {
		case domain.BlockCustomSection:
			b.WriteString(Header(fmt.Sprintf("%s [%s]", block.Title, block.Layout)) + "\n")
			for _, item := range block.Items {
				b.WriteString(StyleBlue.Render("▸ "+item.Title))
				for _, attr := range item.Attributes {
					b.WriteString(Dim(fmt.Sprintf(" %s=%s", attr.Key, attr.Value)))
				}
				b.WriteString("\n")
				if item.Content != "" {
					b.WriteString(indent(item.Content, "  ") + "\n")
				}
			}
		default:
			b.WriteString(block.Content + "\n")
		}
	}
	return RenderBox("Note", strings.TrimRight(b.String(), "\n"))
}

// FormatGoalList renders goals with their status and date range.
func FormatGoalList(goals []domain.Goal) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			Dim(g.ID),
			Bold(g.Title),
			StylePurple.Render(string(g.Type)),
			GoalStatusPill(g.Status),
			dateRange(g.StartDate, g.EndDate),
		})
	}
	return RenderBox("Goals", RenderTable([]string{"ID", "TITLE", "TYPE", "STATUS", "WINDOW"}, rows))
}

// FormatGoal renders a single goal card.
func FormatGoal(g domain.Goal) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(g.Title) + "  " + Dim(g.ID) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS"), GoalStatusPill(g.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TYPE  "), string(g.Type)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("KPI   "), OrDash(g.KPI)))
	b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("WINDOW"), dateRange(g.StartDate, g.EndDate)))
	if g.Description != "" {
		b.WriteString("\n\n" + g.Description)
	}
	return RenderBox("Goal", b.String())
}

// FormatPostItList renders sticky notes with color, position and content.
func FormatPostItList(postIts []domain.PostIt) string {
	rows := make([][]string, 0, len(postIts))
	for _, p := range postIts {
		size := Dim("auto")
		if p.Size != nil {
			size = fmt.Sprintf("%dx%d", p.Size.Width, p.Size.Height)
		}
		rows = append(rows, []string{
			Dim(p.ID),
			PostItSwatch(p.Color),
			fmt.Sprintf("%d,%d", p.Position.X, p.Position.Y),
			size,
			Truncate(strings.Join(domain.PostItLines(p.Content), " / "), 40),
		})
	}
	return RenderBox("Canvas", RenderTable([]string{"ID", "COLOR", "AT", "SIZE", "CONTENT"}, rows))
}

// FormatMindmapList renders mindmaps with their root and node counts.
func FormatMindmapList(mindmaps []domain.Mindmap) string {
	rows := make([][]string, 0, len(mindmaps))
	for _, m := range mindmaps {
		roots := make([]string, 0)
		for _, r := range m.Roots() {
			roots = append(roots, r.Text)
		}
		rows = append(rows, []string{Dim(m.ID), Bold(m.Title), itoa(len(m.Nodes)), Truncate(strings.Join(roots, ", "), 40)})
	}
	return RenderBox("Mindmaps", RenderTable([]string{"ID", "TITLE", "NODES", "ROOTS"}, rows))
}

// FormatMindmap renders the node arena as a tree.
func FormatMindmap(m domain.Mindmap) string {
	var items []TreeItem
	var walk func(nodes []domain.MindmapNode, level int)
	walk = func(nodes []domain.MindmapNode, level int) {
		for i, n := range nodes {
			items = append(items, TreeItem{Title: n.Text, Level: level, IsLast: i == len(nodes)-1})
			walk(m.ChildrenOf(n.ID), level+1)
		}
	}
	walk(m.Roots(), 0)

	body := StyleBold.Render(m.Title) + "  " + Dim(m.ID)
	if len(items) > 0 {
		body += "\n\n" + strings.TrimRight(RenderTree(items), "\n")
	}
	return RenderBox("Mindmap", body)
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return Dim("--")
	}
	return fmt.Sprintf("%s → %s", OrDash(start), OrDash(end))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
