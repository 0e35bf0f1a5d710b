package formatter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// columnWidths measures the visible width of every column across headers
// and rows, so ANSI styling does not skew alignment.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeCells pads each cell to its column width. The last column is not
// padded so lines carry no trailing spaces.
func writeCells(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(style(cell))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0)+colGap))
		}
	}
	b.WriteString("\n")
}

// RenderTable renders an aligned table with a header separator line.
// An empty rows slice renders a dimmed "(none)" under the separator.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeCells(&b, headers, widths, func(s string) string { return StyleHeader.Render(s) })

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeCells(&b, sep, widths, Dim)

	if len(rows) == 0 {
		b.WriteString(Dim("(none)") + "\n")
	}
	for _, row := range rows {
		writeCells(&b, row, widths, func(s string) string { return s })
	}
	return b.String()
}

func itoa(n int) string { return strconv.Itoa(n) }
