package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table lays rows out in columns sized to their widest cell.
type Table struct {
	Headers  []string
	Rows     [][]string
	Selected int
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], ansi.StringWidth(row[i]))
			}
		}
	}
	format := func(cells []string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padRight(cell, w)
		}
		return ansi.Truncate(strings.Join(parts, "  "), width, "")
	}
	header := lipgloss.NewStyle().Foreground(ColorMuted).Bold(true)
	lines := []string{header.Render(format(t.Headers))}
	for i, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		line := format(row)
		if i == t.Selected {
			line = SelectedStyle.Render(padRight(line, width))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
