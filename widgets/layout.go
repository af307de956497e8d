package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. A positive Fixed entry pins that row's
// height; the remaining rows share what is left by Ratios.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Fixed   []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := tracks(max(1, height-spacingTotal), len(v.Widgets), v.Ratios, v.Fixed)
	lines := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		lines = append(lines, padHeight(w.Render(width, max(1, heights[i])), heights[i]))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// HStack places widgets side by side, padding every column to its width.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Fixed   []int
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := tracks(max(1, width-gapTotal), len(h.Widgets), h.Ratios, h.Fixed)
	columns := make([]string, len(h.Widgets))
	for i, w := range h.Widgets {
		columns[i] = w.Render(max(1, widths[i]), height)
	}
	return joinColumns(columns, widths, h.Gap)
}

// Grid lays cards out row by row, Columns per row, each row Height lines tall.
type Grid struct {
	Cells   []Widget
	Columns int
	Height  int
	Gap     int
}

func (g Grid) Rows() int {
	cols := max(1, g.Columns)
	return (len(g.Cells) + cols - 1) / cols
}

func (g Grid) Render(width, height int) string {
	if len(g.Cells) == 0 || width <= 0 {
		return ""
	}
	cols := max(1, g.Columns)
	rowHeight := g.Height
	if rowHeight <= 0 {
		rowHeight = max(1, height/g.Rows())
	}
	widths := tracks(max(1, width-g.Gap*(cols-1)), cols, nil, nil)
	rows := make([]string, 0, g.Rows())
	for start := 0; start < len(g.Cells); start += cols {
		columns := make([]string, cols)
		for i := 0; i < cols; i++ {
			if start+i < len(g.Cells) {
				columns[i] = g.Cells[start+i].Render(widths[i], rowHeight)
			}
		}
		rows = append(rows, padHeight(joinColumns(columns, widths, g.Gap), rowHeight))
	}
	return strings.Join(rows, "\n")
}

func joinColumns(columns []string, widths []int, gap int) string {
	split := make([][]string, len(columns))
	maxLines := 0
	for i, c := range columns {
		split[i] = strings.Split(c, "\n")
		maxLines = max(maxLines, len(split[i]))
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(split))
		for i := range split {
			if line < len(split[i]) {
				cols[i] = padRight(split[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", gap)))
	}
	return strings.Join(out, "\n")
}

// tracks splits total into n sizes. Fixed sizes are honoured first while they
// fit; flexible tracks divide the rest by ratio, or evenly without ratios.
func tracks(total, n int, ratios []float64, fixed []int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	var flex []int
	remaining := total
	for i := 0; i < n; i++ {
		if i < len(fixed) && fixed[i] > 0 {
			out[i] = min(fixed[i], remaining)
			remaining -= out[i]
			continue
		}
		flex = append(flex, i)
	}
	if len(flex) == 0 || remaining <= 0 {
		return out
	}
	weight := func(i int) float64 {
		if len(ratios) == n && ratios[i] > 0 {
			return ratios[i]
		}
		return 1
	}
	sum := 0.0
	for _, i := range flex {
		sum += weight(i)
	}
	used := 0
	for _, i := range flex {
		out[i] = int(math.Floor(weight(i) / sum * float64(remaining)))
		used += out[i]
	}
	for k := 0; used < remaining; k = (k + 1) % len(flex) {
		out[flex[k]]++
		used++
	}
	return out
}

// padHeight pads rendered text to at least height lines. Taller content is
// kept so the router can scroll it.
func padHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
