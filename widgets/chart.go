package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type ChartPoint struct {
	Label string
	Value float64
}

// Chart is a horizontal bar chart scaled to its largest value, or to Max when
// set.
type Chart struct {
	Title  string
	Data   []ChartPoint
	Max    float64
	Suffix string
}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Data) == 0 {
		return c.Title + "\n" + MutedStyle.Render("(no data)")
	}
	maxV := c.Max
	labelW := 0
	for _, p := range c.Data {
		if c.Max <= 0 && p.Value > maxV {
			maxV = p.Value
		}
		labelW = max(labelW, ansi.StringWidth(p.Label))
	}
	if maxV <= 0 {
		maxV = 1
	}
	labelW = min(labelW, max(4, width/3))
	bar := lipgloss.NewStyle().Foreground(ColorPrimary)
	lines := []string{}
	if c.Title != "" {
		lines = append(lines, TitleStyle.Render(c.Title))
	}
	for _, p := range c.Data {
		if len(lines) >= height {
			break
		}
		value := fmt.Sprintf("%g%s", p.Value, c.Suffix)
		room := max(1, width-labelW-ansi.StringWidth(value)-2)
		w := max(1, int((p.Value/maxV)*float64(room)))
		lines = append(lines, padRight(ansi.Truncate(p.Label, labelW, ""), labelW)+" "+bar.Render(strings.Repeat("█", min(w, room)))+" "+value)
	}
	return strings.Join(lines, "\n")
}
