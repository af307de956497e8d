package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dialog is the body of a confirmation popup.
type Dialog struct {
	Title   string
	Body    string
	Buttons []string
	Width   int
}

func (d Dialog) String() string {
	w := d.Width
	if w <= 0 {
		w = 48
	}
	parts := []string{TitleStyle.Render(d.Title), ""}
	if d.Body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(w).Foreground(ColorText).Render(d.Body), "")
	}
	if len(d.Buttons) > 0 {
		parts = append(parts, lipgloss.PlaceHorizontal(w, lipgloss.Right, strings.Join(d.Buttons, "  ")))
	}
	return strings.Join(parts, "\n")
}

var backdropStyle = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)

// Popup is a bordered card centred over a base frame. With Dim the base is
// drawn as plain muted text behind the card.
type Popup struct {
	Content string
	Accent  lipgloss.TerminalColor
	Dim     bool
}

// RenderPopup centres popup over a dimmed base.
func RenderPopup(base, popup string, width, height int) string {
	return Popup{Content: popup, Dim: true}.Place(base, width, height)
}

func (p Popup) Place(base string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	accent := p.Accent
	if accent == nil {
		accent = ColorPrimary
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Render(p.Content)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, l := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)

	rows := strings.Split(base, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i, row := range rows {
		if p.Dim {
			row = ansi.Strip(row)
		}
		row = padANSI(row, width)
		if i >= y && i-y < len(cardLines) {
			rows[i] = p.splice(row, padANSI(cardLines[i-y], cardWidth), x)
		} else {
			rows[i] = p.backdrop(row)
		}
	}
	return strings.Join(rows, "\n")
}

// splice replaces the columns of row under the card line starting at x.
func (p Popup) splice(row, line string, x int) string {
	left := ansi.Truncate(row, x, "")
	right := dropColumns(row, x+ansi.StringWidth(line))
	return p.backdrop(left) + line + p.backdrop(right)
}

func (p Popup) backdrop(s string) string {
	if !p.Dim || s == "" {
		return s
	}
	return backdropStyle.Render(s)
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
