package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// List renders rows with an optional cursor. Selected < 0 draws no cursor.
type List struct {
	Title    string
	Items    []string
	Selected int
	Empty    string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, TitleStyle.Render(ansi.Truncate(l.Title, width, "")))
	}
	if len(l.Items) == 0 && l.Empty != "" {
		rows = append(rows, MutedStyle.Render(l.Empty))
	}
	start := 0
	room := height - len(rows)
	if l.Selected >= room && room > 0 {
		start = l.Selected - room + 1
	}
	for i := start; i < len(l.Items); i++ {
		line := ansi.Truncate(l.Items[i], max(1, width-2), "…")
		if i == l.Selected {
			rows = append(rows, SelectedStyle.Render(padRight("▸ "+line, width)))
			continue
		}
		rows = append(rows, "  "+line)
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// Clamp keeps a cursor inside [0, n).
func Clamp(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}
