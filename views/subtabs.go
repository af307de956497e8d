package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/widgets"
)

var (
	subTabActive = lipgloss.NewStyle().
			Foreground(widgets.ColorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	subTabIdle = lipgloss.NewStyle().
			Foreground(widgets.ColorMuted).
			Padding(0, 1)
)

// subTabs is an in-page tab strip. It never touches the navigation store.
type subTabs struct {
	labels []string
	active int
}

func newSubTabs(labels ...string) subTabs {
	return subTabs{labels: labels}
}

func (t *subTabs) next() { t.active = (t.active + 1) % len(t.labels) }
func (t *subTabs) prev() { t.active = (t.active - 1 + len(t.labels)) % len(t.labels) }

func (t *subTabs) selectLabel(label string) bool {
	for i, l := range t.labels {
		if l == label {
			t.active = i
			return true
		}
	}
	return false
}

func (t subTabs) current() string { return t.labels[t.active] }

func (t subTabs) Render(width, height int) string {
	parts := make([]string, len(t.labels))
	for i, l := range t.labels {
		if i == t.active {
			parts[i] = subTabActive.Render(l)
		} else {
			parts[i] = subTabIdle.Render(l)
		}
	}
	line := strings.Join(parts, widgets.MutedStyle.Render("│"))
	return widgets.Text(line+"\n"+widgets.MutedStyle.Render(strings.Repeat("─", max(1, width)))).Render(width, min(2, height))
}

// cursor is a bounded list position.
type cursor struct {
	pos int
}

func (c *cursor) move(delta, n int) { c.pos = widgets.Clamp(c.pos+delta, n) }
func (c *cursor) clamp(n int)       { c.pos = widgets.Clamp(c.pos, n) }
