package views

import (
	"strings"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/widgets"
)

// link is one selectable row that navigates somewhere. Rows with a percent
// draw as progress bars.
type link struct {
	label   string
	detail  string
	percent float64
	bar     bool
	target  core.Screen
}

type section struct {
	title string
	links []link
	empty string
}

// linkGrid is a cursor over the links of several cards, in reading order.
type linkGrid struct {
	sections []section
	pos      int
}

func (g *linkGrid) total() int {
	n := 0
	for _, s := range g.sections {
		n += len(s.links)
	}
	return n
}

func (g *linkGrid) move(delta int) { g.pos = widgets.Clamp(g.pos+delta, g.total()) }

// jump moves the cursor to the first link of the next or previous card that
// has any.
func (g *linkGrid) jump(delta int) {
	if g.total() == 0 {
		return
	}
	cur, _ := g.locate(g.pos)
	n := len(g.sections)
	for step := 1; step <= n; step++ {
		i := ((cur+delta*step)%n + n) % n
		if len(g.sections[i].links) > 0 {
			g.pos = g.offset(i)
			return
		}
	}
}

func (g *linkGrid) offset(section int) int {
	n := 0
	for i := 0; i < section; i++ {
		n += len(g.sections[i].links)
	}
	return n
}

func (g *linkGrid) locate(pos int) (section, index int) {
	for i, s := range g.sections {
		if pos < len(s.links) {
			return i, pos
		}
		pos -= len(s.links)
	}
	return len(g.sections) - 1, 0
}

func (g *linkGrid) selected() (link, bool) {
	if g.total() == 0 {
		return link{}, false
	}
	s, i := g.locate(g.pos)
	return g.sections[s].links[i], true
}

// card renders one section as a bordered box with the cursor row marked.
func (g *linkGrid) card(index int) widgets.Widget {
	s := g.sections[index]
	start := g.offset(index)
	return widgets.Func(func(width, height int) string {
		inner := max(1, width-4)
		rows := make([]string, 0, len(s.links))
		if len(s.links) == 0 && s.empty != "" {
			rows = append(rows, widgets.MutedStyle.Render(s.empty))
		}
		for i, l := range s.links {
			active := start+i == g.pos
			rows = append(rows, renderLink(l, inner, active))
		}
		return widgets.Box{Title: s.title, Content: strings.Join(rows, "\n"), Accent: g.owns(index)}.Render(width, height)
	})
}

func (g *linkGrid) owns(section int) bool {
	if g.total() == 0 {
		return false
	}
	s, _ := g.locate(g.pos)
	return s == section
}

func renderLink(l link, width int, active bool) string {
	prefix := "  "
	if active {
		prefix = "▸ "
	}
	var line string
	if l.bar {
		line = widgets.ProgressBar{Label: l.label, Percent: l.percent}.Render(max(8, width-2), 1)
	} else {
		line = l.label
		if l.detail != "" {
			line += "  " + widgets.MutedStyle.Render(l.detail)
		}
	}
	if active {
		return widgets.SelectedStyle.Render(prefix) + line
	}
	return prefix + line
}
