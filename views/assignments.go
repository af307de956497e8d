package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/overlays"
	"github.com/vsit/academicagent/widgets"
)

const (
	filterAll       = "All"
	filterDueSoon   = "Due Soon"
	filterCompleted = "Completed"
	filterPastDue   = "Past Due"
)

type assignmentsView struct {
	base
	deps  Deps
	tabs  subTabs
	items []repository.Assignment
	rows  cursor
}

func newAssignmentsView(d Deps) *assignmentsView {
	return &assignmentsView{
		base: base{screen: core.ScreenAssignments},
		deps: d,
		tabs: newSubTabs(filterAll, filterDueSoon, filterCompleted, filterPastDue),
	}
}

func (v *assignmentsView) InitView(m *core.Model) tea.Cmd {
	return load(m.ViewContext(), keyAssignments, v.deps.Catalog.Assignments)
}

// Filtered applies the active tab. Due Soon is anything due after now,
// Past Due is anything marked missing.
func (v *assignmentsView) Filtered() []repository.Assignment {
	return filterAssignments(v.items, v.tabs.current(), v.deps.Now())
}

func filterAssignments(items []repository.Assignment, tab string, now time.Time) []repository.Assignment {
	out := make([]repository.Assignment, 0, len(items))
	for _, a := range items {
		keep := false
		switch tab {
		case filterAll:
			keep = true
		case filterDueSoon:
			keep = a.Due.After(now)
		case filterCompleted:
			keep = a.Status == repository.StatusCompleted
		case filterPastDue:
			keep = a.Status == repository.StatusMissing
		}
		if keep {
			out = append(out, a)
		}
	}
	return out
}

func (v *assignmentsView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if items, ok := loaded[[]repository.Assignment](m, msg, keyAssignments); ok {
		v.items = items
		v.rows.clamp(len(items))
		return nil
	}
	scope := v.Scope()
	switch {
	case isAction(m, msg, "tab-next", scope):
		v.tabs.next()
		v.rows.pos = 0
	case isAction(m, msg, "tab-prev", scope):
		v.tabs.prev()
		v.rows.pos = 0
	case isAction(m, msg, "list-up", scope):
		v.rows.move(-1, len(v.Filtered()))
	case isAction(m, msg, "list-down", scope):
		v.rows.move(1, len(v.Filtered()))
	case isAction(m, msg, "select", scope):
		if shown := v.Filtered(); len(shown) > 0 {
			m.PushOverlay(overlays.NewAssignmentDetail(v.deps.Keys, shown[v.rows.pos]))
		}
	}
	return nil
}

func statusStyle(s repository.AssignmentStatus) lipgloss.Style {
	switch s {
	case repository.StatusCompleted:
		return widgets.SuccessStyle
	case repository.StatusMissing:
		return widgets.DangerStyle
	case repository.StatusInProgress:
		return lipgloss.NewStyle().Foreground(widgets.ColorPrimary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(widgets.ColorWarning).Bold(true)
	}
}

func (v *assignmentsView) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		shown := v.Filtered()
		items := make([]string, 0, len(shown))
		for _, a := range shown {
			items = append(items, a.Title+"  "+widgets.MutedStyle.Render(a.Course+" · Due "+a.Due.Format("Jan 2, 2006"))+"  "+
				statusStyle(a.Status).Render(string(a.Status)))
		}
		list := widgets.List{Items: items, Selected: v.rows.pos, Empty: "No assignments in " + v.tabs.current() + "."}
		return widgets.VStack{
			Widgets: []widgets.Widget{v.tabs, list},
			Fixed:   []int{2},
		}.Render(width, max(height, len(items)+3))
	})
}
