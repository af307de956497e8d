package views

import (
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/widgets"
)

const (
	keySubjects    = "subjects"
	keyWeakAreas   = "weak-areas"
	keyAssignments = "assignments"
)

var recentActivity = []string{
	"Completed ML Quiz · Score 85% · 2 hours ago",
	"Assignment Submitted · Data Science · 5 hours ago",
	"AI Tutoring Session · Probability · Yesterday",
}

type studentDashboard struct {
	base
	deps Deps
	grid linkGrid
}

func newStudentDashboard(d Deps) *studentDashboard {
	v := &studentDashboard{base: base{screen: core.ScreenStudentDashboard}, deps: d}
	v.grid.sections = []section{
		{title: "Subject Progress", empty: "Loading subjects…"},
		{title: "Weak Areas", empty: "Loading…"},
		{title: "Assignments Due Soon", empty: "Loading…"},
		{title: "Quick Actions", links: []link{
			{label: "Talk to AI Assistant", detail: "Your AI Academic Agent is ready to help you learn better", target: core.ScreenAiAgent},
			{label: "View Performance", detail: "85% overall", target: core.ScreenPerformance},
		}},
	}
	return v
}

func (v *studentDashboard) InitView(m *core.Model) tea.Cmd {
	ctx := m.ViewContext()
	return tea.Batch(
		load(ctx, keySubjects, v.deps.Catalog.Subjects),
		load(ctx, keyWeakAreas, v.deps.Catalog.WeakAreas),
		load(ctx, keyAssignments, v.deps.Catalog.Assignments),
	)
}

func (v *studentDashboard) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if subjects, ok := loaded[[]repository.Subject](m, msg, keySubjects); ok {
		links := make([]link, 0, len(subjects))
		for _, s := range subjects {
			links = append(links, link{label: s.Name, percent: float64(s.Progress), bar: true, target: core.ScreenSubjectDashboard})
		}
		v.setSection(0, links, "No subjects enrolled.")
		return nil
	}
	if areas, ok := loaded[[]repository.WeakArea](m, msg, keyWeakAreas); ok {
		links := make([]link, 0, len(areas))
		for _, a := range areas {
			links = append(links, link{label: a.Topic, detail: fmt.Sprintf("%d%% · Ask AI", a.Score), target: core.ScreenAiAgent})
		}
		v.setSection(1, links, "No weak areas. Keep it up!")
		return nil
	}
	if all, ok := loaded[[]repository.Assignment](m, msg, keyAssignments); ok {
		v.setSection(2, dueSoonLinks(all, v.deps.Now()), "Nothing due.")
		return nil
	}
	scope := v.Scope()
	switch {
	case isAction(m, msg, "list-up", scope):
		v.grid.move(-1)
	case isAction(m, msg, "list-down", scope):
		v.grid.move(1)
	case isAction(m, msg, "tab-next", scope):
		v.grid.jump(1)
	case isAction(m, msg, "tab-prev", scope):
		v.grid.jump(-1)
	case isAction(m, msg, "select", scope):
		if l, ok := v.grid.selected(); ok {
			m.Navigate(l.target)
		}
	}
	return nil
}

func (v *studentDashboard) setSection(i int, links []link, empty string) {
	v.grid.sections[i].links = links
	v.grid.sections[i].empty = empty
	v.grid.move(0)
}

// dueSoonLinks lists open assignments, nearest due date first.
func dueSoonLinks(all []repository.Assignment, now time.Time) []link {
	open := make([]repository.Assignment, 0, len(all))
	for _, a := range all {
		if a.Status != repository.StatusCompleted && a.Status != repository.StatusMissing {
			open = append(open, a)
		}
	}
	slices.SortFunc(open, func(a, b repository.Assignment) int { return a.Due.Compare(b.Due) })
	links := make([]link, 0, len(open))
	for _, a := range open {
		links = append(links, link{label: a.Title, detail: dueLabel(a.Due, now), target: core.ScreenAssignments})
	}
	return links
}

func dueLabel(due, now time.Time) string {
	days := int(due.Sub(now).Hours() / 24)
	switch {
	case due.Before(now):
		return "Overdue · " + due.Format("Jan 2")
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

func (v *studentDashboard) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		greeting := widgets.Text(widgets.TitleStyle.Render("Welcome back, "+v.deps.StudentName+"!") + "\n" +
			widgets.MutedStyle.Render("Your AI Academic Agent is ready to help you learn better"))
		stats := widgets.Grid{Columns: 4, Gap: 1, Cells: []widgets.Widget{
			widgets.StatCard{Label: "Overall Progress", Value: "85%", Note: "↑ 12% vs last month"},
			widgets.StatCard{Label: "Strong Chapters", Value: "12"},
			widgets.StatCard{Label: "Weak Chapters", Value: "5"},
			widgets.StatCard{Label: "Study Time", Value: "24h"},
		}}
		subjects := v.grid.card(0)
		side := widgets.VStack{Widgets: []widgets.Widget{v.grid.card(1), v.grid.card(2)}}
		activity := widgets.Box{Title: "Recent Activity", Content: joinLines(recentActivity)}
		bottom := widgets.HStack{Gap: 1, Widgets: []widgets.Widget{v.grid.card(3), activity}}
		return widgets.VStack{
			Widgets: []widgets.Widget{
				greeting,
				stats,
				widgets.HStack{Gap: 1, Ratios: []float64{0.55, 0.45}, Widgets: []widgets.Widget{subjects, side}},
				bottom,
			},
			Fixed:  []int{2, 5},
			Ratios: []float64{0, 0, 16, 6},
		}.Render(width, max(height, 29))
	})
}
