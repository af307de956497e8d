package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/widgets"
)

const (
	featuredSubject = "Artificial Intelligence"
	keyChapters     = "chapters"
)

type subjectDashboard struct {
	base
	deps Deps
	grid linkGrid
}

func newSubjectDashboard(d Deps) *subjectDashboard {
	v := &subjectDashboard{base: base{screen: core.ScreenSubjectDashboard}, deps: d}
	v.grid.sections = []section{
		{title: "Navigation", links: []link{
			{label: "← Back to Dashboard", target: core.ScreenStudentDashboard},
		}},
		{title: "Course Chapters", empty: "Loading chapters…"},
		{title: "Assignments", links: []link{
			{label: "AI Assignment 1", detail: "Due Feb 20 · Submit", target: core.ScreenAssignments},
			{label: "Neural Networks Impl.", detail: "Due Feb 25 · Submit", target: core.ScreenAssignments},
		}},
		{title: "Quizzes", links: []link{
			{label: "AI Basics Quiz (10 Q)", detail: "Avg 82% · Start", target: core.ScreenQuizzes},
			{label: "Neural Networks Quiz", detail: "Avg 68% · Start", target: core.ScreenQuizzes},
		}},
		{title: "Weak Areas", links: []link{
			{label: "Neural Networks", detail: "38% · Ask AI Tutor", target: core.ScreenAiAgent},
			{label: "NLP", detail: "45% · Ask AI Tutor", target: core.ScreenAiAgent},
		}},
		{title: "Course Notes", links: []link{
			{label: "Unit 1 - Introduction", detail: "PDF • 45 views", target: core.ScreenNotes},
			{label: "Unit 2 - Search Algo", detail: "PPTX • 38 views", target: core.ScreenNotes},
			{label: "View All Notes", target: core.ScreenNotes},
		}},
	}
	return v
}

func (v *subjectDashboard) InitView(m *core.Model) tea.Cmd {
	return load(m.ViewContext(), keyChapters, func(ctx context.Context) ([]repository.Chapter, error) {
		return v.deps.Catalog.Chapters(ctx, featuredSubject)
	})
}

func (v *subjectDashboard) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if chapters, ok := loaded[[]repository.Chapter](m, msg, keyChapters); ok {
		links := make([]link, 0, len(chapters))
		for _, c := range chapters {
			links = append(links, link{label: c.Name, percent: float64(c.Progress), bar: true, target: core.ScreenNotes})
		}
		v.grid.sections[1].links = links
		v.grid.sections[1].empty = "No chapters published yet."
		v.grid.move(0)
		return nil
	}
	scope := v.Scope()
	switch {
	case isAction(m, msg, "back", scope):
		m.Navigate(core.ScreenStudentDashboard)
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

func (v *subjectDashboard) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		head := widgets.Text(widgets.MutedStyle.Render("Dashboard › "+featuredSubject) + "\n" +
			widgets.TitleStyle.Render(featuredSubject) + "  " +
			widgets.MutedStyle.Render(fmt.Sprintf("Lectures: %d · Progress: %d%%", 12, 78)))
		left := widgets.VStack{Widgets: []widgets.Widget{v.grid.card(1), v.grid.card(5)}, Ratios: []float64{8, 6}}
		right := widgets.VStack{Widgets: []widgets.Widget{v.grid.card(2), v.grid.card(3), v.grid.card(4)}}
		return widgets.VStack{
			Widgets: []widgets.Widget{
				head,
				v.grid.card(0),
				widgets.HStack{Gap: 1, Ratios: []float64{0.55, 0.45}, Widgets: []widgets.Widget{left, right}},
			},
			Fixed: []int{2, 3},
		}.Render(width, max(height, 24))
	})
}
