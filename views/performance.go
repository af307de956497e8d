package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/internal/report"
	"github.com/vsit/academicagent/widgets"
)

const (
	keyTrend           = "trend"
	keyStudentConcepts = "student-concepts"
)

var (
	trendSubjects = []struct{ key, label string }{
		{"ML", "Machine Learning"},
		{"DS", "Data Science"},
		{"LA", "Linear Algebra"},
		{"Stats", "Statistics"},
	}
	focusAreas = []link{
		{label: "Neural Networks", detail: "45% · Practice with AI", target: core.ScreenAiAgent},
		{label: "Regression Analysis", detail: "52% · Practice with AI", target: core.ScreenAiAgent},
		{label: "Probability", detail: "38% · Practice with AI", target: core.ScreenAiAgent},
	}
	recentGrades = [][]string{
		{"ML Assignment 1", "ML", "85%", `"Good work"`},
		{"DS Project", "DS", "90%", `"Excellent"`},
		{"Stats Quiz", "Stats", "65%", `"Review Ch 3"`},
	}
)

type performanceView struct {
	base
	deps     Deps
	subjects subTabs
	focus    linkGrid
	trend    []repository.TrendPoint
	concepts []repository.Concept
}

func newPerformanceView(d Deps) *performanceView {
	labels := make([]string, len(trendSubjects))
	for i, s := range trendSubjects {
		labels[i] = s.label
	}
	v := &performanceView{base: base{screen: core.ScreenPerformance}, deps: d, subjects: newSubTabs(labels...)}
	v.focus.sections = []section{{title: "Priority Focus Areas", links: focusAreas}}
	return v
}

func (v *performanceView) InitView(m *core.Model) tea.Cmd {
	ctx := m.ViewContext()
	return tea.Batch(
		load(ctx, keyTrend, v.deps.Catalog.Trend),
		load(ctx, keyStudentConcepts, func(ctx context.Context) ([]repository.Concept, error) {
			return v.deps.Catalog.Concepts(ctx, repository.ScopeStudent)
		}),
	)
}

func (v *performanceView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if trend, ok := loaded[[]repository.TrendPoint](m, msg, keyTrend); ok {
		v.trend = trend
		return nil
	}
	if concepts, ok := loaded[[]repository.Concept](m, msg, keyStudentConcepts); ok {
		v.concepts = concepts
		return nil
	}
	scope := v.Scope()
	switch {
	case isAction(m, msg, "tab-next", scope):
		v.subjects.next()
	case isAction(m, msg, "tab-prev", scope):
		v.subjects.prev()
	case isAction(m, msg, "list-up", scope):
		v.focus.move(-1)
	case isAction(m, msg, "list-down", scope):
		v.focus.move(1)
	case isAction(m, msg, "select", scope):
		if l, ok := v.focus.selected(); ok {
			m.Navigate(l.target)
		}
	case isAction(m, msg, "export", scope):
		trend := v.trend
		return exportCmd(v.deps, "performance", func(path string) error {
			return report.WritePerformanceReport(path, trend)
		})
	}
	return nil
}

// Series returns the selected subject's monthly scores.
func (v *performanceView) Series() []widgets.TrendPoint {
	key := trendSubjects[v.subjects.active].key
	out := []widgets.TrendPoint{}
	for _, p := range v.trend {
		if p.Subject == key {
			out = append(out, widgets.TrendPoint{Month: p.Month, Value: p.Score})
		}
	}
	return out
}

func (v *performanceView) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		stats := widgets.Grid{Columns: 4, Gap: 1, Cells: []widgets.Widget{
			widgets.StatCard{Label: "Current GPA", Value: "3.4", Note: "/4.0"},
			widgets.StatCard{Label: "Overall Score", Value: "85%"},
			widgets.StatCard{Label: "Class Rank", Value: "#12"},
			widgets.StatCard{Label: "Attendance", Value: "92%"},
		}}
		chart := widgets.Func(func(w, h int) string {
			inner := widgets.VStack{Widgets: []widgets.Widget{
				v.subjects,
				widgets.TrendChart{Points: v.Series(), MinY: 0, MaxY: 100},
			}, Ratios: []float64{2, 10}}
			return widgets.Box{Title: "Subject Performance Trend", Content: inner.Render(max(1, w-4), max(1, h-3))}.Render(w, h)
		})
		mastery := make([]widgets.ChartPoint, 0, len(v.concepts)*2)
		for _, c := range v.concepts {
			mastery = append(mastery,
				widgets.ChartPoint{Label: c.Name, Value: float64(c.Mastery)},
				widgets.ChartPoint{Label: "  misconceptions", Value: float64(c.Gap)},
			)
		}
		concepts := widgets.Func(func(w, h int) string {
			c := widgets.Chart{Data: mastery, Max: 100, Suffix: "%"}
			return widgets.Box{Title: "Concept Mastery vs Misconceptions", Content: c.Render(max(1, w-4), max(1, h-3))}.Render(w, h)
		})
		grades := widgets.Func(func(w, h int) string {
			t := widgets.Table{Headers: []string{"Assignment", "Subject", "Grade", "Feedback"}, Rows: recentGrades, Selected: -1}
			return widgets.Box{Title: "Recent Assignment Grades", Content: t.Render(max(1, w-4), max(1, h-3))}.Render(w, h)
		})
		head := widgets.Text(widgets.TitleStyle.Render("My Performance") + "   " + widgets.GhostStyle.Render(fmt.Sprintf("⤓ Download Report (%s)", firstKey(m, "export", v.Scope()))))
		return widgets.VStack{
			Widgets: []widgets.Widget{
				head,
				stats,
				widgets.HStack{Gap: 1, Ratios: []float64{0.62, 0.38}, Widgets: []widgets.Widget{chart, v.focus.card(0)}},
				widgets.HStack{Gap: 1, Widgets: []widgets.Widget{concepts, grades}},
			},
			Fixed:  []int{1, 5},
			Ratios: []float64{0, 0, 16, 13},
		}.Render(width, max(height, 35))
	})
}

func firstKey(m *core.Model, action, scope string) string {
	if keys := m.Keys().KeysFor(action, scope); len(keys) > 0 {
		return keys[0]
	}
	return "?"
}
