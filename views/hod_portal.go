package views

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/internal/report"
	"github.com/vsit/academicagent/widgets"
)

const (
	keyTeachers     = "teachers"
	keyApprovals    = "approvals"
	keyDeptConcepts = "department-concepts"
	keyDeptSubjects = "department-subjects"
	hodTabDashboard = "Dashboard"
	hodTabTeachers  = "Teachers"
	hodTabCourses   = "Courses"
	hodTabAnalytics = "Analytics"
	hodTabApprovals = "Approvals"
)

type approvalDecidedMsg struct {
	id     string
	status repository.ApprovalStatus
	err    error
}

type hodPortal struct {
	base
	deps      Deps
	tabs      subTabs
	teachers  []repository.Teacher
	approvals []repository.Approval
	concepts  []repository.Concept
	subjects  []repository.Subject
	rows      cursor
}

func newHodPortal(d Deps) *hodPortal {
	return &hodPortal{
		base: base{screen: core.ScreenHodPortal},
		deps: d,
		tabs: newSubTabs(hodTabDashboard, hodTabTeachers, hodTabCourses, hodTabAnalytics, hodTabApprovals),
	}
}

func (v *hodPortal) InitView(m *core.Model) tea.Cmd {
	ctx := m.ViewContext()
	return tea.Batch(
		load(ctx, keyTeachers, v.deps.Catalog.Teachers),
		load(ctx, keyApprovals, v.deps.Catalog.Approvals),
		load(ctx, keyDeptSubjects, v.deps.Catalog.Subjects),
		load(ctx, keyDeptConcepts, func(ctx context.Context) ([]repository.Concept, error) {
			return v.deps.Catalog.Concepts(ctx, repository.ScopeDepartment)
		}),
	)
}

// Approvals is the content queue as last loaded or decided.
func (v *hodPortal) Approvals() []repository.Approval { return v.approvals }

func (v *hodPortal) rowCount() int {
	switch v.tabs.current() {
	case hodTabTeachers:
		return len(v.teachers)
	case hodTabApprovals:
		return len(v.approvals)
	case hodTabCourses:
		return len(v.subjects)
	}
	return 0
}

func (v *hodPortal) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if teachers, ok := loaded[[]repository.Teacher](m, msg, keyTeachers); ok {
		v.teachers = teachers
		return nil
	}
	if approvals, ok := loaded[[]repository.Approval](m, msg, keyApprovals); ok {
		v.approvals = approvals
		return nil
	}
	if subjects, ok := loaded[[]repository.Subject](m, msg, keyDeptSubjects); ok {
		v.subjects = subjects
		return nil
	}
	if concepts, ok := loaded[[]repository.Concept](m, msg, keyDeptConcepts); ok {
		v.concepts = concepts
		return nil
	}
	if d, ok := msg.(approvalDecidedMsg); ok {
		v.applyDecision(m, d)
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
		v.rows.move(-1, v.rowCount())
	case isAction(m, msg, "list-down", scope):
		v.rows.move(1, v.rowCount())
	case isAction(m, msg, "approve", scope):
		return v.decide(m, repository.ApprovalApproved)
	case isAction(m, msg, "reject", scope):
		return v.decide(m, repository.ApprovalRejected)
	case isAction(m, msg, "select", scope):
		if v.tabs.current() == hodTabApprovals && len(v.approvals) > 0 {
			a := v.approvals[v.rows.pos]
			m.SetStatus(fmt.Sprintf("%s · %s by %s, submitted %s", a.Title, a.Kind, a.Author, a.Submitted.Format("Jan 2")))
		}
	case isAction(m, msg, "export", scope):
		teachers := v.teachers
		return exportCmd(v.deps, "teacher", func(path string) error {
			return report.WriteTeacherReport(path, teachers)
		})
	}
	return nil
}

func (v *hodPortal) decide(m *core.Model, status repository.ApprovalStatus) tea.Cmd {
	if v.tabs.current() != hodTabApprovals || len(v.approvals) == 0 {
		return nil
	}
	a := v.approvals[v.rows.pos]
	if a.Status != repository.ApprovalPending {
		m.SetStatus(a.Title + " is already " + string(a.Status))
		return nil
	}
	ctx := m.ViewContext()
	catalog := v.deps.Catalog
	return func() tea.Msg {
		err := catalog.SetApprovalStatus(ctx, a.ID, status)
		return approvalDecidedMsg{id: a.ID, status: status, err: err}
	}
}

func (v *hodPortal) applyDecision(m *core.Model, d approvalDecidedMsg) {
	if errors.Is(d.err, repository.ErrAlreadyDecided) {
		m.SetStatus(v.titleOf(d.id) + " was already decided")
		return
	}
	if d.err != nil {
		m.SetError(d.err)
		return
	}
	for i := range v.approvals {
		if v.approvals[i].ID == d.id {
			v.approvals[i].Status = d.status
			v.deps.Log.Info("content decision", "title", v.approvals[i].Title, "status", string(d.status))
			m.SetStatus(fmt.Sprintf("%s %s", v.approvals[i].Title, d.status))
		}
	}
}

func (v *hodPortal) titleOf(id string) string {
	for _, a := range v.approvals {
		if a.ID == id {
			return a.Title
		}
	}
	return id
}

func (v *hodPortal) pending() int {
	n := 0
	for _, a := range v.approvals {
		if a.Status == repository.ApprovalPending {
			n++
		}
	}
	return n
}

func (v *hodPortal) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		head := widgets.Text(widgets.TitleStyle.Render("Department Dashboard") + "\n" +
			widgets.MutedStyle.Render("Dr. Sharma (Head of Department)"))
		stats := widgets.Grid{Columns: 4, Gap: 1, Cells: []widgets.Widget{
			widgets.StatCard{Label: "Teachers", Value: "12"},
			widgets.StatCard{Label: "Students", Value: "350"},
			widgets.StatCard{Label: "Avg Perf", Value: "78%"},
			widgets.StatCard{Label: "Courses", Value: "8"},
		}}
		var body widgets.Widget
		switch v.tabs.current() {
		case hodTabDashboard:
			body = widgets.HStack{Gap: 1, Ratios: []float64{0.6, 0.4}, Widgets: []widgets.Widget{
				v.teacherTable(-1, "Teacher Activity"),
				widgets.VStack{Widgets: []widgets.Widget{
					widgets.Box{Title: "Content Approvals", Content: fmt.Sprintf("%d item(s) waiting for review", v.pending())},
					v.gapChart(),
				}, Ratios: []float64{4, 10}},
			}}
		case hodTabTeachers:
			body = v.teacherTable(v.rows.pos, "Teachers · x export to Excel")
		case hodTabCourses:
			body = widgets.Func(v.renderCourses)
		case hodTabAnalytics:
			body = v.gapChart()
		default:
			body = widgets.Func(v.renderApprovals)
		}
		return widgets.VStack{
			Widgets: []widgets.Widget{head, stats, v.tabs, body},
			Fixed:   []int{2, 5, 2},
		}.Render(width, max(height, 23))
	})
}

func (v *hodPortal) teacherTable(selected int, title string) widgets.Widget {
	return widgets.Func(func(w, h int) string {
		rows := make([][]string, 0, len(v.teachers))
		for _, t := range v.teachers {
			status := widgets.SuccessStyle.Render(t.Status)
			if t.Status != "Active" {
				status = lipgloss.NewStyle().Foreground(widgets.ColorWarning).Render(t.Status)
			}
			rows = append(rows, []string{t.Name, t.Dept, fmt.Sprintf("%d", t.Classes), percent(t.Performance), status})
		}
		table := widgets.Table{Headers: []string{"Name", "Dept", "Classes", "Avg Perf", "Status"}, Rows: rows, Selected: selected}
		return widgets.Box{Title: title, Content: table.Render(max(1, w-4), max(1, h-3))}.Render(w, h)
	})
}

func (v *hodPortal) gapChart() widgets.Widget {
	return widgets.Func(func(w, h int) string {
		data := make([]widgets.ChartPoint, 0, len(v.concepts))
		for _, c := range v.concepts {
			data = append(data, widgets.ChartPoint{Label: c.Name, Value: float64(c.Gap)})
		}
		chart := widgets.Chart{Data: data, Max: 100, Suffix: "% gap"}
		return widgets.Box{Title: "Curriculum Gap Analysis", Content: chart.Render(max(1, w-4), max(1, h-3))}.Render(w, h)
	})
}

func (v *hodPortal) renderCourses(width, height int) string {
	links := make([]link, 0, len(v.subjects))
	for _, s := range v.subjects {
		links = append(links, link{label: s.Name, percent: float64(s.Progress), bar: true})
	}
	grid := linkGrid{sections: []section{{title: "Courses · average completion", links: links, empty: "No courses."}}, pos: v.rows.pos}
	return grid.card(0).Render(width, height)
}

func (v *hodPortal) renderApprovals(width, height int) string {
	items := make([]string, 0, len(v.approvals))
	for _, a := range v.approvals {
		state := lipgloss.NewStyle().Foreground(widgets.ColorWarning).Render("pending")
		switch a.Status {
		case repository.ApprovalApproved:
			state = widgets.SuccessStyle.Render("approved")
		case repository.ApprovalRejected:
			state = widgets.DangerStyle.Render("rejected")
		}
		items = append(items, fmt.Sprintf("%-22s %-5s %-13s %s  %s", a.Title, a.Kind, a.Author, a.Submitted.Format("Jan 2"), state))
	}
	list := widgets.List{Title: "Content Approvals · a approve · d reject", Items: items, Selected: v.rows.pos, Empty: "Nothing to review."}
	return list.Render(width, height)
}
