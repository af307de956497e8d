package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/internal/report"
	"github.com/vsit/academicagent/widgets"
)

const (
	keyStudents = "students"

	tabUpload    = "Upload Materials"
	tabGenerator = "Quiz Generator"
	tabReports   = "Student Reports"
	tabAnalytics = "Analytics"

	btnUpload     = "Upload Material"
	btnGenerate   = "+ Generate Quiz with AI"
	btnRegenerate = "Regenerate"
	btnPublish    = "Publish"
)

type draftQuestion struct {
	prompt  string
	options []string
}

var questionPool = map[string][]draftQuestion{
	"Machine Learning": {
		{"What is supervised learning?", []string{"Labeled data", "Unlabeled data", "Reinforcement"}},
		{"Which metric suits imbalanced classes?", []string{"F1 score", "Accuracy", "Mean squared error"}},
		{"What does regularisation mainly reduce?", []string{"Overfitting", "Bias", "Training time"}},
		{"Which algorithm trains neural networks?", []string{"Backpropagation", "Apriori", "K-Means"}},
	},
	"Data Science": {
		{"Which Python library provides DataFrames?", []string{"pandas", "requests", "flask"}},
		{"What does EDA stand for?", []string{"Exploratory Data Analysis", "Extended Data Access", "Error Detection Algorithm"}},
		{"Which plot shows a distribution?", []string{"Histogram", "Pie chart", "Gantt chart"}},
	},
}

type teacherPortal struct {
	base
	deps      Deps
	tabs      subTabs
	upload    form
	generator form
	preview   []draftQuestion
	round     int
	students  []repository.Student
	roster    table.Model
}

func newTeacherPortal(d Deps) *teacherPortal {
	v := &teacherPortal{
		base: base{screen: core.ScreenTeacherPortal},
		deps: d,
		tabs: newSubTabs(tabUpload, tabGenerator, tabReports, tabAnalytics),
	}
	v.upload.fields = []field{
		textField("Title", ""),
		choiceField("Subject", "Machine Learning", "Data Science"),
		textField("Description", ""),
		buttonField(btnUpload),
	}
	v.generator.fields = []field{
		choiceField("Subject", "Machine Learning", "Data Science"),
		choiceField("Difficulty", "Medium", "Hard", "Easy"),
		choiceField("Number of Questions", "10", "15", "20", "5"),
		buttonField(btnGenerate),
		buttonField(btnRegenerate),
		buttonField(btnPublish),
	}
	v.roster = table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 18},
			{Title: "Overall", Width: 8},
			{Title: "Weak Areas", Width: 18},
			{Title: "Last Active", Width: 12},
			{Title: "Action", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(6),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(widgets.ColorMuted).Bold(true)
	styles.Selected = widgets.SelectedStyle
	v.roster.SetStyles(styles)
	return v
}

func (v *teacherPortal) CapturesInput() bool { return v.activeForm() != nil && v.activeForm().editing }

func (v *teacherPortal) InitView(m *core.Model) tea.Cmd {
	return load(m.ViewContext(), keyStudents, v.deps.Catalog.Students)
}

// Tab is the label of the visible sub-tab.
func (v *teacherPortal) Tab() string { return v.tabs.current() }

func (v *teacherPortal) activeForm() *form {
	switch v.tabs.current() {
	case tabUpload:
		return &v.upload
	case tabGenerator:
		return &v.generator
	}
	return nil
}

func (v *teacherPortal) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if students, ok := loaded[[]repository.Student](m, msg, keyStudents); ok {
		v.students = students
		rows := make([]table.Row, 0, len(students))
		for _, s := range students {
			rows = append(rows, table.Row{s.Name, percent(s.Overall), s.Weak, s.LastActive, "View Report"})
		}
		v.roster.SetRows(rows)
		return nil
	}
	scope := v.Scope()
	f := v.activeForm()
	if f != nil && f.editing {
		switch {
		case isAction(m, msg, "select", scope):
			f.commit()
		case isAction(m, msg, "cancel", scope):
			f.cancel()
		default:
			return f.update(msg)
		}
		return nil
	}
	switch {
	case isAction(m, msg, "tab-next", scope):
		v.tabs.next()
		return nil
	case isAction(m, msg, "tab-prev", scope):
		v.tabs.prev()
		return nil
	}
	if f != nil {
		switch {
		case isAction(m, msg, "list-up", scope):
			f.move(-1)
		case isAction(m, msg, "list-down", scope):
			f.move(1)
		case isAction(m, msg, "toggle", scope):
			f.cycle()
		case isAction(m, msg, "select", scope):
			pressed, cmd := f.activate()
			if pressed != "" {
				v.press(m, pressed)
			}
			return cmd
		}
		return nil
	}
	if v.tabs.current() != tabReports {
		return nil
	}
	switch {
	case isAction(m, msg, "list-up", scope):
		v.roster.MoveUp(1)
	case isAction(m, msg, "list-down", scope):
		v.roster.MoveDown(1)
	case isAction(m, msg, "select", scope):
		if len(v.students) > 0 {
			s := v.students[v.roster.Cursor()]
			m.SetStatus(fmt.Sprintf("%s: overall %d%%, weakest in %s", s.Name, s.Overall, s.Weak))
		}
	case isAction(m, msg, "export", scope):
		students := v.students
		return exportCmd(v.deps, "student", func(path string) error {
			return report.WriteStudentReport(path, students)
		})
	}
	return nil
}

func (v *teacherPortal) press(m *core.Model, button string) {
	switch button {
	case btnUpload:
		title := strings.TrimSpace(v.upload.value("Title"))
		if title == "" {
			m.SetError(fmt.Errorf("give the material a title first"))
			return
		}
		subject := v.upload.value("Subject")
		v.deps.Log.Info("material uploaded", "title", title, "subject", subject)
		m.SetStatus(fmt.Sprintf("Uploaded %q to %s, awaiting approval", title, subject))
		v.upload.find("Title").input.SetValue("")
		v.upload.find("Description").input.SetValue("")
	case btnGenerate, btnRegenerate:
		v.generate()
		m.SetStatus(fmt.Sprintf("Generated %d %s questions for %s",
			v.questionCount(), strings.ToLower(v.generator.value("Difficulty")), v.generator.value("Subject")))
	case btnPublish:
		if len(v.preview) == 0 {
			m.SetError(fmt.Errorf("generate a quiz before publishing"))
			return
		}
		v.deps.Log.Info("quiz published", "subject", v.generator.value("Subject"), "questions", v.questionCount())
		m.SetStatus("Quiz sent to the head of department for approval")
	}
}

func (v *teacherPortal) questionCount() int {
	n, _ := strconv.Atoi(v.generator.value("Number of Questions"))
	return n
}

// generate fills the preview from the subject's question pool, rotating the
// pool on every regenerate.
func (v *teacherPortal) generate() {
	pool := questionPool[v.generator.value("Subject")]
	n := min(v.questionCount(), len(pool))
	v.preview = v.preview[:0]
	for i := 0; i < n; i++ {
		v.preview = append(v.preview, pool[(i+v.round)%len(pool)])
	}
	v.round++
}

func (v *teacherPortal) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		head := widgets.Text(widgets.TitleStyle.Render("Teacher Dashboard") + "\n" +
			widgets.MutedStyle.Render("Welcome, Dr. Pranali Nikam · Total Materials: 24 · Students: 58 · Avg: 76%"))
		var body widgets.Widget
		switch v.tabs.current() {
		case tabUpload:
			hint := widgets.Text(widgets.MutedStyle.Render("Click to Select File or Drag & Drop\nPDF, PPT, DOC, Excel, Images (Max 50MB)"))
			body = widgets.VStack{Widgets: []widgets.Widget{hint, &v.upload}, Ratios: []float64{3, 6}}
		case tabGenerator:
			body = widgets.HStack{Gap: 2, Ratios: []float64{0.4, 0.6}, Widgets: []widgets.Widget{
				widgets.Box{Title: "Quiz Settings", Content: v.generator.Render(48, len(v.generator.fields))},
				widgets.Func(v.renderPreview),
			}}
		case tabReports:
			body = widgets.Func(func(w, h int) string {
				v.roster.SetWidth(max(20, w))
				return v.roster.View() + "\n" + widgets.MutedStyle.Render("x export to Excel · enter view report")
			})
		default:
			body = widgets.Func(v.renderAnalytics)
		}
		return widgets.VStack{
			Widgets: []widgets.Widget{head, v.tabs, body},
			Fixed:   []int{2, 2},
		}.Render(width, max(height, 18))
	})
}

func (v *teacherPortal) renderPreview(width, height int) string {
	if len(v.preview) == 0 {
		return widgets.Box{Title: "Preview", Content: widgets.MutedStyle.Render("Q1: What is supervised learning?\n  ● Labeled data\n  ○ Unlabeled data\n  ○ Reinforcement")}.Render(width, height)
	}
	var b strings.Builder
	for i, q := range v.preview {
		b.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, q.prompt))
		for j, o := range q.options {
			mark := "○"
			if j == 0 {
				mark = "●"
			}
			b.WriteString("  " + mark + " " + o + "\n")
		}
	}
	return widgets.Box{Title: "Preview", Content: b.String(), Accent: true}.Render(width, height)
}

func (v *teacherPortal) renderAnalytics(width, height int) string {
	scores := make([]widgets.ChartPoint, 0, len(v.students))
	weak := map[string]int{}
	for _, s := range v.students {
		scores = append(scores, widgets.ChartPoint{Label: s.Name, Value: float64(s.Overall)})
		weak[s.Weak]++
	}
	lines := make([]string, 0, len(weak))
	for topic, n := range weak {
		lines = append(lines, fmt.Sprintf("%-18s %d student(s)", topic, n))
	}
	return widgets.HStack{Gap: 2, Widgets: []widgets.Widget{
		widgets.Chart{Title: "Overall score by student", Data: scores, Max: 100, Suffix: "%"},
		widgets.Box{Title: "Weak areas", Content: joinLines(sortedStrings(lines))},
	}}.Render(width, height)
}
