package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/widgets"
)

const (
	keyNotes    = "notes"
	allSubjects = "All Subjects"
)

type notesView struct {
	base
	deps  Deps
	chips subTabs
	notes []repository.Note
	rows  cursor
}

func newNotesView(d Deps) *notesView {
	return &notesView{
		base:  base{screen: core.ScreenNotes},
		deps:  d,
		chips: newSubTabs(allSubjects, "Machine Learning", "Data Science", "Linear Algebra", "Statistics"),
	}
}

func (v *notesView) InitView(m *core.Model) tea.Cmd {
	return load(m.ViewContext(), keyNotes, v.deps.Catalog.Notes)
}

// visible is the notes that pass the subject filter.
func (v *notesView) visible() []repository.Note {
	if v.chips.current() == allSubjects {
		return v.notes
	}
	out := make([]repository.Note, 0, len(v.notes))
	for _, n := range v.notes {
		if n.Subject == v.chips.current() {
			out = append(out, n)
		}
	}
	return out
}

func (v *notesView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if notes, ok := loaded[[]repository.Note](m, msg, keyNotes); ok {
		v.notes = notes
		v.rows.clamp(len(notes))
		return nil
	}
	scope := v.Scope()
	switch {
	case isAction(m, msg, "tab-next", scope):
		v.chips.next()
		v.rows.pos = 0
	case isAction(m, msg, "tab-prev", scope):
		v.chips.prev()
		v.rows.pos = 0
	case isAction(m, msg, "list-up", scope):
		v.rows.move(-1, len(v.visible()))
	case isAction(m, msg, "list-down", scope):
		v.rows.move(1, len(v.visible()))
	case isAction(m, msg, "select", scope):
		if shown := v.visible(); len(shown) > 0 {
			n := shown[v.rows.pos]
			m.SetStatus(fmt.Sprintf("Opening %s (%s)", n.Title, n.Kind))
		}
	}
	return nil
}

func (v *notesView) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		shown := v.visible()
		rows := make([][]string, 0, len(shown))
		for _, n := range shown {
			rows = append(rows, []string{
				n.Title, n.Subject, n.Kind, n.Author,
				n.Published.Format("Jan 2, 2006"),
				fmt.Sprintf("%d", n.Views), fmt.Sprintf("%d", n.Downloads),
			})
		}
		var body widgets.Widget = widgets.Table{
			Headers:  []string{"Title", "Subject", "Type", "Author", "Date", "Views", "Downloads"},
			Rows:     rows,
			Selected: v.rows.pos,
		}
		if len(shown) == 0 {
			body = widgets.Text(widgets.MutedStyle.Render("No materials for this subject yet."))
		}
		return widgets.VStack{
			Widgets: []widgets.Widget{
				widgets.Text(widgets.TitleStyle.Render("Course Materials")),
				v.chips,
				body,
			},
			Fixed: []int{1, 2},
		}.Render(width, max(height, len(rows)+4))
	})
}
