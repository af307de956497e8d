package views

import (
	"context"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/internal/tutor"
)

// Catalog is the content the views read. *repository.Catalog implements it.
type Catalog interface {
	Subjects(ctx context.Context) ([]repository.Subject, error)
	Chapters(ctx context.Context, subject string) ([]repository.Chapter, error)
	WeakAreas(ctx context.Context) ([]repository.WeakArea, error)
	Assignments(ctx context.Context) ([]repository.Assignment, error)
	Notes(ctx context.Context) ([]repository.Note, error)
	Quizzes(ctx context.Context) ([]repository.Quiz, error)
	Questions(ctx context.Context, quizID string) ([]repository.Question, error)
	Students(ctx context.Context) ([]repository.Student, error)
	Teachers(ctx context.Context) ([]repository.Teacher, error)
	Trend(ctx context.Context) ([]repository.TrendPoint, error)
	Concepts(ctx context.Context, scope repository.ConceptScope) ([]repository.Concept, error)
	Approvals(ctx context.Context) ([]repository.Approval, error)
	SetApprovalStatus(ctx context.Context, id string, status repository.ApprovalStatus) error
}

// Deps is everything the views need from outside the model.
type Deps struct {
	Catalog      Catalog
	Tutor        *tutor.Tutor
	Keys         *core.KeyRegistry
	Log          *slog.Logger
	StudentName  string
	QuizDuration time.Duration
	ReplyDelay   time.Duration
	ExportDir    string
	Now          func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Tutor == nil {
		d.Tutor = tutor.New(nil)
	}
	if d.Keys == nil {
		d.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if d.Log == nil {
		d.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.StudentName == "" {
		d.StudentName = "Pranali"
	}
	if d.QuizDuration <= 0 {
		d.QuizDuration = 25*time.Minute + 30*time.Second
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Factories maps every screen to a constructor for a fresh view.
func Factories(d Deps) map[core.Screen]core.ViewFactory {
	d = d.withDefaults()
	return map[core.Screen]core.ViewFactory{
		core.ScreenLogin:            func() core.View { return newLoginView(d) },
		core.ScreenStudentDashboard: func() core.View { return newStudentDashboard(d) },
		core.ScreenSubjectDashboard: func() core.View { return newSubjectDashboard(d) },
		core.ScreenAiAgent:          func() core.View { return newAgentView(d) },
		core.ScreenNotes:            func() core.View { return newNotesView(d) },
		core.ScreenAssignments:      func() core.View { return newAssignmentsView(d) },
		core.ScreenQuizzes:          func() core.View { return newQuizzesView(d) },
		core.ScreenPerformance:      func() core.View { return newPerformanceView(d) },
		core.ScreenTeacherPortal:    func() core.View { return newTeacherPortal(d) },
		core.ScreenHodPortal:        func() core.View { return newHodPortal(d) },
		core.ScreenSettings:         func() core.View { return newSettingsView(d) },
	}
}

// base supplies the identity methods every view shares.
type base struct {
	screen core.Screen
}

func (b base) Screen() core.Screen { return b.screen }
func (b base) Title() string       { return b.screen.Title() }
func (b base) Scope() string       { return core.ViewScope(b.screen) }

// load runs fn in a command and reports the result under key.
func load[T any](ctx context.Context, key string, fn func(ctx context.Context) (T, error)) tea.Cmd {
	return func() tea.Msg {
		data, err := fn(ctx)
		return core.DataLoadedMsg{Key: key, Data: data, Err: err}
	}
}

// loaded unpacks a DataLoadedMsg for key. A load error goes to the status bar.
func loaded[T any](m *core.Model, msg tea.Msg, key string) (T, bool) {
	var zero T
	dl, ok := msg.(core.DataLoadedMsg)
	if !ok || dl.Key != key {
		return zero, false
	}
	if dl.Err != nil {
		m.SetError(dl.Err)
		return zero, false
	}
	data, ok := dl.Data.(T)
	return data, ok
}

func isAction(m *core.Model, msg tea.Msg, action, scope string) bool {
	km, ok := msg.(tea.KeyMsg)
	return ok && m.Keys().IsAction(km, action, scope)
}
