package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/widgets"
)

const (
	keyQuizzes   = "quizzes"
	keyQuestions = "questions"
)

// QuizPhase is where the quizzes page is in its list, attempt, result cycle.
type QuizPhase int

const (
	QuizList QuizPhase = iota
	QuizActive
	QuizResult
)

func (p QuizPhase) String() string {
	switch p {
	case QuizActive:
		return "QUIZ"
	case QuizResult:
		return "RESULT"
	default:
		return "LIST"
	}
}

type quizzesView struct {
	base
	deps    Deps
	phase   QuizPhase
	quizzes []repository.Quiz
	list    cursor

	quiz      repository.Quiz
	questions []repository.Question
	current   int
	chosen    int
	score     int
	timer     timer.Model
	expired   bool
}

func newQuizzesView(d Deps) *quizzesView {
	return &quizzesView{base: base{screen: core.ScreenQuizzes}, deps: d, chosen: -1}
}

// Phase reports the current stage of the page.
func (v *quizzesView) Phase() QuizPhase { return v.phase }

// Score is the number of correct answers in the current attempt.
func (v *quizzesView) Score() (correct, total int) { return v.score, len(v.questions) }

func (v *quizzesView) InitView(m *core.Model) tea.Cmd {
	return load(m.ViewContext(), keyQuizzes, v.deps.Catalog.Quizzes)
}

func (v *quizzesView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if quizzes, ok := loaded[[]repository.Quiz](m, msg, keyQuizzes); ok {
		v.quizzes = quizzes
		v.list.clamp(len(quizzes))
		return nil
	}
	if questions, ok := loaded[[]repository.Question](m, msg, keyQuestions); ok {
		return v.begin(m, questions)
	}
	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		v.timer, cmd = v.timer.Update(msg)
		return cmd
	case timer.TimeoutMsg:
		if msg.ID != v.timer.ID() || v.phase != QuizActive {
			return nil
		}
		v.expired = true
		v.finish(m)
		return nil
	}
	switch v.phase {
	case QuizList:
		return v.updateList(m, msg)
	case QuizActive:
		return v.updateActive(m, msg)
	default:
		return v.updateResult(m, msg)
	}
}

func (v *quizzesView) updateList(m *core.Model, msg tea.Msg) tea.Cmd {
	scope := v.Scope()
	switch {
	case isAction(m, msg, "list-up", scope):
		v.list.move(-1, len(v.quizzes))
	case isAction(m, msg, "list-down", scope):
		v.list.move(1, len(v.quizzes))
	case isAction(m, msg, "select", scope):
		if len(v.quizzes) == 0 {
			return nil
		}
		return v.start(m, v.quizzes[v.list.pos])
	}
	return nil
}

func (v *quizzesView) start(m *core.Model, q repository.Quiz) tea.Cmd {
	v.quiz = q
	id := q.ID
	return load(m.ViewContext(), keyQuestions, func(ctx context.Context) ([]repository.Question, error) {
		return v.deps.Catalog.Questions(ctx, id)
	})
}

// begin resets the attempt and starts a fresh countdown.
func (v *quizzesView) begin(m *core.Model, questions []repository.Question) tea.Cmd {
	if len(questions) == 0 {
		m.SetError(fmt.Errorf("%s has no questions yet", v.quiz.Title))
		return nil
	}
	v.questions = questions
	v.phase = QuizActive
	v.current = 0
	v.chosen = -1
	v.score = 0
	v.expired = false
	v.timer = timer.NewWithInterval(v.deps.QuizDuration, time.Second)
	v.deps.Log.Info("quiz started", "quiz", v.quiz.Title, "questions", len(questions))
	return v.timer.Init()
}

func (v *quizzesView) updateActive(m *core.Model, msg tea.Msg) tea.Cmd {
	scope := v.Scope()
	n := len(v.questions[v.current].Options)
	switch {
	case isAction(m, msg, "back", scope):
		v.phase = QuizList
		return v.timer.Stop()
	case isAction(m, msg, "list-up", scope):
		if v.chosen < 0 {
			v.chosen = n - 1
		} else {
			v.chosen = widgets.Clamp(v.chosen-1, n)
		}
	case isAction(m, msg, "list-down", scope):
		v.chosen = widgets.Clamp(v.chosen+1, n)
	case isAction(m, msg, "select", scope):
		if v.chosen < 0 {
			m.SetStatus("Choose an answer first")
			return nil
		}
		return v.submit(m)
	}
	return nil
}

func (v *quizzesView) submit(m *core.Model) tea.Cmd {
	if v.chosen == v.questions[v.current].Correct {
		v.score++
	}
	if v.current < len(v.questions)-1 {
		v.current++
		v.chosen = -1
		return nil
	}
	v.finish(m)
	return v.timer.Stop()
}

func (v *quizzesView) finish(m *core.Model) {
	v.phase = QuizResult
	v.deps.Log.Info("quiz finished", "quiz", v.quiz.Title, "score", v.score, "of", len(v.questions), "expired", v.expired)
	if v.expired {
		m.SetStatus("Time is up")
	}
}

func (v *quizzesView) updateResult(m *core.Model, msg tea.Msg) tea.Cmd {
	scope := v.Scope()
	switch {
	case isAction(m, msg, "retry", scope):
		return v.begin(m, v.questions)
	case isAction(m, msg, "back", scope), isAction(m, msg, "select", scope):
		v.phase = QuizList
	}
	return nil
}

func (v *quizzesView) Build(m *core.Model) widgets.Widget {
	switch v.phase {
	case QuizActive:
		return widgets.Func(v.renderActive)
	case QuizResult:
		return widgets.Func(v.renderResult)
	default:
		return widgets.Func(v.renderList)
	}
}

func (v *quizzesView) renderList(width, height int) string {
	if len(v.quizzes) == 0 {
		return widgets.Text(widgets.MutedStyle.Render("Loading quizzes…")).Render(width, height)
	}
	cards := make([]widgets.Widget, 0, len(v.quizzes))
	for i, q := range v.quizzes {
		best := ""
		if q.BestScore != nil {
			best = "  " + widgets.TitleStyle.Render("Best: "+percent(*q.BestScore))
		}
		body := widgets.MutedStyle.Render(q.Course) + "\n" +
			fmt.Sprintf("◷ %d min   ⚠ %d Qs\nAttempts: %d/%d%s", q.Minutes, q.Questions, q.AttemptsUsed, q.AttemptsMax, best) + "\n"
		button := widgets.GhostStyle.Render("Start Quiz")
		if i == v.list.pos {
			button = widgets.ButtonStyle.Render("Start Quiz")
		}
		cards = append(cards, widgets.Box{Title: q.Title, Content: body + button, Accent: i == v.list.pos})
	}
	rows := make([]widgets.Widget, 0, (len(cards)+1)/2+1)
	rows = append(rows, widgets.Text(widgets.TitleStyle.Render("Available Quizzes")))
	for i := 0; i < len(cards); i += 2 {
		pair := []widgets.Widget{cards[i]}
		if i+1 < len(cards) {
			pair = append(pair, cards[i+1])
		} else {
			pair = append(pair, widgets.Text(""))
		}
		rows = append(rows, widgets.HStack{Gap: 2, Widgets: pair})
	}
	ratios := make([]float64, len(rows))
	ratios[0] = 1
	for i := 1; i < len(ratios); i++ {
		ratios[i] = 8
	}
	return widgets.VStack{Widgets: rows, Ratios: ratios}.Render(width, max(height, 1+8*(len(rows)-1)))
}

func (v *quizzesView) renderActive(width, height int) string {
	q := v.questions[v.current]
	head := fmt.Sprintf("%s\n%s", widgets.TitleStyle.Render(v.quiz.Title),
		widgets.MutedStyle.Render(fmt.Sprintf("Question %d of %d", v.current+1, len(v.questions))))
	countdown := widgets.DangerStyle.Render("◷ " + clock(v.timer.Timeout))
	header := widgets.HStack{Widgets: []widgets.Widget{widgets.Text(head), widgets.Text(countdown)}, Ratios: []float64{0.8, 0.2}}

	var b strings.Builder
	b.WriteString(q.Prompt + "\n\n")
	for i, opt := range q.Options {
		line := fmt.Sprintf("○ %d. %s", i+1, opt)
		if i == v.chosen {
			line = widgets.SelectedStyle.Render(fmt.Sprintf("● %d. %s", i+1, opt))
		}
		b.WriteString(line + "\n")
	}
	action := "Next Question →"
	if v.current == len(v.questions)-1 {
		action = "Submit Quiz →"
	}
	style := widgets.ButtonStyle
	if v.chosen < 0 {
		style = widgets.GhostStyle.Foreground(widgets.ColorMuted)
	}
	progress := widgets.ProgressBar{Percent: float64(v.current) / float64(len(v.questions)) * 100}
	footer := widgets.HStack{Gap: 2, Widgets: []widgets.Widget{progress, widgets.Text(style.Render(action))}}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Box{Content: header.Render(max(1, width-4), 2)},
			widgets.Box{Content: b.String(), Accent: true},
			footer,
		},
		Ratios: []float64{4, 10, 1},
	}.Render(width, max(height, 16))
}

func (v *quizzesView) renderResult(width, height int) string {
	total := len(v.questions)
	pct := 0
	if total > 0 {
		pct = (v.score*100 + total/2) / total
	}
	msg := "You have successfully completed the " + v.quiz.Title + "."
	if v.expired {
		msg = "Time ran out on the " + v.quiz.Title + "."
	}
	stats := widgets.HStack{Gap: 2, Widgets: []widgets.Widget{
		widgets.StatCard{Label: "Score", Value: percent(pct)},
		widgets.StatCard{Label: "Correct", Value: fmt.Sprintf("%d/%d", v.score, total)},
	}}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(widgets.SuccessStyle.Render("✓ Quiz Completed!") + "\n" + widgets.MutedStyle.Render(msg)),
			stats,
			widgets.Text(widgets.ButtonStyle.Render("Back to Quizzes") + "  " + widgets.GhostStyle.Render("↻ Try Again (r)")),
		},
		Ratios: []float64{3, 5, 1},
	}.Render(min(width, 60), max(height, 10))
}
