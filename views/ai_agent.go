package views

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/tutor"
	"github.com/vsit/academicagent/widgets"
)

var (
	chatHistory = []string{"Neural Networks", "Linear Algebra Quiz", "Machine Learning Basics", "Probability Doubts", "Exam Prep"}
	a11yOptions = []string{"Font Size: Medium", "High Contrast: off", "Screen Reader: off", "Captions: on", "Reduce Motion: off"}

	userBubble = lipgloss.NewStyle().Foreground(widgets.ColorWhite).Background(widgets.ColorPrimary).Padding(0, 1)
	aiBubble   = lipgloss.NewStyle().Foreground(widgets.ColorText).Background(widgets.ColorSurface).Padding(0, 1)
)

type tutorReplyMsg struct {
	reply tutor.Message
	err   error
}

type agentView struct {
	base
	deps     Deps
	history  cursor
	messages []tutor.Message
	input    textinput.Model
	waiting  bool
}

func newAgentView(d Deps) *agentView {
	in := textinput.New()
	in.Placeholder = "Type your question here..."
	in.Prompt = "› "
	in.CharLimit = 500
	in.Focus()
	return &agentView{
		base:     base{screen: core.ScreenAiAgent},
		deps:     d,
		messages: []tutor.Message{d.Tutor.Greeting(d.StudentName)},
		input:    in,
	}
}

func (v *agentView) CapturesInput() bool { return true }

func (v *agentView) InitView(*core.Model) tea.Cmd { return textinput.Blink }

// Messages is the conversation so far, oldest first.
func (v *agentView) Messages() []tutor.Message { return v.messages }

func (v *agentView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	scope := v.Scope()
	switch msg := msg.(type) {
	case tutorReplyMsg:
		v.waiting = false
		if msg.err != nil {
			m.SetError(msg.err)
			return nil
		}
		v.messages = append(v.messages, msg.reply)
		return nil
	case tea.KeyMsg:
		keys := m.Keys()
		switch {
		case keys.IsAction(msg, "history-up", scope):
			v.history.move(-1, len(chatHistory))
			return nil
		case keys.IsAction(msg, "history-down", scope):
			v.history.move(1, len(chatHistory))
			return nil
		case keys.IsAction(msg, "clear", scope):
			v.input.Reset()
			return nil
		case keys.IsAction(msg, "select", scope):
			return v.send(m)
		}
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

// send posts the typed question, or a question about the highlighted history
// topic when nothing is typed, and schedules the tutor's answer.
func (v *agentView) send(m *core.Model) tea.Cmd {
	if v.waiting {
		return nil
	}
	prompt := strings.TrimSpace(v.input.Value())
	if prompt == "" {
		prompt = "Explain " + chatHistory[v.history.pos]
	}
	question, err := v.deps.Tutor.Ask(prompt)
	if err != nil {
		m.SetError(err)
		return nil
	}
	v.messages = append(v.messages, question)
	v.input.Reset()
	v.waiting = true
	v.deps.Log.Debug("tutor question", "id", question.ID)
	return replyAfter(m.ViewContext(), v.deps.Tutor, prompt, v.deps.ReplyDelay)
}

func replyAfter(ctx context.Context, t *tutor.Tutor, prompt string, delay time.Duration) tea.Cmd {
	answer := func() tea.Msg {
		reply, err := t.Reply(ctx, prompt)
		return tutorReplyMsg{reply: reply, err: err}
	}
	if delay <= 0 {
		return answer
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return answer() })
}

func (v *agentView) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		history := widgets.List{Title: "History", Items: chatHistory, Selected: v.history.pos}
		left := widgets.Func(func(w, h int) string {
			return widgets.Box{Content: history.Render(max(1, w-4), max(1, h-2))}.Render(w, h)
		})
		chat := widgets.Func(v.renderChat)
		a11y := widgets.Box{Title: "Accessibility", Content: joinLines(a11yOptions)}
		if width < 80 {
			return widgets.VStack{Widgets: []widgets.Widget{chat}}.Render(width, height)
		}
		return widgets.HStack{
			Gap:     1,
			Ratios:  []float64{0.22, 0.56, 0.22},
			Widgets: []widgets.Widget{left, chat, a11y},
		}.Render(width, max(height, 16))
	})
}

func (v *agentView) renderChat(width, height int) string {
	inner := max(10, width-4)
	bubbleW := max(8, inner*4/5)
	lines := []string{}
	for _, msg := range v.messages {
		wrapped := strings.Split(ansi.Wordwrap(msg.Text, bubbleW-2, ""), "\n")
		for _, l := range wrapped {
			if msg.From == tutor.SenderUser {
				text := userBubble.Render(l)
				lines = append(lines, strings.Repeat(" ", max(0, inner-ansi.StringWidth(text)))+text)
			} else {
				lines = append(lines, aiBubble.Render(l))
			}
		}
		lines = append(lines, "")
	}
	if v.waiting {
		lines = append(lines, widgets.MutedStyle.Render("AI Agent is typing…"))
	}
	room := max(1, height-5)
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for len(lines) < room {
		lines = append(lines, "")
	}
	lines = append(lines, widgets.MutedStyle.Render(strings.Repeat("─", inner)), v.input.View())
	return widgets.Box{Content: joinLines(lines), Accent: true}.Render(width, height)
}
