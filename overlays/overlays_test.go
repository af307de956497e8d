package overlays

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
)

func testKeys() *core.KeyRegistry { return core.NewKeyRegistry(core.DefaultKeyBindings()) }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// drain runs cmd and any batches it produces, collecting the leaf messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

type verified struct{ email string }

func newOTP() *OTPPrompt {
	return NewOTPPrompt(testKeys(), "new@vsit.edu.in", func(email string) tea.Msg { return verified{email} })
}

func TestOTPRejectsLettersAndShortCodes(t *testing.T) {
	o := newOTP()
	o.Update(runes("a"))
	if !strings.Contains(o.View(60, 20), "Digits only.") {
		t.Fatalf("expected digits-only warning")
	}
	o.Update(runes("123"))
	_, _, pop := o.Update(enter)
	if pop {
		t.Fatalf("short code must not verify")
	}
	if !strings.Contains(o.View(60, 20), "Enter all 6 digits.") {
		t.Fatalf("expected length warning:\n%s", o.View(60, 20))
	}
}

func TestOTPVerifiesSixDigits(t *testing.T) {
	o := newOTP()
	o.Update(runes("123456"))
	o.Update(runes("7"))
	_, cmd, pop := o.Update(enter)
	if !pop {
		t.Fatalf("six digits should verify and close")
	}
	found := false
	for _, msg := range drain(cmd) {
		if v, ok := msg.(verified); ok && v.email == "new@vsit.edu.in" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected verification message")
	}
}

func TestOTPExpires(t *testing.T) {
	o := newOTP()
	if o.Remaining() != OTPExpiry {
		t.Fatalf("expected full expiry, got %s", o.Remaining())
	}
	if !strings.Contains(o.View(60, 20), "05:00") {
		t.Fatalf("expected countdown in view")
	}
	for i := 0; i < int(OTPExpiry/time.Second); i++ {
		o.Update(timer.TickMsg{ID: o.timer.ID()})
	}
	if o.Remaining() > 0 {
		t.Fatalf("timer should have run out, %s left", o.Remaining())
	}
	o.Update(runes("123456"))
	_, _, pop := o.Update(enter)
	if pop || !strings.Contains(o.View(60, 20), "Code expired") {
		t.Fatalf("expired code must not verify")
	}
}

func TestOTPIgnoresForeignTicks(t *testing.T) {
	o := newOTP()
	other := timer.New(time.Minute)
	o.Update(timer.TickMsg{ID: other.ID()})
	if o.Remaining() != OTPExpiry {
		t.Fatalf("another timer's tick changed the countdown")
	}
}

func TestOTPCancel(t *testing.T) {
	_, _, pop := newOTP().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatalf("esc should close the prompt")
	}
}

func paletteOptions() []CommandOption {
	return []CommandOption{
		{ID: "go-notes", Name: "Go to Notes & Materials"},
		{ID: "go-quizzes", Name: "Go to Quizzes"},
		{ID: "go-settings", Name: "Go to Settings", Disabled: true, Reason: "already here"},
	}
}

func newPalette() *CommandPalette {
	search := func(q string) []CommandOption {
		var out []CommandOption
		for _, o := range paletteOptions() {
			if q == "" || strings.Contains(strings.ToLower(o.FilterValue()), strings.ToLower(q)) {
				out = append(out, o)
			}
		}
		return out
	}
	return NewCommandPalette(testKeys(), "view:notes", search, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func TestCommandPaletteFiltersAndSelects(t *testing.T) {
	p := newPalette()
	if p.Len() != 3 {
		t.Fatalf("expected all options, got %d", p.Len())
	}
	p.Update(runes("quiz"))
	if p.Len() != 1 {
		t.Fatalf("expected one match for quiz, got %d", p.Len())
	}
	_, cmd, pop := p.Update(enter)
	if !pop || cmd == nil {
		t.Fatalf("select should close with a command")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "go-quizzes" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestCommandPaletteDisabledOption(t *testing.T) {
	p := newPalette()
	p.Update(runes("settings"))
	_, cmd, pop := p.Update(enter)
	if !pop {
		t.Fatalf("disabled option should still close")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || msg.Text != "already here" {
		t.Fatalf("expected reason as status, got %#v", msg)
	}
}

func TestCommandPaletteNoMatch(t *testing.T) {
	p := newPalette()
	p.Update(runes("zzz"))
	_, cmd, pop := p.Update(enter)
	if pop || cmd != nil {
		t.Fatalf("nothing to select")
	}
	if _, _, pop := p.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc should close")
	}
}

func TestAssignmentDetail(t *testing.T) {
	a := repository.Assignment{
		Title:  "Neural Networks Implementation",
		Course: "Artificial Intelligence",
		Due:    time.Date(2026, 10, 28, 0, 0, 0, 0, time.UTC),
		Status: repository.StatusPending,
	}
	d := NewAssignmentDetail(testKeys(), a)
	view := d.View(80, 30)
	for _, want := range []string{"Instructions", "backpropagation", "Oct 28, 2026", "PDF, DOCX, ZIP"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in detail:\n%s", want, view)
		}
	}
	_, cmd, pop := d.Update(enter)
	if !pop {
		t.Fatalf("submit should close the detail")
	}
	if msg := cmd().(core.StatusMsg); !strings.Contains(msg.Text, "web portal") {
		t.Fatalf("unexpected status %q", msg.Text)
	}

	a.Status = repository.StatusCompleted
	_, cmd, _ = NewAssignmentDetail(testKeys(), a).Update(enter)
	if msg := cmd().(core.StatusMsg); !strings.Contains(msg.Text, "already submitted") {
		t.Fatalf("unexpected status %q", msg.Text)
	}
	if _, _, pop := d.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc should close")
	}
}
