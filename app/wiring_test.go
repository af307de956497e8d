package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/views"
)

type appHarness struct {
	nav   *core.Navigator
	model core.Model
}

func newAppHarness(t *testing.T, actionKeys map[string][]string) *appHarness {
	t.Helper()
	db, err := database.Open("")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	nav := core.NewNavigator()
	deps := views.Deps{Catalog: repository.NewCatalog(db), ExportDir: t.TempDir()}
	return &appHarness{nav: nav, model: NewModel(context.Background(), nav, deps, actionKeys)}
}

func (h *appHarness) send(msg tea.Msg) {
	next, cmd := h.model.Update(msg)
	h.model = next.(core.Model)
	for _, out := range runQuick(cmd) {
		if _, ok := out.(tea.QuitMsg); ok {
			continue
		}
		h.send(out)
	}
}

// runQuick runs cmd and expands batches, dropping anything that waits on a
// timer.
func runQuick(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runQuick(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestRegisterCommandsCoversEveryScreen(t *testing.T) {
	h := newAppHarness(t, nil)
	results := h.model.CommandRegistry().Search("", "view:notes", &h.model)
	if len(results) != len(core.Screens())+1 {
		t.Fatalf("expected a command per screen plus sign-out, got %d", len(results))
	}
	last := results[len(results)-1]
	if last.CommandID != CommandID(core.ScreenLogin) || !last.Disabled || last.Reason != "already here" {
		t.Fatalf("current screen should sort last as disabled, got %+v", last)
	}
	if CommandID(core.ScreenHodPortal) != "go-hod_portal" {
		t.Fatalf("unexpected command id %q", CommandID(core.ScreenHodPortal))
	}
}

func TestSearchMatchesMenuLabelsAndTypos(t *testing.T) {
	h := newAppHarness(t, nil)
	reg := h.model.CommandRegistry()

	results := reg.Search("approvals", "view:notes", &h.model)
	if len(results) != 1 || results[0].CommandID != CommandID(core.ScreenHodPortal) {
		t.Fatalf("sidebar label should find the HOD portal, got %+v", results)
	}

	results = reg.Search("perfomance", "view:notes", &h.model)
	if len(results) == 0 || results[0].CommandID != CommandID(core.ScreenPerformance) {
		t.Fatalf("one-edit typo should still find Performance, got %+v", results)
	}

	results = reg.Search("settings", "view:notes", &h.model)
	if len(results) == 0 || results[0].CommandID != CommandID(core.ScreenSettings) {
		t.Fatalf("name hits should rank first, got %+v", results)
	}

	if got := reg.Search("zzzz", "view:notes", &h.model); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestPaletteNavigatesAcrossRoles(t *testing.T) {
	h := newAppHarness(t, nil)
	h.nav.SignIn("teacher@vsit.edu.in")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlK})
	if h.model.Overlays() != 1 {
		t.Fatalf("ctrl+k should open the palette")
	}
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quizzes")})
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.model.Overlays() != 0 {
		t.Fatalf("palette should close after selecting")
	}
	if h.nav.CurrentScreen() != core.ScreenQuizzes {
		t.Fatalf("expected Quizzes, got %s", h.nav.CurrentScreen())
	}
	if h.nav.UserRole() != core.RoleTeacher {
		t.Fatalf("palette navigation must keep the role")
	}
	if text, _ := h.model.Status(); text != "Quizzes" {
		t.Fatalf("unexpected status %q", text)
	}
}

func TestPaletteNotAvailableOnLogin(t *testing.T) {
	h := newAppHarness(t, nil)
	h.send(tea.KeyMsg{Type: tea.KeyCtrlK})
	if h.model.Overlays() != 0 {
		t.Fatalf("login has no chrome shortcuts")
	}
}

func TestSignOutCommandOpensConfirmation(t *testing.T) {
	h := newAppHarness(t, nil)
	h.nav.SignIn("hod@vsit.edu.in")
	h.send(core.CommandExecuteMsg{CommandID: "sign-out"})
	if !h.nav.ShowLogoutModal() || h.nav.CurrentScreen() != core.ScreenHodPortal {
		t.Fatalf("sign-out command should only open the confirmation")
	}
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if h.nav.CurrentScreen() != core.ScreenLogin {
		t.Fatalf("confirming should return to Login")
	}
}

func TestActionKeyOverrides(t *testing.T) {
	h := newAppHarness(t, map[string][]string{"sign-out": {"ctrl+x"}})
	h.nav.SignIn("student@vsit.edu.in")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	if h.nav.ShowLogoutModal() {
		t.Fatalf("default key should be replaced")
	}
	h.send(tea.KeyMsg{Type: tea.KeyCtrlX})
	if !h.nav.ShowLogoutModal() {
		t.Fatalf("override key should open the confirmation")
	}
}

func TestLogNavigation(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	nav := core.NewNavigator()
	stop := LogNavigation(nav, log)
	nav.SignIn("student@vsit.edu.in")
	out := buf.String()
	if !strings.Contains(out, "change=role") || !strings.Contains(out, "screen=STUDENT_DASH") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
	stop()
	buf.Reset()
	nav.NavigateTo(core.ScreenNotes)
	if buf.Len() != 0 {
		t.Fatalf("unsubscribed logger still writing: %s", buf.String())
	}
}
