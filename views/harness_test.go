package views

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database"
	"github.com/vsit/academicagent/internal/database/repository"
)

// testNow sits between the seeded assignment due dates.
var testNow = time.Date(2026, 2, 18, 9, 0, 0, 0, time.UTC)

type harness struct {
	t       *testing.T
	nav     *core.Navigator
	model   core.Model
	catalog *repository.Catalog
	deps    Deps
}

func newTestCatalog(t *testing.T) *repository.Catalog {
	t.Helper()
	db, err := database.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return repository.NewCatalog(db)
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	catalog := newTestCatalog(t)
	d := Deps{
		Catalog:   catalog,
		Keys:      core.NewKeyRegistry(core.DefaultKeyBindings()),
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return testNow },
	}
	nav := core.NewNavigator()
	h := &harness{t: t, nav: nav, catalog: catalog, deps: d}
	h.model = core.NewModel(context.Background(), nav, Factories(d), d.Keys, core.NewCommandRegistry(nil))
	h.settle(h.model.Init())
	return h
}

// goTo navigates through the store the way the sidebar does and lets the new
// view finish loading.
func (h *harness) goTo(s core.Screen) {
	h.nav.NavigateTo(s)
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(core.Model)
	return cmd
}

func (h *harness) send(msg tea.Msg) {
	h.settle(h.update(msg))
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// settle runs commands and feeds their results back until nothing quick is
// left. Ticks and blinks never finish in time and are dropped.
func (h *harness) settle(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for round := 0; round < 16 && len(queue) > 0; round++ {
		var next []tea.Cmd
		for _, c := range queue {
			for _, msg := range runQuick(c) {
				if _, quit := msg.(tea.QuitMsg); quit {
					continue
				}
				next = append(next, h.update(msg))
			}
		}
		queue = next
	}
}

func runQuick(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if msg == nil {
			return nil
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runQuick(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func (h *harness) status() string {
	text, _ := h.model.Status()
	return text
}

func (h *harness) render() string {
	return h.model.View()
}

func current[T core.View](h *harness) T {
	h.t.Helper()
	v, ok := h.model.Router().Current().(T)
	require.True(h.t, ok, "mounted view is %T", h.model.Router().Current())
	return v
}

func keyMsg(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"backspace": tea.KeyBackspace,
		"ctrl+r":    tea.KeyCtrlR,
		"ctrl+u":    tea.KeyCtrlU,
		"f1":        tea.KeyF1,
		"f2":        tea.KeyF2,
		"f3":        tea.KeyF3,
	}
	if t, ok := special[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	if k == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
