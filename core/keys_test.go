package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"view:*"}},
		{Keys: []string{"r"}, Action: "retry", Scopes: []string{"view:quizzes"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "view:notes") {
		t.Fatalf("expected ctrl+k in the view family")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", ScopeLogin) {
		t.Fatalf("did not expect ctrl+k on login")
	}
	if reg.IsAction(runes("r"), "retry", "view:notes") {
		t.Fatalf("retry belongs to quizzes only")
	}
	if !reg.IsAction(runes("q"), "quit", ScopeLogin) {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestSpaceKeyNormalized(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "toggle", ViewScope(ScreenSettings)) {
		t.Fatalf("space should toggle settings")
	}
}

func TestApplyActionKeybindingsOverridesKeys(t *testing.T) {
	defaults := DefaultKeyBindings()
	bindings := ApplyActionKeybindings(defaults, map[string][]string{"sign-out": {"ctrl+x"}})
	reg := NewKeyRegistry(bindings)
	scope := ViewScope(ScreenNotes)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlX}, "sign-out", scope) {
		t.Fatalf("override should bind ctrl+x")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlO}, "sign-out", scope) {
		t.Fatalf("override should replace the default key")
	}
	if !NewKeyRegistry(defaults).IsAction(tea.KeyMsg{Type: tea.KeyCtrlO}, "sign-out", scope) {
		t.Fatalf("defaults must not be mutated")
	}
}

func TestMenuDigitsBoundInChrome(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for i := range RoleMenu(RoleStudent) {
		digit := string(rune('1' + i))
		if !reg.IsAction(runes(digit), MenuAction(i), ViewScope(ScreenPerformance)) {
			t.Fatalf("expected %s bound to %s", digit, MenuAction(i))
		}
		if reg.IsAction(runes(digit), MenuAction(i), ScopeLogin) {
			t.Fatalf("menu digits must not fire on login")
		}
	}
}

func TestHelpBindingsPutOwnScopeFirst(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	help := reg.HelpBindings(ViewScope(ScreenQuizzes))
	if len(help) == 0 || help[0].Help().Desc != "up" || help[0].Help().Key != "k/up" {
		t.Fatalf("expected the quiz list binding first, got %+v", help)
	}
	seen := map[string]bool{}
	quitAt, retryAt := -1, -1
	for i, b := range help {
		desc := b.Help().Desc
		if seen[desc] {
			t.Fatalf("duplicate help entry %q", desc)
		}
		seen[desc] = true
		switch desc {
		case "quit":
			quitAt = i
		case "try again":
			retryAt = i
		}
	}
	if quitAt < 0 || retryAt < 0 || retryAt > quitAt {
		t.Fatalf("own bindings should precede chrome: retry=%d quit=%d", retryAt, quitAt)
	}

	for _, b := range reg.HelpBindings(ScopeLogin) {
		if b.Help().Desc == "quit" || b.Help().Desc == "menu" {
			t.Fatalf("login help must not list chrome binding %q", b.Help().Desc)
		}
	}
}
