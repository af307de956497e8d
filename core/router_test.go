package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/widgets"
)

type initMsg struct{}

type fakeView struct {
	screen  Screen
	got     []tea.Msg
	capture bool
	closed  bool
}

func (v *fakeView) Screen() Screen { return v.screen }
func (v *fakeView) Title() string  { return v.screen.Title() }
func (v *fakeView) Scope() string  { return ViewScope(v.screen) }
func (v *fakeView) Update(m *Model, msg tea.Msg) tea.Cmd {
	v.got = append(v.got, msg)
	return nil
}
func (v *fakeView) Build(m *Model) widgets.Widget { return widgets.Text("body of " + v.screen.Title()) }
func (v *fakeView) InitView(m *Model) tea.Cmd     { return func() tea.Msg { return initMsg{} } }
func (v *fakeView) CapturesInput() bool           { return v.capture }
func (v *fakeView) CloseView()                    { v.closed = true }
func (v *fakeView) keys() (n int) {
	for _, msg := range v.got {
		if _, ok := msg.(tea.KeyMsg); ok {
			n++
		}
	}
	return n
}

type harness struct {
	nav   *Navigator
	made  map[Screen][]*fakeView
	model Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{nav: NewNavigator(), made: map[Screen][]*fakeView{}}
	factories := map[Screen]ViewFactory{}
	for _, s := range Screens() {
		s := s
		factories[s] = func() View {
			v := &fakeView{screen: s}
			h.made[s] = append(h.made[s], v)
			return v
		}
	}
	h.model = NewModel(context.Background(), h.nav, factories, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil))
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) current() *fakeView {
	return h.model.Router().Current().(*fakeView)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestNavigatorDefaults(t *testing.T) {
	nav := NewNavigator()
	state := nav.Snapshot()
	if state.CurrentScreen != ScreenLogin || state.UserRole != RoleStudent || state.ShowLogoutModal {
		t.Fatalf("unexpected defaults: %+v", state)
	}
}

func TestNavigateToIsPermissive(t *testing.T) {
	nav := NewNavigator()
	nav.SetUserRole(RoleStudent)
	for _, s := range Screens() {
		nav.NavigateTo(s)
		if nav.CurrentScreen() != s {
			t.Fatalf("navigate to %s landed on %s", s, nav.CurrentScreen())
		}
	}
	nav.NavigateTo(ScreenHodPortal)
	if nav.UserRole() != RoleStudent {
		t.Fatalf("navigation must not touch the role")
	}
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	nav := NewNavigator()
	var kinds []ChangeKind
	unsubscribe := nav.Subscribe(func(ev NavigationEvent) { kinds = append(kinds, ev.Kind) })
	nav.NavigateTo(ScreenLogin)
	nav.SetUserRole(RoleHOD)
	nav.SetShowLogoutModal(false)
	unsubscribe()
	nav.NavigateTo(ScreenNotes)
	want := []ChangeKind{ChangeScreen, ChangeRole, ChangeLogoutModal}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestSignInHeuristic(t *testing.T) {
	cases := []struct {
		id     string
		role   Role
		screen Screen
	}{
		{"teacher@vsit.edu.in", RoleTeacher, ScreenTeacherPortal},
		{"hod@vsit.edu.in", RoleHOD, ScreenHodPortal},
		{"student@vsit.edu.in", RoleStudent, ScreenStudentDashboard},
		{"", RoleStudent, ScreenStudentDashboard},
		{"Teacher@vsit.edu.in", RoleStudent, ScreenStudentDashboard},
		{"hod.teacher@vsit.edu.in", RoleTeacher, ScreenTeacherPortal},
	}
	for _, tc := range cases {
		nav := NewNavigator()
		if got := nav.SignIn(tc.id); got != tc.role {
			t.Fatalf("%q: expected role %s, got %s", tc.id, tc.role, got)
		}
		if nav.CurrentScreen() != tc.screen {
			t.Fatalf("%q: expected %s, got %s", tc.id, tc.screen, nav.CurrentScreen())
		}
	}
}

func TestRoleMenus(t *testing.T) {
	cases := []struct {
		role  Role
		n     int
		first Screen
	}{
		{RoleStudent, 7, ScreenStudentDashboard},
		{RoleTeacher, 5, ScreenTeacherPortal},
		{RoleHOD, 6, ScreenHodPortal},
	}
	for _, tc := range cases {
		menu := RoleMenu(tc.role)
		if len(menu) != tc.n {
			t.Fatalf("%s: expected %d items, got %d", tc.role, tc.n, len(menu))
		}
		if menu[0].Target != tc.first || menu[len(menu)-1].Target != ScreenSettings {
			t.Fatalf("%s: unexpected menu %+v", tc.role, menu)
		}
		menu[0].Target = ScreenLogin
		if RoleMenu(tc.role)[0].Target != tc.first {
			t.Fatalf("%s: RoleMenu must return a copy", tc.role)
		}
	}
}

func TestParseScreenAndRole(t *testing.T) {
	s, err := ParseScreen("quizzes")
	if err != nil || s != ScreenQuizzes {
		t.Fatalf("parse quizzes: %v %v", s, err)
	}
	if _, err := ParseScreen("GRADES"); err == nil {
		t.Fatalf("expected error for unknown screen")
	}
	r, err := ParseRole(" HOD ")
	if err != nil || r != RoleHOD {
		t.Fatalf("parse hod: %v %v", r, err)
	}
}

func TestEnumerationsComeFromTable(t *testing.T) {
	screens := Screens()
	if len(screens) != 11 || screens[0] != ScreenLogin || screens[10] != ScreenSettings {
		t.Fatalf("unexpected screens %v", screens)
	}
	var zero Screen
	if zero != ScreenLogin {
		t.Fatalf("zero screen = %v, want LOGIN", zero)
	}
	for _, s := range screens {
		got, err := ParseScreen(s.String())
		if err != nil || got != s {
			t.Fatalf("round trip %v: %v %v", s, got, err)
		}
	}
	screens[0] = ScreenSettings
	if Screens()[0] != ScreenLogin {
		t.Fatalf("Screens must return a fresh slice")
	}

	roles := Roles()
	if len(roles) != 3 || roles[0] != RoleStudent || roles[2] != RoleHOD {
		t.Fatalf("unexpected roles %v", roles)
	}
	for _, r := range roles {
		got, err := ParseRole(r.String())
		if err != nil || got != r {
			t.Fatalf("round trip %v: %v %v", r, got, err)
		}
	}
}

func TestRouterMountsExactlyOneViewPerScreen(t *testing.T) {
	h := newHarness(t)
	for i, s := range Screens() {
		h.nav.NavigateTo(s)
		if h.model.Router().Screen() != s || h.current().Screen() != s {
			t.Fatalf("expected %s mounted, got %s", s, h.model.Router().Screen())
		}
		if i > 0 && len(h.made[s]) != 1 {
			t.Fatalf("%s: expected one mount, got %d", s, len(h.made[s]))
		}
	}
	if h.made[ScreenLogin][0].closed != true {
		t.Fatalf("unmounted view should be closed")
	}
}

func TestSameScreenNavigationOnlyResetsScroll(t *testing.T) {
	h := newHarness(t)
	h.nav.NavigateTo(ScreenNotes)
	view := h.current()
	h.model.Router().ScrollTo(12)
	h.nav.NavigateTo(ScreenNotes)
	if h.current() != view {
		t.Fatalf("same-screen navigation must keep the mounted view")
	}
	if h.model.Router().Scroll() != 0 {
		t.Fatalf("scroll should reset, got %d", h.model.Router().Scroll())
	}
}

func TestReentryBuildsFreshView(t *testing.T) {
	h := newHarness(t)
	h.nav.NavigateTo(ScreenQuizzes)
	first := h.current()
	h.nav.NavigateTo(ScreenNotes)
	h.nav.NavigateTo(ScreenQuizzes)
	if h.current() == first || len(h.made[ScreenQuizzes]) != 2 {
		t.Fatalf("re-entering a screen must build a new view")
	}
}

func TestStaleLifetimeMessagesAreDropped(t *testing.T) {
	h := newHarness(t)
	h.nav.NavigateTo(ScreenQuizzes)
	old := h.model.Router().Lifetime()
	oldView := h.current()
	h.nav.NavigateTo(ScreenNotes)
	h.nav.NavigateTo(ScreenQuizzes)
	if !old.Done() {
		t.Fatalf("old lifetime should have ended")
	}
	h.send(LifetimeMsg{ID: old.ID(), Msg: "tick"})
	if len(h.current().got) != 0 || len(oldView.got) != 0 {
		t.Fatalf("stale message reached a view")
	}
	h.send(LifetimeMsg{ID: h.model.Router().Lifetime().ID(), Msg: "tick"})
	if len(h.current().got) != 1 {
		t.Fatalf("live message should reach the view")
	}
}

func TestInitViewIsGuardedByLifetime(t *testing.T) {
	h := newHarness(t)
	cmd := h.model.Init()
	if cmd == nil {
		t.Fatalf("expected init command")
	}
	msg, ok := cmd().(LifetimeMsg)
	if !ok {
		t.Fatalf("init result should be tagged with the lifetime")
	}
	h.send(msg)
	if _, ok := h.current().got[0].(initMsg); !ok {
		t.Fatalf("view should receive its init result, got %#v", h.current().got)
	}
	if h.model.Init() != nil {
		t.Fatalf("init must run once per mount")
	}
}

func TestGuardDropsResultAfterLifetimeEnds(t *testing.T) {
	lt := newLifetime(context.Background(), 7)
	cmd := lt.Guard(func() tea.Msg { return "done" })
	lt.End()
	if cmd() != nil {
		t.Fatalf("ended lifetime should drop results")
	}
	if lt.Context().Err() == nil {
		t.Fatalf("context should be cancelled")
	}
}

func TestLogoutModalFlow(t *testing.T) {
	h := newHarness(t)
	h.nav.SignIn("student@vsit.edu.in")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlO})
	if !h.nav.ShowLogoutModal() || h.nav.CurrentScreen() != ScreenStudentDashboard {
		t.Fatalf("opening the modal must not change screens")
	}
	if h.model.ActiveScope() != ScopeLogoutOverlay {
		t.Fatalf("modal should own the keyboard, got %s", h.model.ActiveScope())
	}
	h.send(runes("n"))
	if h.nav.ShowLogoutModal() || h.nav.CurrentScreen() != ScreenStudentDashboard {
		t.Fatalf("cancel should only close the modal")
	}
	h.send(ShowLogoutModalMsg{Show: true})
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.nav.ShowLogoutModal() || h.nav.CurrentScreen() != ScreenLogin {
		t.Fatalf("confirm should sign out to Login")
	}
	if h.nav.UserRole() != RoleStudent {
		t.Fatalf("role is kept until the next sign-in")
	}
}

func TestLogoutModalNotShownOnLogin(t *testing.T) {
	h := newHarness(t)
	h.nav.SetShowLogoutModal(true)
	if h.model.ActiveScope() != ScopeLogin {
		t.Fatalf("login ignores the modal flag, got %s", h.model.ActiveScope())
	}
	if strings.Contains(h.model.View(), "Are you sure") {
		t.Fatalf("login must not render the logout confirmation")
	}
	h.send(runes("x"))
	if h.current().keys() != 1 {
		t.Fatalf("login view should receive keys while the flag is set")
	}
}

func TestChromeRenderedOffLoginOnly(t *testing.T) {
	h := newHarness(t)
	if strings.Contains(h.model.View(), "SIGN OUT") {
		t.Fatalf("login must not render the top bar")
	}
	h.nav.SignIn("hod@vsit.edu.in")
	view := h.model.View()
	for _, want := range []string{"SIGN OUT", "Approvals", "HS", "Department Portal"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in chrome:\n%s", want, view)
		}
	}
	h.send(ShowLogoutModalMsg{Show: true})
	if !strings.Contains(h.model.View(), "Are you sure you want to sign out?") {
		t.Fatalf("expected logout confirmation")
	}
}

func TestMenuKeysFollowRole(t *testing.T) {
	h := newHarness(t)
	h.nav.SignIn("student@vsit.edu.in")
	h.send(runes("4"))
	if h.nav.CurrentScreen() != ScreenQuizzes {
		t.Fatalf("student item 4 is Quizzes, got %s", h.nav.CurrentScreen())
	}
	h.nav.SignIn("teacher@vsit.edu.in")
	h.send(runes("5"))
	if h.nav.CurrentScreen() != ScreenSettings {
		t.Fatalf("teacher item 5 is Settings, got %s", h.nav.CurrentScreen())
	}
	h.send(tea.KeyMsg{Type: tea.KeyCtrlG})
	if h.nav.CurrentScreen() != ScreenTeacherPortal {
		t.Fatalf("home goes to the role's landing screen")
	}
}

func TestInputCapturingViewGetsPlainKeys(t *testing.T) {
	h := newHarness(t)
	h.nav.SignIn("student@vsit.edu.in")
	h.nav.NavigateTo(ScreenAiAgent)
	h.current().capture = true
	h.send(runes("2"))
	h.send(runes("q"))
	if h.nav.CurrentScreen() != ScreenAiAgent || h.current().keys() != 2 {
		t.Fatalf("typing must reach the view")
	}
	h.send(tea.KeyMsg{Type: tea.KeyCtrlP})
	if h.nav.CurrentScreen() != ScreenSettings {
		t.Fatalf("ctrl shortcuts still work while typing")
	}
}

type fakeOverlay struct{ hits int }

func (o *fakeOverlay) Title() string        { return "Overlay" }
func (o *fakeOverlay) Scope() string        { return "overlay:test" }
func (o *fakeOverlay) View(int, int) string { return "overlay" }
func (o *fakeOverlay) Update(msg tea.Msg) (Overlay, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		o.hits++
		if km.String() == "esc" {
			return o, nil, true
		}
	}
	return o, nil, false
}

func TestOverlayGetsKeyBeforeView(t *testing.T) {
	h := newHarness(t)
	h.nav.SignIn("student@vsit.edu.in")
	o := &fakeOverlay{}
	h.model.PushOverlay(o)
	h.send(runes("3"))
	if o.hits != 1 || h.current().keys() != 0 || h.nav.CurrentScreen() != ScreenStudentDashboard {
		t.Fatalf("overlay should handle the key first")
	}
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.model.Overlays() != 0 {
		t.Fatalf("expected overlay to pop on esc")
	}
}

func TestSignOutClearsOverlays(t *testing.T) {
	h := newHarness(t)
	h.nav.SignIn("teacher@vsit.edu.in")
	h.model.PushOverlay(&fakeOverlay{})
	h.send(SignOutMsg{})
	if h.model.Overlays() != 0 || h.nav.CurrentScreen() != ScreenLogin {
		t.Fatalf("sign out should clear overlays and return to Login")
	}
}

func TestCommandExecuteNavigates(t *testing.T) {
	h := newHarness(t)
	h.model.CommandRegistry().Register(Command{
		ID:     "go-notes",
		Name:   "Go to Notes",
		Scopes: []string{"*"},
		Execute: func(m *Model) tea.Cmd {
			m.Navigate(ScreenNotes)
			return nil
		},
	})
	h.send(CommandExecuteMsg{CommandID: "go-notes"})
	if h.nav.CurrentScreen() != ScreenNotes {
		t.Fatalf("command should navigate, got %s", h.nav.CurrentScreen())
	}
	cmd := h.send(CommandExecuteMsg{CommandID: "missing"})
	if cmd == nil {
		t.Fatalf("unknown command should report a status")
	}
}

func TestNilNavigatorPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoNavigator) {
			t.Fatalf("expected ErrNoNavigator panic, got %v", r)
		}
	}()
	m := NewModel(context.Background(), nil, nil, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestNewRouterRequiresEveryScreen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing factory")
		}
	}()
	NewRouter(context.Background(), NewNavigator(), map[Screen]ViewFactory{})
}
