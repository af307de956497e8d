package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/vsit/academicagent/widgets"
)

// View is one full-page screen. A new instance is built on every mount, so
// anything a view keeps in its fields is gone after the user navigates away.
type View interface {
	Screen() Screen
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type ViewInitializer interface {
	InitView(m *Model) tea.Cmd
}

type ViewCloser interface {
	CloseView()
}

// InputCapturer is implemented by views with a focused text field. While it
// reports true, unmodified keys go to the view instead of the chrome.
type InputCapturer interface {
	CapturesInput() bool
}

// Overlay is a popup pushed over the mounted view.
type Overlay interface {
	Update(msg tea.Msg) (Overlay, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Model struct {
	width            int
	height           int
	nav              *Navigator
	router           *Router
	overlays         OverlayStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	zones            *zone.Manager
	status           string
	statusErr        bool
	quitting         bool
	OpenCommandModal func(m *Model, scope string) Overlay
}

// NewModel wires the store into a router over factories. A nil store yields a
// model whose first use panics with ErrNoNavigator.
func NewModel(ctx context.Context, nav *Navigator, factories map[Screen]ViewFactory, keys *KeyRegistry, commands *CommandRegistry) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	m := Model{
		nav:      nav,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    110,
		height:   34,
	}
	if nav != nil {
		m.router = NewRouter(ctx, nav, factories)
	}
	return m
}

// EnableMouse turns on click zones for the sidebar, top bar and dialogs.
func (m *Model) EnableMouse(z *zone.Manager) {
	m.zones = z
}

func (m Model) Init() tea.Cmd {
	m.Nav()
	return m.router.initCmd(&m)
}

// Nav returns the navigation store.
func (m *Model) Nav() *Navigator {
	if m == nil || m.nav == nil {
		panic(ErrNoNavigator)
	}
	return m.nav
}

func (m *Model) Router() *Router {
	m.Nav()
	return m.router
}

func (m *Model) Navigate(s Screen) {
	m.Nav().NavigateTo(s)
}

// ViewContext is cancelled when the mounted view is torn down.
func (m *Model) ViewContext() context.Context {
	return m.Router().Lifetime().Context()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) Size() (int, int) {
	return m.width, m.height
}

func (m *Model) PushOverlay(o Overlay) {
	m.overlays.Push(o)
}

func (m Model) Overlays() int {
	return m.overlays.Len()
}

func (m *Model) Keys() *KeyRegistry {
	return m.keys
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// ActiveScope is the key scope of whatever currently owns the keyboard.
func (m Model) ActiveScope() string {
	state := m.Nav().Snapshot()
	if state.ShowLogoutModal && state.CurrentScreen != ScreenLogin {
		return ScopeLogoutOverlay
	}
	if top := m.overlays.Top(); top != nil {
		return top.Scope()
	}
	return m.router.Current().Scope()
}

// Mark tags s as a click zone when mouse support is on.
func (m *Model) Mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// Clicked reports whether a left-button release landed inside zone id.
func (m *Model) Clicked(id string, msg tea.MouseMsg) bool {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	z := m.zones.Get(id)
	if z == nil || z.IsZero() {
		return false
	}
	return z.InBounds(msg)
}
