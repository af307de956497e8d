package core

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// OverlayStack holds popups drawn over the mounted view.
type OverlayStack struct {
	items []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	if o == nil {
		return
	}
	s.items = append(s.items, o)
}

func (s *OverlayStack) Pop() Overlay {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s OverlayStack) Top() Overlay {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s OverlayStack) Len() int {
	return len(s.items)
}

func (s *OverlayStack) replaceTop(o Overlay) {
	if len(s.items) == 0 || o == nil {
		return
	}
	s.items[len(s.items)-1] = o
}

func (s *OverlayStack) clear() {
	s.items = nil
}

// ViewFactory builds a fresh view each time its screen is mounted.
type ViewFactory func() View

const maxScroll = 400

// Router keeps exactly one view mounted for the store's current screen.
type Router struct {
	parent      context.Context
	factories   map[Screen]ViewFactory
	screen      Screen
	view        View
	lifetime    *Lifetime
	mounts      int
	scroll      int
	needsInit   bool
	unsubscribe func()
}

// NewRouter mounts the store's current screen and follows the store from then
// on. Every screen must have a factory.
func NewRouter(ctx context.Context, nav *Navigator, factories map[Screen]ViewFactory) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, s := range Screens() {
		if factories[s] == nil {
			panic(fmt.Sprintf("no view registered for screen %s", s))
		}
	}
	r := &Router{parent: ctx, factories: factories}
	r.mount(nav.CurrentScreen())
	r.unsubscribe = nav.Subscribe(r.onNavigation)
	return r
}

func (r *Router) onNavigation(ev NavigationEvent) {
	if ev.Kind != ChangeScreen {
		return
	}
	r.scroll = 0
	if ev.State.CurrentScreen == r.screen {
		return
	}
	r.mount(ev.State.CurrentScreen)
}

func (r *Router) mount(s Screen) {
	if r.lifetime != nil {
		r.lifetime.End()
	}
	if closer, ok := r.view.(ViewCloser); ok {
		closer.CloseView()
	}
	r.mounts++
	r.lifetime = newLifetime(r.parent, r.mounts)
	r.screen = s
	r.view = r.factories[s]()
	r.needsInit = true
}

func (r *Router) Current() View       { return r.view }
func (r *Router) Screen() Screen      { return r.screen }
func (r *Router) Lifetime() *Lifetime { return r.lifetime }
func (r *Router) Mounts() int         { return r.mounts }
func (r *Router) Scroll() int         { return r.scroll }
func (r *Router) ScrollTo(offset int) { r.scroll = min(max(0, offset), maxScroll) }
func (r *Router) ScrollBy(delta int)  { r.ScrollTo(r.scroll + delta) }
func (r *Router) Close()              { r.unsubscribe(); r.lifetime.End() }

func (r *Router) initCmd(m *Model) tea.Cmd {
	if !r.needsInit {
		return nil
	}
	r.needsInit = false
	if init, ok := r.view.(ViewInitializer); ok {
		return r.lifetime.Guard(init.InitView(m))
	}
	return nil
}

// dispatch delivers msg to the mounted view. The returned command is scoped to
// the view unless the update itself moved to another screen.
func (r *Router) dispatch(m *Model, msg tea.Msg) tea.Cmd {
	lt := r.lifetime
	cmd := r.view.Update(m, msg)
	if lt.Done() {
		return cmd
	}
	return lt.Guard(cmd)
}

func (r *Router) accept(msg LifetimeMsg) (tea.Msg, bool) {
	if msg.ID != r.lifetime.id || r.lifetime.Done() {
		return nil, false
	}
	return msg.Msg, true
}
