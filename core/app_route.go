package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	zoneLogo          = "chrome:logo"
	zoneAvatar        = "chrome:avatar"
	zoneSignOut       = "chrome:sign-out"
	zoneLogoutConfirm = "chrome:logout-confirm"
	zoneLogoutCancel  = "chrome:logout-cancel"
)

func menuZone(i int) string { return "chrome:" + MenuAction(i) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.Nav()
	cmd := m.route(msg)
	if init := m.router.initCmd(&m); init != nil {
		cmd = tea.Batch(cmd, init)
	}
	return m, cmd
}

func (m *Model) route(msg tea.Msg) tea.Cmd {
	if cmd, handled := m.handleAppMsg(msg); handled {
		return cmd
	}
	switch msg := msg.(type) {
	case LifetimeMsg:
		inner, ok := m.router.accept(msg)
		if !ok {
			return nil
		}
		if batch, isBatch := inner.(tea.BatchMsg); isBatch {
			return m.router.lifetime.guardBatch(batch)
		}
		if cmd, handled := m.handleAppMsg(inner); handled {
			return cmd
		}
		return m.broadcast(inner)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m.broadcast(msg)
}

// broadcast hands a non-input message to the top overlay and the mounted view.
// Timers and blinkers check their own ids, so each ignores the other's ticks.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var overlayCmd tea.Cmd
	if top := m.overlays.Top(); top != nil {
		overlayCmd = m.updateOverlay(top, msg)
	}
	return tea.Batch(overlayCmd, m.router.dispatch(m, msg))
}

func (m *Model) handleAppMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil, true
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return nil, true
	case NavigateMsg:
		m.Navigate(msg.Screen)
		return nil, true
	case ShowLogoutModalMsg:
		m.nav.SetShowLogoutModal(msg.Show)
		return nil, true
	case SignOutMsg:
		m.signOut()
		return nil, true
	case PushOverlayMsg:
		m.overlays.Push(msg.Overlay)
		return nil, true
	case PopOverlayMsg:
		m.overlays.Pop()
		return nil, true
	case CommandExecuteMsg:
		return m.commands.Execute(msg.CommandID, m), true
	}
	return nil, false
}

func (m *Model) signOut() {
	m.overlays.clear()
	m.nav.SignOut()
	m.SetStatus("Signed out")
}

func (m *Model) updateOverlay(top Overlay, msg tea.Msg) tea.Cmd {
	next, cmd, pop := top.Update(msg)
	if pop {
		m.overlays.Pop()
		return cmd
	}
	m.overlays.replaceTop(next)
	return cmd
}

func (m *Model) logoutShown() bool {
	state := m.nav.Snapshot()
	return state.ShowLogoutModal && state.CurrentScreen != ScreenLogin
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.logoutShown() {
		switch {
		case m.keys.IsAction(msg, "confirm", ScopeLogoutOverlay):
			m.signOut()
		case m.keys.IsAction(msg, "cancel", ScopeLogoutOverlay):
			m.nav.SetShowLogoutModal(false)
		}
		return nil
	}
	if top := m.overlays.Top(); top != nil {
		return m.updateOverlay(top, msg)
	}

	scope := m.ActiveScope()
	state := m.nav.Snapshot()
	switch {
	case m.keys.IsAction(msg, "sign-out", scope):
		m.nav.SetShowLogoutModal(true)
		return nil
	case m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil:
		m.overlays.Push(m.OpenCommandModal(m, scope))
		return nil
	case m.keys.IsAction(msg, "go-home", scope):
		m.Navigate(HomeScreen(state.UserRole))
		return nil
	case m.keys.IsAction(msg, "open-settings", scope):
		m.Navigate(ScreenSettings)
		return nil
	case m.keys.IsAction(msg, "scroll-up", scope):
		m.router.ScrollBy(-max(1, m.bodyHeight()/2))
		return nil
	case m.keys.IsAction(msg, "scroll-down", scope):
		m.router.ScrollBy(max(1, m.bodyHeight()/2))
		return nil
	}

	if c, ok := m.router.Current().(InputCapturer); ok && c.CapturesInput() {
		return m.router.dispatch(m, msg)
	}
	if m.keys.IsAction(msg, "quit", scope) {
		m.quitting = true
		return tea.Quit
	}
	for i, item := range RoleMenu(state.UserRole) {
		if m.keys.IsAction(msg, MenuAction(i), scope) {
			m.Navigate(item.Target)
			return nil
		}
	}
	return m.router.dispatch(m, msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.router.ScrollBy(-3)
			return nil
		case tea.MouseButtonWheelDown:
			m.router.ScrollBy(3)
			return nil
		}
	}
	if m.logoutShown() {
		switch {
		case m.Clicked(zoneLogoutConfirm, msg):
			m.signOut()
		case m.Clicked(zoneLogoutCancel, msg):
			m.nav.SetShowLogoutModal(false)
		}
		return nil
	}
	if top := m.overlays.Top(); top != nil {
		return m.updateOverlay(top, msg)
	}
	state := m.nav.Snapshot()
	if state.CurrentScreen != ScreenLogin {
		switch {
		case m.Clicked(zoneLogo, msg):
			m.Navigate(HomeScreen(state.UserRole))
			return nil
		case m.Clicked(zoneAvatar, msg):
			m.Navigate(ScreenSettings)
			return nil
		case m.Clicked(zoneSignOut, msg):
			m.nav.SetShowLogoutModal(true)
			return nil
		}
		for i, item := range RoleMenu(state.UserRole) {
			if m.Clicked(menuZone(i), msg) {
				m.Navigate(item.Target)
				return nil
			}
		}
	}
	return m.router.dispatch(m, msg)
}
