package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vsit/academicagent/widgets"
)

const (
	logoText        = "VSIT AI Agent"
	notificationCnt = 3
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye from " + logoText + "\n"
	}
	m.Nav()
	state := m.nav.Snapshot()
	status := RenderStatusBar(m)
	footer := RenderFooter(m)

	var main string
	if state.CurrentScreen == ScreenLogin {
		bodyHeight := max(0, m.height-2)
		main = m.renderBody(m.width, bodyHeight)
		main = m.renderOverlays(main, m.width, bodyHeight)
	} else {
		top := renderTopBar(&m, state.UserRole)
		bodyHeight := m.bodyHeight()
		side := renderSidebar(&m, state, bodyHeight)
		bodyWidth := max(1, m.width-sidebarWidth-1)
		body := m.renderPage(bodyWidth, bodyHeight)
		main = top + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, side, " ", body)
		main = fitHeight(main, bodyHeight+1)
		if state.ShowLogoutModal {
			main = widgets.RenderPopup(main, renderLogoutDialog(&m), max(1, m.width), bodyHeight+1)
		} else {
			main = m.renderOverlays(main, m.width, bodyHeight+1)
		}
	}
	view := strings.Join([]string{fitHeight(main, max(0, m.height-2)), status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	view = appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

// bodyHeight is the rows left for the page once the top bar, status line and
// footer are drawn.
func (m *Model) bodyHeight() int {
	return max(0, m.height-3)
}

func (m Model) renderBody(width, height int) string {
	if height <= 0 {
		return ""
	}
	scroll := m.router.Scroll()
	out := m.router.Current().Build(&m).Render(max(1, width), height+scroll)
	lines := strings.Split(out, "\n")
	if scroll >= len(lines) {
		scroll = max(0, len(lines)-1)
	}
	return fitHeight(strings.Join(lines[scroll:], "\n"), height)
}

func (m Model) renderPage(width, height int) string {
	if height <= 1 {
		return ""
	}
	title := pageTitleStyle.Render(ansi.Truncate(m.router.Current().Title(), width, ""))
	body := m.renderBody(width, height-1)
	block := lipgloss.NewStyle().Width(width).MaxWidth(width).Render(title + "\n" + body)
	return fitHeight(block, height)
}

func (m Model) renderOverlays(base string, width, height int) string {
	top := m.overlays.Top()
	if top == nil || height <= 0 {
		return base
	}
	return widgets.RenderPopup(base, top.View(max(20, width-12), max(8, height-6)), max(1, width), height)
}

func renderTopBar(m *Model, role Role) string {
	width := max(1, m.width)
	logo := m.Mark(zoneLogo, logoStyle.Render(" ▣ "+logoText+" "))
	search := searchHintStyle.Render("ctrl+k search screens")
	bell := topBarStyle.Render(" 🔔") + badgeStyle.Render(fmt.Sprintf("%d", notificationCnt))
	avatar := m.Mark(zoneAvatar, avatarStyle.Render(Initials(role)))
	signOut := m.Mark(zoneSignOut, signOutStyle.Render("SIGN OUT"))
	space := topBarStyle.Render(" ")

	right := bell + space + avatar + space + signOut + space
	left := logo + space + search
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		left = logo
		gap = max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	}
	line := left + topBarStyle.Render(strings.Repeat(" ", gap)) + right
	return ansi.Truncate(line, width, "")
}

func renderSidebar(m *Model, state NavigationState, height int) string {
	items := RoleMenu(state.UserRole)
	active := -1
	for i, item := range items {
		if item.Target == state.CurrentScreen {
			active = i
			break
		}
	}
	lines := make([]string, 0, len(items)+4)
	for i, item := range items {
		label := fmt.Sprintf("%d %s %s", i+1, item.Icon, item.Label)
		label = ansi.Truncate(label, sidebarWidth-3, "…")
		style := menuItemStyle
		if i == active {
			style = menuActiveStyle
		}
		lines = append(lines, m.Mark(menuZone(i), style.Width(sidebarWidth-1).Render(label)))
	}
	foot := []string{
		sidebarFootStyle.Render(" About Contact"),
		sidebarFootStyle.Render(" Privacy Terms"),
		sidebarFootStyle.Render(" © 2026 " + logoText),
	}
	for len(lines)+len(foot) < height {
		lines = append(lines, "")
	}
	lines = append(lines, foot...)
	return sidebarStyle.Height(max(1, height)).MaxHeight(max(1, height)).Render(strings.Join(lines, "\n"))
}

func renderLogoutDialog(m *Model) string {
	cancel := m.Mark(zoneLogoutCancel, cancelButtonStyle.Render("Cancel"))
	confirm := m.Mark(zoneLogoutConfirm, confirmButtonStyle.Render("Yes, Sign Out"))
	return widgets.Dialog{
		Title:   "Sign Out",
		Body:    "Are you sure you want to sign out? You will need to log in again to access your account.",
		Buttons: []string{cancel, confirm},
		Width:   44,
	}.String()
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
