package core

import "github.com/charmbracelet/lipgloss"

const sidebarWidth = 26

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	topBarStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorWhite)
	logoStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorWhite).
			Bold(true)
	searchHintStyle = lipgloss.NewStyle().
			Background(colorWhite).
			Foreground(colorMuted).
			Padding(0, 1)
	avatarStyle = lipgloss.NewStyle().
			Background(colorWhite).
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)
	signOutStyle = lipgloss.NewStyle().
			Background(colorDanger).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)
	badgeStyle = lipgloss.NewStyle().
			Background(colorDanger).
			Foreground(colorWhite).
			Bold(true)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder).
			Width(sidebarWidth - 1)
	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)
	menuActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Background(colorHighlight).
			Bold(true).
			Padding(0, 1)
	sidebarFootStyle = lipgloss.NewStyle().Foreground(colorMuted)

	pageTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorDanger).
				Background(colorSurface)
	footerStyle = lipgloss.NewStyle().
			Background(colorSurface)

	confirmButtonStyle = lipgloss.NewStyle().
				Background(colorDanger).
				Foreground(colorWhite).
				Bold(true).
				Padding(0, 1)
	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Border(lipgloss.NormalBorder(), false).
				Background(colorHighlight).
				Padding(0, 1)
)
