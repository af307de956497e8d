package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/widgets"
)

var (
	colorText      lipgloss.Color = widgets.ColorText
	colorMuted     lipgloss.Color = widgets.ColorMuted
	colorBorder    lipgloss.Color = widgets.ColorBorder
	colorPrimary   lipgloss.Color = widgets.ColorPrimary
	colorDanger    lipgloss.Color = widgets.ColorDanger
	colorSuccess   lipgloss.Color = widgets.ColorSuccess
	colorHighlight lipgloss.Color = widgets.ColorHighlight
	colorSurface   lipgloss.Color = widgets.ColorSurface
	colorWhite     lipgloss.Color = widgets.ColorWhite
)
