package widgets

import "github.com/charmbracelet/lipgloss"

// VSIT brand palette shared by the chrome and the views.
var (
	ColorPrimary   lipgloss.Color = "#2B5797"
	ColorDanger    lipgloss.Color = "#D13438"
	ColorSuccess   lipgloss.Color = "#107C10"
	ColorWarning   lipgloss.Color = "#CA5010"
	ColorHighlight lipgloss.Color = "#E8F0FE"
	ColorText      lipgloss.Color = "#212529"
	ColorMuted     lipgloss.Color = "#6C757D"
	ColorBorder    lipgloss.Color = "#DEE2E6"
	ColorSurface   lipgloss.Color = "#F8F9FA"
	ColorWhite     lipgloss.Color = "#FFFFFF"
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Background(ColorHighlight).Bold(true)
	DangerStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	SuccessStyle  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	ButtonStyle   = lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorPrimary).Bold(true).Padding(0, 1)
	GhostStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1)
)
