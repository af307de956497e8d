package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HelpBindings lists the described bindings of scope for the footer. Bindings
// owned by the scope itself come before shared chrome bindings, and a
// description is shown once.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	var own, shared []key.Binding
	seen := map[string]bool{}
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey(b.Keys), b.Description))
		if slices.Contains(b.Scopes, scope) {
			own = append(own, kb)
		} else {
			shared = append(shared, kb)
		}
	}
	return append(own, shared...)
}

func helpKey(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, "/")
}

func RenderFooter(m Model) string {
	bg := colorSurface
	h := help.New()
	h.Width = max(1, m.width-2)
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Background(bg)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Background(bg)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(colorMuted).Background(bg)

	line := h.ShortHelpView(m.keys.HelpBindings(m.ActiveScope()))
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

// RenderStatusBar shows the last status message, tagged with the signed-in
// role off the login screen.
func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.nav.CurrentScreen() != ScreenLogin {
		msg = "[" + m.nav.UserRole().String() + "] " + msg
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), msg, colorSurface)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(line)
}
