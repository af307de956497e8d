package app

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/overlays"
	"github.com/vsit/academicagent/views"
)

// KeyBindings returns the default bindings with per-action overrides from
// config applied.
func KeyBindings(actionKeys map[string][]string) []core.KeyBinding {
	return core.ApplyActionKeybindings(core.DefaultKeyBindings(), actionKeys)
}

// NewModel builds the root model over nav with every screen's view wired to
// deps.
func NewModel(ctx context.Context, nav *core.Navigator, deps views.Deps, actionKeys map[string][]string) core.Model {
	keys := core.NewKeyRegistry(KeyBindings(actionKeys))
	deps.Keys = keys
	m := core.NewModel(ctx, nav, views.Factories(deps), keys, core.NewCommandRegistry(nil))
	ConfigureModel(&m)
	return m
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Overlay {
		return overlays.NewCommandPalette(model.Keys(), scope,
			func(query string) []overlays.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]overlays.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, overlays.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	RegisterCommands(m.CommandRegistry())
}

// CommandID is the palette command that navigates to s.
func CommandID(s core.Screen) string {
	return "go-" + strings.ToLower(s.String())
}

// RegisterCommands adds one command per screen plus sign-out. Any screen can
// be reached from any role.
func RegisterCommands(reg *core.CommandRegistry) {
	for _, s := range core.Screens() {
		target := s
		reg.Register(core.Command{
			ID:          CommandID(target),
			Name:        "Go to " + target.Title(),
			Description: "Open the " + target.Title() + " screen",
			Keywords:    menuLabels(target),
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.Navigate(target)
				return core.StatusCmd(target.Title())
			},
			Disabled: func(m *core.Model) (bool, string) {
				if m.Nav().CurrentScreen() == target {
					return true, "already here"
				}
				return false, ""
			},
		})
	}
	reg.Register(core.Command{
		ID:          "sign-out",
		Name:        "Sign out",
		Description: "Return to the login screen",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.Nav().SetShowLogoutModal(true)
			return nil
		},
	})
}

// menuLabels collects every sidebar label, across roles, that opens s.
func menuLabels(s core.Screen) []string {
	var labels []string
	for _, r := range core.Roles() {
		for _, item := range core.RoleMenu(r) {
			if item.Target == s && !slices.Contains(labels, item.Label) {
				labels = append(labels, item.Label)
			}
		}
	}
	return labels
}

// LogNavigation records every store change at debug level and returns the
// unsubscribe function.
func LogNavigation(nav *core.Navigator, log *slog.Logger) func() {
	return nav.Subscribe(func(ev core.NavigationEvent) {
		log.Debug("navigation",
			"change", ev.Kind.String(),
			"screen", ev.State.CurrentScreen.String(),
			"from", ev.Previous.CurrentScreen.String(),
			"role", ev.State.UserRole.String(),
			"logout_modal", ev.State.ShowLogoutModal,
		)
	})
}
