package core

import (
	"fmt"
	"strings"
)

const (
	ScopeLogin         = "login"
	ScopeLogoutOverlay = "overlay:logout"
	ScopeChrome        = "view:*"
)

// ViewScope is the key scope of a mounted screen. Login sits outside the
// chrome family so signed-in shortcuts never fire there.
func ViewScope(s Screen) string {
	if s == ScreenLogin {
		return ScopeLogin
	}
	return "view:" + strings.ToLower(s.String())
}

func DefaultKeyBindings() []KeyBinding {
	var (
		quizzes     = ViewScope(ScreenQuizzes)
		assignments = ViewScope(ScreenAssignments)
		notes       = ViewScope(ScreenNotes)
		teacher     = ViewScope(ScreenTeacherPortal)
		hod         = ViewScope(ScreenHodPortal)
		settings    = ViewScope(ScreenSettings)
		agent       = ViewScope(ScreenAiAgent)
		studentDash = ViewScope(ScreenStudentDashboard)
		subjectDash = ViewScope(ScreenSubjectDashboard)
		performance = ViewScope(ScreenPerformance)
	)
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeChrome}},
		{Keys: []string{"ctrl+o"}, Action: "sign-out", Description: "sign out", Scopes: []string{ScopeChrome}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "go to", Scopes: []string{ScopeChrome}},
		{Keys: []string{"ctrl+g"}, Action: "go-home", Description: "home", Scopes: []string{ScopeChrome}},
		{Keys: []string{"ctrl+p"}, Action: "open-settings", Description: "profile", Scopes: []string{ScopeChrome}},
		{Keys: []string{"pgup"}, Action: "scroll-up", Description: "scroll", Scopes: []string{ScopeChrome}},
		{Keys: []string{"pgdown"}, Action: "scroll-down", Description: "", Scopes: []string{ScopeChrome}},

		{Keys: []string{"enter"}, Action: "submit", Description: "login", Scopes: []string{ScopeLogin}},
		{Keys: []string{"tab", "down"}, Action: "field-next", Description: "next field", Scopes: []string{ScopeLogin}},
		{Keys: []string{"shift+tab", "up"}, Action: "field-prev", Description: "", Scopes: []string{ScopeLogin}},
		{Keys: []string{"ctrl+r"}, Action: "toggle-register", Description: "login/register", Scopes: []string{ScopeLogin}},
		{Keys: []string{"f1"}, Action: "demo-student", Description: "demo student", Scopes: []string{ScopeLogin}},
		{Keys: []string{"f2"}, Action: "demo-teacher", Description: "demo teacher", Scopes: []string{ScopeLogin}},
		{Keys: []string{"f3"}, Action: "demo-hod", Description: "demo hod", Scopes: []string{ScopeLogin}},

		{Keys: []string{"y", "enter"}, Action: "confirm", Description: "yes, sign out", Scopes: []string{ScopeLogoutOverlay}},
		{Keys: []string{"n", "esc"}, Action: "cancel", Description: "cancel", Scopes: []string{ScopeLogoutOverlay}},

		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"overlay:command", "overlay:otp", "overlay:assignment"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"overlay:command", "overlay:otp", "overlay:assignment"}},

		{Keys: []string{"k", "up"}, Action: "list-up", Description: "up", Scopes: []string{studentDash, subjectDash, quizzes, assignments, notes, performance, teacher, hod, settings}},
		{Keys: []string{"j", "down"}, Action: "list-down", Description: "down", Scopes: []string{studentDash, subjectDash, quizzes, assignments, notes, performance, teacher, hod, settings}},
		{Keys: []string{"enter"}, Action: "select", Description: "open", Scopes: []string{studentDash, subjectDash, quizzes, assignments, notes, performance, teacher, hod, settings, agent}},
		{Keys: []string{"l", "right", "tab"}, Action: "tab-next", Description: "next tab", Scopes: []string{studentDash, subjectDash, assignments, notes, performance, teacher, hod, settings}},
		{Keys: []string{"h", "left", "shift+tab"}, Action: "tab-prev", Description: "", Scopes: []string{studentDash, subjectDash, assignments, notes, performance, teacher, hod, settings}},
		{Keys: []string{"up"}, Action: "history-up", Description: "history", Scopes: []string{agent}},
		{Keys: []string{"down"}, Action: "history-down", Description: "", Scopes: []string{agent}},
		{Keys: []string{"esc"}, Action: "clear", Description: "clear", Scopes: []string{agent}},
		{Keys: []string{"esc", "backspace"}, Action: "back", Description: "back", Scopes: []string{subjectDash, quizzes}},
		{Keys: []string{"r"}, Action: "retry", Description: "try again", Scopes: []string{quizzes}},
		{Keys: []string{"x"}, Action: "export", Description: "export report", Scopes: []string{performance, teacher, hod}},
		{Keys: []string{"space"}, Action: "toggle", Description: "toggle", Scopes: []string{settings, teacher}},
		{Keys: []string{"e"}, Action: "edit", Description: "edit", Scopes: []string{settings}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "", Scopes: []string{settings, teacher}},
		{Keys: []string{"a"}, Action: "approve", Description: "approve", Scopes: []string{hod}},
		{Keys: []string{"d"}, Action: "reject", Description: "reject", Scopes: []string{hod}},
	}
	for i := 1; i <= 9; i++ {
		desc := ""
		if i == 1 {
			desc = "menu"
		}
		bindings = append(bindings, KeyBinding{
			Keys:        []string{fmt.Sprintf("%d", i)},
			Action:      MenuAction(i - 1),
			Description: desc,
			Scopes:      []string{ScopeChrome},
		})
	}
	return bindings
}

// MenuAction is the action name bound to the sidebar item at index.
func MenuAction(index int) string {
	return fmt.Sprintf("menu-%d", index+1)
}

func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
