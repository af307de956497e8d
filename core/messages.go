package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// DataLoadedMsg reports the result of a catalog query started by a view.
type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

type NavigateMsg struct {
	Screen Screen
}

type ShowLogoutModalMsg struct {
	Show bool
}

type SignOutMsg struct{}

type PushOverlayMsg struct {
	Overlay Overlay
}

type PopOverlayMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func NavigateCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: s} }
}
