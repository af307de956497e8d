package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
)

const ScopeCommand = "overlay:command"

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandPalette searches registered commands as the user types.
type CommandPalette struct {
	keys     *core.KeyRegistry
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandPalette(keys *core.KeyRegistry, scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandPalette {
	inp := textinput.New()
	inp.Placeholder = "Search screens and actions"
	inp.Prompt = "go> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.KeyMap.Quit.SetEnabled(false)
	lst.KeyMap.ForceQuit.SetEnabled(false)
	p := &CommandPalette{keys: keys, scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	p.refresh()
	return p
}

func (p *CommandPalette) Title() string { return "Go to" }
func (p *CommandPalette) Scope() string { return ScopeCommand }

// Len is the number of options matching the current query.
func (p *CommandPalette) Len() int { return len(p.list.Items()) }

func (p *CommandPalette) Update(msg tea.Msg) (core.Overlay, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case p.keys.IsAction(km, "close", ScopeCommand):
			return p, nil, true
		case p.keys.IsAction(km, "select", ScopeCommand):
			it, ok := p.list.SelectedItem().(CommandOption)
			if !ok {
				return p, nil, false
			}
			if it.Disabled {
				return p, core.StatusCmd(it.Reason), true
			}
			if p.onSelect != nil {
				return p, func() tea.Msg { return p.onSelect(it.ID) }, true
			}
			return p, nil, true
		case km.Type == tea.KeyUp || km.Type == tea.KeyDown:
			var cmd tea.Cmd
			p.list, cmd = p.list.Update(msg)
			return p, cmd, false
		}
	}
	// Typed keys only feed the query; the list's own letter bindings would
	// page or quit.
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey {
		p.refresh()
	}
	return p, cmd, false
}

func (p *CommandPalette) refresh() {
	query := strings.TrimSpace(p.input.Value())
	items := p.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = p.list.SetItems(ls)
}

func (p *CommandPalette) View(width, height int) string {
	p.list.SetWidth(width)
	p.list.SetHeight(max(6, height-4))
	return "Go to a screen\n" + p.input.View() + "\n" + p.list.View()
}
