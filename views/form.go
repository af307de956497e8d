package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/widgets"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
	fieldToggle
	fieldButton
)

// field is one row of a form: an editable text value, a fixed set of choices,
// an on/off switch or a button.
type field struct {
	kind    fieldKind
	label   string
	input   textinput.Model
	saved   string
	choices []string
	choice  int
	on      bool
}

func textField(label, value string) field {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 80
	in.SetValue(value)
	return field{kind: fieldText, label: label, input: in, saved: value}
}

func choiceField(label string, choices ...string) field {
	return field{kind: fieldChoice, label: label, choices: choices}
}

func toggleField(label string, on bool) field {
	return field{kind: fieldToggle, label: label, on: on}
}

func buttonField(label string) field {
	return field{kind: fieldButton, label: label}
}

// Value is the field's current text, choice or switch state.
func (f field) Value() string {
	switch f.kind {
	case fieldText:
		return f.input.Value()
	case fieldChoice:
		return f.choices[f.choice]
	case fieldToggle:
		if f.on {
			return "on"
		}
		return "off"
	default:
		return f.label
	}
}

// form is a vertical list of fields with a cursor and at most one text field
// being edited.
type form struct {
	fields  []field
	pos     int
	editing bool
}

func (f *form) move(delta int) {
	if f.editing {
		return
	}
	f.pos = widgets.Clamp(f.pos+delta, len(f.fields))
}

func (f *form) current() *field { return &f.fields[f.pos] }

func (f *form) find(label string) *field {
	for i := range f.fields {
		if f.fields[i].label == label {
			return &f.fields[i]
		}
	}
	return nil
}

func (f *form) value(label string) string {
	if fd := f.find(label); fd != nil {
		return fd.Value()
	}
	return ""
}

// cycle advances a choice or flips a switch under the cursor.
func (f *form) cycle() bool {
	fd := f.current()
	switch fd.kind {
	case fieldChoice:
		fd.choice = (fd.choice + 1) % len(fd.choices)
		return true
	case fieldToggle:
		fd.on = !fd.on
		return true
	}
	return false
}

// activate edits a text field, cycles a choice or switch, and reports the
// label of a pressed button.
func (f *form) activate() (pressed string, cmd tea.Cmd) {
	fd := f.current()
	switch fd.kind {
	case fieldText:
		return "", f.edit()
	case fieldButton:
		return fd.label, nil
	default:
		f.cycle()
	}
	return "", nil
}

func (f *form) edit() tea.Cmd {
	fd := f.current()
	if fd.kind != fieldText {
		return nil
	}
	f.editing = true
	fd.saved = fd.input.Value()
	fd.input.CursorEnd()
	return fd.input.Focus()
}

// commit ends editing and keeps the typed value.
func (f *form) commit() {
	if !f.editing {
		return
	}
	fd := f.current()
	fd.saved = fd.input.Value()
	fd.input.Blur()
	f.editing = false
}

// cancel ends editing and restores the value from before the edit.
func (f *form) cancel() {
	if !f.editing {
		return
	}
	fd := f.current()
	fd.input.SetValue(fd.saved)
	fd.input.Blur()
	f.editing = false
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	if !f.editing {
		return nil
	}
	var cmd tea.Cmd
	fd := f.current()
	fd.input, cmd = fd.input.Update(msg)
	return cmd
}

var (
	fieldLabel = lipgloss.NewStyle().Foreground(widgets.ColorMuted).Width(24)
	switchOn   = lipgloss.NewStyle().Foreground(widgets.ColorSuccess).Bold(true)
	switchOff  = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
)

func (f *form) Render(width, height int) string {
	lines := make([]string, 0, len(f.fields))
	for i, fd := range f.fields {
		active := i == f.pos
		var value string
		switch fd.kind {
		case fieldText:
			value = fd.input.Value()
			if f.editing && active {
				value = fd.input.View()
			}
			value = fieldLabel.Render(fd.label) + value
		case fieldChoice:
			value = fieldLabel.Render(fd.label) + fmt.Sprintf("‹ %s ›", fd.choices[fd.choice])
		case fieldToggle:
			state := switchOff.Render("○ off")
			if fd.on {
				state = switchOn.Render("● on")
			}
			value = fieldLabel.Render(fd.label) + state
		case fieldButton:
			if active {
				value = widgets.ButtonStyle.Render(fd.label)
			} else {
				value = widgets.GhostStyle.Render(fd.label)
			}
		}
		prefix := "  "
		if active {
			prefix = widgets.SelectedStyle.Render("▸") + " "
		}
		lines = append(lines, prefix+value)
	}
	return widgets.Text(strings.Join(lines, "\n")).Render(width, height)
}
