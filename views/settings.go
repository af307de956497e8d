package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/widgets"
)

const (
	settingsProfile       = "Profile"
	settingsAccessibility = "Accessibility"
	settingsNotifications = "Notifications"
	settingsPrivacy       = "Privacy"

	btnSaveProfile     = "Save Changes"
	btnSavePreferences = "Save Preferences"
	btnDownloadData    = "Download my data"
	btnDeleteAccount   = "Delete account"
)

type settingsView struct {
	base
	deps  Deps
	tabs  subTabs
	forms map[string]*form
}

func newSettingsView(d Deps) *settingsView {
	v := &settingsView{
		base: base{screen: core.ScreenSettings},
		deps: d,
		tabs: newSubTabs(settingsProfile, settingsAccessibility, settingsNotifications, settingsPrivacy),
	}
	fontSize := choiceField("Font Size", "Small", "Medium", "Large", "Extra Large")
	fontSize.choice = 1
	speech := choiceField("Text-to-Speech Speed", "Slow", "Normal", "Fast")
	speech.choice = 1
	v.forms = map[string]*form{
		settingsProfile: {fields: []field{
			textField("Full Name", "Pranali Nikam"),
			textField("Roll Number", "VSIT2025001"),
			textField("Email Address", "pranali.nikam@vsit.edu.in"),
			choiceField("Department", "Data Science", "Machine Learning", "IT"),
			choiceField("Year", "Third Year", "Second Year", "First Year"),
			buttonField(btnSaveProfile),
		}},
		settingsAccessibility: {fields: []field{
			fontSize,
			toggleField("High Contrast Mode", false),
			toggleField("Reduce Motion", false),
			choiceField("Color Blind Mode", "None", "Protanopia", "Deuteranopia", "Tritanopia"),
			speech,
			toggleField("Voice Feedback", true),
			toggleField("Closed Captions", false),
			buttonField(btnSavePreferences),
		}},
		settingsNotifications: {fields: []field{
			toggleField("Email Notifications", true),
			toggleField("In-App Notifications", true),
			toggleField("Assignment Reminders", true),
			toggleField("Quiz Reminders", true),
			toggleField("Promotional Emails", false),
			toggleField("Newsletter", false),
		}},
		settingsPrivacy: {fields: []field{
			toggleField("Data Sharing", true),
			buttonField(btnDownloadData),
			buttonField(btnDeleteAccount),
		}},
	}
	return v
}

func (v *settingsView) form() *form { return v.forms[v.tabs.current()] }

func (v *settingsView) CapturesInput() bool { return v.form().editing }

// Value reads a setting by tab and label.
func (v *settingsView) Value(tab, label string) string {
	if f, ok := v.forms[tab]; ok {
		return f.value(label)
	}
	return ""
}

func (v *settingsView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	scope := v.Scope()
	f := v.form()
	if f.editing {
		switch {
		case isAction(m, msg, "select", scope):
			f.commit()
		case isAction(m, msg, "cancel", scope):
			f.cancel()
		default:
			return f.update(msg)
		}
		return nil
	}
	switch {
	case isAction(m, msg, "tab-next", scope):
		v.tabs.next()
	case isAction(m, msg, "tab-prev", scope):
		v.tabs.prev()
	case isAction(m, msg, "list-up", scope):
		f.move(-1)
	case isAction(m, msg, "list-down", scope):
		f.move(1)
	case isAction(m, msg, "edit", scope):
		return f.edit()
	case isAction(m, msg, "toggle", scope):
		if f.cycle() {
			fd := f.current()
			m.SetStatus(fmt.Sprintf("%s: %s", fd.label, fd.Value()))
		}
	case isAction(m, msg, "select", scope):
		pressed, cmd := f.activate()
		if pressed != "" {
			v.press(m, pressed)
		}
		return cmd
	}
	return nil
}

func (v *settingsView) press(m *core.Model, button string) {
	switch button {
	case btnSaveProfile:
		p := v.forms[settingsProfile]
		if strings.TrimSpace(p.value("Full Name")) == "" || !strings.Contains(p.value("Email Address"), "@") {
			m.SetError(fmt.Errorf("a name and a valid email are required"))
			return
		}
		v.deps.Log.Info("profile saved", "name", p.value("Full Name"), "department", p.value("Department"), "year", p.value("Year"))
		m.SetStatus("Profile updated successfully!")
	case btnSavePreferences:
		a := v.forms[settingsAccessibility]
		v.deps.Log.Info("accessibility saved", "font", a.value("Font Size"), "color_blind", a.value("Color Blind Mode"), "speech", a.value("Text-to-Speech Speed"))
		m.SetStatus("Preferences saved")
	case btnDownloadData:
		m.SetStatus("Your data export has been requested. You will receive an email shortly.")
	case btnDeleteAccount:
		m.SetError(fmt.Errorf("account deletion must be confirmed by the administrator"))
	}
}

func (v *settingsView) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		f := v.form()
		var note string
		switch v.tabs.current() {
		case settingsProfile:
			note = "e or enter to edit a field · enter to save the field · esc to discard"
		case settingsPrivacy:
			note = "Your academic data is shared only with authorized faculty members.\nWe do not sell your personal information to third parties."
		default:
			note = "space to change · enter on a button to save"
		}
		card := widgets.Func(func(w, h int) string {
			content := f.Render(max(1, w-4), len(f.fields)) + "\n\n" + widgets.MutedStyle.Render(note)
			return widgets.Box{Title: v.tabs.current(), Content: content, Accent: f.editing}.Render(w, h)
		})
		return widgets.VStack{
			Widgets: []widgets.Widget{v.tabs, card},
			Fixed:   []int{2},
		}.Render(width, max(height, len(f.fields)+8))
	})
}
