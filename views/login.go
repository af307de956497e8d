package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/overlays"
	"github.com/vsit/academicagent/widgets"
)

const demoPassword = "123"

var (
	demoAccounts = map[string]string{
		"demo-student": "student@vsit.edu.in",
		"demo-teacher": "teacher@vsit.edu.in",
		"demo-hod":     "hod@vsit.edu.in",
	}
	departments = []string{"Computer Science", "Information Technology", "Data Science", "AI & Data Science"}
	years       = []string{"1st Year", "2nd Year", "3rd Year"}
	features    = []string{
		"AI Academic Agent: personalised learning assistant",
		"Real-time Performance Tracking: know where you stand",
		"Voice-First Interaction: learn hands-free",
		"Faculty-Approved Content: curated by your teachers",
		"Secure OTP Verification: enhanced security",
		"Multi-Device Support: learn anywhere",
	}
)

type loginField int

const (
	regFirst loginField = iota
	regLast
	regEmail
	regDepartment
	regYear
	regPassword
	regFieldCount
)

// accountVerifiedMsg is sent by the OTP prompt once a code is accepted.
type accountVerifiedMsg struct {
	email string
}

type loginView struct {
	base
	deps     Deps
	register bool

	email    textinput.Model
	password textinput.Model
	focus    int

	reg      [regFieldCount]textinput.Model
	regFocus loginField
	dept     int
	year     int
}

func newLoginView(d Deps) *loginView {
	v := &loginView{base: base{screen: core.ScreenLogin}, deps: d}
	v.email = newInput("Email", "student@vsit.edu.in")
	v.password = newInput("Password", "••••••")
	v.password.EchoMode = textinput.EchoPassword
	v.email.Focus()

	v.reg[regFirst] = newInput("First name", "Pranali")
	v.reg[regLast] = newInput("Last name", "Nikam")
	v.reg[regEmail] = newInput("Email", "you@vsit.edu.in")
	v.reg[regDepartment] = newInput("Department", "")
	v.reg[regYear] = newInput("Year", "")
	v.reg[regPassword] = newInput("Password", "choose a password")
	v.reg[regPassword].EchoMode = textinput.EchoPassword
	return v
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = fmt.Sprintf("%-11s ", prompt)
	in.Placeholder = placeholder
	in.CharLimit = 64
	return in
}

func (v *loginView) CapturesInput() bool { return true }

func (v *loginView) InitView(*core.Model) tea.Cmd { return textinput.Blink }

func (v *loginView) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	scope := v.Scope()
	if vm, ok := msg.(accountVerifiedMsg); ok {
		v.showLogin()
		v.email.SetValue(vm.email)
		m.SetStatus("Account verified for " + vm.email + ". Sign in to continue.")
		return nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v.updateFocused(msg)
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(km, "toggle-register", scope):
		if v.register {
			v.showLogin()
		} else {
			v.showRegister()
		}
		return nil
	case keys.IsAction(km, "submit", scope):
		if v.register {
			return v.createAccount(m)
		}
		role := m.Nav().SignIn(strings.TrimSpace(v.email.Value()))
		m.SetStatus("Signed in as " + role.String())
		return nil
	case keys.IsAction(km, "field-next", scope):
		v.moveFocus(1)
		return nil
	case keys.IsAction(km, "field-prev", scope):
		v.moveFocus(-1)
		return nil
	}
	for action, email := range demoAccounts {
		if keys.IsAction(km, action, scope) {
			v.showLogin()
			v.email.SetValue(email)
			v.password.SetValue(demoPassword)
			return nil
		}
	}
	if v.register && v.regFocus.isChoice() {
		v.cycleChoice(km)
		return nil
	}
	return v.updateFocused(msg)
}

func (v *loginView) createAccount(m *core.Model) tea.Cmd {
	email := strings.TrimSpace(v.reg[regEmail].Value())
	if email == "" || strings.TrimSpace(v.reg[regFirst].Value()) == "" {
		m.SetError(fmt.Errorf("name and email are required"))
		return nil
	}
	prompt := overlays.NewOTPPrompt(v.deps.Keys, email, func(email string) tea.Msg {
		return accountVerifiedMsg{email: email}
	})
	m.PushOverlay(prompt)
	m.SetStatus("Verification code sent to " + email)
	v.deps.Log.Info("registration started", "email", email, "department", departments[v.dept], "year", years[v.year])
	return prompt.Init()
}

func (v *loginView) cycleChoice(km tea.KeyMsg) {
	delta := 0
	switch km.Type {
	case tea.KeyRight:
		delta = 1
	case tea.KeyLeft:
		delta = -1
	case tea.KeySpace:
		delta = 1
	}
	if delta == 0 {
		return
	}
	if v.regFocus == regDepartment {
		v.dept = (v.dept + delta + len(departments)) % len(departments)
	} else {
		v.year = (v.year + delta + len(years)) % len(years)
	}
}

func (v *loginView) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.register {
		if v.regFocus.isChoice() {
			return nil
		}
		v.reg[v.regFocus], cmd = v.reg[v.regFocus].Update(msg)
		return cmd
	}
	if v.focus == 0 {
		v.email, cmd = v.email.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return cmd
}

func (v *loginView) moveFocus(delta int) {
	if v.register {
		n := int(regFieldCount)
		v.regFocus = loginField((int(v.regFocus) + delta + n) % n)
		v.syncRegisterFocus()
		return
	}
	v.focus = (v.focus + delta + 2) % 2
	v.syncLoginFocus()
}

func (v *loginView) showLogin() {
	v.register = false
	v.syncLoginFocus()
	for i := range v.reg {
		v.reg[i].Blur()
	}
}

func (v *loginView) showRegister() {
	v.register = true
	v.email.Blur()
	v.password.Blur()
	v.syncRegisterFocus()
}

func (v *loginView) syncLoginFocus() {
	if v.focus == 0 {
		v.email.Focus()
		v.password.Blur()
	} else {
		v.email.Blur()
		v.password.Focus()
	}
}

// isChoice reports whether f is picked with left/right instead of typed.
func (f loginField) isChoice() bool { return f == regDepartment || f == regYear }

func (v *loginView) syncRegisterFocus() {
	for i := range v.reg {
		if loginField(i).isChoice() {
			continue
		}
		if loginField(i) == v.regFocus {
			v.reg[i].Focus()
		} else {
			v.reg[i].Blur()
		}
	}
}

// Registering reports whether the register form is showing.
func (v *loginView) Registering() bool { return v.register }

func (v *loginView) Build(m *core.Model) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		hero := v.renderHero()
		form := v.renderForm()
		if width < 90 {
			return widgets.Text(form).Render(width, height)
		}
		return widgets.HStack{
			Widgets: []widgets.Widget{widgets.Text(hero), widgets.Text(form)},
			Ratios:  []float64{0.45, 0.55},
			Gap:     2,
		}.Render(width, height)
	})
}

var (
	heroTitle = lipgloss.NewStyle().Foreground(widgets.ColorPrimary).Bold(true)
	formBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(widgets.ColorPrimary).
			Padding(1, 2)
	choiceStyle = lipgloss.NewStyle().Foreground(widgets.ColorPrimary)
)

func (v *loginView) renderHero() string {
	var b strings.Builder
	b.WriteString(heroTitle.Render("VSIT AI Academic Agent") + "\n")
	b.WriteString(widgets.MutedStyle.Render("Vidyalankar School of Information Technology") + "\n\n")
	for _, f := range features {
		b.WriteString(widgets.SuccessStyle.Render("✓ ") + f + "\n")
	}
	return b.String()
}

func (v *loginView) renderForm() string {
	tabs := newSubTabs("Login", "Register")
	if v.register {
		tabs.active = 1
	}
	var b strings.Builder
	b.WriteString(tabs.Render(48, 2) + "\n\n")
	if v.register {
		b.WriteString(widgets.TitleStyle.Render("Create your account") + "\n\n")
		for i := range v.reg {
			f := loginField(i)
			switch f {
			case regDepartment:
				b.WriteString(v.renderChoice("Department", departments[v.dept], f) + "\n")
			case regYear:
				b.WriteString(v.renderChoice("Year", years[v.year], f) + "\n")
			default:
				b.WriteString(v.reg[i].View() + "\n")
			}
		}
		b.WriteString("\n" + widgets.ButtonStyle.Render("Create Account"))
	} else {
		b.WriteString(widgets.TitleStyle.Render("Welcome back") + "\n")
		b.WriteString(widgets.MutedStyle.Render("Sign in with your college email") + "\n\n")
		b.WriteString(v.email.View() + "\n")
		b.WriteString(v.password.View() + "\n\n")
		b.WriteString(widgets.ButtonStyle.Render("Login") + "\n\n")
		b.WriteString(widgets.MutedStyle.Render("Demo accounts: F1 student · F2 teacher · F3 HOD"))
	}
	return formBox.Render(b.String())
}

func (v *loginView) renderChoice(label, value string, f loginField) string {
	cursor := "  "
	if v.regFocus == f {
		cursor = "▸ "
	}
	return fmt.Sprintf("%s%-10s %s", cursor, label, choiceStyle.Render("‹ "+value+" ›"))
}
