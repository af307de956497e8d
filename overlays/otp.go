package overlays

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/widgets"
)

const (
	ScopeOTP  = "overlay:otp"
	OTPLength = 6
	OTPExpiry = 5 * time.Minute
)

// OTPPrompt asks for the six digit code mailed after registration. The code
// is not checked; any six digits verify.
type OTPPrompt struct {
	keys     *core.KeyRegistry
	email    string
	input    textinput.Model
	timer    timer.Model
	errText  string
	onVerify func(email string) tea.Msg
}

func NewOTPPrompt(keys *core.KeyRegistry, email string, onVerify func(email string) tea.Msg) *OTPPrompt {
	inp := textinput.New()
	inp.Prompt = "code> "
	inp.Placeholder = strings.Repeat("•", OTPLength)
	inp.CharLimit = OTPLength
	inp.Focus()
	return &OTPPrompt{
		keys:     keys,
		email:    email,
		input:    inp,
		timer:    timer.NewWithInterval(OTPExpiry, time.Second),
		onVerify: onVerify,
	}
}

// Init starts the expiry countdown.
func (o *OTPPrompt) Init() tea.Cmd { return o.timer.Init() }

func (o *OTPPrompt) Title() string { return "Email Verification" }
func (o *OTPPrompt) Scope() string { return ScopeOTP }

// Remaining is the time left before the code expires.
func (o *OTPPrompt) Remaining() time.Duration { return o.timer.Timeout }

func (o *OTPPrompt) Update(msg tea.Msg) (core.Overlay, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case o.keys.IsAction(msg, "close", ScopeOTP):
			return o, o.timer.Stop(), true
		case o.keys.IsAction(msg, "select", ScopeOTP):
			if o.timer.Timedout() {
				o.errText = "Code expired. Cancel and register again."
				return o, nil, false
			}
			if len(o.input.Value()) != OTPLength {
				o.errText = fmt.Sprintf("Enter all %d digits.", OTPLength)
				return o, nil, false
			}
			email := o.email
			return o, tea.Batch(o.timer.Stop(), func() tea.Msg { return o.onVerify(email) }), true
		}
		o.errText = ""
		if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
			o.errText = "Digits only."
			return o, nil, false
		}
		var cmd tea.Cmd
		o.input, cmd = o.input.Update(msg)
		return o, cmd, false
	case timer.TickMsg, timer.StartStopMsg, timer.TimeoutMsg:
		var cmd tea.Cmd
		o.timer, cmd = o.timer.Update(msg)
		return o, cmd, false
	}
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd, false
}

func (o *OTPPrompt) View(width, height int) string {
	remaining := o.timer.Timeout
	secs := int(remaining.Round(time.Second) / time.Second)
	lines := []string{
		widgets.TitleStyle.Render("Email Verification"),
		"Enter 6-digit code sent to " + o.email,
		"",
		o.input.View(),
		"",
		"Time remaining: " + widgets.DangerStyle.Render(fmt.Sprintf("%02d:%02d", secs/60, secs%60)),
	}
	if o.errText != "" {
		lines = append(lines, widgets.DangerStyle.Render(o.errText))
	}
	lines = append(lines, "", widgets.GhostStyle.Render("esc Cancel")+"  "+widgets.ButtonStyle.Render("enter Verify"))
	return strings.Join(lines, "\n")
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
