package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsit/academicagent/core"
)

func TestLoginDemoAccountsLandOnRoleHome(t *testing.T) {
	cases := []struct {
		key    string
		role   core.Role
		screen core.Screen
	}{
		{"f1", core.RoleStudent, core.ScreenStudentDashboard},
		{"f2", core.RoleTeacher, core.ScreenTeacherPortal},
		{"f3", core.RoleHOD, core.ScreenHodPortal},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			h := newHarness(t)
			h.press(tc.key, "enter")
			require.Equal(t, tc.screen, h.nav.CurrentScreen())
			require.Equal(t, tc.role, h.nav.UserRole())
			require.Equal(t, "Signed in as "+tc.role.String(), h.status())
		})
	}
}

func TestLoginTypedIdentifierInfersRole(t *testing.T) {
	h := newHarness(t)
	h.typeText("hod@vsit.edu.in")
	h.press("tab")
	h.typeText("anything")
	h.press("enter")
	require.Equal(t, core.ScreenHodPortal, h.nav.CurrentScreen())
}

func TestLoginAcceptsEmptyForm(t *testing.T) {
	h := newHarness(t)
	h.press("enter")
	require.Equal(t, core.ScreenStudentDashboard, h.nav.CurrentScreen())
}

func TestLoginIgnoresChromeShortcuts(t *testing.T) {
	h := newHarness(t)
	h.typeText("q2")
	require.Equal(t, core.ScreenLogin, h.nav.CurrentScreen())
	require.Equal(t, "q2", current[*loginView](h).email.Value())
}

func TestRegisterRequiresNameAndEmail(t *testing.T) {
	h := newHarness(t)
	h.press("ctrl+r")
	require.True(t, current[*loginView](h).Registering())
	h.press("enter")
	text, isErr := h.model.Status()
	require.True(t, isErr)
	require.Equal(t, "name and email are required", text)
	require.Zero(t, h.model.Overlays())
}

func TestRegisterVerifiesWithOTP(t *testing.T) {
	h := newHarness(t)
	h.press("ctrl+r")
	h.typeText("Asha")
	h.press("tab", "tab")
	h.typeText("asha@vsit.edu.in")
	h.press("tab", "right")
	h.press("enter")
	require.Equal(t, 1, h.model.Overlays())
	require.Contains(t, h.render(), "Enter 6-digit code sent to asha@vsit.edu.in")

	h.typeText("482913")
	h.press("enter")
	require.Zero(t, h.model.Overlays())
	v := current[*loginView](h)
	require.False(t, v.Registering())
	require.Equal(t, "asha@vsit.edu.in", v.email.Value())
	require.Equal(t, 1, v.dept)
	require.Contains(t, h.status(), "Account verified for asha@vsit.edu.in")
	require.Equal(t, core.ScreenLogin, h.nav.CurrentScreen())
}

func TestRegisterCancelKeepsForm(t *testing.T) {
	h := newHarness(t)
	h.press("ctrl+r")
	h.typeText("Asha")
	h.press("tab", "tab")
	h.typeText("asha@vsit.edu.in")
	h.press("enter", "esc")
	require.Zero(t, h.model.Overlays())
	require.True(t, current[*loginView](h).Registering())
}

func TestRegisterTabsThroughChoiceFields(t *testing.T) {
	h := newHarness(t)
	h.press("ctrl+r")
	require.NotPanics(t, func() {
		h.press("tab", "tab", "tab", "tab", "tab")
	})
	v := current[*loginView](h)
	require.Equal(t, regPassword, v.regFocus)
	require.False(t, v.reg[regDepartment].Focused())
	require.False(t, v.reg[regYear].Focused())
	require.True(t, v.reg[regPassword].Focused())
	require.NotPanics(t, func() { h.render() })
}
