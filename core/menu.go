package core

// MenuItem is one sidebar entry. Several staff entries share a Target; the
// portal screens are single pages and the labels are placeholders for sections.
type MenuItem struct {
	Label  string
	Icon   string
	Target Screen
}

var (
	studentMenu = []MenuItem{
		{Label: "Dashboard", Icon: "▦", Target: ScreenStudentDashboard},
		{Label: "Notes & Materials", Icon: "≡", Target: ScreenNotes},
		{Label: "Assignments", Icon: "✎", Target: ScreenAssignments},
		{Label: "Quizzes", Icon: "☑", Target: ScreenQuizzes},
		{Label: "Performance", Icon: "▁▃▅", Target: ScreenPerformance},
		{Label: "AI Tutor", Icon: "◉", Target: ScreenAiAgent},
		{Label: "Settings", Icon: "⚙", Target: ScreenSettings},
	}
	teacherMenu = []MenuItem{
		{Label: "Dashboard", Icon: "▦", Target: ScreenTeacherPortal},
		{Label: "Upload Materials", Icon: "↑", Target: ScreenTeacherPortal},
		{Label: "Quiz Generator", Icon: "☑", Target: ScreenTeacherPortal},
		{Label: "Student Reports", Icon: "▁▃▅", Target: ScreenTeacherPortal},
		{Label: "Settings", Icon: "⚙", Target: ScreenSettings},
	}
	hodMenu = []MenuItem{
		{Label: "Dashboard", Icon: "▦", Target: ScreenHodPortal},
		{Label: "Teachers", Icon: "☺", Target: ScreenHodPortal},
		{Label: "Courses", Icon: "≡", Target: ScreenHodPortal},
		{Label: "Analytics", Icon: "▁▃▅", Target: ScreenHodPortal},
		{Label: "Approvals", Icon: "✓", Target: ScreenHodPortal},
		{Label: "Settings", Icon: "⚙", Target: ScreenSettings},
	}
)

// RoleMenu returns a copy of the sidebar table for r.
func RoleMenu(r Role) []MenuItem {
	var src []MenuItem
	switch r {
	case RoleTeacher:
		src = teacherMenu
	case RoleHOD:
		src = hodMenu
	default:
		src = studentMenu
	}
	return append([]MenuItem(nil), src...)
}

// Initials is the avatar text shown in the top bar.
func Initials(r Role) string {
	switch r {
	case RoleTeacher:
		return "DR"
	case RoleHOD:
		return "HS"
	default:
		return "PN"
	}
}
