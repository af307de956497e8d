package core

import (
	"errors"
	"fmt"
	"strings"
)

// Screen identifies one full-page view. The zero value is ScreenLogin and
// other packages cannot build new values, only copy the ones below. The
// exported variables are treated as constants and never reassigned; Screens
// and ParseScreen derive their results from the package table, not from them.
type Screen struct {
	id uint8
}

var (
	ScreenLogin            = Screen{0}
	ScreenStudentDashboard = Screen{1}
	ScreenSubjectDashboard = Screen{2}
	ScreenAiAgent          = Screen{3}
	ScreenNotes            = Screen{4}
	ScreenAssignments      = Screen{5}
	ScreenQuizzes          = Screen{6}
	ScreenPerformance      = Screen{7}
	ScreenTeacherPortal    = Screen{8}
	ScreenHodPortal        = Screen{9}
	ScreenSettings         = Screen{10}
)

var screenMeta = [...]struct {
	key   string
	title string
}{
	{"LOGIN", "Login"},
	{"STUDENT_DASH", "Student Dashboard"},
	{"SUBJECT_DASH", "Subject Dashboard"},
	{"AI_AGENT", "AI Tutor"},
	{"NOTES", "Notes & Materials"},
	{"ASSIGNMENTS", "Assignments"},
	{"QUIZZES", "Quizzes"},
	{"PERFORMANCE", "Performance"},
	{"TEACHER_PORTAL", "Teacher Portal"},
	{"HOD_PORTAL", "Department Portal"},
	{"SETTINGS", "Settings"},
}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, len(screenMeta))
	for i := range screenMeta {
		out[i] = Screen{uint8(i)}
	}
	return out
}

// ParseScreen resolves a screen key such as "QUIZZES" (case-insensitive).
func ParseScreen(key string) (Screen, error) {
	k := strings.ToUpper(strings.TrimSpace(key))
	for i, meta := range screenMeta {
		if meta.key == k {
			return Screen{uint8(i)}, nil
		}
	}
	return ScreenLogin, fmt.Errorf("unknown screen %q", key)
}

func (s Screen) String() string { return screenMeta[s.id].key }
func (s Screen) Title() string  { return screenMeta[s.id].title }

// Role selects the sidebar menu. It never restricts which screen can be shown.
// Like Screen, the exported values are fixed and Roles reads the package table.
type Role struct {
	id uint8
}

var (
	RoleStudent = Role{0}
	RoleTeacher = Role{1}
	RoleHOD     = Role{2}
)

var roleNames = [...]string{"student", "teacher", "hod"}

func Roles() []Role {
	out := make([]Role, len(roleNames))
	for i := range roleNames {
		out[i] = Role{uint8(i)}
	}
	return out
}

func ParseRole(name string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, r := range roleNames {
		if r == n {
			return Role{uint8(i)}, nil
		}
	}
	return RoleStudent, fmt.Errorf("unknown role %q", name)
}

func (r Role) String() string { return roleNames[r.id] }

// InferRole is the sign-in heuristic: the identifier is not checked against
// anything, only inspected for the staff markers. "teacher" wins over "hod".
func InferRole(identifier string) Role {
	switch {
	case strings.Contains(identifier, "teacher"):
		return RoleTeacher
	case strings.Contains(identifier, "hod"):
		return RoleHOD
	default:
		return RoleStudent
	}
}

// HomeScreen is where a role lands after sign-in and when the logo is clicked.
func HomeScreen(r Role) Screen {
	switch r {
	case RoleTeacher:
		return ScreenTeacherPortal
	case RoleHOD:
		return ScreenHodPortal
	default:
		return ScreenStudentDashboard
	}
}

// NavigationState is a read-only snapshot of the store.
type NavigationState struct {
	CurrentScreen   Screen
	UserRole        Role
	ShowLogoutModal bool
}

type ChangeKind int

const (
	ChangeScreen ChangeKind = iota
	ChangeRole
	ChangeLogoutModal
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeScreen:
		return "screen"
	case ChangeRole:
		return "role"
	case ChangeLogoutModal:
		return "logout-modal"
	default:
		return "unknown"
	}
}

// NavigationEvent is broadcast to subscribers after every mutation, including
// mutations that leave the value unchanged.
type NavigationEvent struct {
	Kind     ChangeKind
	Previous NavigationState
	State    NavigationState
}

// ErrNoNavigator is raised when screens try to reach the navigation store
// through a model that was built without one.
var ErrNoNavigator = errors.New("core: navigation store used outside its provider")

type subscriber struct {
	id int
	fn func(NavigationEvent)
}

// Navigator is the navigation store. It is owned by the UI loop and is not
// safe for concurrent use.
type Navigator struct {
	state  NavigationState
	subs   []subscriber
	nextID int
}

// NewNavigator returns a store holding the session defaults: Login, student,
// logout confirmation hidden.
func NewNavigator() *Navigator {
	return &Navigator{state: NavigationState{
		CurrentScreen:   ScreenLogin,
		UserRole:        RoleStudent,
		ShowLogoutModal: false,
	}}
}

func (n *Navigator) Snapshot() NavigationState { return n.state }

func (n *Navigator) CurrentScreen() Screen { return n.state.CurrentScreen }
func (n *Navigator) UserRole() Role        { return n.state.UserRole }
func (n *Navigator) ShowLogoutModal() bool { return n.state.ShowLogoutModal }

// NavigateTo always succeeds. Subscribers use the screen event to reset the
// scroll position.
func (n *Navigator) NavigateTo(s Screen) {
	prev := n.state
	n.state.CurrentScreen = s
	n.publish(ChangeScreen, prev)
}

func (n *Navigator) SetUserRole(r Role) {
	prev := n.state
	n.state.UserRole = r
	n.publish(ChangeRole, prev)
}

func (n *Navigator) SetShowLogoutModal(show bool) {
	prev := n.state
	n.state.ShowLogoutModal = show
	n.publish(ChangeLogoutModal, prev)
}

// SignIn applies the sign-in heuristic and lands on the role's home screen.
func (n *Navigator) SignIn(identifier string) Role {
	role := InferRole(identifier)
	n.SetUserRole(role)
	n.NavigateTo(HomeScreen(role))
	return role
}

// SignOut closes the confirmation and returns to Login. The role is left as
// is; the next sign-in overwrites it.
func (n *Navigator) SignOut() {
	n.SetShowLogoutModal(false)
	n.NavigateTo(ScreenLogin)
}

// Subscribe registers fn and returns a function that removes it.
func (n *Navigator) Subscribe(fn func(NavigationEvent)) func() {
	if fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

func (n *Navigator) publish(kind ChangeKind, prev NavigationState) {
	ev := NavigationEvent{Kind: kind, Previous: prev, State: n.state}
	subs := append([]subscriber(nil), n.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
}
