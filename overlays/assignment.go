package overlays

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/database/repository"
	"github.com/vsit/academicagent/widgets"
)

const ScopeAssignment = "overlay:assignment"

var defaultInstructions = []string{
	"Follow the brief shared in class.",
	"Cite every external source.",
	"Submit before the due date.",
}

var instructionsByTitle = map[string][]string{
	"Neural Networks Implementation": {
		"Please implement a neural network from scratch using Python and NumPy. The network should be able to classify the MNIST dataset with at least 90% accuracy.",
		"Use modular code structure.",
		"Include comments explaining your backpropagation logic.",
		"Visualize the loss curve.",
	},
}

// AssignmentDetail is the read-only card opened from the assignments list.
type AssignmentDetail struct {
	keys *core.KeyRegistry
	a    repository.Assignment
}

func NewAssignmentDetail(keys *core.KeyRegistry, a repository.Assignment) *AssignmentDetail {
	return &AssignmentDetail{keys: keys, a: a}
}

func (d *AssignmentDetail) Title() string { return d.a.Title }
func (d *AssignmentDetail) Scope() string { return ScopeAssignment }

func (d *AssignmentDetail) Update(msg tea.Msg) (core.Overlay, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case d.keys.IsAction(km, "close", ScopeAssignment):
		return d, nil, true
	case d.keys.IsAction(km, "select", ScopeAssignment):
		if d.a.Status == repository.StatusCompleted {
			return d, core.StatusCmd(d.a.Title + " is already submitted"), true
		}
		return d, core.StatusCmd("Submission uploads open on the web portal: " + d.a.Title), true
	}
	return d, nil, false
}

func (d *AssignmentDetail) View(width, height int) string {
	w := max(20, min(width, 72))
	wrap := lipgloss.NewStyle().Width(w)
	steps := instructionsByTitle[d.a.Title]
	if len(steps) == 0 {
		steps = defaultInstructions
	}
	lines := []string{
		widgets.TitleStyle.Render(d.a.Title),
		widgets.MutedStyle.Render(d.a.Course + " · Due " + d.a.Due.Format("Jan 02, 2006") + " · " + string(d.a.Status)),
		"",
		widgets.TitleStyle.Render("Instructions"),
	}
	for _, s := range steps {
		lines = append(lines, wrap.Render("• "+s))
	}
	lines = append(lines,
		"",
		widgets.TitleStyle.Render("Submission"),
		widgets.MutedStyle.Render("PDF, DOCX, ZIP (Max 50MB)"),
		"",
		widgets.GhostStyle.Render("esc Close")+"  "+widgets.ButtonStyle.Render("enter Submit"),
	)
	return strings.Join(lines, "\n")
}
