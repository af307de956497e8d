package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vsit/academicagent/core"
	"github.com/vsit/academicagent/internal/report"
)

// exportCmd writes a workbook into the export directory off the UI loop and
// reports the outcome in the status bar.
func exportCmd(d Deps, kind string, write func(path string) error) tea.Cmd {
	path := report.Filename(d.ExportDir, kind, d.Now())
	return func() tea.Msg {
		if err := write(path); err != nil {
			d.Log.Error("export failed", "kind", kind, "err", err)
			return core.StatusMsg{Text: fmt.Sprintf("export %s report: %v", kind, err), IsErr: true}
		}
		d.Log.Info("report exported", "kind", kind, "path", path)
		return core.StatusMsg{Text: "Saved " + path}
	}
}
