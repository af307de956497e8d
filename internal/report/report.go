// Package report exports portal rosters as Excel workbooks.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vsit/academicagent/internal/database/repository"
)

const (
	StudentSheet = "Student Reports"
	TeacherSheet = "Teachers"
	TrendSheet   = "Performance"
)

// Filename returns a timestamped workbook path inside dir.
func Filename(dir, kind string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-report-%s.xlsx", kind, now.Format("20060102-150405")))
}

// WriteStudentReport writes one row per student to a new workbook at path.
func WriteStudentReport(path string, students []repository.Student) error {
	rows := make([][]any, 0, len(students))
	for _, s := range students {
		rows = append(rows, []any{s.Name, fmt.Sprintf("%d%%", s.Overall), s.Weak, s.LastActive})
	}
	return writeSheet(path, StudentSheet, []any{"Student", "Overall", "Weak Area", "Last Active"}, rows)
}

// WriteTeacherReport writes the department roster to a new workbook at path.
func WriteTeacherReport(path string, teachers []repository.Teacher) error {
	rows := make([][]any, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []any{t.Name, t.Dept, t.Classes, fmt.Sprintf("%d%%", t.Performance), t.Status})
	}
	return writeSheet(path, TeacherSheet, []any{"Teacher", "Department", "Classes", "Performance", "Status"}, rows)
}

// WritePerformanceReport writes the monthly score history, one row per
// subject and month.
func WritePerformanceReport(path string, points []repository.TrendPoint) error {
	rows := make([][]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, []any{p.Month.Format("Jan 2006"), p.Subject, p.Score})
	}
	return writeSheet(path, TrendSheet, []any{"Month", "Subject", "Score"}, rows)
}

func writeSheet(path, sheet string, header []any, rows [][]any) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir export dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
