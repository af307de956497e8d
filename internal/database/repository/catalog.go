package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("repository: not found")

// ErrAlreadyDecided is returned when an approval is no longer pending.
var ErrAlreadyDecided = errors.New("repository: approval already decided")

// Catalog reads the portal's content tables.
type Catalog struct {
	db *sql.DB
}

func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

func (c *Catalog) Subjects(ctx context.Context) ([]Subject, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, progress FROM subjects ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()
	var out []Subject
	for rows.Next() {
		var s Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Progress); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Chapters lists a subject's chapters in syllabus order.
func (c *Catalog) Chapters(ctx context.Context, subject string) ([]Chapter, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT id, subject, name, progress FROM chapters
	WHERE subject = ?
	ORDER BY sort_order`, subject)
	if err != nil {
		return nil, fmt.Errorf("query chapters: %w", err)
	}
	defer rows.Close()
	var out []Chapter
	for rows.Next() {
		var ch Chapter
		if err := rows.Scan(&ch.ID, &ch.Subject, &ch.Name, &ch.Progress); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

func (c *Catalog) WeakAreas(ctx context.Context) ([]WeakArea, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, topic, score FROM weak_areas ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query weak areas: %w", err)
	}
	defer rows.Close()
	var out []WeakArea
	for rows.Next() {
		var w WeakArea
		if err := rows.Scan(&w.ID, &w.Topic, &w.Score); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (c *Catalog) Assignments(ctx context.Context) ([]Assignment, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, course, title, due_date, status FROM assignments ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()
	var out []Assignment
	for rows.Next() {
		var (
			a   Assignment
			due string
		)
		if err := rows.Scan(&a.ID, &a.Course, &a.Title, &due, &a.Status); err != nil {
			return nil, err
		}
		if a.Due, err = time.Parse(DateLayout, due); err != nil {
			return nil, fmt.Errorf("assignment %s due date: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (c *Catalog) Notes(ctx context.Context) ([]Note, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT id, title, subject, kind, author, published, views, downloads
	FROM notes ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()
	var out []Note
	for rows.Next() {
		var (
			n         Note
			published string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Subject, &n.Kind, &n.Author, &published, &n.Views, &n.Downloads); err != nil {
			return nil, err
		}
		if n.Published, err = time.Parse(DateLayout, published); err != nil {
			return nil, fmt.Errorf("note %s date: %w", n.ID, err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (c *Catalog) Quizzes(ctx context.Context) ([]Quiz, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT id, title, course, question_count, minutes, attempts_used, attempts_max, best_score
	FROM quizzes ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()
	var out []Quiz
	for rows.Next() {
		var (
			q    Quiz
			best sql.NullInt64
		)
		if err := rows.Scan(&q.ID, &q.Title, &q.Course, &q.Questions, &q.Minutes, &q.AttemptsUsed, &q.AttemptsMax, &best); err != nil {
			return nil, err
		}
		if best.Valid {
			v := int(best.Int64)
			q.BestScore = &v
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Questions returns the question bank of a quiz.
func (c *Catalog) Questions(ctx context.Context, quizID string) ([]Question, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT id, quiz_id, prompt, options, correct FROM questions
	WHERE quiz_id = ?
	ORDER BY sort_order`, quizID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()
	var out []Question
	for rows.Next() {
		var (
			q       Question
			options string
		)
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Prompt, &options, &q.Correct); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("question %s options: %w", q.ID, err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (c *Catalog) Students(ctx context.Context) ([]Student, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, overall, weak, last_active FROM students ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()
	var out []Student
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Overall, &s.Weak, &s.LastActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (c *Catalog) Teachers(ctx context.Context) ([]Teacher, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, dept, classes, performance, status FROM teachers ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query teachers: %w", err)
	}
	defer rows.Close()
	var out []Teacher
	for rows.Next() {
		var t Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Dept, &t.Classes, &t.Performance, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Trend returns monthly scores ordered by month then subject.
func (c *Catalog) Trend(ctx context.Context) ([]TrendPoint, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT month, subject, score FROM trend ORDER BY month, subject`)
	if err != nil {
		return nil, fmt.Errorf("query trend: %w", err)
	}
	defer rows.Close()
	var out []TrendPoint
	for rows.Next() {
		var (
			p     TrendPoint
			month string
		)
		if err := rows.Scan(&month, &p.Subject, &p.Score); err != nil {
			return nil, err
		}
		if p.Month, err = time.Parse(DateLayout, month); err != nil {
			return nil, fmt.Errorf("trend month %q: %w", month, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (c *Catalog) Concepts(ctx context.Context, scope ConceptScope) ([]Concept, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT id, scope, name, mastery, gap FROM concepts
	WHERE scope = ?
	ORDER BY sort_order`, string(scope))
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	defer rows.Close()
	var out []Concept
	for rows.Next() {
		var cc Concept
		if err := rows.Scan(&cc.ID, &cc.Scope, &cc.Name, &cc.Mastery, &cc.Gap); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

func (c *Catalog) Approvals(ctx context.Context) ([]Approval, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, title, author, kind, submitted, status FROM approvals ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("query approvals: %w", err)
	}
	defer rows.Close()
	var out []Approval
	for rows.Next() {
		var (
			a         Approval
			submitted string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Author, &a.Kind, &submitted, &a.Status); err != nil {
			return nil, err
		}
		if a.Submitted, err = time.Parse(DateLayout, submitted); err != nil {
			return nil, fmt.Errorf("approval %s date: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetApprovalStatus records the head of department's decision on an upload.
// Only pending approvals can be decided.
func (c *Catalog) SetApprovalStatus(ctx context.Context, id string, status ApprovalStatus) error {
	res, err := c.db.ExecContext(ctx,
		`UPDATE approvals SET status = ? WHERE id = ? AND status = ?`,
		string(status), id, string(ApprovalPending))
	if err != nil {
		return fmt.Errorf("update approval: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update approval: %w", err)
	}
	if n > 0 {
		return nil
	}
	var current string
	err = c.db.QueryRowContext(ctx, `SELECT status FROM approvals WHERE id = ?`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("approval %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update approval: %w", err)
	}
	return fmt.Errorf("approval %s is %s: %w", id, current, ErrAlreadyDecided)
}
