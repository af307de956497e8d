package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// seedID derives a stable row id so reseeding updates rows in place.
func seedID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+key)).String()
}

type seedQuestion struct {
	prompt  string
	options []string
	correct int
}

var (
	seedSubjects = []struct {
		name     string
		progress int
	}{
		{"Data Science", 75},
		{"Machine Learning", 60},
		{"Python Programming", 90},
		{"Statistics", 45},
		{"Linear Algebra", 68},
		{"Testing of Hypothesis", 72},
		{"Artificial Intelligence", 55},
	}
	seedChapters = []struct {
		name     string
		progress int
	}{
		{"Chapter 1: Introduction to AI", 85},
		{"Chapter 2: Search Algorithms", 62},
		{"Chapter 3: Knowledge Representation", 45},
		{"Chapter 4: Neural Networks", 38},
		{"Chapter 5: NLP", 45},
	}
	seedWeakAreas = []struct {
		topic string
		score int
	}{
		{"Neural Networks", 45},
		{"Regression Analysis", 52},
		{"Probability", 38},
		{"SQL Optimization", 58},
	}
	seedAssignments = [][4]string{
		{"Machine Learning", "Neural Networks Implementation", "2026-02-20", "Pending"},
		{"Data Science", "Data Analysis Project", "2026-02-25", "In Progress"},
		{"Linear Algebra", "Matrix Operations", "2026-02-15", "Missing"},
		{"Statistics", "Probability Assignment", "2026-02-28", "Not Started"},
		{"Python Programming", "Web Scraping Basics", "2026-02-10", "Completed"},
	}
	seedNotes = []struct {
		title, subject, kind, author, date string
		views, downloads                   int
	}{
		{"Chapter 1 - Introduction to ML", "Machine Learning", "PDF", "Dr. Sharma", "2026-01-15", 45, 23},
		{"Python for Data Analysis", "Data Science", "PPTX", "Prof. Patil", "2026-01-20", 38, 18},
		{"Matrix Operations", "Linear Algebra", "PDF", "Dr. Nikam", "2026-01-25", 52, 31},
		{"Neural Networks Basics", "Deep Learning", "DOCX", "Prof. Rao", "2026-02-01", 22, 10},
		{"Probability Distributions", "Statistics", "PDF", "Dr. Lee", "2026-02-05", 60, 40},
		{"Hypothesis Testing", "Statistics", "PPTX", "Dr. Lee", "2026-02-08", 35, 15},
	}
	seedQuizzes = []struct {
		title, course                string
		questions, minutes, attempts int
		best                         *int
	}{
		{"Neural Networks Quiz", "Machine Learning", 15, 30, 1, intPtr(82)},
		{"Python Basics Quiz", "Data Science", 10, 20, 0, nil},
		{"Matrix Operations Quiz", "Linear Algebra", 12, 25, 1, intPtr(68)},
		{"Probability Quiz", "Statistics", 8, 15, 0, nil},
	}
	// Every quiz draws from the same starter bank until teachers publish their own.
	seedQuestions = []seedQuestion{
		{"What is the primary function of an activation function in a neural network?", []string{"To introduce non-linearity", "To calculate the loss", "To update weights", "To normalize data"}, 0},
		{"Which algorithm is commonly used for training neural networks?", []string{"K-Means Clustering", "Backpropagation", "Apriori", "Decision Trees"}, 1},
		{"What does CNN stand for in Deep Learning?", []string{"Central Neural Network", "Convolutional Neural Network", "Computer Neural Network", "Combined Neural Network"}, 1},
	}
	seedStudents = []struct {
		name    string
		overall int
		weak    string
		active  string
	}{
		{"Pranali Nikam", 85, "Neural Networks", "Today"},
		{"Raj Sharma", 72, "Regression", "Yesterday"},
		{"Priya Patel", 68, "Probability", "2 days ago"},
	}
	seedTeachers = []struct {
		name, dept    string
		classes, perf int
		status        string
	}{
		{"Dr. Sharma", "AI & DS", 4, 85, "Active"},
		{"Prof. Patil", "ML", 3, 72, "Active"},
		{"Dr. Nikam", "Data Science", 3, 68, "Active"},
		{"Prof. Kulkarni", "Statistics", 2, 82, "On Leave"},
	}
	seedTrendMonths   = []string{"2025-09-01", "2025-10-01", "2025-11-01", "2025-12-01", "2026-01-01", "2026-02-01"}
	seedTrendSubjects = []string{"ML", "DS", "LA", "Stats"}
	seedTrendScores   = [][]float64{
		{65, 55, 60, 40},
		{70, 62, 65, 42},
		{72, 65, 62, 45},
		{78, 68, 64, 44},
		{82, 70, 66, 46},
		{85, 75, 68, 45},
	}
	seedConcepts = []struct {
		scope, name  string
		mastery, gap int
	}{
		{"student", "Neural Networks", 45, 20},
		{"student", "Regression", 52, 15},
		{"student", "Probability", 38, 25},
		{"student", "Matrices", 68, 10},
		{"student", "Hypothesis", 72, 5},
		{"department", "Neural Networks", 62, 38},
		{"department", "NLP", 68, 32},
		{"department", "Deep Learning", 55, 45},
		{"department", "Probability", 72, 28},
		{"department", "Linear Algebra", 78, 22},
	}
	seedApprovals = [][4]string{
		{"ML_Chapter5.pptx", "Dr. Patil", "2026-02-15", "PPTX"},
		{"AI_Assignment3.pdf", "Prof. Sharma", "2026-02-16", "PDF"},
		{"Quiz_NeuralNetworks", "Dr. Nikam", "2026-02-17", "QUIZ"},
	}
)

func intPtr(v int) *int { return &v }

// SeedDefaults loads the portal's starter content. It is idempotent and safe
// to run on every startup; approval decisions already taken are kept.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		exec := func(query string, args ...any) error {
			_, err := tx.ExecContext(ctx, query, args...)
			return err
		}
		for i, s := range seedSubjects {
			if err := exec(`
			INSERT INTO subjects(id, name, progress, sort_order) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name=excluded.name, progress=excluded.progress, sort_order=excluded.sort_order`,
				seedID("subject", s.name), s.name, s.progress, i); err != nil {
				return fmt.Errorf("seed subject %s: %w", s.name, err)
			}
		}
		for i, ch := range seedChapters {
			if err := exec(`
			INSERT INTO chapters(id, subject, name, progress, sort_order) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET progress=excluded.progress, sort_order=excluded.sort_order`,
				seedID("chapter", ch.name), "Artificial Intelligence", ch.name, ch.progress, i); err != nil {
				return fmt.Errorf("seed chapter %s: %w", ch.name, err)
			}
		}
		for i, w := range seedWeakAreas {
			if err := exec(`
			INSERT INTO weak_areas(id, topic, score, sort_order) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET score=excluded.score, sort_order=excluded.sort_order`,
				seedID("weak", w.topic), w.topic, w.score, i); err != nil {
				return fmt.Errorf("seed weak area %s: %w", w.topic, err)
			}
		}
		for i, a := range seedAssignments {
			if err := exec(`
			INSERT INTO assignments(id, course, title, due_date, status, sort_order) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET due_date=excluded.due_date, status=excluded.status, sort_order=excluded.sort_order`,
				seedID("assignment", a[0]+"/"+a[1]), a[0], a[1], a[2], a[3], i); err != nil {
				return fmt.Errorf("seed assignment %s: %w", a[1], err)
			}
		}
		for i, n := range seedNotes {
			if err := exec(`
			INSERT INTO notes(id, title, subject, kind, author, published, views, downloads, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET views=excluded.views, downloads=excluded.downloads, sort_order=excluded.sort_order`,
				seedID("note", n.title), n.title, n.subject, n.kind, n.author, n.date, n.views, n.downloads, i); err != nil {
				return fmt.Errorf("seed note %s: %w", n.title, err)
			}
		}
		for i, q := range seedQuizzes {
			quizID := seedID("quiz", q.title)
			if err := exec(`
			INSERT INTO quizzes(id, title, course, question_count, minutes, attempts_used, attempts_max, best_score, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, 3, ?, ?)
			ON CONFLICT(id) DO UPDATE SET attempts_used=excluded.attempts_used, best_score=excluded.best_score, sort_order=excluded.sort_order`,
				quizID, q.title, q.course, q.questions, q.minutes, q.attempts, q.best, i); err != nil {
				return fmt.Errorf("seed quiz %s: %w", q.title, err)
			}
			for j, qq := range seedQuestions {
				options, err := json.Marshal(qq.options)
				if err != nil {
					return err
				}
				if err := exec(`
				INSERT INTO questions(id, quiz_id, prompt, options, correct, sort_order) VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET prompt=excluded.prompt, options=excluded.options, correct=excluded.correct`,
					seedID("question", q.title+"/"+qq.prompt), quizID, qq.prompt, string(options), qq.correct, j); err != nil {
					return fmt.Errorf("seed question for %s: %w", q.title, err)
				}
			}
		}
		for i, s := range seedStudents {
			if err := exec(`
			INSERT INTO students(id, name, overall, weak, last_active, sort_order) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET overall=excluded.overall, weak=excluded.weak, last_active=excluded.last_active`,
				seedID("student", s.name), s.name, s.overall, s.weak, s.active, i); err != nil {
				return fmt.Errorf("seed student %s: %w", s.name, err)
			}
		}
		for i, t := range seedTeachers {
			if err := exec(`
			INSERT INTO teachers(id, name, dept, classes, performance, status, sort_order) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET dept=excluded.dept, classes=excluded.classes, performance=excluded.performance, status=excluded.status`,
				seedID("teacher", t.name), t.name, t.dept, t.classes, t.perf, t.status, i); err != nil {
				return fmt.Errorf("seed teacher %s: %w", t.name, err)
			}
		}
		for mi, month := range seedTrendMonths {
			for si, subject := range seedTrendSubjects {
				if err := exec(`
				INSERT INTO trend(id, month, subject, score) VALUES (?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET score=excluded.score`,
					seedID("trend", month+"/"+subject), month, subject, seedTrendScores[mi][si]); err != nil {
					return fmt.Errorf("seed trend %s %s: %w", month, subject, err)
				}
			}
		}
		for i, c := range seedConcepts {
			if err := exec(`
			INSERT INTO concepts(id, scope, name, mastery, gap, sort_order) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET mastery=excluded.mastery, gap=excluded.gap, sort_order=excluded.sort_order`,
				seedID("concept", c.scope+"/"+c.name), c.scope, c.name, c.mastery, c.gap, i); err != nil {
				return fmt.Errorf("seed concept %s: %w", c.name, err)
			}
		}
		for i, a := range seedApprovals {
			if err := exec(`
			INSERT INTO approvals(id, title, author, submitted, kind, sort_order) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
				seedID("approval", a[0]), a[0], a[1], a[2], a[3], i); err != nil {
				return fmt.Errorf("seed approval %s: %w", a[0], err)
			}
		}
		return nil
	})
}
