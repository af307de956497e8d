package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vsit/academicagent/internal/database"
	"github.com/vsit/academicagent/internal/database/repository"
)

func newCatalog(t *testing.T) *repository.Catalog {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db, err := database.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.SeedDefaults(ctx, db))
	return repository.NewCatalog(db)
}

func TestCatalogSubjectsKeepSeedOrder(t *testing.T) {
	c := newCatalog(t)
	subjects, err := c.Subjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 7)
	require.Equal(t, "Data Science", subjects[0].Name)
	require.Equal(t, 75, subjects[0].Progress)
}

func TestCatalogChaptersBySubject(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	chapters, err := c.Chapters(ctx, "Artificial Intelligence")
	require.NoError(t, err)
	require.Len(t, chapters, 5)
	require.Equal(t, "Chapter 1: Introduction to AI", chapters[0].Name)

	none, err := c.Chapters(ctx, "Underwater Basket Weaving")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCatalogAssignmentsParseDates(t *testing.T) {
	c := newCatalog(t)
	items, err := c.Assignments(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)
	require.Equal(t, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), items[0].Due)
	require.Equal(t, repository.StatusCompleted, items[4].Status)
}

func TestCatalogQuizzesAndQuestions(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	quizzes, err := c.Quizzes(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 4)
	require.NotNil(t, quizzes[0].BestScore)
	require.Equal(t, 82, *quizzes[0].BestScore)
	require.Nil(t, quizzes[1].BestScore)

	questions, err := c.Questions(ctx, quizzes[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	require.Len(t, questions[0].Options, 4)
	require.Equal(t, "To introduce non-linearity", questions[0].Options[questions[0].Correct])
}

func TestCatalogTrendIsMonthOrdered(t *testing.T) {
	c := newCatalog(t)
	points, err := c.Trend(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 24)
	for i := 1; i < len(points); i++ {
		require.False(t, points[i].Month.Before(points[i-1].Month))
	}
}

func TestCatalogConceptScopes(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	student, err := c.Concepts(ctx, repository.ScopeStudent)
	require.NoError(t, err)
	dept, err := c.Concepts(ctx, repository.ScopeDepartment)
	require.NoError(t, err)
	require.Len(t, student, 5)
	require.Len(t, dept, 5)
	require.Equal(t, "NLP", dept[1].Name)
}

func TestSetApprovalStatus(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	approvals, err := c.Approvals(ctx)
	require.NoError(t, err)
	require.Len(t, approvals, 3)
	require.Equal(t, repository.ApprovalPending, approvals[0].Status)

	require.NoError(t, c.SetApprovalStatus(ctx, approvals[0].ID, repository.ApprovalApproved))
	approvals, err = c.Approvals(ctx)
	require.NoError(t, err)
	require.Equal(t, repository.ApprovalApproved, approvals[0].Status)

	err = c.SetApprovalStatus(ctx, "missing", repository.ApprovalRejected)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSetApprovalStatusOnlyOnce(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	approvals, err := c.Approvals(ctx)
	require.NoError(t, err)
	id := approvals[0].ID

	require.NoError(t, c.SetApprovalStatus(ctx, id, repository.ApprovalApproved))
	err = c.SetApprovalStatus(ctx, id, repository.ApprovalRejected)
	require.ErrorIs(t, err, repository.ErrAlreadyDecided)
	require.NotErrorIs(t, err, repository.ErrNotFound)

	approvals, err = c.Approvals(ctx)
	require.NoError(t, err)
	for _, a := range approvals {
		if a.ID == id {
			require.Equal(t, repository.ApprovalApproved, a.Status)
		}
	}
}

func TestCatalogRosters(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	students, err := c.Students(ctx)
	require.NoError(t, err)
	require.Equal(t, "Pranali Nikam", students[0].Name)
	teachers, err := c.Teachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 4)
	require.Equal(t, "On Leave", teachers[3].Status)
	notes, err := c.Notes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 6)
	weak, err := c.WeakAreas(ctx)
	require.NoError(t, err)
	require.Len(t, weak, 4)
}
