package repository

import "time"

// DateLayout is the on-disk format for calendar dates.
const DateLayout = "2006-01-02"

// Subject is a course the student is enrolled in.
type Subject struct {
	ID       string
	Name     string
	Progress int
}

// Chapter is one unit of a subject with the student's completion.
type Chapter struct {
	ID       string
	Subject  string
	Name     string
	Progress int
}

// WeakArea is a topic where the student scores below target.
type WeakArea struct {
	ID    string
	Topic string
	Score int
}

type AssignmentStatus string

const (
	StatusPending    AssignmentStatus = "Pending"
	StatusInProgress AssignmentStatus = "In Progress"
	StatusMissing    AssignmentStatus = "Missing"
	StatusNotStarted AssignmentStatus = "Not Started"
	StatusCompleted  AssignmentStatus = "Completed"
)

type Assignment struct {
	ID     string
	Course string
	Title  string
	Due    time.Time
	Status AssignmentStatus
}

// Note is a course material upload.
type Note struct {
	ID        string
	Title     string
	Subject   string
	Kind      string
	Author    string
	Published time.Time
	Views     int
	Downloads int
}

type Quiz struct {
	ID           string
	Title        string
	Course       string
	Questions    int
	Minutes      int
	AttemptsUsed int
	AttemptsMax  int
	BestScore    *int
}

// Question is a single-answer multiple choice item. Correct indexes Options.
type Question struct {
	ID      string
	QuizID  string
	Prompt  string
	Options []string
	Correct int
}

// Student is a roster row on the teacher's reports.
type Student struct {
	ID         string
	Name       string
	Overall    int
	Weak       string
	LastActive string
}

// Teacher is a department roster row.
type Teacher struct {
	ID          string
	Name        string
	Dept        string
	Classes     int
	Performance int
	Status      string
}

// TrendPoint is one subject's score for one month.
type TrendPoint struct {
	Month   time.Time
	Subject string
	Score   float64
}

type ConceptScope string

const (
	ScopeStudent    ConceptScope = "student"
	ScopeDepartment ConceptScope = "department"
)

// Concept pairs mastery with the misconception (student) or curriculum gap
// (department) share for a topic.
type Concept struct {
	ID      string
	Scope   ConceptScope
	Name    string
	Mastery int
	Gap     int
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Approval is uploaded content waiting for the head of department.
type Approval struct {
	ID        string
	Title     string
	Author    string
	Kind      string
	Submitted time.Time
	Status    ApprovalStatus
}
