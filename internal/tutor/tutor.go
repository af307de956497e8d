// Package tutor is the simulated study assistant behind the AI Tutor screen.
// Replies are canned; a prompt that names a known topic (typos allowed) gets
// that topic's summary appended.
package tutor

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// StockReply opens every assistant answer.
const StockReply = "I can certainly help you with that concept. Here is a breakdown..."

var ErrEmptyPrompt = errors.New("tutor: empty prompt")

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

type Message struct {
	ID   string
	From Sender
	Text string
	At   time.Time
	// Topic is set on assistant replies that matched a known topic.
	Topic string
}

// Topic is a subject area the tutor can summarise.
type Topic struct {
	Name     string
	Keywords []string
	Summary  string
}

var DefaultTopics = []Topic{
	{
		Name:     "Neural Networks",
		Keywords: []string{"neural", "network", "activation", "backpropagation", "perceptron"},
		Summary:  "A neural network stacks layers of weighted sums followed by non-linear activations; training adjusts the weights with backpropagation of the loss gradient.",
	},
	{
		Name:     "Regression Analysis",
		Keywords: []string{"regression", "linear", "residual", "coefficient"},
		Summary:  "Regression fits a line (or surface) that minimises squared residuals; each coefficient is the expected change in the target per unit change of its feature.",
	},
	{
		Name:     "Probability",
		Keywords: []string{"probability", "bayes", "distribution", "random"},
		Summary:  "Probability assigns each outcome a weight between 0 and 1; Bayes' rule updates those weights when new evidence arrives.",
	},
	{
		Name:     "Linear Algebra",
		Keywords: []string{"matrix", "matrices", "vector", "eigenvalue", "determinant"},
		Summary:  "Matrices are linear maps; multiplying composes maps, and eigenvectors are the directions a map only stretches.",
	},
	{
		Name:     "Hypothesis Testing",
		Keywords: []string{"hypothesis", "p-value", "significance", "t-test"},
		Summary:  "A hypothesis test asks how surprising the data would be if the null hypothesis held; a small p-value means very surprising.",
	},
	{
		Name:     "SQL Optimization",
		Keywords: []string{"sql", "index", "query", "join"},
		Summary:  "Most slow queries scan rows they do not need; an index on the filtered or joined column lets the database seek instead.",
	},
}

// Tutor answers prompts. The zero value is not usable; use New.
type Tutor struct {
	topics []Topic
	now    func() time.Time
}

func New(topics []Topic) *Tutor {
	if len(topics) == 0 {
		topics = DefaultTopics
	}
	return &Tutor{topics: topics, now: time.Now}
}

// Greeting is the first message of every chat session.
func (t *Tutor) Greeting(student string) Message {
	if student == "" {
		student = "there"
	}
	return t.message(SenderAssistant, "Hello "+student+"! I am your AI Academic Agent. How can I help you learn today?")
}

// Ask records the student's prompt as a chat message.
func (t *Tutor) Ask(prompt string) (Message, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Message{}, ErrEmptyPrompt
	}
	return t.message(SenderUser, prompt), nil
}

// Reply builds the assistant's answer to prompt.
func (t *Tutor) Reply(ctx context.Context, prompt string) (Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}
	if strings.TrimSpace(prompt) == "" {
		return Message{}, ErrEmptyPrompt
	}
	msg := t.message(SenderAssistant, StockReply)
	if topic, ok := t.Match(prompt); ok {
		msg.Topic = topic.Name
		msg.Text += "\n\n" + topic.Summary
	}
	return msg, nil
}

// Match finds the topic whose keywords best match the words of prompt.
func (t *Tutor) Match(prompt string) (Topic, bool) {
	words := strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	best, bestScore := -1, 0.0
	for i, topic := range t.topics {
		for _, kw := range topic.Keywords {
			for _, w := range words {
				if s := similarity(w, kw); s > bestScore {
					best, bestScore = i, s
				}
			}
		}
	}
	if best < 0 || bestScore < matchThreshold {
		return Topic{}, false
	}
	return t.topics[best], true
}

const matchThreshold = 0.7

// similarity is 1 minus the edit distance normalised by the longer word.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func (t *Tutor) message(from Sender, text string) Message {
	return Message{ID: uuid.NewString(), From: from, Text: text, At: t.now()}
}
