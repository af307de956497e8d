package tutor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReplyMatchesTopicWithTypos(t *testing.T) {
	tt := New(nil)
	msg, err := tt.Reply(context.Background(), "can you explain nueral netwrks again?")
	require.NoError(t, err)
	require.Equal(t, SenderAssistant, msg.From)
	require.Equal(t, "Neural Networks", msg.Topic)
	require.Contains(t, msg.Text, StockReply)
	require.NotEmpty(t, msg.ID)
}

func TestReplyFallsBackToStockAnswer(t *testing.T) {
	tt := New(nil)
	msg, err := tt.Reply(context.Background(), "what time is lunch")
	require.NoError(t, err)
	require.Empty(t, msg.Topic)
	require.Equal(t, StockReply, msg.Text)
}

func TestReplyRejectsEmptyPromptAndCancelledContext(t *testing.T) {
	tt := New(nil)
	_, err := tt.Reply(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyPrompt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tt.Reply(ctx, "matrix")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAskAndGreeting(t *testing.T) {
	tt := New(nil)
	fixed := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	tt.now = func() time.Time { return fixed }

	g := tt.Greeting("Pranali")
	require.Equal(t, "Hello Pranali! I am your AI Academic Agent. How can I help you learn today?", g.Text)
	require.Equal(t, fixed, g.At)

	m, err := tt.Ask("  probability  ")
	require.NoError(t, err)
	require.Equal(t, SenderUser, m.From)
	require.Equal(t, "probability", m.Text)
	require.NotEqual(t, g.ID, m.ID)
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, similarity("matrix", "matrix"))
	require.Zero(t, similarity("", "matrix"))
	require.Less(t, similarity("cat", "matrix"), matchThreshold)
}
