package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime scopes the commands of one mounted view. Ending it cancels the
// context handed to the view's work and marks every message still in flight
// from that mount as stale.
type Lifetime struct {
	id     int
	ctx    context.Context
	cancel context.CancelFunc
}

// LifetimeMsg carries a message produced by a view-owned command.
type LifetimeMsg struct {
	ID  int
	Msg tea.Msg
}

func newLifetime(parent context.Context, id int) *Lifetime {
	ctx, cancel := context.WithCancel(parent)
	return &Lifetime{id: id, ctx: ctx, cancel: cancel}
}

func (l *Lifetime) ID() int                  { return l.id }
func (l *Lifetime) Context() context.Context { return l.ctx }
func (l *Lifetime) Done() bool               { return l.ctx.Err() != nil }

func (l *Lifetime) End() { l.cancel() }

// Guard wraps cmd so that its result is tagged with this lifetime and dropped
// if the lifetime ended while the command was running.
func (l *Lifetime) Guard(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if msg == nil || l.Done() {
			return nil
		}
		return LifetimeMsg{ID: l.id, Msg: msg}
	}
}

// guardBatch re-guards the members of a batch produced by a guarded command.
func (l *Lifetime) guardBatch(batch tea.BatchMsg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(batch))
	for _, c := range batch {
		cmds = append(cmds, l.Guard(c))
	}
	return tea.Batch(cmds...)
}
