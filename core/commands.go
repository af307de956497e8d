package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is one palette entry. Keywords are extra search terms, such as the
// sidebar labels that lead to the same screen.
type Command struct {
	ID          string
	Name        string
	Description string
	Keywords    []string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	rank      matchRank
}

type matchRank int

const (
	rankName matchRank = iota
	rankKeyword
	rankFuzzy
	rankNone
)

// CommandRegistry backs the command palette. Commands keep registration order;
// registering an existing ID replaces it in place.
type CommandRegistry struct {
	order    []string
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, exists := r.commands[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.commands[c.ID] = c
}

func (r *CommandRegistry) Len() int { return len(r.order) }

// Search returns the commands visible in scope that match query. Name hits
// come first, then keyword hits, then near-misses within one edit. Disabled
// commands always sort after enabled ones.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.order))
	for _, id := range r.order {
		c := r.commands[id]
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		rank := c.match(q)
		if rank == rankNone {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description, rank: rank}
		if c.Disabled != nil {
			res.Disabled, res.Reason = c.Disabled(m)
		}
		results = append(results, res)
	}
	slices.SortStableFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.rank != b.rank {
			return cmp.Compare(a.rank, b.rank)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func (c Command) match(q string) matchRank {
	if q == "" || strings.Contains(strings.ToLower(c.Name), q) {
		return rankName
	}
	terms := append([]string{c.Description, c.ID}, c.Keywords...)
	for _, t := range terms {
		if strings.Contains(strings.ToLower(t), q) {
			return rankKeyword
		}
	}
	if len(q) < 4 {
		return rankNone
	}
	for _, t := range append([]string{c.Name}, c.Keywords...) {
		for _, word := range strings.Fields(strings.ToLower(t)) {
			if levenshtein.ComputeDistance(word, q) <= 1 {
				return rankFuzzy
			}
		}
	}
	return rankNone
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = "not available here"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
