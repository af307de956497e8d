package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a bordered card with a heading line.
type Box struct {
	Title   string
	Content string
	Accent  bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	border := ColorBorder
	if b.Accent {
		border = ColorPrimary
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(height)
	body := b.Content
	if b.Title != "" {
		body = TitleStyle.Render(b.Title) + "\n" + body
	}
	return style.Render(body)
}

// StatCard is the big-number tile used across the dashboards.
type StatCard struct {
	Label string
	Value string
	Note  string
}

func (c StatCard) Render(width, height int) string {
	content := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(c.Value)
	if c.Note != "" {
		content += "\n" + MutedStyle.Render(c.Note)
	}
	return Box{Title: c.Label, Content: content}.Render(width, height)
}
