package widgets

import "strings"

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Func adapts a plain render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string { return f(width, height) }

// Text is a static block, clipped to the box it is given.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}
