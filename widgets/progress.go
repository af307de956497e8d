package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
)

// ProgressBar is a labelled completion bar. Percent is 0..100.
type ProgressBar struct {
	Label   string
	Percent float64
}

func (p ProgressBar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	pct := fmt.Sprintf(" %3.0f%%", p.Percent)
	labelW := 0
	if p.Label != "" {
		labelW = min(ansi.StringWidth(p.Label)+1, width/2)
	}
	bar := progress.New(
		progress.WithSolidFill(string(ColorPrimary)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(4, width-labelW-len(pct))),
	)
	bar.EmptyColor = string(ColorBorder)
	line := bar.ViewAs(min(max(p.Percent, 0), 100) / 100)
	if labelW > 0 {
		line = padRight(p.Label, labelW) + line
	}
	return line + pct
}
