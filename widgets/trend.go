package widgets

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// TrendPoint is one month of a score series.
type TrendPoint struct {
	Month time.Time
	Value float64
}

// minTrendWidth leaves room for the Y axis labels and a few plot columns.
const minTrendWidth = 20

// TrendChart draws a braille line chart of monthly values on a fixed Y range.
type TrendChart struct {
	Title  string
	Points []TrendPoint
	MinY   float64
	MaxY   float64
}

func (c TrendChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Points) < 2 {
		return c.Title + "\n" + MutedStyle.Render("Not enough data for a trend yet.")
	}
	chartH := height
	head := ""
	if c.Title != "" {
		head = TitleStyle.Render(c.Title) + "\n"
		chartH--
	}
	if chartH < 4 || width < minTrendWidth {
		return head + MutedStyle.Render("(chart hidden)")
	}
	start, end := c.Points[0].Month, c.Points[len(c.Points)-1].Month
	minY, maxY := c.MinY, c.MaxY
	if maxY <= minY {
		minY, maxY = 0, 100
	}

	chart := tslc.New(width, chartH)
	chart.SetStyle(lipgloss.NewStyle().Foreground(ColorPrimary))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(minY, maxY)
	chart.SetViewYRange(minY, maxY)
	chart.Model.XLabelFormatter = monthLabel
	for _, p := range c.Points {
		chart.Push(tslc.TimePoint{Time: p.Month, Value: p.Value})
	}
	chart.DrawBraille()
	return head + chart.View()
}

func monthLabel(_ int, v float64) string {
	return time.Unix(int64(v), 0).UTC().Format("Jan")
}
