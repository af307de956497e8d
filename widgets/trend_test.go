package widgets

import (
	"strings"
	"testing"
	"time"
)

func trendPoints() []TrendPoint {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]TrendPoint, 6)
	for i := range out {
		out[i] = TrendPoint{Month: start.AddDate(0, i, 0), Value: float64(60 + 5*i)}
	}
	return out
}

func TestTrendChartHiddenWhenNarrow(t *testing.T) {
	c := TrendChart{Points: trendPoints(), MaxY: 100}
	for _, w := range []int{1, 5, minTrendWidth - 1} {
		if out := c.Render(w, 12); !strings.Contains(out, "chart hidden") {
			t.Fatalf("width %d: expected the chart to be hidden, got %q", w, out)
		}
	}
}

func TestTrendChartDrawsWhenRoomy(t *testing.T) {
	out := TrendChart{Points: trendPoints(), MaxY: 100}.Render(60, 12)
	if strings.Contains(out, "chart hidden") || len(strings.Split(out, "\n")) < 4 {
		t.Fatalf("expected a drawn chart, got %q", out)
	}
}
