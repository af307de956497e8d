package views

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

func joinLines(lines []string) string { return strings.Join(lines, "\n") }

// clock renders a duration as mm:ss, rounding partial seconds up.
func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func percent(v int) string { return fmt.Sprintf("%d%%", v) }

func sortedStrings(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
