package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

const maxLabelWidth = 18

// renderChart draws a chart as horizontal bars. Bar charts scale to the
// largest count; pie charts scale to the total and show each share.
func renderChart(c models.Chart, width int, styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Header.Render(c.Title))
	sb.WriteString("\n")

	if len(c.Counts) == 0 {
		sb.WriteString(styles.Muted.Render("No data for the current filters."))
		return sb.String()
	}

	barMax := width - maxLabelWidth - 14
	if barMax < 10 {
		barMax = 10
	}
	scale := c.Max()
	if c.Kind == models.ChartPie {
		scale = c.Total()
	}

	for i, v := range c.Counts {
		n := v.N * barMax / scale
		if n == 0 && v.N > 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().
			Foreground(ChartColors[i%len(ChartColors)]).
			Render(strings.Repeat("█", n))

		suffix := fmt.Sprintf(" %d", v.N)
		if c.Kind == models.ChartPie {
			suffix = fmt.Sprintf(" %d (%.1f%%)", v.N, 100*float64(v.N)/float64(c.Total()))
		}
		fmt.Fprintf(&sb, "%-*s %s%s\n", maxLabelWidth, truncate(v.Label, maxLabelWidth), bar, suffix)
	}
	return sb.String()
}

func truncate(s string, l int) string {
	r := []rune(s)
	if len(r) > l {
		return string(r[:l-1]) + "…"
	}
	return s
}
