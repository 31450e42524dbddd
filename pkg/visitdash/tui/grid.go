package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/ukaji3/visitdash/pkg/visitdash/render"
)

const maxColumnWidth = 24

// setGrid replaces the contents of t with g. Rows are cleared first so that
// a narrower column set never meets wider rows.
func setGrid(t *table.Model, g render.Grid) {
	cols := make([]table.Column, len(g.Columns))
	for i, c := range g.Columns {
		w := len([]rune(c))
		for _, r := range g.Rows {
			if i < len(r) {
				if n := len([]rune(r[i])); n > w {
					w = n
				}
			}
		}
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if w < 4 {
			w = 4
		}
		cols[i] = table.Column{Title: c, Width: w}
	}

	rows := make([]table.Row, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = table.Row(r)
	}

	t.SetRows(nil)
	t.SetColumns(cols)
	t.SetRows(rows)
}

func newTable(height int) table.Model {
	return table.New(
		table.WithFocused(true),
		table.WithHeight(height),
	)
}
