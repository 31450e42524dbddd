package render

import (
	"github.com/ukaji3/visitdash/pkg/visitdash"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/query"
)

// Grid is a table flattened to display text.
type Grid struct {
	Columns []string
	Rows    [][]string
}

// NewGrid flattens t.
func NewGrid(t *models.Table) Grid {
	g := Grid{Columns: t.Columns(), Rows: make([][]string, t.Len())}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.Text()
		}
		g.Rows[i] = cells
	}
	return g
}

// Selector is one equality-filter dropdown.
type Selector struct {
	Column   string
	Label    string
	Choices  []string
	Selected string
}

// LoadStatus describes why no table is shown.
type LoadStatus struct {
	// Unavailable is set when the source is missing or unreachable; the page
	// shows setup instructions.
	Unavailable bool
	// Message is the user-visible error text, empty when the load succeeded.
	Message string
}

func loadStatus(err error) LoadStatus {
	if err == nil {
		return LoadStatus{}
	}
	return LoadStatus{Unavailable: visitdash.IsUnavailable(err), Message: err.Error()}
}

// VisitsPage is the view model of the visits dashboard.
type VisitsPage struct {
	Source string
	Load   LoadStatus
	// Ready is false when there is nothing to show beyond Load and the
	// instructions.
	Ready bool

	Counters   []Counter
	Selectors  []Selector
	AllColumns []string
	Chosen     []string
	Table      Grid
	Charts     []models.Chart

	Search      query.State
	SearchQuery string
	SearchCount int
	SearchTable Grid
}

// VisitsView builds the visits dashboard from the cached table, the load
// error if any, and the current selections. It has no side effects.
//
// Counters cover the whole table; the data table, the charts and the search
// cover the rows left by the equality filters.
func VisitsView(source string, t *models.Table, loadErr error, state models.FilterState, schema Schema) VisitsPage {
	page := VisitsPage{Source: source, Load: loadStatus(loadErr)}
	if loadErr != nil || t == nil || t.IsEmpty() {
		return page
	}
	page.Ready = true
	page.Counters = Summarize(t, schema).Counters()

	var filters []models.Filter
	for _, sel := range []struct{ column, label string }{
		{schema.Salesperson, "Salesperson"},
		{schema.Customer, "Customer"},
		{schema.Status, "Status"},
	} {
		if !t.HasColumn(sel.column) {
			continue
		}
		choices := query.Choices(t, sel.column)
		selected := state.Selected(sel.column)
		if !contains(choices, selected) {
			selected = query.All
		}
		page.Selectors = append(page.Selectors, Selector{
			Column:   sel.column,
			Label:    sel.label,
			Choices:  choices,
			Selected: selected,
		})
		filters = append(filters, models.Filter{Column: sel.column, Value: selected})
	}
	filtered := query.Apply(t, filters)

	page.AllColumns = filtered.Columns()
	page.Chosen = chooseColumns(page.AllColumns, state.Columns, schema.DefaultColumns)
	page.Table = NewGrid(filtered.Select(page.Chosen))

	if c, ok := BarChart(filtered, schema.Salesperson, "Visits by salesperson"); ok {
		page.Charts = append(page.Charts, c)
	}
	if c, ok := PieChart(filtered, schema.Status, "Visits by status"); ok {
		page.Charts = append(page.Charts, c)
	}

	res := query.SearchAll(filtered, state.Query)
	page.Search = res.State
	page.SearchQuery = state.Query
	if res.Rows != nil {
		page.SearchCount = res.Rows.Len()
		page.SearchTable = NewGrid(res.Rows)
	}
	return page
}

// chooseColumns resolves the column chooser. A nil choice means the default
// leading columns; an explicit empty choice means every column.
func chooseColumns(all, chosen []string, defaults int) []string {
	if chosen == nil {
		n := defaults
		if n <= 0 || n > len(all) {
			n = len(all)
		}
		return append([]string(nil), all[:n]...)
	}
	var out []string
	for _, c := range chosen {
		if contains(all, c) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), all...)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FinderPage is the view model of the address finder.
type FinderPage struct {
	Source string
	Load   LoadStatus
	Ready  bool

	Query   string
	State   query.State
	Matches []string
	// Selected is the exact address shown, one of Matches.
	Selected string
	// Fields is the most recent visit of Selected, transposed.
	Fields []models.Field
}

// FinderView builds the address finder from the cached table, the load error
// if any, the typed query and the chosen exact address. An empty or unknown
// selection falls back to the first match.
func FinderView(source string, t *models.Table, loadErr error, q, selected string, schema FinderSchema) FinderPage {
	page := FinderPage{Source: source, Load: loadStatus(loadErr), Query: q}
	if loadErr != nil || t == nil {
		return page
	}
	page.Ready = true

	res := query.Search(t, schema.Address, q)
	page.State = res.State
	if res.State != query.StateMatches {
		return page
	}

	page.Matches = query.Distinct(res.Rows, schema.Address)
	if !contains(page.Matches, selected) {
		selected = page.Matches[0]
	}
	page.Selected = selected
	page.Fields, _ = query.Latest(res.Rows, schema.Address, selected, schema.Timestamp)
	return page
}
