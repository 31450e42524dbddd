package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/visitdash/pkg/visitdash"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/query"
	"github.com/ukaji3/visitdash/pkg/visitdash/render"
)

// VisitsModel is the terminal visits dashboard.
type VisitsModel struct {
	ctx    context.Context
	cache  *visitdash.Cache
	source string
	schema render.Schema

	loaded  bool
	records *models.Table
	loadErr error

	state models.FilterState
	page  render.VisitsPage

	search        textinput.Model
	searchFocused bool
	choosing      bool // column chooser active
	colCursor     int

	table   table.Model
	results table.Model

	width  int
	styles Styles
}

// NewVisitsModel creates a visits dashboard over cache.
func NewVisitsModel(ctx context.Context, cache *visitdash.Cache, source string, schema render.Schema) VisitsModel {
	in := textinput.New()
	in.Placeholder = "Search all columns..."
	in.CharLimit = 120
	in.Width = 40

	return VisitsModel{
		ctx:     ctx,
		cache:   cache,
		source:  source,
		schema:  schema,
		search:  in,
		table:   newTable(10),
		results: newTable(6),
		width:   120,
		styles:  DefaultStyles(),
	}
}

// Init starts the load.
func (m VisitsModel) Init() tea.Cmd {
	return loadCmd(m.ctx, m.cache)
}

// Update handles messages.
func (m VisitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case LoadedMsg:
		m.loaded = true
		m.records = msg.Table
		m.loadErr = msg.Err
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searchFocused {
			switch msg.String() {
			case "enter", "esc":
				m.searchFocused = false
				m.search.Blur()
				return m, nil
			}
			m.search, cmd = m.search.Update(msg)
			if m.search.Value() != m.state.Query {
				m.state.Query = m.search.Value()
				m.refresh()
			}
			return m, cmd
		}
		if m.choosing {
			m.updateChooser(msg)
			return m, nil
		}

		switch msg.String() {
		case "esc", "q":
			return m, tea.Quit
		case "/":
			m.searchFocused = true
			m.search.Focus()
			return m, textinput.Blink
		case "1", "2", "3":
			m.cycleSelector(int(msg.String()[0] - '1'))
			return m, nil
		case "0":
			m.state.Filters = nil
			m.refresh()
			return m, nil
		case "c":
			if m.page.Ready {
				m.choosing = true
				m.colCursor = 0
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycleSelector advances selector i to its next choice.
func (m *VisitsModel) cycleSelector(i int) {
	if i < 0 || i >= len(m.page.Selectors) {
		return
	}
	sel := m.page.Selectors[i]
	next := 0
	for j, c := range sel.Choices {
		if c == sel.Selected {
			next = (j + 1) % len(sel.Choices)
		}
	}
	m.setFilter(sel.Column, sel.Choices[next])
	m.refresh()
}

func (m *VisitsModel) setFilter(column, value string) {
	for i, f := range m.state.Filters {
		if f.Column == column {
			m.state.Filters[i].Value = value
			return
		}
	}
	m.state.Filters = append(m.state.Filters, models.Filter{Column: column, Value: value})
}

// updateChooser handles keys while the column chooser is active.
func (m *VisitsModel) updateChooser(msg tea.KeyMsg) {
	all := m.page.AllColumns
	switch msg.String() {
	case "left", "h":
		if m.colCursor > 0 {
			m.colCursor--
		}
	case "right", "l":
		if m.colCursor < len(all)-1 {
			m.colCursor++
		}
	case " ":
		if m.colCursor >= len(all) {
			return
		}
		m.toggleColumn(all[m.colCursor])
		m.refresh()
	case "c", "enter", "esc":
		m.choosing = false
	}
}

// toggleColumn adds or removes column from the chosen set, keeping table
// order.
func (m *VisitsModel) toggleColumn(column string) {
	chosen := make(map[string]bool)
	for _, c := range m.page.Chosen {
		chosen[c] = true
	}
	chosen[column] = !chosen[column]

	cols := []string{}
	for _, c := range m.page.AllColumns {
		if chosen[c] {
			cols = append(cols, c)
		}
	}
	m.state.Columns = cols
}

// refresh recomputes the page from the cached table and the selections.
func (m *VisitsModel) refresh() {
	if !m.loaded {
		return
	}
	m.page = render.VisitsView(m.source, m.records, m.loadErr, m.state, m.schema)
	if !m.page.Ready {
		return
	}
	setGrid(&m.table, m.page.Table)
	if m.page.Search == query.StateMatches {
		setGrid(&m.results, m.page.SearchTable)
	}
}

// View renders the dashboard.
func (m VisitsModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Commercial visits"))
	sb.WriteString("\n\n")

	if !m.loaded {
		sb.WriteString(m.styles.Muted.Render("Loading " + m.source + "..."))
		return sb.String()
	}
	if m.page.Load.Message != "" {
		if m.page.Load.Unavailable {
			sb.WriteString(m.styles.Error.Render("Could not find " + m.source))
		} else {
			sb.WriteString(m.styles.Error.Render("Error loading " + m.source + ": " + m.page.Load.Message))
		}
		sb.WriteString("\n")
	}
	if !m.page.Ready {
		sb.WriteString(m.styles.Info.Render("To get started, save your visits workbook as " + m.source + " and restart."))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("q: quit"))
		return sb.String()
	}

	// Counters
	counters := make([]string, len(m.page.Counters))
	for i, c := range m.page.Counters {
		counters[i] = lipgloss.NewStyle().MarginRight(4).Render(
			m.styles.Label.Render(c.Label) + "\n" + m.styles.Value.Render(c.Value))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, counters...))
	sb.WriteString("\n\n")

	// Filters
	var filters []string
	for i, sel := range m.page.Selectors {
		filters = append(filters, fmt.Sprintf("%d %s: %s", i+1, m.styles.Label.Render(sel.Label), m.styles.Value.Render(sel.Selected)))
	}
	sb.WriteString(strings.Join(filters, "   "))
	sb.WriteString("\n")

	if m.choosing {
		sb.WriteString(m.renderChooser())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Visit history"))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n\n")

	// Charts
	var charts []string
	half := m.width / 2
	for _, c := range m.page.Charts {
		charts = append(charts, lipgloss.NewStyle().Width(half).Render(renderChart(c, half, m.styles)))
	}
	if len(charts) > 0 {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, charts...))
		sb.WriteString("\n")
	}

	// Search
	sb.WriteString(m.styles.Header.Render("Advanced search"))
	sb.WriteString("\n")
	inputStyle := m.styles.Input
	if m.searchFocused {
		inputStyle = inputStyle.BorderForeground(Accent)
	}
	sb.WriteString(inputStyle.Render(m.search.View()))
	sb.WriteString("\n")
	switch m.page.Search {
	case query.StatePrompt:
		sb.WriteString(m.styles.Info.Render("Type a term to search every column."))
	case query.StateEmpty:
		sb.WriteString(m.styles.Warning.Render(fmt.Sprintf("No records match %q.", m.page.SearchQuery)))
	default:
		sb.WriteString(fmt.Sprintf("Search results: %d records\n", m.page.SearchCount))
		sb.WriteString(m.results.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("1-3: cycle filters • 0: clear filters • c: choose columns • /: search • q: quit"))
	return sb.String()
}

func (m VisitsModel) renderChooser() string {
	chosen := make(map[string]bool)
	for _, c := range m.page.Chosen {
		chosen[c] = true
	}
	parts := make([]string, len(m.page.AllColumns))
	for i, c := range m.page.AllColumns {
		box := "[ ]"
		if chosen[c] {
			box = "[x]"
		}
		item := box + " " + c
		if i == m.colCursor {
			item = m.styles.Focused.Render(item)
		}
		parts[i] = item
	}
	return m.styles.Label.Render("Columns (←/→ move, space toggle, c done): ") + strings.Join(parts, "  ")
}

// Page returns the current view model.
func (m VisitsModel) Page() render.VisitsPage { return m.page }

// RunVisits runs the visits dashboard until the user quits.
func RunVisits(ctx context.Context, cache *visitdash.Cache, source string, schema render.Schema) error {
	_, err := tea.NewProgram(NewVisitsModel(ctx, cache, source, schema), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
