package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ukaji3/visitdash/pkg/visitdash"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/query"
	"github.com/ukaji3/visitdash/pkg/visitdash/render"
)

// LoadedMsg carries the result of the cached load into a model.
type LoadedMsg struct {
	Table *models.Table
	Err   error
}

// loadCmd reads the cache off the update loop.
func loadCmd(ctx context.Context, cache *visitdash.Cache) tea.Cmd {
	return func() tea.Msg {
		t, err := cache.Get(ctx)
		return LoadedMsg{Table: t, Err: err}
	}
}

// FinderModel is the terminal address finder: type part of an address, pick
// the exact address with the arrow keys, read its latest visit.
type FinderModel struct {
	ctx    context.Context
	cache  *visitdash.Cache
	source string
	schema render.FinderSchema

	loaded  bool
	records *models.Table
	loadErr error

	input  textinput.Model
	fields table.Model
	cursor int
	page   render.FinderPage

	width  int
	styles Styles
}

// NewFinderModel creates a finder over cache.
func NewFinderModel(ctx context.Context, cache *visitdash.Cache, source string, schema render.FinderSchema) FinderModel {
	in := textinput.New()
	in.Placeholder = "Part of the address..."
	in.CharLimit = 120
	in.Width = 50
	in.Focus()

	return FinderModel{
		ctx:    ctx,
		cache:  cache,
		source: source,
		schema: schema,
		input:  in,
		fields: newTable(16),
		width:  100,
		styles: DefaultStyles(),
	}
}

// Init starts the load.
func (m FinderModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadCmd(m.ctx, m.cache))
}

// Update handles messages.
func (m FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil
		case "down":
			if m.cursor < len(m.page.Matches)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		}
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		m.page.Matches = nil
		m.refresh()
	}
	return m, cmd
}

// refresh recomputes the page from the cached table and current input.
func (m *FinderModel) refresh() {
	if !m.loaded {
		return
	}
	selected := ""
	if m.cursor < len(m.page.Matches) {
		selected = m.page.Matches[m.cursor]
	}
	m.page = render.FinderView(m.source, m.records, m.loadErr, m.input.Value(), selected, m.schema)

	// keep the cursor on the address actually shown
	m.cursor = 0
	for i, a := range m.page.Matches {
		if a == m.page.Selected {
			m.cursor = i
		}
	}

	grid := render.Grid{Columns: []string{"Field", "Latest visit"}}
	for _, f := range m.page.Fields {
		grid.Rows = append(grid.Rows, []string{f.Label, f.Value.Text()})
	}
	setGrid(&m.fields, grid)
}

// View renders the finder.
func (m FinderModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Point-of-sale visit finder"))
	sb.WriteString("\n\n")

	if !m.loaded {
		sb.WriteString(m.styles.Muted.Render("Loading " + m.source + "..."))
		return sb.String()
	}
	if m.page.Load.Message != "" {
		sb.WriteString(m.styles.Error.Render("Error loading visits: " + m.page.Load.Message))
		sb.WriteString("\n")
	}
	if !m.page.Ready {
		sb.WriteString(m.styles.Muted.Render("esc: quit"))
		return sb.String()
	}

	sb.WriteString(m.styles.Input.Render(m.input.View()))
	sb.WriteString("\n")

	switch m.page.State {
	case query.StatePrompt:
		sb.WriteString(m.styles.Info.Render("Type part of an address to start searching."))
	case query.StateEmpty:
		sb.WriteString(m.styles.Warning.Render("No addresses match that search."))
	default:
		sb.WriteString(m.styles.Header.Render("Exact address"))
		sb.WriteString("\n")
		for i, a := range m.page.Matches {
			if i == m.cursor {
				sb.WriteString(m.styles.Focused.Render("> " + a))
			} else {
				sb.WriteString("  " + a)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Success.Render("Showing the latest visit for " + m.page.Selected))
		sb.WriteString("\n")
		sb.WriteString(m.fields.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("↑/↓: choose address • esc: quit"))
	return sb.String()
}

// Page returns the current view model.
func (m FinderModel) Page() render.FinderPage { return m.page }

// RunFinder runs the finder until the user quits.
func RunFinder(ctx context.Context, cache *visitdash.Cache, source string, schema render.FinderSchema) error {
	_, err := tea.NewProgram(NewFinderModel(ctx, cache, source, schema), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
