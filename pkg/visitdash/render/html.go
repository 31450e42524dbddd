package render

import (
	"embed"
	"errors"
	"html/template"
	"io"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/query"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"isPrompt":  func(s query.State) bool { return s == query.StatePrompt },
	"isEmpty":   func(s query.State) bool { return s == query.StateEmpty },
	"isMatches": func(s query.State) bool { return s == query.StateMatches },
	"chosen": func(list []string, s string) bool {
		return contains(list, s)
	},
}).ParseFS(templateFS, "templates/*.html"))

// chartBlock is a chart with its rendered SVG, or the reason it has none.
type chartBlock struct {
	Title string
	SVG   template.HTML
	Note  string
}

func chartBlocks(charts []models.Chart) []chartBlock {
	blocks := make([]chartBlock, 0, len(charts))
	for _, c := range charts {
		b := chartBlock{Title: c.Title}
		svg, err := SVG(c)
		switch {
		case errors.Is(err, ErrNoData):
			b.Note = "No data for the current filters."
		case err != nil:
			b.Note = "Chart unavailable: " + err.Error()
		default:
			b.SVG = template.HTML(svg)
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// WriteVisits renders the visits dashboard page.
func WriteVisits(w io.Writer, page VisitsPage) error {
	return templates.ExecuteTemplate(w, "visits.html", struct {
		VisitsPage
		ChartBlocks []chartBlock
	}{page, chartBlocks(page.Charts)})
}

// WriteFinder renders the address finder page.
func WriteFinder(w io.Writer, page FinderPage) error {
	return templates.ExecuteTemplate(w, "finder.html", page)
}
