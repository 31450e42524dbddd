package render

import (
	"bytes"
	"errors"
	"html"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/query"
	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("chart has no data")

// BarChart counts rows of t per value of column. It reports false when the
// column is absent.
func BarChart(t *models.Table, column, title string) (models.Chart, bool) {
	if !t.HasColumn(column) {
		return models.Chart{}, false
	}
	return models.Chart{
		Kind:   models.ChartBar,
		Title:  title,
		Column: column,
		XTitle: column,
		YTitle: "Visits",
		Counts: query.ValueCounts(t, column),
	}, true
}

// PieChart counts rows of t per value of column. It reports false when the
// column is absent.
func PieChart(t *models.Table, column, title string) (models.Chart, bool) {
	if !t.HasColumn(column) {
		return models.Chart{}, false
	}
	return models.Chart{
		Kind:   models.ChartPie,
		Title:  title,
		Column: column,
		Counts: query.ValueCounts(t, column),
	}, true
}

const (
	chartHeight   = 400
	minChartWidth = 520
	barWidth      = 40
	barSpacing    = 20
)

// SVG renders c as an SVG document. go-chart writes text into the SVG
// verbatim, so the title and labels are escaped here.
func SVG(c models.Chart) ([]byte, error) {
	if len(c.Counts) == 0 || c.Total() == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	switch c.Kind {
	case models.ChartPie:
		values := make([]chart.Value, len(c.Counts))
		for i, v := range c.Counts {
			values[i] = chart.Value{Label: html.EscapeString(v.Label), Value: float64(v.N)}
		}
		graph := chart.PieChart{
			Title:  html.EscapeString(c.Title),
			Width:  minChartWidth,
			Height: chartHeight,
			Values: values,
		}
		if err := graph.Render(chart.SVG, &buf); err != nil {
			return nil, err
		}

	default:
		bars := make([]chart.Value, len(c.Counts))
		for i, v := range c.Counts {
			bars[i] = chart.Value{Label: html.EscapeString(v.Label), Value: float64(v.N)}
		}
		width := len(bars)*(barWidth+barSpacing) + 120
		if width < minChartWidth {
			width = minChartWidth
		}
		graph := chart.BarChart{
			Title: html.EscapeString(c.Title),
			Background: chart.Style{
				Padding: chart.Box{Top: 40},
			},
			Width:      width,
			Height:     chartHeight,
			BarWidth:   barWidth,
			BarSpacing: barSpacing,
			YAxis: chart.YAxis{
				Name:           html.EscapeString(c.YTitle),
				ValueFormatter: chart.IntValueFormatter,
				Range: &chart.ContinuousRange{
					Min: 0,
					Max: float64(c.Max()),
				},
			},
			Bars: bars,
		}
		if err := graph.Render(chart.SVG, &buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
