package models

// ChartKind is the chart type.
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// Count is the number of rows sharing one category value.
type Count struct {
	Label string
	N     int
}

// Chart is an aggregate chart over one column of the filtered rows.
type Chart struct {
	// Kind is the chart type.
	Kind ChartKind
	// Title is the chart title.
	Title string
	// Column is the column the counts are grouped by.
	Column string
	// XTitle and YTitle label the axes of bar charts.
	XTitle string
	YTitle string
	// Counts is the series, largest first.
	Counts []Count
}

// Total returns the sum of all counts.
func (c Chart) Total() int {
	n := 0
	for _, v := range c.Counts {
		n += v.N
	}
	return n
}

// Max returns the largest count, or 0 for an empty chart.
func (c Chart) Max() int {
	m := 0
	for _, v := range c.Counts {
		if v.N > m {
			m = v.N
		}
	}
	return m
}
