package models

// Filter selects rows whose column text equals Value.
type Filter struct {
	Column string
	Value  string
}

// FilterState is the transient selection of one interaction: equality
// filters applied in order, a free-text query and the chosen table columns.
type FilterState struct {
	Filters []Filter
	Query   string
	Columns []string
}

// Selected returns the value chosen for column, or "" when none is set.
func (s FilterState) Selected(column string) string {
	for _, f := range s.Filters {
		if f.Column == column {
			return f.Value
		}
	}
	return ""
}
