package query

import (
	"sort"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

// All is the wildcard choice that keeps every row.
const All = "All"

// Equal keeps rows whose value in column has exactly the given text. The All
// sentinel, an empty selection and an absent column leave the table unchanged.
func Equal(t *models.Table, column, value string) *models.Table {
	if value == All || value == "" {
		return t
	}
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return t
	}
	return t.Where(func(r models.Row) bool {
		v := r[idx]
		return !v.IsMissing() && v.Text() == value
	})
}

// Apply combines equality filters with AND, in order.
func Apply(t *models.Table, filters []models.Filter) *models.Table {
	for _, f := range filters {
		t = Equal(t, f.Column, f.Value)
	}
	return t
}

// Choices returns the dropdown options for column: All followed by its
// distinct non-missing values sorted by value. It returns only All when the
// column is absent.
func Choices(t *models.Table, column string) []string {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return []string{All}
	}

	seen := make(map[string]bool)
	var values []models.Value
	for i := 0; i < t.Len(); i++ {
		v := t.Row(i)[idx]
		if v.IsMissing() || seen[v.Text()] {
			continue
		}
		seen[v.Text()] = true
		values = append(values, v)
	}
	sort.SliceStable(values, func(i, j int) bool { return values[i].Before(values[j]) })

	out := make([]string, 0, len(values)+1)
	out = append(out, All)
	for _, v := range values {
		out = append(out, v.Text())
	}
	return out
}

// Distinct returns the distinct non-missing texts of column in order of first
// appearance.
func Distinct(t *models.Table, column string) []string {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for i := 0; i < t.Len(); i++ {
		v := t.Row(i)[idx]
		if v.IsMissing() || seen[v.Text()] {
			continue
		}
		seen[v.Text()] = true
		out = append(out, v.Text())
	}
	return out
}

// CountDistinct returns the number of distinct non-missing values of column.
func CountDistinct(t *models.Table, column string) int {
	return len(Distinct(t, column))
}
