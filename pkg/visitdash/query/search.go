package query

import (
	"sort"
	"strings"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

// State tells the presenter which of the three search outcomes to show.
type State int

const (
	// StatePrompt means no query was entered; nothing is filtered.
	StatePrompt State = iota
	// StateEmpty means the query matched no row.
	StateEmpty
	// StateMatches means at least one row matched.
	StateMatches
)

func (s State) String() string {
	switch s {
	case StatePrompt:
		return "prompt"
	case StateEmpty:
		return "empty"
	default:
		return "matches"
	}
}

// Result is the outcome of a search. Rows is nil in StatePrompt.
type Result struct {
	Query string
	State State
	Rows  *models.Table
}

// Contains keeps rows whose column contains q, ignoring case. Missing values
// never match. An absent column matches nothing.
func Contains(t *models.Table, column, q string) *models.Table {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return t.Where(func(models.Row) bool { return false })
	}
	m := newMatcher(q)
	return t.Where(func(r models.Row) bool {
		v := r[idx]
		return !v.IsMissing() && m.match(v.Text())
	})
}

// ContainsAny keeps rows where q appears, ignoring case, in the text of at
// least one column.
func ContainsAny(t *models.Table, q string) *models.Table {
	m := newMatcher(q)
	return t.Where(func(r models.Row) bool {
		for _, v := range r {
			if !v.IsMissing() && m.match(v.Text()) {
				return true
			}
		}
		return false
	})
}

// Search runs Contains on column and classifies the outcome. A blank query,
// empty or only whitespace, yields StatePrompt without filtering.
func Search(t *models.Table, column, q string) Result {
	if strings.TrimSpace(q) == "" {
		return Result{Query: q, State: StatePrompt}
	}
	return classify(q, Contains(t, column, q))
}

// SearchAll runs ContainsAny and classifies the outcome. A blank query,
// empty or only whitespace, yields StatePrompt without filtering.
func SearchAll(t *models.Table, q string) Result {
	if strings.TrimSpace(q) == "" {
		return Result{Query: q, State: StatePrompt}
	}
	return classify(q, ContainsAny(t, q))
}

func classify(q string, rows *models.Table) Result {
	if rows.IsEmpty() {
		return Result{Query: q, State: StateEmpty, Rows: rows}
	}
	return Result{Query: q, State: StateMatches, Rows: rows}
}

// SortDesc returns t ordered by column, newest or largest first. Missing
// values sort last and ties keep their original order.
func SortDesc(t *models.Table, column string) *models.Table {
	idx := t.ColumnIndex(column)
	positions := make([]int, t.Len())
	for i := range positions {
		positions[i] = i
	}
	if idx < 0 {
		return t.Take(positions)
	}
	sort.SliceStable(positions, func(a, b int) bool {
		va, vb := t.Row(positions[a])[idx], t.Row(positions[b])[idx]
		if va.IsMissing() || vb.IsMissing() {
			return !va.IsMissing() && vb.IsMissing()
		}
		return vb.Before(va)
	})
	return t.Take(positions)
}

// Latest restricts t to rows whose column text equals value and returns the
// most recent of them by tsColumn, transposed into label/value fields. It
// reports false when no row has that value.
func Latest(t *models.Table, column, value, tsColumn string) ([]models.Field, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, false
	}
	exact := t.Where(func(r models.Row) bool {
		v := r[idx]
		return !v.IsMissing() && v.Text() == value
	})
	if exact.IsEmpty() {
		return nil, false
	}
	return models.Transpose(SortDesc(exact, tsColumn), 0), true
}
