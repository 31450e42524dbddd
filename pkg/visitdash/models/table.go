package models

// Row is one record, aligned with the columns of its table.
type Row []Value

// Table is an ordered set of rows over named columns.
// A Table is immutable once built: derived tables share row storage and
// nothing writes through a Row obtained from a Table.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewTable builds a table. Rows shorter than the column list are padded with
// the missing marker; longer rows are truncated.
func NewTable(columns []string, rows []Row) *Table {
	cols := append([]string(nil), columns...)
	out := make([]Row, len(rows))
	for i, r := range rows {
		switch {
		case len(r) == len(cols):
			out[i] = r
		case len(r) > len(cols):
			out[i] = r[:len(cols):len(cols)]
		default:
			padded := make(Row, len(cols))
			copy(padded, r)
			out[i] = padded
		}
	}
	return newTable(cols, out)
}

// Empty returns a table with no columns and no rows.
func Empty() *Table { return newTable(nil, nil) }

func newTable(columns []string, rows []Row) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return &Table{columns: columns, index: idx, rows: rows}
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool { return len(t.rows) == 0 }

// Row returns row i. Callers must not modify it.
func (t *Table) Row(i int) Row { return t.rows[i] }

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Value returns the cell at row i in the named column, or the missing marker
// when the column does not exist.
func (t *Table) Value(i int, column string) Value {
	c, ok := t.index[column]
	if !ok {
		return Missing()
	}
	return t.rows[i][c]
}

// Where returns a table holding the rows for which keep returns true, in
// their original order.
func (t *Table) Where(keep func(Row) bool) *Table {
	var rows []Row
	for _, r := range t.rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return &Table{columns: t.columns, index: t.index, rows: rows}
}

// Take returns a table holding the rows at the given positions.
func (t *Table) Take(positions []int) *Table {
	rows := make([]Row, len(positions))
	for i, p := range positions {
		rows[i] = t.rows[p]
	}
	return &Table{columns: t.columns, index: t.index, rows: rows}
}

// Select projects the table onto the named columns. Unknown names are
// ignored. The projection copies row data.
func (t *Table) Select(columns []string) *Table {
	var cols []string
	var src []int
	for _, c := range columns {
		if i, ok := t.index[c]; ok {
			cols = append(cols, c)
			src = append(src, i)
		}
	}
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		nr := make(Row, len(src))
		for j, s := range src {
			nr[j] = r[s]
		}
		rows[i] = nr
	}
	return newTable(cols, rows)
}

// WithColumn returns a table whose named column holds the values produced by
// fn. An absent column is appended. The receiver is left untouched.
func (t *Table) WithColumn(name string, fn func(Value) Value) *Table {
	cols := t.columns
	c, ok := t.index[name]
	if !ok {
		cols = append(append([]string(nil), t.columns...), name)
		c = len(cols) - 1
	}
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		nr := make(Row, len(cols))
		copy(nr, r)
		nr[c] = fn(nr[c])
		rows[i] = nr
	}
	if ok {
		return &Table{columns: t.columns, index: t.index, rows: rows}
	}
	return newTable(cols, rows)
}

// Concat unions tables. Columns appear in first-appearance order across the
// inputs, every input row appears exactly once in input order, and columns
// absent from an input are filled with the missing marker.
func Concat(tables ...*Table) *Table {
	var cols []string
	seen := make(map[string]bool)
	total := 0
	for _, t := range tables {
		if t == nil {
			continue
		}
		total += len(t.rows)
		for _, c := range t.columns {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	out := newTable(cols, make([]Row, 0, total))
	for _, t := range tables {
		if t == nil {
			continue
		}
		mapping := make([]int, len(t.columns))
		for i, c := range t.columns {
			mapping[i] = out.index[c]
		}
		for _, r := range t.rows {
			nr := make(Row, len(cols))
			for i, v := range r {
				nr[mapping[i]] = v
			}
			out.rows = append(out.rows, nr)
		}
	}
	return out
}
