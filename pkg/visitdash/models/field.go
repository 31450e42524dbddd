package models

// Field is one label/value pair of a transposed record.
type Field struct {
	Label string
	Value Value
}

// Transpose turns row i of t into label/value pairs in column order.
func Transpose(t *Table, i int) []Field {
	cols := t.columns
	out := make([]Field, len(cols))
	for j, c := range cols {
		out[j] = Field{Label: c, Value: t.rows[i][j]}
	}
	return out
}
