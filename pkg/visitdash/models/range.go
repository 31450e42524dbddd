package models

// CellRange represents cell coordinate bounds within a sheet.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `yaml:"c2"`
}

// ContainsRow reports whether the 1-based row r lies within the range.
func (a CellRange) ContainsRow(r int) bool {
	return r >= a.R1 && r <= a.R2
}

// ContainsCol reports whether the 1-based column c lies within the range.
func (a CellRange) ContainsCol(c int) bool {
	return c >= a.C1 && c <= a.C2
}
