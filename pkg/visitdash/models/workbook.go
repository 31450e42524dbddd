package models

// Workbook is the ordered set of sheets read from one source.
type Workbook struct {
	// BookName is the file name or URL the sheets were read from.
	BookName string
	// Sheets lists sheets in workbook order.
	Sheets []Sheet
}

// Rows returns the total number of records across all sheets.
func (w *Workbook) Rows() int {
	n := 0
	for _, s := range w.Sheets {
		n += s.Table.Len()
	}
	return n
}
