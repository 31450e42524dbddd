// Package render turns a record table and the current selections into the
// view models of the two dashboards, and renders those views as HTML with
// SVG charts.
package render

// Schema names the columns the visits dashboard reads. Any of them may be
// absent from a given table.
type Schema struct {
	Salesperson string
	Customer    string
	Status      string
	Date        string
	// DefaultColumns is how many leading columns the table shows before the
	// user picks columns.
	DefaultColumns int
}

// DefaultSchema returns the conventional visits column names.
func DefaultSchema() Schema {
	return Schema{
		Salesperson:    "comercial",
		Customer:       "cliente",
		Status:         "estado",
		Date:           "fecha",
		DefaultColumns: 6,
	}
}

// FinderSchema names the columns the address finder reads.
type FinderSchema struct {
	Address   string
	Timestamp string
}

// DefaultFinderSchema returns the column names of the regional workbook.
func DefaultFinderSchema() FinderSchema {
	return FinderSchema{
		Address:   "Dirección",
		Timestamp: "Marca temporal",
	}
}
