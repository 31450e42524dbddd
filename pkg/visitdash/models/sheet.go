package models

// Sheet is one tab of a workbook read as a table.
type Sheet struct {
	// Name is the sheet (tab) name as stored in the workbook.
	Name string
	// Table holds the sheet's records. The header row is not included.
	Table *Table
}
