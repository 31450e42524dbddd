package parser

import (
	"fmt"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
)

// BuildTable turns a cell matrix into a record table. The first non-empty row
// inside the data bounds is the header; later rows with no values are
// skipped. Blank header cells are named "Unnamed: N", N being the zero-based
// column position in the sheet, and repeated names get ".1", ".2" suffixes.
func BuildTable(cells [][]models.Value) *models.Table {
	minRow, maxRow, minCol, maxCol := findDataBounds(cells)
	if minRow < 0 {
		return models.Empty()
	}

	width := maxCol - minCol + 1
	header := headerNames(sliceRow(cells[minRow], minCol, width), minCol)

	var rows []models.Row
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := sliceRow(cells[rowIdx], minCol, width)
		if isBlank(row) {
			continue
		}
		rows = append(rows, row)
	}

	return models.NewTable(header, rows)
}

// findDataBounds finds the bounding box of non-missing cells.
func findDataBounds(cells [][]models.Value) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range cells {
		for colIdx, cell := range row {
			if cell.IsMissing() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// sliceRow copies width cells starting at from, padding short rows.
func sliceRow(row []models.Value, from, width int) models.Row {
	out := make(models.Row, width)
	for i := 0; i < width; i++ {
		if j := from + i; j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

func isBlank(row models.Row) bool {
	for _, v := range row {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}

// headerNames derives unique column names from the header cells. Blank
// cells are numbered by sheet column, so offset is the position of the first
// header cell.
func headerNames(cells models.Row, offset int) []string {
	names := make([]string, len(cells))
	used := make(map[string]bool, len(cells))
	for i, c := range cells {
		name := c.Text()
		if c.IsMissing() || name == "" {
			name = fmt.Sprintf("Unnamed: %d", offset+i)
		}
		if used[name] {
			base := name
			for n := 1; used[name]; n++ {
				name = fmt.Sprintf("%s.%d", base, n)
			}
		}
		used[name] = true
		names[i] = name
	}
	return names
}
