// Package parser reads workbook and CSV sources into record tables.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads the raw, unformatted cell values of a sheet as a typed
// matrix. Numeric cells styled with a date or time number format become Time
// values. When rng is non-nil only cells inside it are returned; positions in
// the matrix are then relative to the range's top-left corner.
func ExtractCells(f *excelize.File, sheetName string, rng *models.CellRange) ([][]models.Value, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	dates := newDateStyles(f)

	var result [][]models.Value
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if rng != nil && !rng.ContainsRow(rowNum) {
			continue
		}

		values := make([]models.Value, 0, len(row))
		for colIdx, cellValue := range row {
			colNum := colIdx + 1
			if rng != nil && !rng.ContainsCol(colNum) {
				continue
			}
			if cellValue == "" {
				values = append(values, models.Missing())
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(colNum, rowNum)
			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				typ = excelize.CellTypeUnset
			}
			v := typedValue(typ, cellValue)
			if v.Kind() == models.KindInt || v.Kind() == models.KindFloat {
				if styleID, err := f.GetCellStyle(sheetName, cellName); err == nil && dates.isDate(styleID) {
					v = dates.toTime(v)
				}
			}
			values = append(values, v)
		}
		result = append(result, values)
	}

	return result, nil
}

// typedValue converts a raw cell string according to the stored cell type.
func typedValue(typ excelize.CellType, raw string) models.Value {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.String(raw)
	case excelize.CellTypeBool:
		switch strings.ToUpper(raw) {
		case "1", "TRUE":
			return models.Bool(true)
		case "0", "FALSE":
			return models.Bool(false)
		}
	}
	return parseValue(raw)
}

// parseValue attempts to parse a string value as a number.
// Returns an Int for integers, a Float for decimals, or the original string.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Missing()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Int(i)
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Float(f)
	}
	return models.String(s)
}
