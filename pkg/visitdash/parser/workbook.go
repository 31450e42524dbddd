package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/xuri/excelize/v2"
)

// ReadOptions selects which part of a workbook is read.
type ReadOptions struct {
	// AllSheets reads every sheet. Otherwise only Sheet (or the first sheet
	// when Sheet is empty) is read.
	AllSheets bool
	// Sheet names the sheet to read when AllSheets is false.
	Sheet string
	// Range restricts reading to a cell range on each sheet.
	Range *models.CellRange
}

// ReadXLSX reads an xlsx workbook from r. bookName is recorded on the result.
func ReadXLSX(r io.Reader, bookName string, opts ReadOptions) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", bookName)
	}

	var selected []string
	switch {
	case opts.AllSheets:
		selected = sheetList
	case opts.Sheet != "":
		idx, err := f.GetSheetIndex(opts.Sheet)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("sheet %q not found in %s", opts.Sheet, bookName)
		}
		selected = []string{opts.Sheet}
	default:
		selected = sheetList[:1]
	}

	wb := &models.Workbook{BookName: bookName}
	for _, sheetName := range selected {
		cells, err := ExtractCells(f, sheetName, opts.Range)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{
			Name:  sheetName,
			Table: BuildTable(cells),
		})
	}

	return wb, nil
}

// ReadCSV reads a comma separated file as a single-sheet workbook. The sheet
// is named after the file without its extension. Cell values are typed the
// same way raw workbook cells are.
func ReadCSV(r io.Reader, bookName string) (*models.Workbook, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var cells [][]models.Value
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]models.Value, len(record))
		for i, field := range record {
			row[i] = parseValue(strings.TrimSpace(field))
		}
		cells = append(cells, row)
	}

	base := filepath.Base(bookName)
	return &models.Workbook{
		BookName: bookName,
		Sheets: []models.Sheet{{
			Name:  strings.TrimSuffix(base, filepath.Ext(base)),
			Table: BuildTable(cells),
		}},
	}, nil
}
