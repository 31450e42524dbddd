package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "B3", "0042")

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and extract
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, nil)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	if s, ok := rows[0][0].Str(); !ok || s != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0].Text())
	}

	// Check numeric values
	if i, ok := rows[1][0].Int64(); !ok || i != 100 {
		t.Errorf("Expected Int(100), got %v (kind: %v)", rows[1][0].Text(), rows[1][0].Kind())
	}
	if v, ok := rows[1][1].Float64(); !ok || v != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1][1].Text())
	}

	// Strings that look numeric stay strings
	if s, ok := rows[2][1].Str(); !ok || s != "0042" {
		t.Errorf("Expected string '0042', got %v (kind: %v)", rows[2][1].Text(), rows[2][1].Kind())
	}
}

func TestExtractCellsRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "title")
	f.SetCellValue("Sheet1", "B3", "name")
	f.SetCellValue("Sheet1", "C3", "city")
	f.SetCellValue("Sheet1", "B4", "Ana")
	f.SetCellValue("Sheet1", "C4", "Gijón")
	f.SetCellValue("Sheet1", "D4", "outside")

	rows, err := ExtractCells(f, "Sheet1", &models.CellRange{R1: 3, C1: 2, R2: 4, C2: 3})
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if len(rows[1]) != 2 {
		t.Errorf("Expected 2 columns in range, got %d", len(rows[1]))
	}
	if rows[0][0].Text() != "name" || rows[1][1].Text() != "Gijón" {
		t.Errorf("Unexpected range contents: %v %v", rows[0][0].Text(), rows[1][1].Text())
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Int(123)},
		{"123.45", models.Float(123.45)},
		{"-100", models.Int(-100)},
		{"hello", models.String("hello")},
		{"", models.Missing()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if !result.Equal(tt.expected) {
			t.Errorf("parseValue(%q) = %v (kind: %v), expected %v (kind: %v)",
				tt.input, result.Text(), result.Kind(), tt.expected.Text(), tt.expected.Kind())
		}
	}
}

func TestExtractCellsDateFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	dayFmt := "dd/mm/yyyy"
	dayStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dayFmt})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	moneyFmt := "#,##0.00 \"días\""
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	f.SetCellValue("Sheet1", "A1", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	f.SetCellValue("Sheet1", "B1", time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC))
	f.SetCellValue("Sheet1", "C1", 45474)
	f.SetCellStyle("Sheet1", "C1", "C1", dayStyle)
	f.SetCellValue("Sheet1", "D1", 12.5)
	f.SetCellStyle("Sheet1", "D1", "D1", moneyStyle)
	f.SetCellValue("Sheet1", "E1", 45474)

	rows, err := ExtractCells(f, "Sheet1", nil)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	tests := []struct {
		col      int
		kind     models.Kind
		expected string
	}{
		{0, models.KindTime, "2024-07-01"},
		{1, models.KindTime, "2024-06-01 10:30:00"},
		{2, models.KindTime, "2024-07-01"},
		{3, models.KindFloat, "12.5"},
		{4, models.KindInt, "45474"},
	}
	for _, tt := range tests {
		v := rows[0][tt.col]
		if v.Kind() != tt.kind || v.Text() != tt.expected {
			t.Errorf("column %d = %q (kind: %v), expected %q (kind: %v)", tt.col, v.Text(), v.Kind(), tt.expected, tt.kind)
		}
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd hh:mm", true},
		{"[$-409]mmmm d, yyyy;@", true},
		{"h:mm AM/PM", true},
		{"0.00", false},
		{"#,##0 \"días\"", false},
		{"[Red]0.0", false},
		{"General", false},
		{"0\\d", false},
	}

	for _, tt := range tests {
		if got := isDateFormatCode(tt.code); got != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, got, tt.expected)
		}
	}
}
