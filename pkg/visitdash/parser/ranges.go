package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a cell range reference such as "A1:H500",
// "$A$1:$H$500" or "'Sheet 1'!A1:H500". The sheet qualifier, if any, is
// ignored.
func ParseRange(ref string) (*models.CellRange, error) {
	rangeStr := strings.TrimSpace(ref)

	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}

	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q: expected <start>:<end>", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
