package parser

import (
	"strings"
	"time"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order for textual dates. Slash dates are day first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"2-1-2006 15:04:05",
	"2-1-2006",
}

// ParseDate converts v to a Time value. Numbers are read as Excel serial
// dates (1900 system); strings are matched against dateLayouts. Anything that
// cannot be converted becomes the missing marker.
func ParseDate(v models.Value) models.Value {
	switch v.Kind() {
	case models.KindTime:
		return v
	case models.KindInt, models.KindFloat:
		serial, _ := v.Float64()
		if serial <= 0 {
			return models.Missing()
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return models.Missing()
		}
		return models.Time(t)
	case models.KindString:
		s, _ := v.Str()
		s = strings.TrimSpace(s)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return models.Time(t)
			}
		}
	}
	return models.Missing()
}

// NormalizeDates returns a table in which every candidate column present in
// t holds Time values or the missing marker. Absent candidates are ignored
// and t itself is not modified.
func NormalizeDates(t *models.Table, columns []string) *models.Table {
	for _, c := range columns {
		if t.HasColumn(c) {
			t = t.WithColumn(c, ParseDate)
		}
	}
	return t
}
