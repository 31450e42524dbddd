package parser

import (
	"strings"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/xuri/excelize/v2"
)

// builtInDateFormats are the number format ids Excel reserves for dates and
// times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// dateStyles remembers which cell styles of a workbook carry a date format.
type dateStyles struct {
	f        *excelize.File
	date1904 bool
	known    map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	d := &dateStyles{f: f, known: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *dateStyles) isDate(styleID int) bool {
	if styleID == 0 {
		return false
	}
	if v, ok := d.known[styleID]; ok {
		return v
	}
	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		isDate = builtInDateFormats[style.NumFmt]
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	d.known[styleID] = isDate
	return isDate
}

// toTime converts a numeric serial to a Time value, leaving v unchanged when
// the serial is out of range.
func (d *dateStyles) toTime(v models.Value) models.Value {
	serial, _ := v.Float64()
	if serial < 0 {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return v
	}
	return models.Time(t)
}

// isDateFormatCode reports whether a custom number format code renders a date
// or time. Quoted literals, escaped characters and bracketed sections such as
// colors or locales are ignored.
func isDateFormatCode(code string) bool {
	// only the positive section decides
	code, _, _ = strings.Cut(code, ";")
	var sb strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return strings.ContainsAny(strings.ToLower(sb.String()), "ymdhs")
}
