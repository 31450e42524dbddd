// Package visitdash loads sales-visit spreadsheets into record tables and
// keeps them in a process-wide cache for the dashboards.
package visitdash

import (
	"net/http"

	"go.uber.org/zap"
)

// DefaultDateColumns are the columns coerced to dates when present.
var DefaultDateColumns = []string{"fecha", "fecha_visita", "fecha_creacion"}

// Source identifies where a record table is read from. Exactly one of URL
// and Path is expected to be set; URL wins when both are.
type Source struct {
	// URL is a remote workbook export address fetched with HTTP GET.
	URL string
	// Path is a local xlsx or csv file, optionally compressed.
	Path string
}

// String returns the URL or path.
func (s Source) String() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Path
}

// IsRemote reports whether the source is fetched over HTTP.
func (s Source) IsRemote() bool { return s.URL != "" }

// Options configures loading.
type Options struct {
	// SheetColumn, when set, makes the loader read every sheet and record
	// each row's upper-cased sheet name in this column.
	SheetColumn string
	// Sheet names the sheet to read in single-sheet mode. Empty means the
	// first sheet.
	Sheet string
	// Range restricts reading to a cell range such as "A1:H500".
	Range string
	// DateColumns are coerced to dates when present in the table.
	DateColumns []string
	// HTTPClient fetches remote sources. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger receives load diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns single-sheet options with the default date columns.
func DefaultOptions() Options {
	return Options{
		DateColumns: DefaultDateColumns,
	}
}

// ShouldReadAllSheets returns whether every sheet is read and tagged.
func (o Options) ShouldReadAllSheets() bool {
	return o.SheetColumn != ""
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return http.DefaultClient
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
