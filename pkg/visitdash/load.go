package visitdash

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/parser"
	"go.uber.org/zap"
)

// Load reads src into a record table. In multi-sheet mode every sheet is
// tagged with its upper-cased name and all sheets are unioned; date columns
// are then normalized.
//
// On failure Load returns an empty, non-nil table together with an error that
// either satisfies IsUnavailable or is a *LoadError.
func Load(ctx context.Context, src Source, opts Options) (*models.Table, error) {
	log := opts.logger().With(zap.String("source", src.String()))
	start := time.Now()

	wb, err := readSource(ctx, src, opts)
	if err != nil {
		log.Warn("Load failed", zap.Error(err))
		return models.Empty(), err
	}

	table := unify(wb, opts)
	table = parser.NormalizeDates(table, opts.DateColumns)

	log.Info("Loaded records",
		zap.Int("sheets", len(wb.Sheets)),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns())),
		zap.Duration("took", time.Since(start)))
	return table, nil
}

// unify merges the workbook's sheets into one table.
func unify(wb *models.Workbook, opts Options) *models.Table {
	if !opts.ShouldReadAllSheets() {
		if len(wb.Sheets) == 0 {
			return models.Empty()
		}
		return wb.Sheets[0].Table
	}

	tables := make([]*models.Table, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		tag := models.String(strings.ToUpper(sheet.Name))
		tables = append(tables, sheet.Table.WithColumn(opts.SheetColumn, func(models.Value) models.Value {
			return tag
		}))
	}
	return models.Concat(tables...)
}

func readSource(ctx context.Context, src Source, opts Options) (*models.Workbook, error) {
	readOpts := parser.ReadOptions{
		AllSheets: opts.ShouldReadAllSheets(),
		Sheet:     opts.Sheet,
	}
	if opts.Range != "" {
		rng, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, NewLoadError(src.String(), err)
		}
		readOpts.Range = rng
	}

	switch {
	case src.URL != "":
		return readRemote(ctx, src.URL, opts.httpClient(), readOpts)
	case src.Path != "":
		return readLocal(src.Path, readOpts)
	default:
		return nil, NewLoadError("", errors.New("no source configured"))
	}
}

func readRemote(ctx context.Context, rawURL string, client *http.Client, readOpts parser.ReadOptions) (*models.Workbook, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, NewLoadError(rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		if isUnreachable(err) {
			return nil, unavailable(rawURL, err)
		}
		return nil, NewLoadError(rawURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, unavailable(rawURL, fmt.Errorf("HTTP %s", resp.Status))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, NewLoadError(rawURL, fmt.Errorf("unexpected HTTP status %s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewLoadError(rawURL, err)
	}

	var wb *models.Workbook
	if remoteIsCSV(rawURL) {
		wb, err = parser.ReadCSV(bytes.NewReader(data), rawURL)
	} else {
		wb, err = parser.ReadXLSX(bytes.NewReader(data), rawURL, readOpts)
	}
	if err != nil {
		return nil, NewLoadError(rawURL, err)
	}
	return wb, nil
}

func readLocal(path string, readOpts parser.ReadOptions) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, unavailable(path, err)
		}
		return nil, NewLoadError(path, err)
	}
	defer f.Close()

	compression, inner := parser.DetectCompression(path)
	r, closeFn, err := parser.Decompress(f, compression)
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	defer closeFn()

	var wb *models.Workbook
	if strings.EqualFold(filepath.Ext(inner), ".csv") {
		wb, err = parser.ReadCSV(r, inner)
	} else {
		wb, err = parser.ReadXLSX(r, filepath.Base(inner), readOpts)
	}
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	return wb, nil
}

// isUnreachable reports whether a transport error means the host could not be
// reached at all, as opposed to a failure mid-exchange.
func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return false
}

// remoteIsCSV reports whether a remote export address asks for CSV, either by
// extension or by a format=csv query parameter.
func remoteIsCSV(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if strings.EqualFold(filepath.Ext(u.Path), ".csv") {
		return true
	}
	return strings.EqualFold(u.Query().Get("format"), "csv")
}
