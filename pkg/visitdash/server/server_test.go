package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/visitdash/pkg/visitdash"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func s(v string) models.Value { return models.String(v) }

func day(y int, m time.Month, d int) models.Value {
	return models.Time(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func visitsTable() *models.Table {
	return models.NewTable(
		[]string{"comercial", "cliente", "fecha", "estado", "notas"},
		[]models.Row{
			{s("Ana"), s("Bar Pepe"), day(2024, 1, 10), s("completada"), s("LOST MARY")},
			{s("Luis"), s("Kiosko Sol"), day(2024, 2, 1), s("pendiente"), models.Missing()},
			{s("Ana"), s("Kiosko Sol"), day(2024, 3, 15), s("completada"), s("sin stock")},
		},
	)
}

func regions() *models.Table {
	return models.NewTable(
		[]string{"Dirección", "Marca temporal", "Provincia_origen"},
		[]models.Row{
			{s("Calle A"), day(2024, 1, 1), s("VALENCIA")},
			{s("Calle A"), day(2024, 6, 1), s("VALENCIA")},
			{s("Calle Alta 5"), day(2024, 2, 2), s("ASTURIAS")},
		},
	)
}

func static(t *models.Table, err error) *visitdash.Cache {
	return visitdash.NewCache(func(context.Context) (*models.Table, error) { return t, err })
}

func newServer(visits, finder *visitdash.Cache, logger *zap.Logger) *Server {
	return New(
		Dashboard{Cache: visits, Source: "visitas.xlsx"},
		Dashboard{Cache: finder, Source: "regiones"},
		render.DefaultSchema(),
		render.DefaultFinderSchema(),
		logger,
	)
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestVisitsPage(t *testing.T) {
	srv := newServer(static(visitsTable(), nil), static(regions(), nil), nil)

	res, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	assert.NotEmpty(t, res.Header.Get(RequestIDHeader))
	assert.Contains(t, body, "Visit history")
	assert.Contains(t, body, "Kiosko Sol")
	assert.Contains(t, body, "<svg")

	_, body = get(t, srv, "/?f.comercial=Luis&q=zzz")
	assert.NotContains(t, body, "Bar Pepe")
	assert.Contains(t, body, "No records match")
}

func TestVisitsPageMissingSource(t *testing.T) {
	missing := fmt.Errorf("%w: visitas.xlsx", visitdash.ErrSourceUnavailable)
	srv := newServer(static(models.Empty(), missing), static(regions(), nil), nil)

	res, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Could not find visitas.xlsx")
	assert.Contains(t, body, "To get started")
}

func TestFinderPage(t *testing.T) {
	srv := newServer(static(visitsTable(), nil), static(regions(), nil), nil)

	_, body := get(t, srv, "/finder")
	assert.Contains(t, body, "Type part of an address")

	_, body = get(t, srv, "/finder?q=calle+a&address="+url.QueryEscape("Calle Alta 5"))
	assert.Contains(t, body, "Showing the latest visit for <strong>Calle Alta 5</strong>")
	assert.Contains(t, body, "ASTURIAS")

	_, body = get(t, srv, "/finder?q=gran+via")
	assert.Contains(t, body, "No addresses match")

	failing := newServer(static(visitsTable(), nil), static(models.Empty(), errors.New("timeout")), nil)
	_, body = get(t, failing, "/finder?q=calle")
	assert.Contains(t, body, "Error loading visits: timeout")
}

func TestRouting(t *testing.T) {
	srv := newServer(static(visitsTable(), nil), static(regions(), nil), nil)

	res, _ := get(t, srv, "/nope")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := newServer(static(visitsTable(), nil), static(regions(), nil), zap.New(core))

	res, _ := get(t, srv, "/finder?q=calle")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/finder", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, res.Header.Get(RequestIDHeader), fields["request_id"])
}

func TestCacheRetriesAfterFailure(t *testing.T) {
	calls := 0
	cache := visitdash.NewCache(func(context.Context) (*models.Table, error) {
		calls++
		if calls == 1 {
			return models.Empty(), errors.New("temporary")
		}
		return visitsTable(), nil
	})
	srv := newServer(cache, static(regions(), nil), nil)

	_, body := get(t, srv, "/")
	assert.Contains(t, body, "temporary")
	_, body = get(t, srv, "/")
	assert.Contains(t, body, "Visit history")
	_, _ = get(t, srv, "/")
	assert.Equal(t, 2, calls)
}

func TestParseFilterState(t *testing.T) {
	state := ParseFilterState(url.Values{
		"f.comercial": {"Ana"},
		"f.":          {"x"},
		"q":           {"stock"},
	})
	assert.Equal(t, []models.Filter{{Column: "comercial", Value: "Ana"}}, state.Filters)
	assert.Equal(t, "stock", state.Query)
	assert.Nil(t, state.Columns)

	submitted := ParseFilterState(url.Values{"cols_set": {"1"}})
	require.NotNil(t, submitted.Columns)
	assert.Empty(t, submitted.Columns)

	chosen := ParseFilterState(url.Values{"cols_set": {"1"}, "col": {"cliente", "fecha"}})
	assert.Equal(t, []string{"cliente", "fecha"}, chosen.Columns)
}
