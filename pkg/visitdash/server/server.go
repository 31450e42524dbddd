// Package server serves both dashboards as HTML pages. Every request is one
// render pass over the cached tables.
package server

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/visitdash/pkg/visitdash"
	"github.com/ukaji3/visitdash/pkg/visitdash/models"
	"github.com/ukaji3/visitdash/pkg/visitdash/render"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-Id"

// Dashboard is one cached source together with how to present it.
type Dashboard struct {
	Cache  *visitdash.Cache
	Source string
}

// Server renders the visits dashboard on / and the address finder on
// /finder.
type Server struct {
	visits       Dashboard
	finder       Dashboard
	schema       render.Schema
	finderSchema render.FinderSchema
	logger       *zap.Logger
	mux          *http.ServeMux
}

// New creates a server. A nil logger discards output.
func New(visits, finder Dashboard, schema render.Schema, finderSchema render.FinderSchema, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		visits:       visits,
		finder:       finder,
		schema:       schema,
		finderSchema: finderSchema,
		logger:       logger,
		mux:          http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleVisits)
	s.mux.HandleFunc("/finder", s.handleFinder)
	return s
}

// ServeHTTP assigns a request id, dispatches and logs the outcome.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(RequestIDHeader, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	s.mux.ServeHTTP(rec, r)

	s.logger.Info("request",
		zap.String("request_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

func (s *Server) handleVisits(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowed(w, r) {
		return
	}

	t, err := s.visits.Cache.Get(r.Context())
	if err != nil {
		s.logger.Warn("visits unavailable", zap.String("source", s.visits.Source), zap.Error(err))
	}
	page := render.VisitsView(s.visits.Source, t, err, ParseFilterState(r.URL.Query()), s.schema)

	var buf bytes.Buffer
	if err := render.WriteVisits(&buf, page); err != nil {
		s.fail(w, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleFinder(w http.ResponseWriter, r *http.Request) {
	if !allowed(w, r) {
		return
	}

	t, err := s.finder.Cache.Get(r.Context())
	if err != nil {
		s.logger.Warn("finder unavailable", zap.String("source", s.finder.Source), zap.Error(err))
	}
	params := r.URL.Query()
	page := render.FinderView(s.finder.Source, t, err, params.Get("q"), params.Get("address"), s.finderSchema)

	var buf bytes.Buffer
	if err := render.WriteFinder(&buf, page); err != nil {
		s.fail(w, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", zap.Error(err))
	http.Error(w, "failed to render page", http.StatusInternalServerError)
}

// ParseFilterState reads the visits form. Selector values arrive as
// f.<column>; chosen columns as repeated col values. Columns stay nil unless
// the form was submitted (cols_set), so a first visit gets the default
// columns while submitting with nothing chosen shows every column.
func ParseFilterState(params url.Values) models.FilterState {
	var state models.FilterState
	for key, values := range params {
		column, ok := strings.CutPrefix(key, "f.")
		if !ok || column == "" || len(values) == 0 {
			continue
		}
		state.Filters = append(state.Filters, models.Filter{Column: column, Value: values[0]})
	}
	if params.Has("cols_set") {
		state.Columns = append([]string{}, params["col"]...)
	}
	state.Query = params.Get("q")
	return state
}

func allowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
