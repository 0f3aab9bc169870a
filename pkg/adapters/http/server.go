package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/aretw0/macexpect/pkg/config"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/aretw0/macexpect/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps POSTed model documents.
const maxBodyBytes = 1 << 16

// Server exposes an Analyzer over HTTP.
type Server struct {
	Analyzer ports.Analyzer
	Logger   *slog.Logger
}

// NewHandler creates the HTTP handler. Metrics from gatherer are served on /metrics
// when it is not nil.
func NewHandler(analyzer ports.Analyzer, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{Analyzer: analyzer, Logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/model", s.GetModel)
		r.Get("/expectation", s.GetExpectation)
		r.Post("/expectation", s.PostExpectation)
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetModel handles GET /v1/model.
func (s *Server) GetModel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.Default())
}

// GetExpectation handles GET /v1/expectation. Query parameters override the
// default model using the configuration keys, e.g. ?listen_cost=20&wake_periods=4,6,12.
// A repeated key is read as a list: ?wake_periods=4&wake_periods=6&wake_periods=12.
func (s *Server) GetExpectation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pairs := make([]string, 0, len(query))
	for key := range query {
		pairs = append(pairs, key+"="+strings.Join(query[key], ","))
	}
	sort.Strings(pairs)

	raw, err := config.ParseOverrides(pairs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.analyze(w, r, raw)
}

// PostExpectation handles POST /v1/expectation with a (partial) JSON model as body.
func (s *Server) PostExpectation(w http.ResponseWriter, r *http.Request) {
	raw := make(map[string]any)
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostExpectation: invalid request body", "error", err)
		return
	}
	s.analyze(w, r, raw)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request, raw map[string]any) {
	model, err := config.Apply(config.Default(), raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := s.Analyzer.Analyze(r.Context(), model)
	if err != nil {
		status := statusFor(err)
		http.Error(w, fmt.Sprintf("Analyze error: %v", err), status)
		if status >= http.StatusInternalServerError {
			s.Logger.Error("Analyze failed", "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidModel):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrHorizonExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
