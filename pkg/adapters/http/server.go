package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/internal/presentation/graph"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds the size of a posted map.
const maxBodyBytes = 8 << 20

// SolveRequest is the JSON form of POST /solve and POST /graph.
// A request with a text/plain body carries the map as the body and the query
// as URL parameters instead.
type SolveRequest struct {
	Map   string        `json:"map"`
	Query *domain.Query `json:"query,omitempty"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server answers map queries over HTTP.
type Server struct {
	Solver   ports.MapSolver
	Parser   *compiler.Parser
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
	Version  string
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer exposes the gatherer's metrics on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithVersion is reported by GET /healthz.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = strings.TrimSpace(v)
	}
}

// NewHandler creates the HTTP handler for a solver.
func NewHandler(solver ports.MapSolver, opts ...Option) http.Handler {
	server := &Server{
		Solver: solver,
		Parser: compiler.NewParser(),
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Post("/solve", server.Solve)
	r.Post("/graph", server.Graph)
	r.Get("/healthz", server.Health)
	if server.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Solve handles the POST /solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	m, q, err := s.decode(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	report, err := s.Solver.SolveMap(r.Context(), m, q)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.Logger.Error("Solve response encode failed", "error", err)
	}
}

// Graph handles the POST /graph request with a Mermaid flowchart.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	m, q, err := s.decode(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(m, q, nil))
}

// Health handles the GET /healthz request.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if s.Version != "" {
		resp["version"] = s.Version
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*domain.Map, domain.Query, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.Query{}, badRequest(fmt.Errorf("read body: %w", err))
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req SolveRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, domain.Query{}, badRequest(fmt.Errorf("invalid request body: %w", err))
		}
		q := domain.DefaultQuery()
		if req.Query != nil {
			q = *req.Query
		}
		m, err := s.Parser.ParseString(req.Map)
		return m, q, err
	}

	m, err := s.Parser.Parse(body)
	return m, queryFromURL(r), err
}

// queryFromURL reads start, goal, start_suffix and goal_suffix.
// Without any of them the default query applies.
func queryFromURL(r *http.Request) domain.Query {
	v := r.URL.Query()
	keys := []string{"start", "goal", "start_suffix", "goal_suffix"}
	for _, k := range keys {
		if v.Has(k) {
			return domain.Query{
				Start:       v.Get("start"),
				Goal:        v.Get("goal"),
				StartSuffix: v.Get("start_suffix"),
				GoalSuffix:  v.Get("goal_suffix"),
			}
		}
	}
	return domain.DefaultQuery()
}

type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &requestError{err: err}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var (
		reqErr     *requestError
		parseErr   *domain.ParseError
		instrErr   *domain.InvalidInstructionError
		missing    *domain.MissingNodeError
		duplicate  *domain.DuplicateNodeError
		overflow   *domain.OverflowError
		unboundErr *domain.NonTerminatingWalkError
	)
	switch {
	case errors.As(err, &reqErr), errors.As(err, &parseErr), errors.As(err, &instrErr),
		errors.Is(err, domain.ErrEmptyInstructionSequence):
		return http.StatusBadRequest
	case errors.As(err, &missing), errors.As(err, &duplicate), errors.As(err, &unboundErr),
		errors.As(err, &overflow), errors.Is(err, domain.ErrNoStartNodes):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	} else {
		s.Logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}
