// Package api provides the HTTP/SSE server: the four event routes
// (/drain, /older, /previous, /live), the static web UI mount, and the
// operational /healthz and /metrics endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vamsi200/drashta/internal/hub"
	"github.com/vamsi200/drashta/internal/query"
)

// DefaultQueryTimeout bounds a single historical query's wall-clock time,
// independent of journal.Reader's own walk-time ceiling.
const DefaultQueryTimeout = 30 * time.Second

// DefaultMaxLimit is the hard ceiling on the `limit` query parameter when no
// WithMaxLimit option overrides it.
const DefaultMaxLimit = 5000

// Server is the HTTP/SSE front end over a query.Engine and hub.Hub.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux

	engine *query.Engine
	hub    *hub.Hub

	rateLimiter  *RateLimiter
	assetsDir    string
	queryTimeout time.Duration
	maxLimit     int

	alive func() bool
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithRateLimiter installs a rate limiter over the historical query routes.
func WithRateLimiter(rl *RateLimiter) ServerOption {
	return func(s *Server) { s.rateLimiter = rl }
}

// WithAssetsDir mounts the web UI bundle at /app/* from a directory on disk.
// If unset, /app/* is not registered.
func WithAssetsDir(dir string) ServerOption {
	return func(s *Server) { s.assetsDir = dir }
}

// WithQueryTimeout overrides the per-request historical query time budget.
func WithQueryTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

// WithMaxLimit overrides the hard ceiling on the `limit` query parameter.
func WithMaxLimit(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithLivenessCheck wires a liveness probe for /healthz (e.g. "is the
// journal tail goroutine still running"). Defaults to always-alive.
func WithLivenessCheck(alive func() bool) ServerOption {
	return func(s *Server) {
		if alive != nil {
			s.alive = alive
		}
	}
}

// NewServer builds a Server listening on addr, serving engine's historical
// queries and h's live subscriptions.
func NewServer(addr string, engine *query.Engine, h *hub.Hub, opts ...ServerOption) *Server {
	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // disabled: /live and the query routes both stream
			IdleTimeout:  60 * time.Second,
		},
		mux:          mux,
		engine:       engine,
		hub:          h,
		queryTimeout: DefaultQueryTimeout,
		maxLimit:     DefaultMaxLimit,
		alive:        func() bool { return true },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

func (s *Server) wrapQuery(h http.HandlerFunc) http.Handler {
	var handler http.Handler = h
	if s.rateLimiter != nil {
		handler = s.rateLimiter.Middleware(handler)
	}
	return corsMiddleware(handler)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("GET /drain", s.wrapQuery(s.handleDrain))
	s.mux.Handle("GET /older", s.wrapQuery(s.handleOlder))
	s.mux.Handle("GET /previous", s.wrapQuery(s.handlePrevious))
	s.mux.Handle("GET /live", corsMiddleware(http.HandlerFunc(s.handleLive)))

	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	if s.assetsDir != "" {
		s.mux.Handle("GET /app/", newSPAHandler(s.assetsDir))
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !s.alive() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the server's bound address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the server's route mux, for tests that drive it through
// httptest.Server without binding a real port.
func (s *Server) Handler() http.Handler {
	return s.mux
}
