// Package server serves property queries over HTTP as JSON.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/config"
	"github.com/fpawel/eqair/internal/metrics"
	"github.com/jmoiron/sqlx"
	"github.com/powerman/structlog"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	mu      sync.Mutex
	cfg     config.Config
	metrics *metrics.Collector
	db      *sqlx.DB
}

// New returns a server answering with the units and limits of cfg.
// Sweeps are not persisted when db is nil.
func New(cfg config.Config, m *metrics.Collector, db *sqlx.DB) *Server {
	if m == nil {
		m = metrics.NewCollector(cfg.HTTP.MetricsNamespace, nil)
	}
	return &Server{cfg: cfg, metrics: m, db: db}
}

func (s *Server) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig applies a reloaded config. The listen address is not changed.
func (s *Server) SetConfig(c config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = c
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/eval", s.route("/v1/eval", s.handleEval))
	mux.Handle("POST /v1/eval/batch", s.route("/v1/eval/batch", s.handleEvalBatch))
	mux.Handle("GET /v1/properties", s.route("/v1/properties", s.handleProperties))
	mux.Handle("GET /v1/decades", s.route("/v1/decades", s.handleDecades))
	mux.Handle("POST /v1/sweep", s.route("/v1/sweep", s.handleSweep))
	mux.Handle("GET /v1/sweeps", s.route("/v1/sweeps", s.handleListSweeps))
	mux.Handle("GET /v1/sweeps/{id}", s.route("/v1/sweeps/{id}", s.handleGetSweep))
	mux.Handle("DELETE /v1/sweeps/{id}", s.route("/v1/sweeps/{id}", s.handleDeleteSweep))
	mux.Handle("GET /metrics", s.metrics.Handler())
	return recoverPanic(mux)
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	c := s.Config().HTTP
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return merry.Append(err, c.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	c := s.Config().HTTP
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listen", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return merry.Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return merry.Prepend(err, "shutdown")
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return merry.Wrap(err)
	}
	log.Info("stopped")
	return nil
}

func (s *Server) route(name string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer s.metrics.ObserveDuration(name, time.Now())
		h(w, r)
	})
}

var log = structlog.New(structlog.KeyUnit, "http")
