// Package httpapi serves the operational HTTP surface: a health check that
// pings the identity store, and the prometheus metrics endpoint. It runs on
// its own port, separate from the gRPC endpoint, and is not guarded.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/avoronov/usersvc/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger is the slice of the database handle the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	address  string
	db       Pinger
	logger   logging.Logger
	gatherer prometheus.Gatherer
}

func NewServer(address string, db Pinger, l logging.Logger, g prometheus.Gatherer) *Server {
	return &Server{
		address:  address,
		db:       db,
		logger:   l.With("module", "http_server"),
		gatherer: g,
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error(r.Context(), "health check failed", "error", err.Error())
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "database": "down"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "database": "up"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
