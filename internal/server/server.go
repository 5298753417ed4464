package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultAddr is the default address for the metrics server.
	DefaultAddr = ":9090"

	// DefaultReadHeaderTimeout is the default read-header timeout.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout is the default write timeout.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the default idle timeout.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

const healthStatusOK = "ok"

// HealthResponse is the JSON body returned by the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
}

// MetricsServer serves Prometheus metrics and health probes on a dedicated
// port, isolated from the sync workload.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
	log        *slog.Logger
	startTime  time.Time
}

// NewMetricsServer creates a metrics server listening on addr. The metrics
// handler comes from the caller so the package stays decoupled from the
// registry in use.
func NewMetricsServer(addr string, metrics http.Handler, logger *slog.Logger) *MetricsServer {
	if addr == "" {
		addr = DefaultAddr
	}

	s := &MetricsServer{
		addr:      addr,
		log:       logger,
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics)
	mux.Handle("/healthz", s.healthHandler())

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}
	return s
}

func (s *MetricsServer) healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: healthStatusOK,
			Uptime: time.Since(s.startTime).Truncate(time.Second).String(),
		})
	})
}

// Start starts the server and blocks until it stops. Run it in a goroutine
// for non-blocking operation. A shutdown-triggered close is not an error.
func (s *MetricsServer) Start() error {
	s.log.Info("starting metrics server", slog.String("addr", s.addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down metrics server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *MetricsServer) Addr() string {
	return s.addr
}
