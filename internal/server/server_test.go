package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsync/sheetcal/internal/logging"
)

func TestNewMetricsServerDefaultsAddr(t *testing.T) {
	s := NewMetricsServer("", promhttp.Handler(), logging.New("error"))
	assert.Equal(t, DefaultAddr, s.Addr())

	s = NewMetricsServer(":9191", promhttp.Handler(), logging.New("error"))
	assert.Equal(t, ":9191", s.Addr())
}

func TestHealthEndpoint(t *testing.T) {
	s := NewMetricsServer(":0", promhttp.Handler(), logging.New("error"))

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewMetricsServer(":0", promhttp.Handler(), logging.New("error"))

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestShutdownWithoutStart(t *testing.T) {
	s := NewMetricsServer(":0", promhttp.Handler(), logging.New("error"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
}
