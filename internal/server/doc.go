// Package server exposes the daemon's operational HTTP surface: Prometheus
// metrics and health probes on a dedicated listener, separate from any
// application traffic.
package server
