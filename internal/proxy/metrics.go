package proxy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	directionIn  = "in"  // origin -> client
	directionOut = "out" // client -> origin
)

var (
	connectionsTotal      = promauto.NewCounterVec(prometheus.CounterOpts{Name: "strait_connections_total", Help: "Connections that passed parsing, by mode"}, []string{"mode"})
	activeConnections     = promauto.NewGauge(prometheus.GaugeOpts{Name: "strait_active_connections", Help: "Connections currently being handled"})
	connectionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{Name: "strait_connection_errors_total", Help: "Per-connection failures by kind"}, []string{"kind"})
	relayBytesTotal       = promauto.NewCounterVec(prometheus.CounterOpts{Name: "strait_relay_bytes_total", Help: "Bytes relayed by direction"}, []string{"direction"})
	relayDurationSeconds  = promauto.NewHistogram(prometheus.HistogramOpts{Name: "strait_relay_duration_seconds", Help: "Relay lifetime seconds", Buckets: prometheus.ExponentialBuckets(0.01, 2, 16)})
)
