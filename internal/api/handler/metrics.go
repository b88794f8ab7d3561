// internal/api/handler/metrics.go
package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "banktransfer_transfers_total",
		Help: "Transfer requests by outcome.",
	}, []string{"outcome"})

	transferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "banktransfer_transfer_duration_seconds",
		Help:    "Latency of transfer execution.",
		Buckets: prometheus.DefBuckets,
	})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "banktransfer_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})
)
