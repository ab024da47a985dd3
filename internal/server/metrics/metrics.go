// Package metrics collects and exposes prometheus metrics for the RPC
// surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records per-method request counts (labelled by gRPC status code)
// and request latency.
type Collector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usersvc_rpc_requests_total",
			Help: "RPC requests by full method name and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "usersvc_rpc_latency_seconds",
			Help:    "RPC handling latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.latency)

	return c
}

// RecordRequest counts one finished RPC.
func (c *Collector) RecordRequest(method, code string) {
	c.requests.WithLabelValues(method, code).Inc()
}

// RecordLatency observes the handling duration of one RPC.
func (c *Collector) RecordLatency(d time.Duration) {
	c.latency.Observe(d.Seconds())
}
