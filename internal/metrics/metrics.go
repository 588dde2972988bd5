// Package metrics holds the Prometheus collectors of the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the request collectors.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idn_area_http_requests_total",
			Help: "Total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		Latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idn_area_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Observe records one finished request. route is the matched route
// template, not the raw path.
func (m *Metrics) Observe(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.Requests.WithLabelValues(method, route, code).Inc()
	m.Latency.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}
