package metrics

import (
	"strconv"
	"time"

	httpClient "github.com/cyphera/momo-disbursement-go/client/http"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector records outbound MoMo API calls as Prometheus metrics
type PrometheusCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

var _ httpClient.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics with reg.
// A nil registerer uses the default Prometheus registry.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "momo",
				Name:      "api_requests_total",
				Help:      "Total number of MoMo API requests",
			},
			[]string{"method", "path", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "momo",
				Name:      "api_request_duration_seconds",
				Help:      "Histogram of MoMo API latency (seconds)",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		requestErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "momo",
				Name:      "api_request_errors_total",
				Help:      "Total number of failed MoMo API requests, including error statuses",
			},
			[]string{"method", "path"},
		),
	}

	for _, collector := range []prometheus.Collector{c.requestsTotal, c.requestDuration, c.requestErrors} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordRequestDuration observes the latency of one request
func (c *PrometheusCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	c.requestDuration.WithLabelValues(method, normalizePath(path)).Observe(duration.Seconds())
}

// RecordRequestCount counts one request by status code
func (c *PrometheusCollector) RecordRequestCount(method, path string, statusCode int) {
	c.requestsTotal.WithLabelValues(method, normalizePath(path), strconv.Itoa(statusCode)).Inc()
}

// RecordRequestError counts one failed request
func (c *PrometheusCollector) RecordRequestError(method, path string) {
	c.requestErrors.WithLabelValues(method, normalizePath(path)).Inc()
}
