package serve

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	wordsAnalyzed  prometheus.Counter
	grammarErrors  prometheus.Counter
	liveConnection prometheus.Gauge
}

// NewMetrics registers the server collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wordcalc",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wordcalc",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8), // 0.5ms to ~8s
			},
			[]string{"route"},
		),
		wordsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wordcalc",
			Name:      "words_analyzed_total",
			Help:      "Words counted across stats requests",
		}),
		grammarErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wordcalc",
			Name:      "grammar_unavailable_total",
			Help:      "Grammar checks that failed because the service was unavailable",
		}),
		liveConnection: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wordcalc",
			Name:      "live_connections",
			Help:      "Open live stats WebSocket connections",
		}),
	}

	registry.MustRegister(m.requests, m.duration, m.wordsAnalyzed, m.grammarErrors, m.liveConnection)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) observe(route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, http.StatusText(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
