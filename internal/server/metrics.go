package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// metrics holds the collectors of one Server. Each server owns its registry
// so tests can build many servers in one process.
type metrics struct {
	registry *prometheus.Registry

	// requests counts HTTP requests.
	// Labels: method, path (route pattern), status
	requests *prometheus.CounterVec

	// duration measures handler latency.
	// Labels: method, path
	duration *prometheus.HistogramVec

	wordsChecked prometheus.Counter
	misspellings prometheus.Counter

	// aiRequests counts assist calls.
	// Labels: task (tone-detect, ai-improve), outcome (ok, error)
	aiRequests *prometheus.CounterVec

	// exports counts export attempts.
	// Labels: format (pdf, docx), outcome (ok, error)
	exports *prometheus.CounterVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spellcheck",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"method", "path", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spellcheck",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method", "path"}),
		wordsChecked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "spellcheck",
			Name:      "words_checked_total",
			Help:      "Total words extracted by /check",
		}),
		misspellings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "spellcheck",
			Name:      "misspellings_total",
			Help:      "Total distinct unknown words reported by /check",
		}),
		aiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spellcheck",
			Name:      "ai_requests_total",
			Help:      "Total AI assist requests by task and outcome",
		}, []string{"task", "outcome"}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spellcheck",
			Name:      "exports_total",
			Help:      "Total export requests by format and outcome",
		}, []string{"format", "outcome"}),
	}
}

// handler serves the registry in the Prometheus exposition format.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *metrics) observeRequest(method, path string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}

// routeLabel returns the matched route without its method, keeping label
// cardinality bounded for unknown paths.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}
	return r.Pattern
}
