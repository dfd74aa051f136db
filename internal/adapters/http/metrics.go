package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's instrumentation. Each server owns its own
// registry so several instances (and tests) can coexist in one process.
type metrics struct {
	registry        *prometheus.Registry
	simulations     *prometheus.CounterVec
	scenarioRuns    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "simulator_simulations_total",
			Help: "Completed simulations by final status.",
		}, []string{"status"}),
		scenarioRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "simulator_scenario_runs_total",
			Help: "Replayed validation scenarios by outcome.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "simulator_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.registry.MustRegister(m.simulations, m.scenarioRuns, m.requestDuration)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observe wraps a handler and records its latency under the given route label.
func (m *metrics) observe(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) recordSimulation(status string) {
	m.simulations.WithLabelValues(status).Inc()
}

func (m *metrics) recordScenarioRun(passed bool) {
	result := "fail"
	if passed {
		result = "pass"
	}
	m.scenarioRuns.WithLabelValues(result).Inc()
}
