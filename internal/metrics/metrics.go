package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's prometheus instruments.
type Metrics struct {
	scansTotal     *prometheus.CounterVec
	scanDuration   prometheus.Histogram
	rateLimited    prometheus.Counter
	lookupFailures *prometheus.CounterVec
}

// New registers the engine metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		scansTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neuralshield",
			Name:      "scans_total",
			Help:      "Completed scans by verdict label.",
		}, []string{"label"}),
		scanDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neuralshield",
			Name:      "scan_duration_seconds",
			Help:      "End-to-end scan latency including external lookups.",
			Buckets:   prometheus.DefBuckets,
		}),
		rateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: "neuralshield",
			Name:      "scans_rate_limited_total",
			Help:      "Scans rejected by the per-session cooldown gate.",
		}),
		lookupFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neuralshield",
			Name:      "lookup_failures_total",
			Help:      "Best-effort external lookups that degraded to unavailable or timed out.",
		}, []string{"detector"}),
	}
}

// ObserveScan records one completed scan.
func (m *Metrics) ObserveScan(label string, d time.Duration) {
	m.scansTotal.WithLabelValues(label).Inc()
	m.scanDuration.Observe(d.Seconds())
}

// IncRateLimited records a cooldown rejection.
func (m *Metrics) IncRateLimited() {
	m.rateLimited.Inc()
}

// IncLookupFailure records a degraded external lookup.
func (m *Metrics) IncLookupFailure(detector string) {
	m.lookupFailures.WithLabelValues(detector).Inc()
}
