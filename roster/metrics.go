// Package roster provides an append-only, insertion-ordered name registry.
package roster

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics provides Prometheus-compatible metrics collection for
// registry activity in production environments.
//
// Metrics exposed (all namespaced with "roster_"):
//
// 1. names_added_total (counter): Cumulative number of names appended.
// Labels: registry.
// Use: Track append throughput per registry instance.
//
// 2. names_held (gauge): Number of names currently held.
// Labels: registry.
// Use: Monitor registry growth over time.
//
// 3. name_length_bytes (histogram): Length distribution of appended names.
// Labels: registry.
// Buckets: [1, 2, 4, 8, 16, 32, 64, 128].
// Use: P50/P95/P99 analysis of name sizes.
//
// Usage:
//
//	// Create metrics with custom registry
//	registry := prometheus.NewRegistry()
//	metrics := NewPrometheusMetrics(registry)
//
//	// Integrate with a roster registry
//	reg := New(
//		WithName("team"),
//		WithMetrics(metrics),
//	)
//
//	// Metrics automatically update on every append.
//
//	// Expose via HTTP for Prometheus scraping:
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// Thread-safe: collector updates go through client_golang's own
// synchronization; Enable/Disable/Reset use mutex protection.
type PrometheusMetrics struct {
	// Counter metrics (cumulative totals).
	namesAdded *prometheus.CounterVec

	// Gauge metrics (current value observations).
	namesHeld *prometheus.GaugeVec

	// Histogram metrics (distribution observations).
	nameLength *prometheus.HistogramVec

	// Registry holds all registered metrics.
	registry prometheus.Registerer

	// Mutex protects enabled-state transitions.
	mu sync.RWMutex

	// enabled controls whether metrics are recorded.
	enabled bool
}

// NewPrometheusMetrics creates and registers all registry metrics with the
// provided Prometheus registry.
//
// Parameters:
//   - registry: Prometheus registry to register metrics with (nil falls back
//     to prometheus.DefaultRegisterer).
//
// Returns:
//   - *PrometheusMetrics: Fully initialized metrics collector.
//
// All metrics are registered with namespace "roster" and a "registry" label
// so several registry instances can share one collector set. Histogram
// buckets are sized for typical personal-name lengths (1 to 128 bytes).
//
// Example:
//
//	// Use default global registry
//	metrics := NewPrometheusMetrics(prometheus.DefaultRegisterer)
//
//	// Use custom registry (recommended for isolation)
//	registry := prometheus.NewRegistry()
//	metrics := NewPrometheusMetrics(registry)
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	pm := &PrometheusMetrics{
		registry: registry,
		enabled:  true,
	}

	// 1. names_added_total counter.
	pm.namesAdded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster",
		Name:      "names_added_total",
		Help:      "Cumulative count of names appended to the registry",
	}, []string{"registry"})

	// 2. names_held gauge.
	pm.namesHeld = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "roster",
		Name:      "names_held",
		Help:      "Number of names currently held by the registry",
	}, []string{"registry"})

	// 3. name_length_bytes histogram.
	pm.nameLength = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roster",
		Name:      "name_length_bytes",
		Help:      "Length distribution of appended names in bytes",
		Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
	}, []string{"registry"})

	return pm
}

// IncrementNamesAdded increments the append counter for a registry instance.
//
// This updates the names_added_total counter with the registry label.
// Use this to track cumulative append throughput.
//
// Parameters:
//   - registry: Registry instance label.
func (pm *PrometheusMetrics) IncrementNamesAdded(registry string) {
	if !pm.enabled {
		return
	}

	pm.namesAdded.WithLabelValues(registry).Inc()
}

// UpdateNamesHeld sets the current number of names held by a registry instance.
//
// This updates the names_held gauge. Use this to monitor registry growth
// and alert on unexpectedly large instances.
//
// Parameters:
//   - registry: Registry instance label.
//   - count: Current number of names held.
func (pm *PrometheusMetrics) UpdateNamesHeld(registry string, count int) {
	if !pm.enabled {
		return
	}

	pm.namesHeld.WithLabelValues(registry).Set(float64(count))
}

// ObserveNameLength records the byte length of an appended name.
//
// This updates the name_length_bytes histogram with the registry label.
// Use this to understand the size distribution of stored names.
//
// Parameters:
//   - registry: Registry instance label.
//   - length: Name length in bytes (zero-length names are observed too).
func (pm *PrometheusMetrics) ObserveNameLength(registry string, length int) {
	if !pm.enabled {
		return
	}

	pm.nameLength.WithLabelValues(registry).Observe(float64(length))
}

// Disable temporarily disables metric recording (useful for testing).
func (pm *PrometheusMetrics) Disable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = false
}

// Enable re-enables metric recording after Disable().
func (pm *PrometheusMetrics) Enable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = true
}

// Reset clears the names_held gauge series (useful for testing).
// This does not unregister metrics from the registry.
func (pm *PrometheusMetrics) Reset() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.namesHeld.Reset()
	// Note: Counters cannot be reset in Prometheus (cumulative by design).
	// Histograms also maintain cumulative observations.
}
