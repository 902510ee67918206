// Package roster provides an append-only, insertion-ordered name registry.
package roster

import "github.com/dshills/roster-go/roster/emit"

// Option is a functional option for configuring a Registry.
//
// Functional options provide a clean, extensible API for registry
// configuration:
//   - Chainable: reg := New(WithName("team"), WithEmitter(emitter))
//   - Self-documenting: Option names clearly describe their purpose
//   - Optional: Only specify the configuration you need
//
// Every option configures observability around the registry; none of them
// changes what AddUser, GetCount, or GetNames do, and none of them can
// fail. New() with no options is always valid.
//
// Example:
//
//	reg := roster.New(
//		roster.WithName("team"),
//		roster.WithEmitter(emit.NewLogEmitter(os.Stdout, false)),
//		roster.WithMetrics(metrics),
//	)
type Option func(*Registry)

// WithName sets the instance label used in emitted events and metric
// label values.
//
// Default: "default". The label distinguishes instances when several
// registries share one emitter or one metrics collector. An empty label
// is replaced by the default so buffered-history queries and clears stay
// unambiguous.
//
// Example:
//
//	reg := roster.New(roster.WithName("signup-page"))
func WithName(name string) Option {
	return func(r *Registry) {
		if name == "" {
			return
		}
		r.name = name
	}
}

// WithEmitter sets the observability event destination.
//
// Default: nil (no events are emitted). The registry emits
// "registry_created" on construction and "user_added" on every append.
// Reads never emit.
//
// Example:
//
//	// Log events to stdout in text format
//	reg := roster.New(roster.WithEmitter(emit.NewLogEmitter(os.Stdout, false)))
//
//	// Capture events in memory for inspection
//	buffered := emit.NewBufferedEmitter()
//	reg := roster.New(roster.WithEmitter(buffered))
func WithEmitter(emitter emit.Emitter) Option {
	return func(r *Registry) {
		r.emitter = emitter
	}
}

// WithMetrics enables Prometheus metrics collection.
//
// Metrics enable production monitoring with 3 key metrics:
//   - names_added_total: Cumulative appends
//   - names_held: Current count
//   - name_length_bytes: Name size distribution
//
// All metrics are automatically updated on every append. Reads record
// nothing.
//
// Example:
//
//	registry := prometheus.NewRegistry()
//	metrics := roster.NewPrometheusMetrics(registry)
//	reg := roster.New(
//	    roster.WithName("team"),
//	    roster.WithMetrics(metrics),
//	)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
func WithMetrics(metrics *PrometheusMetrics) Option {
	return func(r *Registry) {
		r.metrics = metrics
	}
}
