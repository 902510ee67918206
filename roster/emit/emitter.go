package emit

// Emitter receives and processes observability events from registry operations.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files, syslog
//   - Distributed tracing: OpenTelemetry, Jaeger, Zipkin
//   - Metrics: Prometheus, StatsD
//   - In-memory capture for tests and debugging
//
// Implementations should be:
//   - Non-blocking: Avoid slowing down registry operations
//   - Thread-safe: A single emitter may be shared by several registries
//     across goroutines even though an individual registry is not
//     synchronized
//   - Resilient: Handle failures gracefully (don't crash the caller)
//
// Common patterns:
//   - Buffering: Collect events and flush in batches
//   - Filtering: Only emit events matching criteria (e.g., errors only)
//   - Multi-emit: Fan out to multiple backends
//   - Sampling: Emit only a percentage of events for high-volume embedders
type Emitter interface {
	// Emit sends an observability event to the configured backend.
	//
	// Implementations should not block the calling operation.
	// If the backend is unavailable or slow, events should be:
	//   - Buffered for later delivery
	//   - Dropped with error logging
	//   - Sent asynchronously
	//
	// Emit should not panic. Errors should be logged internally.
	Emit(event Event)
}
