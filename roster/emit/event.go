package emit

// Event represents an observability event emitted by registry operations.
//
// Events provide insight into registry activity:
//   - Registry creation
//   - Name appends
//   - Errors surfaced by infrastructure (never by the registry itself)
//
// Events are emitted to an Emitter which can:
//   - Log to stdout/stderr
//   - Send to OpenTelemetry
//   - Store in memory for inspection
//   - Trigger alerts
type Event struct {
	// Registry identifies the registry instance that emitted this event.
	Registry string

	// Seq is the sequential operation number for the registry (1-indexed).
	// For an append it equals the count after the append. Zero for
	// instance-level events (creation).
	Seq int

	// Op is the machine-readable operation name.
	// Common values: "create", "add". Empty for events with no
	// associated operation.
	Op string

	// Msg is a human-readable description of the event.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "name": The appended name
	//   - "name_len": Length of the appended name in bytes
	//   - "count": Number of names held after the operation
	//   - "error": Error details from infrastructure code
	Meta map[string]interface{}
}
