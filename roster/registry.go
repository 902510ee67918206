// Package roster provides an append-only, insertion-ordered name registry.
package roster

import (
	"github.com/dshills/roster-go/roster/emit"
)

// Event messages emitted by registry operations.
const (
	msgRegistryCreated = "registry_created"
	msgUserAdded       = "user_added"
)

// Operation names attached to emitted events.
const (
	opCreate = "create"
	opAdd    = "add"
)

// defaultName is the instance label used when WithName is not provided.
const defaultName = "default"

// Registry is an ordered, append-only collection of user names.
//
// Names are kept exactly as given, in the order they were added:
//   - Duplicates are allowed and counted separately
//   - The empty string is a valid name
//   - No normalization, validation, or de-duplication is performed
//   - Nothing is ever removed; there is no reset
//
// Designed for:
//   - Accumulating names during a single process run
//   - Teaching and testing scenarios with predictable semantics
//   - Embedding in larger systems that layer their own policies on top
//
// Registry is NOT thread-safe. The zero cost of single-threaded use is
// deliberate; embedders sharing one instance across goroutines must provide
// their own synchronization around every method.
//
// Limitations:
//   - Contents are lost when the process terminates
//   - Growth is bounded only by available memory; exhausting it surfaces
//     as the Go runtime's out-of-memory condition
//
// Example:
//
//	reg := roster.New()
//	reg.AddUser("alice")
//	reg.AddUser("bob")
//	reg.AddUser("alice") // duplicates accumulate
//
//	fmt.Println(reg.GetCount()) // 3
//	fmt.Println(reg.GetNames()) // [alice bob alice]
type Registry struct {
	name    string
	names   []string
	emitter emit.Emitter
	metrics *PrometheusMetrics
}

// New creates an empty Registry.
//
// Construction never fails. With no options the registry is fully
// functional: it holds names and answers counts without emitting events
// or recording metrics.
//
// Options:
//   - WithName: instance label used in events and metrics
//   - WithEmitter: observability event destination
//   - WithMetrics: Prometheus collector set
//
// Example:
//
//	// Plain registry
//	reg := roster.New()
//
//	// Instrumented registry
//	reg := roster.New(
//		roster.WithName("team"),
//		roster.WithEmitter(emit.NewLogEmitter(os.Stdout, false)),
//		roster.WithMetrics(metrics),
//	)
func New(opts ...Option) *Registry {
	r := &Registry{
		name:  defaultName,
		names: make([]string, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.emit(emit.Event{
		Registry: r.name,
		Seq:      0,
		Op:       opCreate,
		Msg:      msgRegistryCreated,
	})

	return r
}

// AddUser appends a name to the registry.
//
// Every call succeeds and grows the count by exactly one. The name is
// stored verbatim: empty strings, whitespace, and duplicates of existing
// entries are all accepted without transformation.
//
// When an emitter is configured, a "user_added" event is emitted with the
// name, its byte length, and the resulting count. When metrics are
// configured, the append counter, held gauge, and length histogram update.
func (r *Registry) AddUser(name string) {
	r.names = append(r.names, name)
	count := len(r.names)

	r.emit(emit.Event{
		Registry: r.name,
		Seq:      count,
		Op:       opAdd,
		Msg:      msgUserAdded,
		Meta: map[string]interface{}{
			"name":     name,
			"name_len": len(name),
			"count":    count,
		},
	})

	if r.metrics != nil {
		r.metrics.IncrementNamesAdded(r.name)
		r.metrics.UpdateNamesHeld(r.name, count)
		r.metrics.ObserveNameLength(r.name, len(name))
	}
}

// GetCount returns the number of names currently held.
//
// The count is never negative and always equals the number of AddUser
// calls made on this instance. GetCount has no side effects: it emits no
// events, records no metrics, and never modifies the registry.
func (r *Registry) GetCount() int {
	return len(r.names)
}

// GetNames returns the held names in insertion order.
//
// The returned slice is a copy; modifying it does not affect the registry.
// An empty registry returns an empty (non-nil) slice. Like GetCount, this
// is a pure read with no side effects.
//
// Example:
//
//	reg.AddUser("alice")
//	reg.AddUser("bob")
//	for i, name := range reg.GetNames() {
//		fmt.Printf("%d: %s\n", i, name)
//	}
func (r *Registry) GetNames() []string {
	// Return a copy to prevent external modification
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// Name returns the instance label used in events and metrics.
func (r *Registry) Name() string {
	return r.name
}

// emit sends an event when an emitter is configured.
func (r *Registry) emit(event emit.Event) {
	if r.emitter == nil {
		return
	}
	r.emitter.Emit(event)
}
