package emit

import "sync"

// BufferedEmitter implements Emitter by storing events in memory.
//
// This emitter captures all events and provides query capabilities for
// operation history analysis. Events are organized by registry label for
// efficient retrieval and filtering.
//
// Features:
//   - Thread-safe concurrent access
//   - Query by registry label with optional filtering
//   - Filter by op, message, sequence range
//   - Clear events by registry label or all events
//
// Use cases:
//   - Development and debugging
//   - Testing and validation
//   - Real-time monitoring dashboards
//   - Post-run analysis
//
// Warning: This emitter stores all events in memory. For long-lived
// embedders with high append volume, consider using a different backend
// or clearing history periodically.
//
// Example usage:
//
//	// Create buffered emitter for testing
//	emitter := emit.NewBufferedEmitter()
//	reg := roster.New(roster.WithName("team"), roster.WithEmitter(emitter))
//
//	// Append names
//	reg.AddUser("alice")
//	reg.AddUser("bob")
//
//	// Query operation history
//	allEvents := emitter.GetHistory("team")
//	appends := emitter.GetHistoryWithFilter("team", emit.HistoryFilter{Msg: "user_added"})
//
//	// Clean up
//	emitter.Clear("team")
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]Event // registry label -> events
}

// HistoryFilter specifies criteria for filtering operation history.
//
// All filter fields are optional. When multiple fields are set, they are
// combined with AND logic (all conditions must match).
//
// Fields:
//   - Op: Filter by operation name
//   - Msg: Filter by message type (e.g., "user_added")
//   - MinSeq: Filter events with seq >= MinSeq (nil = no lower bound)
//   - MaxSeq: Filter events with seq <= MaxSeq (nil = no upper bound)
//
// Example usage:
//
//	// Get all appends
//	filter := emit.HistoryFilter{
//		Op:  "add",
//		Msg: "user_added",
//	}
//	appends := emitter.GetHistoryWithFilter("team", filter)
//
//	// Get events from sequence 5-10
//	minSeq, maxSeq := 5, 10
//	filter := emit.HistoryFilter{
//		MinSeq: &minSeq,
//		MaxSeq: &maxSeq,
//	}
//	seqEvents := emitter.GetHistoryWithFilter("team", filter)
type HistoryFilter struct {
	Op     string // Filter by operation name (empty = no filter)
	Msg    string // Filter by message (empty = no filter)
	MinSeq *int   // Minimum sequence number (nil = no filter)
	MaxSeq *int   // Maximum sequence number (nil = no filter)
}

// NewBufferedEmitter creates a new BufferedEmitter.
//
// Returns a BufferedEmitter that stores all events in memory and provides
// query capabilities. Safe for concurrent use.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{
		events: make(map[string][]Event),
	}
}

// Emit stores an event in the buffer.
//
// Events are organized by registry label for efficient retrieval. This
// method is thread-safe and can be called concurrently from multiple
// goroutines.
func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events[event.Registry] = append(b.events[event.Registry], event)
}

// GetHistory retrieves all events for a specific registry label.
//
// Returns events in the order they were emitted. Returns an empty slice
// if no events exist for the given label.
//
// This method is thread-safe and returns a copy of the events to prevent
// concurrent modification issues.
//
// Example:
//
//	events := emitter.GetHistory("team")
//	for _, event := range events {
//		fmt.Printf("[%s] %s: %s\n", event.Registry, event.Op, event.Msg)
//	}
func (b *BufferedEmitter) GetHistory(registry string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[registry]
	if events == nil {
		return []Event{} // Return empty slice instead of nil
	}

	// Return a copy to prevent external modification
	result := make([]Event, len(events))
	copy(result, events)
	return result
}

// GetHistoryWithFilter retrieves filtered events for a specific registry label.
//
// Applies the provided filter criteria to select matching events. All filter
// conditions must match for an event to be included (AND logic).
//
// Returns events in the order they were emitted. Returns an empty slice if
// no events match the filter.
//
// This method is thread-safe and returns a copy of the events.
//
// Example:
//
//	// Get append events only
//	filter := emit.HistoryFilter{Msg: "user_added"}
//	appends := emitter.GetHistoryWithFilter("team", filter)
//
//	// Get events from sequence 10-20
//	minSeq, maxSeq := 10, 20
//	filter := emit.HistoryFilter{
//		MinSeq: &minSeq,
//		MaxSeq: &maxSeq,
//	}
//	seqEvents := emitter.GetHistoryWithFilter("team", filter)
func (b *BufferedEmitter) GetHistoryWithFilter(registry string, filter HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[registry]
	if events == nil {
		return []Event{}
	}

	// If filter is empty, return all events
	if filter.Op == "" && filter.Msg == "" && filter.MinSeq == nil && filter.MaxSeq == nil {
		result := make([]Event, len(events))
		copy(result, events)
		return result
	}

	// Apply filters
	var result []Event
	for _, event := range events {
		if !b.matchesFilter(event, filter) {
			continue
		}
		result = append(result, event)
	}

	if result == nil {
		return []Event{} // Return empty slice instead of nil
	}
	return result
}

// matchesFilter checks if an event matches the filter criteria.
func (b *BufferedEmitter) matchesFilter(event Event, filter HistoryFilter) bool {
	// Filter by Op
	if filter.Op != "" && event.Op != filter.Op {
		return false
	}

	// Filter by Msg
	if filter.Msg != "" && event.Msg != filter.Msg {
		return false
	}

	// Filter by MinSeq
	if filter.MinSeq != nil && event.Seq < *filter.MinSeq {
		return false
	}

	// Filter by MaxSeq
	if filter.MaxSeq != nil && event.Seq > *filter.MaxSeq {
		return false
	}

	return true
}

// Clear removes stored events.
//
// If registry is non-empty, clears only events for that specific label.
// If registry is empty, clears all stored events across all labels.
//
// Clearing event history never touches the registries themselves; the
// names they hold are unaffected.
//
// This method is thread-safe and can be called concurrently.
//
// Example:
//
//	// Clear specific registry
//	emitter.Clear("team")
//
//	// Clear all registries
//	emitter.Clear("")
func (b *BufferedEmitter) Clear(registry string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if registry == "" {
		// Clear all events
		b.events = make(map[string][]Event)
	} else {
		// Clear specific registry
		delete(b.events, registry)
	}
}
