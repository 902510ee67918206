// Package emit provides event emission and observability for registry operations.
package emit

import (
	"testing"
	"time"
)

// TestBufferedEmitter_StoresEvents verifies BufferedEmitter stores emitted events.
func TestBufferedEmitter_StoresEvents(t *testing.T) {
	t.Run("stores single event", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		event := Event{
			Registry: "team",
			Seq:      1,
			Op:       "add",
			Msg:      "user_added",
		}

		emitter.Emit(event)

		history := emitter.GetHistory("team")
		if len(history) != 1 {
			t.Fatalf("expected 1 event, got %d", len(history))
		}
		if history[0].Op != "add" {
			t.Errorf("expected Op = 'add', got %q", history[0].Op)
		}
	})

	t.Run("stores multiple events", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{Registry: "team", Seq: 0, Op: "create", Msg: "registry_created"},
			{Registry: "team", Seq: 1, Op: "add", Msg: "user_added"},
			{Registry: "team", Seq: 2, Op: "add", Msg: "user_added"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		history := emitter.GetHistory("team")
		if len(history) != 3 {
			t.Fatalf("expected 3 events, got %d", len(history))
		}
	})

	t.Run("isolates events by registry label", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{Registry: "team-a", Msg: "event1"})
		emitter.Emit(Event{Registry: "team-b", Msg: "event2"})
		emitter.Emit(Event{Registry: "team-a", Msg: "event3"})

		historyA := emitter.GetHistory("team-a")
		historyB := emitter.GetHistory("team-b")

		if len(historyA) != 2 {
			t.Errorf("expected 2 events for team-a, got %d", len(historyA))
		}
		if len(historyB) != 1 {
			t.Errorf("expected 1 event for team-b, got %d", len(historyB))
		}
	})

	t.Run("returns empty slice for unknown registry", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		history := emitter.GetHistory("unknown-registry")
		if history == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(history) != 0 {
			t.Errorf("expected 0 events, got %d", len(history))
		}
	})

	t.Run("returned history is a copy", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{Registry: "team", Seq: 1, Msg: "user_added"})

		history := emitter.GetHistory("team")
		history[0].Msg = "mutated"

		fresh := emitter.GetHistory("team")
		if fresh[0].Msg != "user_added" {
			t.Errorf("expected stored event to be unchanged, got %q", fresh[0].Msg)
		}
	})
}

// TestBufferedEmitter_GetHistoryWithFilter verifies event filtering.
func TestBufferedEmitter_GetHistoryWithFilter(t *testing.T) {
	t.Run("filters by op", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{Registry: "team", Op: "create", Msg: "registry_created"},
			{Registry: "team", Op: "add", Msg: "user_added"},
			{Registry: "team", Op: "add", Msg: "user_added"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{Op: "add"}
		history := emitter.GetHistoryWithFilter("team", filter)

		if len(history) != 2 {
			t.Fatalf("expected 2 events, got %d", len(history))
		}
		for _, event := range history {
			if event.Op != "add" {
				t.Errorf("expected Op = 'add', got %q", event.Op)
			}
		}
	})

	t.Run("filters by message", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{Registry: "team", Msg: "registry_created"},
			{Registry: "team", Msg: "user_added"},
			{Registry: "team", Msg: "user_added"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{Msg: "user_added"}
		history := emitter.GetHistoryWithFilter("team", filter)

		if len(history) != 2 {
			t.Fatalf("expected 2 events, got %d", len(history))
		}
		for _, event := range history {
			if event.Msg != "user_added" {
				t.Errorf("expected Msg = 'user_added', got %q", event.Msg)
			}
		}
	})

	t.Run("filters by sequence range", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{Registry: "team", Seq: 0, Msg: "event0"},
			{Registry: "team", Seq: 1, Msg: "event1"},
			{Registry: "team", Seq: 2, Msg: "event2"},
			{Registry: "team", Seq: 3, Msg: "event3"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		minSeq := 1
		maxSeq := 2
		filter := HistoryFilter{MinSeq: &minSeq, MaxSeq: &maxSeq}
		history := emitter.GetHistoryWithFilter("team", filter)

		if len(history) != 2 {
			t.Fatalf("expected 2 events, got %d", len(history))
		}
		if history[0].Seq != 1 || history[1].Seq != 2 {
			t.Error("expected sequences 1 and 2")
		}
	})

	t.Run("combines multiple filters", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{Registry: "team", Seq: 1, Op: "add", Msg: "user_added"},
			{Registry: "team", Seq: 1, Op: "create", Msg: "user_added"},
			{Registry: "team", Seq: 2, Op: "add", Msg: "user_added"},
			{Registry: "team", Seq: 1, Op: "add", Msg: "registry_created"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		seq := 1
		filter := HistoryFilter{
			Op:     "add",
			Msg:    "user_added",
			MinSeq: &seq,
			MaxSeq: &seq,
		}
		history := emitter.GetHistoryWithFilter("team", filter)

		if len(history) != 1 {
			t.Fatalf("expected 1 event, got %d", len(history))
		}
		if history[0].Seq != 1 || history[0].Op != "add" || history[0].Msg != "user_added" {
			t.Error("expected event with seq=1, op=add, msg=user_added")
		}
	})

	t.Run("empty filter returns all events", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{Registry: "team", Msg: "event1"},
			{Registry: "team", Msg: "event2"},
			{Registry: "team", Msg: "event3"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{}
		history := emitter.GetHistoryWithFilter("team", filter)

		if len(history) != 3 {
			t.Fatalf("expected 3 events, got %d", len(history))
		}
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{Registry: "team", Op: "add", Msg: "user_added"})

		filter := HistoryFilter{Op: "create"}
		history := emitter.GetHistoryWithFilter("team", filter)

		if history == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(history) != 0 {
			t.Errorf("expected 0 events, got %d", len(history))
		}
	})
}

// TestBufferedEmitter_Clear verifies clearing stored events.
func TestBufferedEmitter_Clear(t *testing.T) {
	t.Run("clears all events for registry label", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{Registry: "team-a", Msg: "event1"})
		emitter.Emit(Event{Registry: "team-b", Msg: "event2"})

		emitter.Clear("team-a")

		historyA := emitter.GetHistory("team-a")
		historyB := emitter.GetHistory("team-b")

		if len(historyA) != 0 {
			t.Errorf("expected 0 events for team-a, got %d", len(historyA))
		}
		if len(historyB) != 1 {
			t.Errorf("expected 1 event for team-b, got %d", len(historyB))
		}
	})

	t.Run("clears all events when label is empty", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{Registry: "team-a", Msg: "event1"})
		emitter.Emit(Event{Registry: "team-b", Msg: "event2"})

		emitter.Clear("")

		historyA := emitter.GetHistory("team-a")
		historyB := emitter.GetHistory("team-b")

		if len(historyA) != 0 || len(historyB) != 0 {
			t.Error("expected all events to be cleared")
		}
	})
}

// TestBufferedEmitter_ThreadSafety verifies concurrent access safety.
func TestBufferedEmitter_ThreadSafety(t *testing.T) {
	t.Run("concurrent emit and read", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		// Start 10 goroutines emitting events.
		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func(_ int) {
				for j := 0; j < 100; j++ {
					emitter.Emit(Event{
						Registry: "team",
						Seq:      j,
						Msg:      "concurrent_event",
					})
				}
				done <- true
			}(i)
		}

		// Read history concurrently.
		readDone := make(chan bool)
		go func() {
			for i := 0; i < 100; i++ {
				emitter.GetHistory("team")
				time.Sleep(1 * time.Millisecond)
			}
			readDone <- true
		}()

		// Wait for all goroutines.
		for i := 0; i < 10; i++ {
			<-done
		}
		<-readDone

		history := emitter.GetHistory("team")
		if len(history) != 1000 {
			t.Errorf("expected 1000 events, got %d", len(history))
		}
	})
}

// TestBufferedEmitter_InterfaceContract verifies BufferedEmitter implements Emitter.
func TestBufferedEmitter_InterfaceContract(_ *testing.T) {
	var _ Emitter = NewBufferedEmitter()
}
