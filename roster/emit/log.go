package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LogEmitter implements Emitter by writing structured log output to a writer.
//
// Supports two output modes:
//   - Text mode (default): Human-readable format with key=value pairs
//   - JSON mode: Machine-readable JSON format, one event per line
//
// Example text output:
//
//	[user_added] registry=team seq=1 op=add
//
// Example JSON output:
//
//	{"registry":"team","seq":1,"op":"add","msg":"user_added","meta":null}
//
// Usage:
//
//	// Text output to stdout
//	emitter := emit.NewLogEmitter(os.Stdout, false)
//
//	// JSON output to file
//	f, _ := os.Create("events.jsonl")
//	defer f.Close()
//	emitter := emit.NewLogEmitter(f, true)
type LogEmitter struct {
	writer   io.Writer
	jsonMode bool
}

// NewLogEmitter creates a new LogEmitter.
//
// Parameters:
//   - writer: Where to write the log output (e.g., os.Stdout, file)
//   - jsonMode: If true, emit JSON format; if false, emit text format
//
// Returns a LogEmitter that writes structured event data to the provided writer.
func NewLogEmitter(writer io.Writer, jsonMode bool) *LogEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LogEmitter{
		writer:   writer,
		jsonMode: jsonMode,
	}
}

// Emit writes an event to the configured writer.
//
// Format depends on jsonMode:
//   - JSON mode: Writes event as single-line JSON object
//   - Text mode: Writes human-readable format with [msg] prefix
//
// Example text output:
//
//	[registry_created] registry=team seq=0 op=create
//	[user_added] registry=team seq=1 op=add meta={"count":1,"name":"alice"}
//
// Example JSON output:
//
//	{"registry":"team","seq":0,"op":"create","msg":"registry_created","meta":null}
//	{"registry":"team","seq":1,"op":"add","msg":"user_added","meta":{"count":1,"name":"alice"}}
func (l *LogEmitter) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
	} else {
		l.emitText(event)
	}
}

// emitJSON writes event as JSON to the writer.
func (l *LogEmitter) emitJSON(event Event) {
	// Marshal event to JSON
	data, err := json.Marshal(struct {
		Registry string                 `json:"registry"`
		Seq      int                    `json:"seq"`
		Op       string                 `json:"op"`
		Msg      string                 `json:"msg"`
		Meta     map[string]interface{} `json:"meta"`
	}{
		Registry: event.Registry,
		Seq:      event.Seq,
		Op:       event.Op,
		Msg:      event.Msg,
		Meta:     event.Meta,
	})
	if err != nil {
		// Fallback to error message if marshal fails
		fmt.Fprintf(l.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}

	// Write JSON followed by newline (JSONL format)
	fmt.Fprintf(l.writer, "%s\n", data)
}

// emitText writes event as human-readable text to the writer.
func (l *LogEmitter) emitText(event Event) {
	// Format: [msg] registry=xxx seq=N op=yyy [meta=...]
	line := fmt.Sprintf("[%s] registry=%s seq=%d op=%s",
		event.Msg, event.Registry, event.Seq, event.Op)

	// Add meta if present
	if event.Meta != nil && len(event.Meta) > 0 {
		// Try to marshal meta as JSON for readability
		metaJSON, err := json.Marshal(event.Meta)
		if err == nil {
			line += fmt.Sprintf(" meta=%s", metaJSON)
		} else {
			line += fmt.Sprintf(" meta=%v", event.Meta)
		}
	}

	// One write per event so lines from emitters shared across
	// goroutines cannot interleave.
	fmt.Fprintln(l.writer, line)
}
