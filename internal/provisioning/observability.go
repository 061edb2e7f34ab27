package provisioning

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Logger is the printf-style subset of Observer.
type Logger interface {
	Printf(format string, v ...any)
}

// Observer defines the interface for structured observability during composition.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports progress for a phase
	Progress(phase string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured composition event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "network", "volumes")
	Message   string            // Human-readable message
	Resource  string            // Logical node name if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of composition event.
type EventType string

const (
	EventPhaseStarted   EventType = "phase.started"
	EventPhaseCompleted EventType = "phase.completed"
	EventPhaseFailed    EventType = "phase.failed"

	// EventNodeRegistered indicates a node entered the graph.
	EventNodeRegistered EventType = "node.registered"
	// EventNodeImported indicates a reference-only node entered the graph.
	EventNodeImported EventType = "node.imported"
	// EventNodeResolved indicates a node reached the Resolved state.
	EventNodeResolved EventType = "node.resolved"
	// EventNodeFailed indicates a node reached the Failed state.
	EventNodeFailed EventType = "node.failed"

	EventValidationWarning EventType = "validation.warning"
	EventValidationError   EventType = "validation.error"

	EventProgress EventType = "progress"
)

// verbose events are only shown at verbosity 1 and above.
var verbose = map[EventType]bool{
	EventNodeRegistered: true,
	EventNodeResolved:   true,
	EventProgress:       true,
}

// LogObserver implements Observer on top of a logr.Logger.
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver wraps an existing logger.
func NewLogObserver(l logr.Logger) *LogObserver {
	return &LogObserver{log: l}
}

// NewConsoleObserver writes one line per record to w. verbosity 1 adds
// per-node events.
func NewConsoleObserver(w io.Writer, verbosity int) *LogObserver {
	sink := func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}
	return NewLogObserver(funcr.New(sink, funcr.Options{Verbosity: verbosity}))
}

// NewDiscardObserver drops all output.
func NewDiscardObserver() *LogObserver {
	return NewLogObserver(logr.Discard())
}

// Printf implements Logger.
func (o *LogObserver) Printf(format string, v ...any) {
	o.log.Info(fmt.Sprintf(format, v...))
}

// Event implements Observer.
func (o *LogObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	kv := []any{"event", string(event.Type)}
	if event.Phase != "" {
		kv = append(kv, "phase", event.Phase)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		kv = append(kv, k, event.Fields[k])
	}

	l := o.log
	if verbose[event.Type] {
		l = l.V(1)
	}
	l.Info(event.Message, kv...)
}

// Progress implements Observer.
func (o *LogObserver) Progress(phase string, current, total int) {
	o.log.V(1).Info("progress", "phase", phase, "current", current, "total", total)
}

// WithFields implements Observer.
func (o *LogObserver) WithFields(fields map[string]string) Observer {
	kv := make([]any, 0, 2*len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		kv = append(kv, k, fields[k])
	}
	return &LogObserver{log: o.log.WithValues(kv...)}
}

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: "starting",
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogNodeRegistered logs a created node entering the graph.
func LogNodeRegistered(observer Observer, phase, kind, name string) {
	observer.Event(Event{
		Type:     EventNodeRegistered,
		Phase:    phase,
		Resource: name,
		Message:  fmt.Sprintf("%s registered", kind),
		Fields:   map[string]string{"kind": kind},
	})
}

// LogNodeImported logs a reference-only node entering the graph.
func LogNodeImported(observer Observer, phase, kind, name, id string) {
	observer.Event(Event{
		Type:     EventNodeImported,
		Phase:    phase,
		Resource: name,
		Message:  fmt.Sprintf("%s imported", kind),
		Fields:   map[string]string{"kind": kind, "id": id},
	})
}

// LogNodeResolved logs a node reaching the Resolved state.
func LogNodeResolved(observer Observer, kind, name string) {
	observer.Event(Event{
		Type:     EventNodeResolved,
		Resource: name,
		Message:  "resolved",
		Fields:   map[string]string{"kind": kind},
	})
}

// LogNodeFailed logs a node reaching the Failed state.
func LogNodeFailed(observer Observer, kind, name string, err error) {
	observer.Event(Event{
		Type:     EventNodeFailed,
		Resource: name,
		Message:  fmt.Sprintf("failed: %v", err),
		Fields:   map[string]string{"kind": kind},
	})
}

// LogValidationWarning logs a validation warning.
func LogValidationWarning(observer Observer, field, message string) {
	observer.Event(Event{
		Type:    EventValidationWarning,
		Phase:   "validation",
		Message: message,
		Fields:  map[string]string{"field": field},
	})
}

// LogValidationError logs a validation error.
func LogValidationError(observer Observer, field, message string) {
	observer.Event(Event{
		Type:    EventValidationError,
		Phase:   "validation",
		Message: message,
		Fields:  map[string]string{"field": field},
	})
}
