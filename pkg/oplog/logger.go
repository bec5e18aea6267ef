package oplog

import "time"

// Event represents one recorded container operation.
type Event struct {
	// Timestamp when the operation completed.
	Timestamp time.Time

	// Op is the operation name (append, insert, delete, ...).
	Op string

	// Index is the affected position, or -1 when the operation has
	// none (clear, resize, ...).
	Index int

	// Value is a formatted rendering of the affected value, if any.
	Value string

	// Len is the container's logical size after the operation.
	Len int

	// Cap is the container's capacity after the operation.
	Cap int
}

// Logger is the interface applications implement to receive container
// operation events. Pass NoopLogger to disable logging.
type Logger interface {
	// Log records an operation event. Implementations must be safe for
	// concurrent use when the container is driven from multiple
	// goroutines.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
