package oplog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes operation events to an slog.Logger.
// Useful for development when you want to watch container mutations in
// the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("op", event.Op),
		slog.Int("len", event.Len),
		slog.Int("cap", event.Cap),
	}
	if event.Index >= 0 {
		attrs = append(attrs, slog.Int("index", event.Index))
	}
	if event.Value != "" {
		attrs = append(attrs, slog.String("value", event.Value))
	}
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "vector op", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
