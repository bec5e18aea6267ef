// Package oplog provides structured logging of container operations.
//
// This package defines the Logger interface and the Event value for
// capturing mutations of a dynvec.Vector (appends, inserts, deletes,
// resizes). The container itself never logs; callers that want an
// operation trace emit events around the mutations they perform, as
// the dynvec-repl command does for its trace mode.
//
// Applications pick a Logger implementation:
//
//	// For development: log to console via slog
//	logger := oplog.NewSlogAdapter(slog.Default())
//
//	// Disabled
//	logger := oplog.NoopLogger{}
//
//	// Several sinks at once
//	logger := oplog.NewMultiLogger(a, b)
package oplog
