// Package log provides structured event capture for drone connections.
//
// This package defines the Logger interface and Event types for recording
// what happens on a drone connection: commands sent by applications and
// backends, component state changes confirmed by the drone, commits of
// component changes, and errors. It is separate from operational logging
// (slog): event capture produces a machine-readable trace for debugging and
// replay analysis.
//
// # Basic Usage
//
// Drones are configured with a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For flight records: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/skyward/drone.plog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at three layers:
//   - Application: calls made by application code (CommandEvent)
//   - Component: component store activity (CommitEvent)
//   - Backend: commands sent to and acknowledgements received from the
//     drone (CommandEvent, StateChangeEvent)
//
// Errors at any layer have a dedicated event type.
//
// # File Format
//
// Log files use CBOR encoding with the .plog extension. The skyward-log CLI
// tool provides viewing, filtering and statistics.
package log
