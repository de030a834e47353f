// Package logging assembles the structured slog loggers used across
// storyreel. It owns the console and JSON handlers, level parsing, and a
// no-op logger for tests and wiring code that cannot fail.
package logging
