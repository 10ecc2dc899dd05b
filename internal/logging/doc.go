// Package logging builds the slog loggers used across the exporter.
//
// Two formats are supported: a compact console handler for interactive runs
// and a JSON handler for piping into log tooling. Output can fan out to
// stdout/stderr and a per-invocation log file under the configured log
// directory. The API key is never logged.
package logging
