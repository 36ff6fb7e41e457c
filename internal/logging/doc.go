// Package logging builds the structured slog loggers shared by the control
// plane.
//
// A logger writes to a rotated debug.log under the data directory and,
// when the terminal is not owned by the UI, to the console as well. Every
// record carries the run's session_id so log lines from one process can be
// told apart after rotation. NewNop gives tests and optional collaborators
// a logger that cannot fail.
package logging
