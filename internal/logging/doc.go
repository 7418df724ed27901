// Package logging assembles structured slog loggers and formatting helpers used
// across skinbridge.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes helpers that tag log lines with the conversion run ID,
// the component, and the keymode or asset being processed. The package also
// provides a no-op logger for tests and library callers that pass no logger.
package logging
