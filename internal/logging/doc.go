// Package logging provides structured logging helpers for sheetcal.
//
// It centralizes attribute naming so that log lines stay greppable across the
// codebase, and builds the application's slog.Logger from the configured
// level. All logging goes through the standard library's slog package.
package logging
