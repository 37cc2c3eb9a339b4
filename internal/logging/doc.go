// Package logging provides structured logging for growform.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless GROWFORM_LOG_LEVEL is set, so the terminal UI renders
// cleanly by default.
//
// # Log Levels
//
//   - Debug: Per-keystroke detail (entry writes, row height updates)
//   - Info: Session events (startup, deletions, exit)
//   - Warn: Recoverable problems (unreadable config falling back to defaults)
//   - Error: Failures that end the session
//
// # Output
//
// The form draws on stdout, so log lines go to stderr, or to the file named
// by GROWFORM_LOG_FILE:
//
//	GROWFORM_LOG_LEVEL=debug GROWFORM_LOG_FILE=/tmp/growform.log growform
//
// # Structured Logging
//
//	logging.Info("Form started",
//	    zap.Int("entries", 3),
//	    zap.String("config", path),
//	)
package logging
