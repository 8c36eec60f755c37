// Package logging provides structured logging for nacos-tui.
//
// This package wraps a global zap logger with convenience functions for the
// logging patterns used by the console and the remote client.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Every remote request (method, redacted URL, status, duration)
//   - Info: Completed console intents and startup milestones
//   - Warn: Failed intents, history store problems
//   - Error: Startup failures
//
// # Silent by Default
//
// Logging is disabled unless a level is given, either through --log-level or
// the NACOS_TUI_LOG_LEVEL environment variable. The interactive console owns
// the terminal, so it always passes a log file:
//
//	logging.InitializeWithOptions(logging.Options{
//	    Level: cfg.Logging.Level,
//	    File:  cfg.Logging.File,
//	})
//
// One-shot commands log to stderr.
//
// # Structured Logging
//
//	logging.Info("Namespace created",
//	    zap.String("namespace", "dev"),
//	)
//
// Access tokens never reach the log: LogRequest passes URLs through
// RedactToken first.
package logging
