// Package log provides structured logging for istring.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent fields and JSON or text output.
//              The stringx functions never log; the catalog, the configuration
//              watcher and the CLI do.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatText,
//	    Output: os.Stderr,
//	}).WithName("istring")
//
//	logger.Debug("operation invoked", log.Fields{"op": "padLeft", "args": 3})
//	logger.LogError(err)
package log
