// Package log provides structured logging for rubic.
//
// Package: log
// Title: rubic Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//
//	JSON, text and console output, integration with the rubic
//	error type and a timer for measuring operations.
//
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Adapted for the rubic CLI, REPL and playground server
//
// Usage:
//
//	import mdwlog "github.com/msto63/rubic/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatConsole,
//		Name:   "rubic",
//	}).WithField("component", "parser")
//
//	logger.Debug("Parsing source", mdwlog.Fields{"length": len(src)})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
