// Package log provides structured logging for the RoboScript toolchain.
//
// Package: log
// Title: RoboScript Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              run correlation, JSON/text/console/logfmt output and timers for
//              measuring parse and run durations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Run and program context instead of request/user context, sorted output
//
// Usage:
//
//	import robolog "github.com/msto63/roboscript/foundation/core/log"
//
//	logger := robolog.New().
//		WithLevel(robolog.LevelDebug).
//		WithFormat(robolog.FormatText).
//		WithField("component", "robo-parser")
//
//	logger.Info("program loaded", robolog.Fields{"statements": 12})
//
//	timer := logger.StartTimer("program run")
//	// ... execute
//	timer.Stop()
package log
