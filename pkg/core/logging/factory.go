// ============================================================================
// RoboScript - robot-control language toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from config strings
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	robolog "github.com/msto63/roboscript/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown as {name} in text output
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal, audit)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// NewLogger creates a Foundation logger. Unknown level or format strings
// fall back to warn and console.
func NewLogger(cfg LoggerConfig) *robolog.Logger {
	level, err := robolog.ParseLevel(cfg.Level)
	if err != nil {
		level = robolog.LevelWarn
	}

	format, err := robolog.ParseFormat(cfg.Format)
	if err != nil {
		format = robolog.FormatConsole
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return robolog.NewWithConfig(robolog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *robolog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewVerboseLogger creates a debug-level logger with caller information
func NewVerboseLogger(serviceName, format string) *robolog.Logger {
	cfg := DefaultLoggerConfig(serviceName)
	cfg.Level = "debug"
	if format != "" {
		cfg.Format = format
	}
	cfg.EnableCaller = true
	return NewLogger(cfg)
}
