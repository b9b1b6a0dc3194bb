// File: codes.go
// Title: Error Code Definitions
// Description: Classification codes for errors raised while loading, parsing
//              and running robot programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced platform codes with program/runtime codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Program loading
	CodeSyntax        Code = "SYNTAX"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Program execution
	CodeExecution Code = "EXECUTION"
	CodeStepLimit Code = "STEP_LIMIT"
	CodeOutOfFuel Code = "OUT_OF_FUEL"
	CodeCancelled Code = "CANCELLED"

	// Configuration and scenarios
	CodeConfigError     Code = "CONFIG_ERROR"
	CodeInvalidConfig   Code = "INVALID_CONFIG"
	CodeInvalidScenario Code = "INVALID_SCENARIO"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsRuntime reports whether the code belongs to program execution
func (c Code) IsRuntime() bool {
	switch c {
	case CodeExecution, CodeStepLimit, CodeOutOfFuel, CodeCancelled, CodeTimeout:
		return true
	}
	return false
}
