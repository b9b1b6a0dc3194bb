// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors and the default mapping from codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Mapping for program/runtime codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input, e.g. a malformed program
	SeverityLow Severity = iota

	// SeverityMedium indicates a run that stopped early but left the tool usable
	SeverityMedium

	// SeverityHigh indicates a broken environment such as unreadable configuration
	SeverityHigh

	// SeverityCritical indicates an internal defect
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeExecution, CodeStepLimit, CodeOutOfFuel, CodeCancelled, CodeTimeout:
		return SeverityMedium
	case CodeSyntax, CodeInputTooLarge, CodeInvalidInput, CodeNotFound, CodeInvalidScenario:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
