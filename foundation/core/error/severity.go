// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps them to
//              log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Severity defaults for the rubic code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers errors caused by user input, such as malformed source
	SeverityLow Severity = iota

	// SeverityMedium covers recoverable failures
	SeverityMedium

	// SeverityHigh covers failures of a component, such as an unusable history database
	SeverityHigh

	// SeverityCritical covers failures that stop the process
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

// ShouldAlert returns true if this severity level should be surfaced prominently
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeStorage, CodeUnavailable, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInputTooLarge, CodeSyntax, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
