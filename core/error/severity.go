// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severity
//              to a log level when an error is logged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation that the caller can retry differently
	SeverityMedium

	// SeverityHigh indicates a failure of the tool itself
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
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

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidPattern,
		CodeNotFound, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
