// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across istring. Codes classify
//              failures for CLI exit handling and structured log output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Argument handling
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidPattern  Code = "INVALID_PATTERN"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeInvalidInput, CodeInvalidPattern,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidPattern:
		return "argument"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "argument", "validation":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
