// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the ErrorBuilder and the standard constructors used by
//              every istring package, so argument, pattern and configuration
//              failures carry the same codes and details everywhere.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-18 v0.1.1: Added AbsentValue and InvalidPattern constructors

package errors

import (
	"fmt"

	ierror "github.com/msto63/istring/core/error"
)

// AbsentValueMessage is the message of every absent-argument failure
const AbsentValueMessage = "invalid argument: expected text, received absent value"

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  ierror.Severity
	code      ierror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: ierror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity ierror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code ierror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *ierror.Error {
	if eb.code == "" {
		eb.code = ierror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *ierror.Error
	if eb.cause != nil {
		err = ierror.Wrap(eb.cause, eb.message)
	} else {
		err = ierror.New(eb.message)
	}

	// explicit severity wins over the code default
	return err.
		WithCode(eb.code).
		WithSeverity(eb.severity).
		WithOperation(eb.operation).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// AbsentValue reports a nil argument where text is required
func AbsentValue(module, operation, param string) *ierror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(AbsentValueMessage).
		Code(ierror.CodeInvalidArgument).
		Detail("param", param).
		Severity(ierror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *ierror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(ierror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(ierror.SeverityLow).
		Build()
}

// InvalidPattern reports a pattern that does not compile
func InvalidPattern(module, operation, pattern string, cause error) *ierror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid pattern %q", pattern).
		Cause(cause).
		Code(ierror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(ierror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *ierror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(ierror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(ierror.SeverityLow).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *ierror.Error {
	return NewErrorBuilder(module).
		Operation("validate").
		Messagef("validation failed for field %s: %s", field, reason).
		Code(ierror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(ierror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *ierror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(ierror.CodeInternal).
		Severity(ierror.SeverityHigh).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*ierror.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	e, ok := err.(*ierror.Error)
	return ok && ExtractModule(err) == module && e.Operation() == operation
}
