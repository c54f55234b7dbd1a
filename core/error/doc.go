// Package error provides structured errors for istring.
//
// Package: error
// Title: istring Error Handling
// Description: Structured error type with codes, severities, operation names
//              and details. Errors wrap causes and cooperate with the standard
//              errors package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//   import ierror "github.com/msto63/istring/core/error"
//
//   err := ierror.New("invalid argument: expected text, received absent value").
//     WithCode(ierror.CodeInvalidArgument).
//     WithOperation("charAt").
//     WithDetail("param", "str")
//
//   if ierror.HasCode(err, ierror.CodeInvalidArgument) {
//     // caller passed nil where text is required
//   }
package error
