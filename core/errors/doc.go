// Package errors provides shared error constructors for istring packages.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Wraps the core error type in a fluent builder and a small set
//              of constructors. Library packages create their failures through
//              these functions so the CLI can classify them by code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	if arg == nil {
//	    return errors.AbsentValue("catalog", "charAt", "str")
//	}
//
//	re, err := regexp.Compile(pattern)
//	if err != nil {
//	    return "", errors.InvalidPattern("stringx", "replaceAll", pattern, err)
//	}
package errors
