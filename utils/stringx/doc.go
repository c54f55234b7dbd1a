// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides absent-safe string helpers with
//              well-defined edge-case behavior: trimming, padding, search,
//              extraction, pattern replacement, case conversion, JSON
//              quoting, HTML stripping and template formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial package documentation

// Package stringx provides absent-safe string helpers.
//
// Overview
//
// Every function is stateless and returns a new value. Character positions
// and lengths count runes, so "中国" has length 2 and CharAt("中国", 1) is "国".
//
// Absent values
//
// Functions whose behavior for a missing value is part of their contract are
// generic over Text, which is string or *string. A nil *string is the absent
// value:
//
//	var missing *string
//	stringx.IsEmpty(missing)       // false
//	stringx.IsNullOrEmpty(missing) // true
//	stringx.IsBlank(missing)       // true
//	stringx.StartWith(missing, missing) // true
//
// Plain string callers never deal with pointers:
//
//	stringx.PadLeft("bat", 8, "yz") // "yzyzybat"
//
// Architecture
//
//   - Checks and conversions: IsEmpty, IsBlank, IsString, ValueOf (text.go)
//   - Search and extraction: CharAt, IndexOf, Substr, Substring (search.go)
//   - Whitespace and padding: Trim, PadLeft, PadRight (trim.go)
//   - Patterns: StartWith, EndWith, Replace, ReplaceAll, Split (match.go)
//   - Case: ToCamelCase (case.go), ToLowerCase, ToUpperCase (text.go)
//   - Escaping: ToJSON, StripHTML (escape.go)
//   - Templates: Format, Formatter, Resolve (format.go)
//
// Patterns
//
// StartWith, EndWith, ReplaceFirst and ReplaceAll read their argument as a
// Go regular expression, so StartWith("a.c", ".") is true for any first
// character. The *Mode variants accept MatchLiteral for plain text matching.
// A pattern that fails to compile is treated as "no match" by the predicates
// and by ReplaceFirst. ReplaceAll reports it as an INVALID_PATTERN error.
//
// Templates
//
// Format walks the context along a dot path:
//
//	ctx := map[string]any{"user": map[string]any{"name": "Ada"}}
//	stringx.Format("Hi {{user.name}}", ctx) // "Hi Ada"
//	stringx.Format("Hi {{user.age}}", ctx)  // "Hi undefined"
//
// A nil context resolves against an empty map. Use NewFormatter with
// WithDefaultContext to supply another root.
//
// Thread Safety
//
// All functions are safe for concurrent use. A Formatter is immutable after
// construction.
package stringx
