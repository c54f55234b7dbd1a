// File: case.go
// Title: Case Conversion
// Description: Implements ToCamelCase for hyphen and underscore separated
//              identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var camelSeparator = regexp.MustCompile(`[-_][^-_]`)

// ToCamelCase removes every '-' or '_' that is followed by another character
// and upper-cases that character. Strings without separators are returned
// as-is, as are trailing and doubled separators.
//
//	ToCamelCase("foo-bar")  = "fooBar"
//	ToCamelCase("foo_bar")  = "fooBar"
//	ToCamelCase("Foo")      = "Foo"
//	ToCamelCase("foo__bar") = "foo_Bar"
//	ToCamelCase("foo-")     = "foo-"
func ToCamelCase(source string) string {
	if !strings.ContainsAny(source, "-_") {
		return source
	}
	return camelSeparator.ReplaceAllStringFunc(source, func(m string) string {
		_, size := utf8.DecodeRuneInString(m)
		return strings.ToUpper(m[size:])
	})
}
