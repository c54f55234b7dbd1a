// File: trim.go
// Title: Whitespace Trimming and Padding
// Description: Implements Trim, TrimLeft, TrimRight, PadLeft and PadRight.
//              The whitespace set is the ECMAScript one, so no-break and
//              ideographic spaces and the byte order mark are trimmed too.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Pad sizes capped at MaxPadSize

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsWhitespace reports whether r belongs to the trimmed whitespace set.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// Trim removes leading and trailing whitespace.
//
//	Trim("  bob  ") = "bob"
//	Trim("\u3000bob ") = "bob"
func Trim(str string) string {
	return strings.TrimFunc(str, IsWhitespace)
}

// TrimLeft removes leading whitespace.
func TrimLeft(str string) string {
	return strings.TrimLeftFunc(str, IsWhitespace)
}

// TrimRight removes trailing whitespace.
func TrimRight(str string) string {
	return strings.TrimRightFunc(str, IsWhitespace)
}

// MaxPadSize is the largest target size PadLeft and PadRight honor. Larger
// sizes pad to MaxPadSize characters.
const MaxPadSize = 1 << 24

// PadLeft left-pads str to size characters with repetitions of padStr,
// truncating the last repetition. An empty or missing padStr pads with a
// space. Absent input stays absent, and str is returned unchanged when it is
// already size characters or longer. size is capped at MaxPadSize.
//
//	PadLeft("bat", 8, "yz") = "yzyzybat"
//	PadLeft("bat", 5)       = "  bat"
//	PadLeft("bat", 1)       = "bat"
func PadLeft[S Text](str S, size int, padStr ...string) S {
	s, ok := deref(str)
	if !ok {
		return str
	}
	return rewrap[S](padding(s, size, padStr) + s)
}

// PadRight right-pads str to size characters. It follows the rules of PadLeft.
//
//	PadRight("bat", 8, "yz") = "batyzyzy"
func PadRight[S Text](str S, size int, padStr ...string) S {
	s, ok := deref(str)
	if !ok {
		return str
	}
	return rewrap[S](s + padding(s, size, padStr))
}

// padding builds the fill needed to grow s to size characters.
func padding(s string, size int, padStr []string) string {
	gap := min(size, MaxPadSize) - utf8.RuneCountInString(s)
	if gap <= 0 {
		return ""
	}

	var unit []rune
	if len(padStr) > 0 {
		unit = []rune(padStr[0])
	}
	if len(unit) == 0 {
		unit = []rune{' '}
	}

	whole := gap / len(unit)
	var b strings.Builder
	b.WriteString(strings.Repeat(string(unit), whole))
	b.WriteString(string(unit[:gap-whole*len(unit)]))
	return b.String()
}
