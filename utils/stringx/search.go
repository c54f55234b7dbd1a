// File: search.go
// Title: Character Access, Search and Extraction
// Description: Implements CharAt, IndexOf, LastIndexOf, Contains, Substr and
//              Substring. All positions and lengths count runes, never bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"
)

// byteOffset returns the byte offset of rune position n in s.
// n must lie in [0, RuneCount(s)].
func byteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// optional returns the first element of values or def.
func optional(values []int, def int) int {
	if len(values) > 0 {
		return values[0]
	}
	return def
}

// CharAt returns the character at rune position index, or "" when index is
// out of range.
//
//	CharAt("hello", 1)  = "e"
//	CharAt("hello", 10) = ""
func CharAt(str string, index int) string {
	if index < 0 {
		return ""
	}
	i := 0
	for _, r := range str {
		if i == index {
			return string(r)
		}
		i++
	}
	return ""
}

// IndexOf returns the rune position of the first occurrence of sub at or
// after fromIndex, or -1. fromIndex defaults to 0 and is clamped to
// [0, length]. An empty sub matches at the clamped fromIndex.
//
//	IndexOf("hello", "l")    = 2
//	IndexOf("hello", "l", 3) = 3
//	IndexOf("hello", "z")    = -1
func IndexOf(str, sub string, fromIndex ...int) int {
	from := clamp(optional(fromIndex, 0), 0, utf8.RuneCountInString(str))
	start := byteOffset(str, from)

	i := strings.Index(str[start:], sub)
	if i < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(str[start:start+i])
}

// LastIndexOf returns the rune position of the last occurrence of sub that
// starts at or before fromIndex, or -1. fromIndex defaults to the length of
// str and is clamped to [0, length].
//
//	LastIndexOf("hello", "l")    = 3
//	LastIndexOf("hello", "l", 2) = 2
func LastIndexOf(str, sub string, fromIndex ...int) int {
	n := utf8.RuneCountInString(str)
	from := clamp(optional(fromIndex, n), 0, n)

	// a match starting at or before from ends at or before from+len(sub)
	end := min(byteOffset(str, from)+len(sub), len(str))
	i := strings.LastIndex(str[:end], sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(str[:i])
}

// Contains reports whether sub occurs in str. Every string contains "".
func Contains(str, sub string) bool {
	return IndexOf(str, sub) != -1
}

// Substr extracts length characters of str beginning at start.
//
// A negative start counts from the end. When it is still negative after that,
// the offset is applied to the length once more and floored at zero, so
// Substr("hello", -7) = "lo". The length defaults to the rest of the string
// and is clamped to [0, remaining].
//
//	Substr("hello", 1, 3) = "ell"
//	Substr("hello", -3)   = "llo"
//	Substr("hello", 9)    = ""
func Substr(str string, start int, length ...int) string {
	runes := []rune(str)
	n := len(runes)

	if start < 0 {
		start = n + start
	}
	if start < 0 {
		start = max(n+start, 0)
	}
	if start >= n {
		return ""
	}

	l := clamp(optional(length, n), 0, n-start)
	return string(runes[start : start+l])
}

// Substring extracts the characters between start and stop (exclusive).
// Both bounds are clamped to [0, length] and swapped when start > stop.
// stop defaults to the length of str.
//
//	Substring("hello", 1, 3) = "el"
//	Substring("hello", 3, 1) = "el"
//	Substring("hello", -2)   = "hello"
func Substring(str string, start int, stop ...int) string {
	runes := []rune(str)
	n := len(runes)

	from := clamp(start, 0, n)
	to := clamp(optional(stop, n), 0, n)
	if from > to {
		from, to = to, from
	}
	return string(runes[from:to])
}
