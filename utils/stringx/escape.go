// File: escape.go
// Title: JSON Quoting and HTML Stripping
// Description: Implements ToJSON, which renders a string as a quoted JSON
//              literal with ASCII-only output, and StripHTML.
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
	"unicode/utf16"
)

const hexDigits = "0123456789abcdef"

var htmlTag = regexp.MustCompile(`<[^>]+>`)

// shortEscape returns the two-character escape of r, if it has one.
func shortEscape(r rune) (string, bool) {
	switch r {
	case '\b':
		return `\b`, true
	case '\t':
		return `\t`, true
	case '\n':
		return `\n`, true
	case '\f':
		return `\f`, true
	case '\r':
		return `\r`, true
	case '"':
		return `\"`, true
	case '\\':
		return `\\`, true
	}
	return "", false
}

// ToJSON returns str as a double-quoted JSON string literal. Control
// characters and everything outside printable ASCII are written as
// lowercase \uXXXX escapes, characters above U+FFFF as surrogate pairs.
// The output is always pure ASCII.
//
//	ToJSON(`say "hi"`) = `"say \"hi\""`
//	ToJSON("tab\there") = `"tab\there"`
//	ToJSON("\u4e2d")    = `"\u4e2d"`
func ToJSON(str string) string {
	var b strings.Builder
	b.Grow(len(str) + 2)
	b.WriteByte('"')
	for _, r := range str {
		if esc, ok := shortEscape(r); ok {
			b.WriteString(esc)
			continue
		}
		switch {
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			writeUnicodeEscape(&b, hi)
			writeUnicodeEscape(&b, lo)
		default:
			writeUnicodeEscape(&b, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(r>>shift)&0xf])
	}
}

// StripHTML removes every angle-bracket tag from source. An absent source
// yields "". Unterminated tags and entities are left alone.
//
//	StripHTML("<p>Hi <b>there</b></p>") = "Hi there"
//	StripHTML("a < b")                  = "a < b"
func StripHTML[S Text](source S) string {
	s, _ := deref(source)
	return htmlTag.ReplaceAllString(s, "")
}
