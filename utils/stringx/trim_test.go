// File: trim_test.go
// Title: Unit Tests for Trimming and Padding
// Description: Covers the extended whitespace set and the padding rules,
//              including absent input and truncated pad repetitions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package stringx

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		both  string
		left  string
		right string
	}{
		{"ascii", "  bob  ", "bob", "bob  ", "  bob"},
		{"ideographic", "\u3000bob\u3000", "bob", "bob\u3000", "\u3000bob"},
		{"no-break", "\u00a0bob\u00a0", "bob", "bob\u00a0", "\u00a0bob"},
		{"byte order mark", "\ufeffbob", "bob", "bob", "\ufeffbob"},
		{"en quad to hair space", "\u2000\u200abob", "bob", "bob", "\u2000\u200abob"},
		{"line separator", "bob\u2028", "bob", "bob\u2028", "bob"},
		{"control whitespace", "\t\n\v\f\rbob", "bob", "bob", "\t\n\v\f\rbob"},
		{"zero width space kept", "\u200bbob", "\u200bbob", "\u200bbob", "\u200bbob"},
		{"inner whitespace kept", " a b ", "a b", "a b ", " a b"},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trim(tt.input); got != tt.both {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, got, tt.both)
			}
			if got := TrimLeft(tt.input); got != tt.left {
				t.Errorf("TrimLeft(%q) = %q; want %q", tt.input, got, tt.left)
			}
			if got := TrimRight(tt.input); got != tt.right {
				t.Errorf("TrimRight(%q) = %q; want %q", tt.input, got, tt.right)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		size     int
		pad      []string
		expected string
	}{
		{"exact repeat", "bat", 5, []string{"yz"}, "yzbat"},
		{"truncated repeat", "bat", 8, []string{"yz"}, "yzyzybat"},
		{"already long enough", "bat", 2, nil, "bat"},
		{"equal length", "bat", 3, []string{"yz"}, "bat"},
		{"default pad", "bat", 5, nil, "  bat"},
		{"empty pad", "bat", 5, []string{""}, "  bat"},
		{"negative size", "bat", -1, nil, "bat"},
		{"multi-byte pad", "bat", 6, []string{"中国"}, "中国中bat"},
		{"multi-byte input", "中国", 4, []string{"*"}, "**中国"},
		{"empty input", "", 3, []string{"ab"}, "aba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadLeft(tt.str, tt.size, tt.pad...)
			if got != tt.expected {
				t.Errorf("PadLeft(%q, %d, %v) = %q; want %q", tt.str, tt.size, tt.pad, got, tt.expected)
			}
			if utf8.RuneCountInString(tt.str) < tt.size && utf8.RuneCountInString(got) != tt.size {
				t.Errorf("PadLeft length = %d; want %d", utf8.RuneCountInString(got), tt.size)
			}
		})
	}
}

func TestPadHugeSize(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"past cap", MaxPadSize + 1},
		{"overflowing byte count", 1 << 62},
		{"max int", int(^uint(0) >> 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := PadLeft("bat", tt.size, "yz")
			if n := utf8.RuneCountInString(left); n != MaxPadSize {
				t.Errorf("PadLeft length = %d; want %d", n, MaxPadSize)
			}
			if !strings.HasSuffix(left, "bat") {
				t.Error("PadLeft lost the input")
			}
			if n := utf8.RuneCountInString(PadRight("bat", tt.size)); n != MaxPadSize {
				t.Errorf("PadRight length = %d; want %d", n, MaxPadSize)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		size     int
		pad      []string
		expected string
	}{
		{"exact repeat", "bat", 5, []string{"yz"}, "batyz"},
		{"truncated repeat", "bat", 8, []string{"yz"}, "batyzyzy"},
		{"already long enough", "bat", 1, nil, "bat"},
		{"default pad", "bat", 5, nil, "bat  "},
		{"empty pad", "bat", 4, []string{""}, "bat "},
		{"longer pad than gap", "bat", 4, []string{"xyz"}, "batx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRight(tt.str, tt.size, tt.pad...); got != tt.expected {
				t.Errorf("PadRight(%q, %d, %v) = %q; want %q", tt.str, tt.size, tt.pad, got, tt.expected)
			}
		})
	}
}

func TestPadAbsent(t *testing.T) {
	var absent *string
	if got := PadLeft(absent, 5, "x"); got != nil {
		t.Errorf("PadLeft(nil) = %q; want nil", *got)
	}
	if got := PadRight(absent, 5); got != nil {
		t.Errorf("PadRight(nil) = %q; want nil", *got)
	}

	in := ptr("bat")
	got := PadLeft(in, 5, "yz")
	if got == nil || *got != "yzbat" {
		t.Fatalf("PadLeft(&bat) = %v; want yzbat", got)
	}
	if got == in || *in != "bat" {
		t.Error("PadLeft must not alias or modify its input")
	}
}
