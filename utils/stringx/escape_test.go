// File: escape_test.go
// Title: Unit Tests for Escaping and Case Conversion
// Description: Covers ToJSON, StripHTML and ToCamelCase.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package stringx

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "abc", `"abc"`},
		{"empty", "", `""`},
		{"quote and newline", "a\"b\n", `"a\"b\n"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"short escapes", "\b\t\n\f\r", `"\b\t\n\f\r"`},
		{"vertical tab", "\v", `"\u000b"`},
		{"nul", "\x00", `"\u0000"`},
		{"delete", "\x7f", `"\u007f"`},
		{"latin", "\u00e9", `"\u00e9"`},
		{"cjk", "\u4e2d\u56fd", `"\u4e2d\u56fd"`},
		{"astral", "\U0001f600", `"\ud83d\ude00"`},
		{"slash kept", "a/b", `"a/b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToJSON(tt.input); got != tt.expected {
				t.Errorf("ToJSON(%q) = %s; want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToJSONDecodes(t *testing.T) {
	inputs := []string{"a\"b\n", "tab\there", "\u4e2d\u56fd \U0001f600", "\x01\x1f\x7f", `\\`}
	for _, in := range inputs {
		encoded := ToJSON(in)
		if !strings.HasPrefix(encoded, `"`) || !strings.HasSuffix(encoded, `"`) {
			t.Errorf("ToJSON(%q) = %s; not quoted", in, encoded)
		}
		var decoded string
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			t.Fatalf("json.Unmarshal(%s) error = %v", encoded, err)
		}
		if decoded != in {
			t.Errorf("decoded %q; want %q", decoded, in)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tags", "<p>Hi <b>there</b></p>", "Hi there"},
		{"attributes", `<a href="/x">link</a>`, "link"},
		{"self closing", "a<br/>b", "ab"},
		{"comparison kept", "a < b", "a < b"},
		{"empty brackets kept", "a <> b", "a <> b"},
		{"unterminated kept", "a <b", "a <b"},
		{"entity kept", "a &amp; b", "a &amp; b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.expected {
				t.Errorf("StripHTML(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}

	if got := StripHTML((*string)(nil)); got != "" {
		t.Errorf("StripHTML(nil) = %q; want empty", got)
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"i-like_cock-oh-yeah_haha_haha", "iLikeCockOhYeahHahaHaha"},
		{"foo-bar", "fooBar"},
		{"foo_bar", "fooBar"},
		{"Foo", "Foo"},
		{"already camelCase", "already camelCase"},
		{"foo__bar", "foo_Bar"},
		{"foo-", "foo-"},
		{"-foo", "Foo"},
		{"a-1", "a1"},
		{"über-straße", "überStraße"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToCamelCase(tt.input); got != tt.expected {
				t.Errorf("ToCamelCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
