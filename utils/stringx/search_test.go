// File: search_test.go
// Title: Unit Tests for Search and Extraction
// Description: Covers CharAt, IndexOf, LastIndexOf, Contains, Substr and
//              Substring, including out-of-range and multi-byte input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestCharAt(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		index    int
		expected string
	}{
		{"first", "hello", 0, "h"},
		{"middle", "hello", 1, "e"},
		{"last", "hello", 4, "o"},
		{"past end", "hello", 5, ""},
		{"negative", "hello", -1, ""},
		{"empty", "", 0, ""},
		{"multi-byte", "中国人", 1, "国"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharAt(tt.str, tt.index); got != tt.expected {
				t.Errorf("CharAt(%q, %d) = %q; want %q", tt.str, tt.index, got, tt.expected)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		sub      string
		from     []int
		expected int
	}{
		{"found", "hello", "l", nil, 2},
		{"from index", "hello", "l", []int{3}, 3},
		{"from past match", "hello", "h", []int{1}, -1},
		{"missing", "hello", "z", nil, -1},
		{"negative from", "hello", "h", []int{-5}, 0},
		{"from past end", "hello", "o", []int{99}, -1},
		{"empty needle", "hello", "", []int{2}, 2},
		{"empty needle past end", "hello", "", []int{99}, 5},
		{"multi-byte", "我是中国人", "中国", nil, 2},
		{"multi-byte from", "中中中", "中", []int{1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexOf(tt.str, tt.sub, tt.from...); got != tt.expected {
				t.Errorf("IndexOf(%q, %q, %v) = %d; want %d", tt.str, tt.sub, tt.from, got, tt.expected)
			}
		})
	}
}

func TestLastIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		sub      string
		from     []int
		expected int
	}{
		{"found", "hello", "l", nil, 3},
		{"from index", "hello", "l", []int{2}, 2},
		{"before first", "hello", "l", []int{1}, -1},
		{"match starting at from", "abcabc", "abc", []int{3}, 3},
		{"match ending after from", "abcabc", "abc", []int{2}, 0},
		{"negative from", "hello", "h", []int{-1}, 0},
		{"missing", "hello", "z", nil, -1},
		{"empty needle", "hello", "", nil, 5},
		{"multi-byte", "中国中国", "中", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastIndexOf(tt.str, tt.sub, tt.from...); got != tt.expected {
				t.Errorf("LastIndexOf(%q, %q, %v) = %d; want %d", tt.str, tt.sub, tt.from, got, tt.expected)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if !Contains("hello", "ell") {
		t.Error(`Contains("hello", "ell") = false`)
	}
	if Contains("hello", "xyz") {
		t.Error(`Contains("hello", "xyz") = true`)
	}
	if !Contains("", "") {
		t.Error(`Contains("", "") = false`)
	}
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		start    int
		length   []int
		expected string
	}{
		{"from start", "hello", 0, nil, "hello"},
		{"with length", "hello", 1, []int{3}, "ell"},
		{"negative start", "hello", -3, nil, "llo"},
		{"negative start with length", "hello", -3, []int{2}, "ll"},
		{"negative beyond length", "hello", -7, nil, "lo"},
		{"far negative", "hello", -20, nil, "hello"},
		{"start past end", "hello", 9, nil, ""},
		{"length past end", "hello", 3, []int{10}, "lo"},
		{"negative length", "hello", 1, []int{-1}, ""},
		{"multi-byte", "我是中国人", 2, []int{2}, "中国"},
		{"empty", "", 0, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substr(tt.str, tt.start, tt.length...); got != tt.expected {
				t.Errorf("Substr(%q, %d, %v) = %q; want %q", tt.str, tt.start, tt.length, got, tt.expected)
			}
		})
	}
}

func TestSubstring(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		start    int
		stop     []int
		expected string
	}{
		{"range", "hello", 1, []int{3}, "el"},
		{"swapped", "hello", 3, []int{1}, "el"},
		{"to end", "hello", 2, nil, "llo"},
		{"negative start", "hello", -2, nil, "hello"},
		{"negative stop", "hello", 2, []int{-1}, "he"},
		{"stop past end", "hello", 1, []int{99}, "ello"},
		{"empty range", "hello", 2, []int{2}, ""},
		{"multi-byte", "我是中国人", 2, []int{4}, "中国"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substring(tt.str, tt.start, tt.stop...); got != tt.expected {
				t.Errorf("Substring(%q, %d, %v) = %q; want %q", tt.str, tt.start, tt.stop, got, tt.expected)
			}
		})
	}
}
