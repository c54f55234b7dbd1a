// File: result.go
// Title: Invocation Results
// Description: Defines the typed Result returned by catalog invocations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package catalog

import (
	"strconv"
	"strings"

	"github.com/msto63/istring/utils/stringx"
)

// Kind identifies the type of a Result
type Kind int

const (
	KindText Kind = iota
	KindNull
	KindBool
	KindInt
	KindList
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Result is the value produced by an operation
type Result struct {
	Kind Kind
	Text string
	Bool bool
	Int  int
	List []string
}

// TextResult wraps a string
func TextResult(s string) Result {
	return Result{Kind: KindText, Text: s}
}

// NullResult represents an absent value
func NullResult() Result {
	return Result{Kind: KindNull}
}

// MaybeText wraps s, or returns NullResult when s is nil
func MaybeText(s *string) Result {
	if s == nil {
		return NullResult()
	}
	return TextResult(*s)
}

// BoolResult wraps a bool
func BoolResult(b bool) Result {
	return Result{Kind: KindBool, Bool: b}
}

// IntResult wraps an int
func IntResult(n int) Result {
	return Result{Kind: KindInt, Int: n}
}

// ListResult wraps a list of strings
func ListResult(items []string) Result {
	return Result{Kind: KindList, List: items}
}

// Value returns the result as a Go value; KindNull yields nil
func (r Result) Value() any {
	switch r.Kind {
	case KindText:
		return r.Text
	case KindBool:
		return r.Bool
	case KindInt:
		return r.Int
	case KindList:
		return r.List
	default:
		return nil
	}
}

// String renders the result for display. Lists are rendered as a bracketed
// sequence of JSON strings.
func (r Result) String() string {
	switch r.Kind {
	case KindText:
		return r.Text
	case KindBool:
		return strconv.FormatBool(r.Bool)
	case KindInt:
		return strconv.Itoa(r.Int)
	case KindList:
		quoted := make([]string, len(r.List))
		for i, item := range r.List {
			quoted[i] = stringx.ToJSON(item)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return "null"
	}
}
