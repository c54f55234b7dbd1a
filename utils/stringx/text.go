// File: text.go
// Title: Empty, Blank and Type Checks
// Description: Implements the absent-aware emptiness and blankness checks,
//              the string type check and the basic conversions. Functions
//              with an absent-value truth table accept string or *string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Text is satisfied by string and *string. A nil *string is an absent value.
type Text interface {
	string | *string
}

// deref returns the text behind s and false when s is absent.
func deref[S Text](s S) (string, bool) {
	switch v := any(s).(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}

// rewrap returns s in the representation of S; *string results are fresh pointers.
func rewrap[S Text](s string) S {
	var zero S
	if _, isPtr := any(zero).(*string); isPtr {
		return any(&s).(S)
	}
	return any(s).(S)
}

// IsEmpty reports whether str is exactly the empty string.
// An absent value is not empty.
//
//	IsEmpty("")              = true
//	IsEmpty(" ")             = false
//	IsEmpty((*string)(nil))  = false
//	IsEmpty("bob")           = false
func IsEmpty[S Text](str S) bool {
	s, ok := deref(str)
	return ok && s == ""
}

// IsNotEmpty is the negation of IsEmpty, so an absent value is not empty.
func IsNotEmpty[S Text](str S) bool {
	return !IsEmpty(str)
}

// IsNullOrEmpty reports whether str is absent or the empty string.
func IsNullOrEmpty[S Text](str S) bool {
	s, ok := deref(str)
	return !ok || s == ""
}

// IsNotNullOrEmpty is the negation of IsNullOrEmpty.
func IsNotNullOrEmpty[S Text](str S) bool {
	return !IsNullOrEmpty(str)
}

// IsBlank reports whether str is absent, empty or whitespace only.
// Whitespace is the set trimmed by Trim, which includes U+3000 and U+00A0.
//
//	IsBlank((*string)(nil)) = true
//	IsBlank("")             = true
//	IsBlank(" ")            = true
//	IsBlank("\u3000")      = true
//	IsBlank("bob")          = false
//	IsBlank("  bob  ")      = false
func IsBlank[S Text](str S) bool {
	s, ok := deref(str)
	return !ok || Trim(s) == ""
}

// IsNotBlank is the negation of IsBlank.
func IsNotBlank[S Text](str S) bool {
	return !IsBlank(str)
}

// IsString reports whether value is textual: a value of string kind or a
// non-nil *string. Values that merely format as text (fmt.Stringer, []byte)
// are not strings.
func IsString(value any) bool {
	switch v := value.(type) {
	case string:
		return true
	case *string:
		return v != nil
	}
	rv := reflect.ValueOf(value)
	return rv.IsValid() && rv.Kind() == reflect.String
}

// ToLowerCase returns str with all letters mapped to lower case.
func ToLowerCase(str string) string {
	return strings.ToLower(str)
}

// ToUpperCase returns str with all letters mapped to upper case.
func ToUpperCase(str string) string {
	return strings.ToUpper(str)
}

// ToString returns str.
func ToString(str string) string {
	return str
}

// ValueOf converts any value to its text form.
// nil and nil pointers become "null", slices and arrays are joined with ",".
func ValueOf(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case *string:
		if v == nil {
			return "null"
		}
		return *v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		if rv.IsNil() {
			return "null"
		}
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = ValueOf(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(value)
}
