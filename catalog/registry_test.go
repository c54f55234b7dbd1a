// File: registry_test.go
// Title: Operation Registry Tests
// Description: Tests registration, alias resolution, argument binding and
//              the absent-value policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package catalog

import (
	"slices"
	"testing"

	ierror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/core/log"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New(Options{Logger: log.Discard()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNewRegistersCatalog(t *testing.T) {
	r := newTestRegistry(t)

	want := []string{
		"charAt", "contains", "endWith", "format", "indexOf", "isBlank", "isEmpty",
		"isNotBlank", "isNotEmpty", "isNotNullOrEmpty", "isNullOrEmpty", "isString",
		"lastIndexOf", "padLeft", "padRight", "replace", "replaceAll", "replaceFirst",
		"split", "startWith", "stripHTML", "substr", "substring", "toCamelCase",
		"toJson", "toLowerCase", "toString", "toUpperCase", "trim", "trimLeft",
		"trimRight", "valueOf",
	}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v\nwant %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		want string
	}{
		{"padLeft", "padLeft"},
		{"PADLEFT", "padLeft"},
		{"startsWith", "startWith"},
		{"toJSON", "toJson"},
		{"stripHtml", "stripHTML"},
		{"camel", "toCamelCase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := r.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if op.Name != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.name, op.Name, tt.want)
			}
		})
	}

	if _, err := r.Lookup("nope"); !ierror.HasCode(err, ierror.CodeNotFound) {
		t.Errorf("Lookup(nope) code = %v", ierror.GetCode(err))
	}
	if got := r.AliasesOf("startWith"); !slices.Equal(got, []string{"startsWith"}) {
		t.Errorf("AliasesOf(startWith) = %v", got)
	}
}

func TestDisableAliases(t *testing.T) {
	r, err := New(Options{Logger: log.Discard(), DisableAliases: true})
	if err != nil {
		t.Fatal(err)
	}
	if r.Has("camel") {
		t.Error("alias registered although disabled")
	}
	if !r.Has("TOCAMELCASE") {
		t.Error("case-insensitive lookup lost")
	}
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRegistry(t)
	noop := func(*Invocation) (Result, error) { return NullResult(), nil }

	tests := []struct {
		name string
		op   *Operation
	}{
		{"nil", nil},
		{"no invoke", &Operation{Name: "x"}},
		{"blank name", &Operation{Name: " ", Invoke: noop}},
		{"duplicate", &Operation{Name: "TRIM", Invoke: noop}},
		{"alias collision", &Operation{Name: "camel", Invoke: noop}},
		{"required after optional", &Operation{Name: "y", Invoke: noop, Params: []Param{
			optional(text("a"), ""), text("b"),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.op); err == nil {
				t.Error("Register() succeeded")
			}
		})
	}

	if err := r.RegisterAlias("shout", "missing"); !ierror.HasCode(err, ierror.CodeNotFound) {
		t.Errorf("alias to missing op: code = %v", ierror.GetCode(err))
	}
	if err := r.RegisterAlias("trim", "toUpperCase"); err == nil {
		t.Error("alias shadowing an operation accepted")
	}
}

func TestInvokeErrors(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name  string
		op    string
		args  []*string
		code  ierror.Code
		param string
	}{
		{"unknown operation", "shout", nil, ierror.CodeNotFound, ""},
		{"too many arguments", "trim", Args("a", "b"), ierror.CodeInvalidInput, ""},
		{"bad integer", "charAt", Args("abc", "x"), ierror.CodeInvalidInput, ""},
		{"absent text", "charAt", []*string{nil, Text("0")}, ierror.CodeInvalidArgument, "str"},
		{"missing text", "toLowerCase", nil, ierror.CodeInvalidArgument, "str"},
		{"absent integer", "padLeft", []*string{Text("bat"), nil}, ierror.CodeInvalidArgument, "size"},
		{"absent replaceAll", "replaceAll", []*string{Text("a"), nil, Text("b")}, ierror.CodeInvalidArgument, "findText"},
		{"invalid pattern", "replaceAll", Args("a", "(", "b"), ierror.CodeInvalidPattern, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Invoke(tt.op, Call{Args: tt.args})
			if err == nil {
				t.Fatal("Invoke() succeeded")
			}
			if !ierror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", ierror.GetCode(err), tt.code)
			}
			if tt.code == ierror.CodeInvalidArgument {
				if err.Error() != errors.AbsentValueMessage {
					t.Errorf("message = %q", err.Error())
				}
				if got := errors.ExtractDetails(err)["param"]; got != tt.param {
					t.Errorf("param = %v, want %s", got, tt.param)
				}
			}
		})
	}
}
