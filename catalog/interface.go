// File: interface.go
// Title: Operation Catalog Definitions
// Description: Defines the options, operation and parameter definitions and
//              the call envelope shared by catalog implementations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial definitions

package catalog

import (
	"github.com/msto63/istring/core/log"
	"github.com/msto63/istring/utils/stringx"
)

// Options configures registry behavior
type Options struct {
	Logger         *log.Logger // defaults to log.GetDefault()
	DefaultContext any         // root for format when a call has no context
	DisableAliases bool
}

// ParamKind is the type a textual argument is converted to
type ParamKind int

const (
	// ParamText passes the argument through
	ParamText ParamKind = iota
	// ParamInt parses the argument as a decimal integer
	ParamInt
)

// String returns the kind name shown in listings
func (k ParamKind) String() string {
	switch k {
	case ParamInt:
		return "int"
	default:
		return "text"
	}
}

// Param describes one positional parameter
type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
	Nullable bool   // an absent value is part of the operation's contract
	Default  string // shown in listings for optional parameters
}

// Operation defines a catalog entry
type Operation struct {
	Name        string
	Description string
	Params      []Param
	Invoke      func(in *Invocation) (Result, error)
}

// Call carries the arguments of one invocation. A nil entry in Args is an
// absent value.
type Call struct {
	Args    []*string
	Mode    stringx.MatchMode
	Context any    // lookup root for format
	Missing *string // replacement for unresolved format tokens; nil keeps "undefined"
}

// Interface is implemented by operation catalogs
type Interface interface {
	Invoke(name string, call Call) (Result, error)
	Lookup(name string) (*Operation, error)
	Names() []string
	AliasesOf(name string) []string
}

// Text returns a pointer to s, for building Call.Args
func Text(s string) *string {
	return &s
}

// Args converts plain strings to call arguments
func Args(values ...string) []*string {
	args := make([]*string, len(values))
	for i := range values {
		args[i] = &values[i]
	}
	return args
}
