// File: operations.go
// Title: Built-in Operations
// Description: Declares every stringx function as a catalog operation with
//              its parameters, absent-value policy and result kind.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial operation set
// - 2026-10-18 v0.1.1: padLeft and padRight reject sizes above MaxPadSize

package catalog

import (
	"fmt"

	"github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/utils/stringx"
)

// builtinAliases maps alternative spellings to operation names.
// Lookup ignores case, so toJSON and stripHtml need no entry.
var builtinAliases = map[string]string{
	"startsWith": "startWith",
	"endsWith":   "endWith",
	"camel":      "toCamelCase",
	"strip":      "stripHTML",
	"lower":      "toLowerCase",
	"upper":      "toUpperCase",
	"json":       "toJson",
}

func text(name string) Param {
	return Param{Name: name, Kind: ParamText, Required: true}
}

func nullable(name string) Param {
	return Param{Name: name, Kind: ParamText, Required: true, Nullable: true}
}

func integer(name string) Param {
	return Param{Name: name, Kind: ParamInt, Required: true}
}

func optional(p Param, def string) Param {
	p.Required = false
	p.Default = def
	return p
}

// unary builds an operation over a single required text argument
func unary(name, description string, fn func(string) string) *Operation {
	return &Operation{
		Name:        name,
		Description: description,
		Params:      []Param{text("str")},
		Invoke: func(in *Invocation) (Result, error) {
			return TextResult(fn(in.Text(0))), nil
		},
	}
}

// predicate builds an operation over a single nullable argument
func predicate(name, description string, fn func(*string) bool) *Operation {
	return &Operation{
		Name:        name,
		Description: description,
		Params:      []Param{nullable("str")},
		Invoke: func(in *Invocation) (Result, error) {
			return BoolResult(fn(in.Ptr(0))), nil
		},
	}
}

// padSize rejects target sizes the library would cap
func padSize(in *Invocation, operation string) (int, error) {
	size := in.Int(1)
	if size > stringx.MaxPadSize {
		return 0, errors.InvalidInput(moduleName, operation, size, fmt.Sprintf("a size of at most %d", stringx.MaxPadSize))
	}
	return size, nil
}

func builtinOperations() []*Operation {
	return []*Operation{
		{
			Name:        "charAt",
			Description: "character at index, empty when out of range",
			Params:      []Param{text("str"), integer("index")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(stringx.CharAt(in.Text(0), in.Int(1))), nil
			},
		},
		{
			Name:        "indexOf",
			Description: "first position of sub at or after fromIndex, or -1",
			Params:      []Param{text("str"), text("sub"), optional(integer("fromIndex"), "0")},
			Invoke: func(in *Invocation) (Result, error) {
				return IntResult(stringx.IndexOf(in.Text(0), in.Text(1), in.OptionalInt(2)...)), nil
			},
		},
		{
			Name:        "lastIndexOf",
			Description: "last position of sub at or before fromIndex, or -1",
			Params:      []Param{text("str"), text("sub"), optional(integer("fromIndex"), "length")},
			Invoke: func(in *Invocation) (Result, error) {
				return IntResult(stringx.LastIndexOf(in.Text(0), in.Text(1), in.OptionalInt(2)...)), nil
			},
		},
		{
			Name:        "contains",
			Description: "whether sub occurs in str",
			Params:      []Param{text("str"), text("sub")},
			Invoke: func(in *Invocation) (Result, error) {
				return BoolResult(stringx.Contains(in.Text(0), in.Text(1))), nil
			},
		},
		{
			Name:        "startWith",
			Description: "whether source begins with prefix (pattern unless --literal)",
			Params:      []Param{nullable("source"), nullable("prefix")},
			Invoke: func(in *Invocation) (Result, error) {
				return BoolResult(stringx.StartWithMode(in.Ptr(0), in.Ptr(1), in.Mode())), nil
			},
		},
		{
			Name:        "endWith",
			Description: "whether source ends with suffix (pattern unless --literal)",
			Params:      []Param{nullable("source"), nullable("suffix")},
			Invoke: func(in *Invocation) (Result, error) {
				return BoolResult(stringx.EndWithMode(in.Ptr(0), in.Ptr(1), in.Mode())), nil
			},
		},
		predicate("isEmpty", "whether str is exactly empty", stringx.IsEmpty[*string]),
		predicate("isNotEmpty", "negation of isEmpty", stringx.IsNotEmpty[*string]),
		predicate("isNullOrEmpty", "whether str is absent or empty", stringx.IsNullOrEmpty[*string]),
		predicate("isNotNullOrEmpty", "negation of isNullOrEmpty", stringx.IsNotNullOrEmpty[*string]),
		predicate("isBlank", "whether str is absent, empty or whitespace", stringx.IsBlank[*string]),
		predicate("isNotBlank", "negation of isBlank", stringx.IsNotBlank[*string]),
		{
			Name:        "isString",
			Description: "whether value is text",
			Params:      []Param{nullable("value")},
			Invoke: func(in *Invocation) (Result, error) {
				return BoolResult(stringx.IsString(in.Ptr(0))), nil
			},
		},
		unary("trim", "strip leading and trailing whitespace", stringx.Trim),
		unary("trimLeft", "strip leading whitespace", stringx.TrimLeft),
		unary("trimRight", "strip trailing whitespace", stringx.TrimRight),
		{
			Name:        "padLeft",
			Description: "left-pad str to size with padStr",
			Params:      []Param{nullable("str"), integer("size"), optional(text("padStr"), " ")},
			Invoke: func(in *Invocation) (Result, error) {
				size, err := padSize(in, "padLeft")
				if err != nil {
					return Result{}, err
				}
				return MaybeText(stringx.PadLeft(in.Ptr(0), size, in.OptionalText(2)...)), nil
			},
		},
		{
			Name:        "padRight",
			Description: "right-pad str to size with padStr",
			Params:      []Param{nullable("str"), integer("size"), optional(text("padStr"), " ")},
			Invoke: func(in *Invocation) (Result, error) {
				size, err := padSize(in, "padRight")
				if err != nil {
					return Result{}, err
				}
				return MaybeText(stringx.PadRight(in.Ptr(0), size, in.OptionalText(2)...)), nil
			},
		},
		{
			Name:        "substr",
			Description: "length characters from start; negative start counts from the end",
			Params:      []Param{text("str"), integer("start"), optional(integer("length"), "rest")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(stringx.Substr(in.Text(0), in.Int(1), in.OptionalInt(2)...)), nil
			},
		},
		{
			Name:        "substring",
			Description: "characters in [start, stop), bounds clamped and ordered",
			Params:      []Param{text("str"), integer("start"), optional(integer("stop"), "length")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(stringx.Substring(in.Text(0), in.Int(1), in.OptionalInt(2)...)), nil
			},
		},
		{
			Name:        "split",
			Description: "pieces of str around each separator",
			Params:      []Param{text("str"), text("separator")},
			Invoke: func(in *Invocation) (Result, error) {
				return ListResult(stringx.Split(in.Text(0), in.Text(1))), nil
			},
		},
		{
			Name:        "replace",
			Description: "replace the first literal occurrence of rule",
			Params:      []Param{text("str"), text("rule"), text("replacement")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(stringx.Replace(in.Text(0), in.Text(1), in.Text(2))), nil
			},
		},
		{
			Name:        "replaceFirst",
			Description: "replace the first match of pattern, expanding $n",
			Params:      []Param{nullable("str"), nullable("pattern"), nullable("replacement")},
			Invoke: func(in *Invocation) (Result, error) {
				return MaybeText(stringx.ReplaceFirst(in.Ptr(0), in.Ptr(1), in.Ptr(2))), nil
			},
		},
		{
			Name:        "replaceAll",
			Description: "replace every match of findText (pattern unless --literal)",
			Params:      []Param{text("str"), text("findText"), text("replaceText")},
			Invoke: func(in *Invocation) (Result, error) {
				out, err := stringx.ReplaceAllMode(in.Text(0), in.Text(1), in.Text(2), in.Mode())
				if err != nil {
					return Result{}, err
				}
				return TextResult(out), nil
			},
		},
		{
			Name:        "stripHTML",
			Description: "remove every <...> tag; absent source yields empty",
			Params:      []Param{nullable("source")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(stringx.StripHTML(in.Ptr(0))), nil
			},
		},
		unary("toCamelCase", "join - and _ separated words in camel case", stringx.ToCamelCase),
		unary("toLowerCase", "lower-case every letter", stringx.ToLowerCase),
		unary("toUpperCase", "upper-case every letter", stringx.ToUpperCase),
		unary("toString", "str unchanged", stringx.ToString),
		{
			Name:        "valueOf",
			Description: "text form of value; absent yields null",
			Params:      []Param{nullable("value")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(stringx.ValueOf(in.Ptr(0))), nil
			},
		},
		unary("toJson", "quoted JSON string literal with ASCII-only output", stringx.ToJSON),
		{
			Name:        "format",
			Description: "substitute {{path}} tokens from the context",
			Params:      []Param{text("str")},
			Invoke: func(in *Invocation) (Result, error) {
				return TextResult(in.Format(in.Text(0))), nil
			},
		},
	}
}
