// File: match.go
// Title: Prefix, Suffix, Replace and Split
// Description: Implements the pattern-aware prefix and suffix checks, the
//              replace family and the split helpers. Patterns use Go RE2
//              syntax. MatchLiteral turns pattern interpretation off.
// Author: msto63
// Version: v0.1.2
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Compiled patterns are cached
// - 2026-10-18 v0.1.2: Documented replacement reference syntax

package stringx

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/internal/cache"
)

const moduleName = "stringx"

// compiled holds a pattern's compile result, failures included
type compiled struct {
	re  *regexp.Regexp
	err error
}

var patterns = cache.New[string, compiled](cache.DefaultConfig())

// compile returns the cached compilation of expr
func compile(expr string) (*regexp.Regexp, error) {
	c := patterns.GetOrSet(expr, func() compiled {
		re, err := regexp.Compile(expr)
		return compiled{re: re, err: err}
	})
	return c.re, c.err
}

// MatchMode selects how prefix, suffix and find arguments are interpreted.
type MatchMode int

const (
	// MatchPattern treats the argument as a regular expression.
	MatchPattern MatchMode = iota
	// MatchLiteral treats the argument as plain text.
	MatchLiteral
)

// String returns the configuration name of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchPattern:
		return "pattern"
	case MatchLiteral:
		return "literal"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode parses "pattern" or "literal". The empty string selects
// MatchPattern.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pattern":
		return MatchPattern, nil
	case "literal":
		return MatchLiteral, nil
	}
	return MatchPattern, errors.InvalidInput(moduleName, "parseMatchMode", s, "pattern or literal")
}

// Rule is a replace rule: literal text or a compiled expression.
type Rule interface {
	string | *regexp.Regexp
}

// StartWith reports whether source begins with a match of prefix, read as a
// pattern anchored at the start. Two absent values match, a single absent
// value does not, and a prefix that does not compile never matches.
//
//	StartWith("hello", "he")      = true
//	StartWith("hello", "h.l")     = true
//	StartWith("hello", "(")       = false
func StartWith[S Text](source, prefix S) bool {
	return StartWithMode(source, prefix, MatchPattern)
}

// StartWithMode is StartWith with an explicit match mode.
func StartWithMode[S Text](source, prefix S, mode MatchMode) bool {
	return anchoredMatch(source, prefix, mode, true)
}

// EndWith reports whether source ends with a match of suffix, read as a
// pattern anchored at the end. Absent values follow StartWith.
//
//	EndWith("hello", "lo")  = true
//	EndWith("hello", "l.")  = true
func EndWith[S Text](source, suffix S) bool {
	return EndWithMode(source, suffix, MatchPattern)
}

// EndWithMode is EndWith with an explicit match mode.
func EndWithMode[S Text](source, suffix S, mode MatchMode) bool {
	return anchoredMatch(source, suffix, mode, false)
}

func anchoredMatch[S Text](source, affix S, mode MatchMode, atStart bool) bool {
	src, srcOK := deref(source)
	a, affixOK := deref(affix)
	if !srcOK || !affixOK {
		return !srcOK && !affixOK
	}

	if mode == MatchLiteral {
		if atStart {
			return strings.HasPrefix(src, a)
		}
		return strings.HasSuffix(src, a)
	}

	// the anchor is concatenated, not grouped: "^a|b" matches "b" anywhere
	expr := a + "$"
	if atStart {
		expr = "^" + a
	}
	re, err := compile(expr)
	if err != nil {
		return false
	}
	return re.MatchString(src)
}

// Replace replaces the first occurrence of rule in str. A string rule is
// matched literally and its replacement is inserted verbatim. A *regexp.Regexp
// rule replaces its first match and expands $1 style references.
//
//	Replace("a.b.c", ".", "-")                      = "a-b.c"
//	Replace("a1b2", regexp.MustCompile(`\d`), "#")  = "a#b2"
func Replace[R Rule](str string, rule R, replacement string) string {
	switch r := any(rule).(type) {
	case string:
		return strings.Replace(str, r, replacement, 1)
	case *regexp.Regexp:
		if r == nil {
			return str
		}
		return replaceFirstMatch(str, r, replacement)
	}
	return str
}

// ReplaceFirst replaces the first match of pattern in str, expanding $n
// references in replacement. A reference takes the longest run of name
// characters, so a group followed by letters or digits needs braces: "$1x"
// names group "1x" and expands to "", "${1}x" is group 1 then "x". JavaScript
// forms such as "$&" are copied literally. An absent str stays absent. An absent pattern,
// an absent replacement or a pattern that does not compile leave str
// unchanged.
//
//	ReplaceFirst("ABCabc123abc", "[^A-Z0-9]+", "_")                = "ABC_123abc"
//	ReplaceFirst("Lorem ipsum  dolor   sit", "( +)([a-z]+)", "_$2") = "Lorem_ipsum  dolor   sit"
func ReplaceFirst[S Text](str, pattern, replacement S) S {
	s, ok := deref(str)
	if !ok {
		return str
	}
	p, patternOK := deref(pattern)
	r, replacementOK := deref(replacement)
	if !patternOK || !replacementOK {
		return rewrap[S](s)
	}

	re, err := compile(p)
	if err != nil {
		return rewrap[S](s)
	}
	return rewrap[S](replaceFirstMatch(s, re, r))
}

func replaceFirstMatch(str string, re *regexp.Regexp, replacement string) string {
	match := re.FindStringSubmatchIndex(str)
	if match == nil {
		return str
	}
	expanded := re.ExpandString(nil, replacement, str, match)
	return str[:match[0]] + string(expanded) + str[match[1]:]
}

// ReplaceAll replaces every match of the pattern findText with replaceText,
// expanding $n references with the ReplaceFirst rules ("${1}x", not "$1x").
// A pattern that does not compile yields an INVALID_PATTERN error.
//
//	ReplaceAll("a-b-c", "-", "+")     = "a+b+c"
//	ReplaceAll("ab", "(a)", "${1}x")  = "axb"
func ReplaceAll(str, findText, replaceText string) (string, error) {
	return ReplaceAllMode(str, findText, replaceText, MatchPattern)
}

// ReplaceAllMode is ReplaceAll with an explicit match mode. In MatchLiteral
// mode findText and replaceText are both taken verbatim.
func ReplaceAllMode(str, findText, replaceText string, mode MatchMode) (string, error) {
	if mode == MatchLiteral {
		return strings.ReplaceAll(str, findText, replaceText), nil
	}

	re, err := compile(findText)
	if err != nil {
		return str, errors.InvalidPattern(moduleName, "replaceAll", findText, err)
	}
	return re.ReplaceAllString(str, replaceText), nil
}

// Split divides str around each literal separator.
//
//	Split("a,b,c", ",") = ["a" "b" "c"]
//	Split("", ",")      = [""]
//	Split("abc", "")    = ["a" "b" "c"]
func Split(str, separator string) []string {
	return strings.Split(str, separator)
}

// SplitPattern divides str around each match of re. A nil re yields str.
func SplitPattern(str string, re *regexp.Regexp) []string {
	if re == nil {
		return []string{str}
	}
	return re.Split(str, -1)
}

// SplitSeq returns an iterator over the pieces Split would return.
func SplitSeq(str, separator string) iter.Seq[string] {
	return strings.SplitSeq(str, separator)
}
