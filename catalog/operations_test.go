// File: operations_test.go
// Title: Built-in Operation Tests
// Description: Invokes every built-in operation through the registry and
//              checks results, including the absent-value truth tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package catalog

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	ierror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/core/log"
	"github.com/msto63/istring/utils/stringx"
)

func TestInvokeOperations(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		op   string
		args []*string
		mode stringx.MatchMode
		want string
		kind Kind
	}{
		{"charAt", Args("hello", "1"), stringx.MatchPattern, "e", KindText},
		{"charAt", Args("hello", "9"), stringx.MatchPattern, "", KindText},
		{"indexOf", Args("hello", "l"), stringx.MatchPattern, "2", KindInt},
		{"indexOf", Args("hello", "l", "3"), stringx.MatchPattern, "3", KindInt},
		{"lastIndexOf", Args("hello", "l"), stringx.MatchPattern, "3", KindInt},
		{"lastIndexOf", Args("hello", "l", " 2 "), stringx.MatchPattern, "2", KindInt},
		{"contains", Args("hello", "ell"), stringx.MatchPattern, "true", KindBool},
		{"startWith", Args("abcdef", "abc"), stringx.MatchPattern, "true", KindBool},
		{"startWith", []*string{nil, nil}, stringx.MatchPattern, "true", KindBool},
		{"startWith", []*string{nil, Text("abc")}, stringx.MatchPattern, "false", KindBool},
		{"startWith", nil, stringx.MatchPattern, "true", KindBool},
		{"startsWith", Args("abc", "a."), stringx.MatchLiteral, "false", KindBool},
		{"endWith", Args("abcdef", ""), stringx.MatchPattern, "true", KindBool},
		{"endWith", Args("ABCDEF", "def"), stringx.MatchPattern, "false", KindBool},
		{"isEmpty", []*string{nil}, stringx.MatchPattern, "false", KindBool},
		{"isEmpty", Args(""), stringx.MatchPattern, "true", KindBool},
		{"isNotEmpty", []*string{nil}, stringx.MatchPattern, "true", KindBool},
		{"isNullOrEmpty", []*string{nil}, stringx.MatchPattern, "true", KindBool},
		{"isNotNullOrEmpty", Args("x"), stringx.MatchPattern, "true", KindBool},
		{"isBlank", []*string{nil}, stringx.MatchPattern, "true", KindBool},
		{"isBlank", Args("\u3000"), stringx.MatchPattern, "true", KindBool},
		{"isNotBlank", Args("  bob  "), stringx.MatchPattern, "true", KindBool},
		{"isString", Args("x"), stringx.MatchPattern, "true", KindBool},
		{"isString", []*string{nil}, stringx.MatchPattern, "false", KindBool},
		{"trim", Args("  bob  "), stringx.MatchPattern, "bob", KindText},
		{"trimLeft", Args("  bob  "), stringx.MatchPattern, "bob  ", KindText},
		{"trimRight", Args("  bob  "), stringx.MatchPattern, "  bob", KindText},
		{"padLeft", Args("bat", "8", "yz"), stringx.MatchPattern, "yzyzybat", KindText},
		{"padLeft", Args("bat", "5"), stringx.MatchPattern, "  bat", KindText},
		{"padLeft", []*string{nil, Text("5")}, stringx.MatchPattern, "null", KindNull},
		{"padRight", Args("bat", "8", "yz"), stringx.MatchPattern, "batyzyzy", KindText},
		{"substr", Args("hello", "-3"), stringx.MatchPattern, "llo", KindText},
		{"substr", Args("hello", "1", "3"), stringx.MatchPattern, "ell", KindText},
		{"substring", Args("hello", "1", "3"), stringx.MatchPattern, "el", KindText},
		{"split", Args("a,b", ","), stringx.MatchPattern, `["a", "b"]`, KindList},
		{"replace", Args("a.b.c", ".", "-"), stringx.MatchPattern, "a-b.c", KindText},
		{"replaceFirst", Args("ABCabc123abc", "[^A-Z0-9]+", "_"), stringx.MatchPattern, "ABC_123abc", KindText},
		{"replaceFirst", []*string{nil, Text("a"), Text("b")}, stringx.MatchPattern, "null", KindNull},
		{"replaceFirst", []*string{Text("any"), nil, Text("z")}, stringx.MatchPattern, "any", KindText},
		{"replaceAll", Args("a.b", ".", "x"), stringx.MatchPattern, "xxx", KindText},
		{"replaceAll", Args("a.b", ".", "x"), stringx.MatchLiteral, "axb", KindText},
		{"stripHTML", []*string{nil}, stringx.MatchPattern, "", KindText},
		{"strip", Args("<b>x</b>"), stringx.MatchPattern, "x", KindText},
		{"toCamelCase", Args("i-like_cock-oh-yeah_haha_haha"), stringx.MatchPattern, "iLikeCockOhYeahHahaHaha", KindText},
		{"lower", Args("ABC"), stringx.MatchPattern, "abc", KindText},
		{"toUpperCase", Args("abc"), stringx.MatchPattern, "ABC", KindText},
		{"toString", Args("abc"), stringx.MatchPattern, "abc", KindText},
		{"valueOf", []*string{nil}, stringx.MatchPattern, "null", KindText},
		{"toJSON", Args("a\"b\n"), stringx.MatchPattern, `"a\"b\n"`, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			res, err := r.Invoke(tt.op, Call{Args: tt.args, Mode: tt.mode})
			if err != nil {
				t.Fatalf("Invoke(%s) error = %v", tt.op, err)
			}
			if res.Kind != tt.kind {
				t.Errorf("Invoke(%s) kind = %v, want %v", tt.op, res.Kind, tt.kind)
			}
			if got := res.String(); got != tt.want {
				t.Errorf("Invoke(%s) = %q, want %q", tt.op, got, tt.want)
			}
		})
	}
}

func TestInvokeFormat(t *testing.T) {
	r := newTestRegistry(t)

	ctx := map[string]any{"country": "中国"}
	res, err := r.Invoke("format", Call{Args: Args("我是{{country}}人 {{x}}"), Context: ctx})
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "我是中国人 undefined" {
		t.Errorf("format = %q", res.Text)
	}

	res, err = r.Invoke("format", Call{Args: Args("{{x}}"), Missing: Text("?")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "?" {
		t.Errorf("format with missing = %q", res.Text)
	}

	res, err = r.Invoke("format", Call{Args: Args("[{{x}}]"), Missing: Text("")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "[]" {
		t.Errorf("format with empty missing = %q", res.Text)
	}
}

func TestInvokePadSizeLimit(t *testing.T) {
	r := newTestRegistry(t)

	for _, op := range []string{"padLeft", "padRight"} {
		_, err := r.Invoke(op, Call{Args: Args("bat", "4611686018427387904")})
		if !ierror.HasCode(err, ierror.CodeInvalidInput) {
			t.Errorf("%s with huge size: error = %v, want INVALID_INPUT", op, err)
		}

		res, err := r.Invoke(op, Call{Args: Args("bat", strconv.Itoa(stringx.MaxPadSize))})
		if err != nil {
			t.Fatalf("%s at MaxPadSize: %v", op, err)
		}
		if n := utf8.RuneCountInString(res.Text); n != stringx.MaxPadSize {
			t.Errorf("%s at MaxPadSize: length %d", op, n)
		}
	}
}

func TestDefaultContext(t *testing.T) {
	r, err := New(Options{
		Logger:         log.Discard(),
		DefaultContext: map[string]any{"app": "istring"},
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Invoke("format", Call{Args: Args("{{app}}")})
	if err != nil || res.Text != "istring" {
		t.Errorf("format = %q, %v", res.Text, err)
	}
}

func TestInvokeLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText, Output: &buf})

	r, err := New(Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Invoke("trim", Call{Args: Args(" x ")}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "operation=trim") {
		t.Errorf("log output %q lacks the operation", buf.String())
	}
}

func TestResultValue(t *testing.T) {
	if NullResult().Value() != nil {
		t.Error("null result value not nil")
	}
	if IntResult(3).Value() != 3 {
		t.Error("int result value")
	}
	if MaybeText(Text("x")).Value() != "x" {
		t.Error("text result value")
	}
}
