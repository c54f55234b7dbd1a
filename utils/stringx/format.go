// File: format.go
// Title: Template Formatting
// Description: Implements {{path.to.value}} substitution. Paths are walked
//              through maps with string keys, slices and arrays by index,
//              and exported struct fields, following pointers and
//              interfaces. A missing value renders as "undefined".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"reflect"
	"regexp"
	"strconv"

	"github.com/msto63/istring/core/log"
)

// Undefined is substituted for tokens whose path does not resolve.
const Undefined = "undefined"

var (
	templateToken = regexp.MustCompile(`\{\{([\w.]+?)\}\}`)
	pathSeparator = regexp.MustCompile(`\.+`)
)

// Formatter substitutes template tokens. The zero value is not usable,
// create one with NewFormatter.
type Formatter struct {
	root    any
	missing string
	logger  *log.Logger
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithDefaultContext sets the root used when Format receives a nil context.
func WithDefaultContext(root any) FormatterOption {
	return func(f *Formatter) {
		f.root = root
	}
}

// WithMissing sets the text substituted for unresolved paths.
func WithMissing(text string) FormatterOption {
	return func(f *Formatter) {
		f.missing = text
	}
}

// WithLogger makes the formatter report unresolved paths at debug level.
func WithLogger(logger *log.Logger) FormatterOption {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// NewFormatter creates a Formatter whose default root is an empty map.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		root:    map[string]any{},
		missing: Undefined,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = NewFormatter()

// Format replaces each {{path}} token in str with the value found by walking
// context along the dot-separated path. A nil context resolves against an
// empty map, so every token renders as "undefined".
//
//	Format("我是{{country}}人", map[string]any{"country": "中国"}) = "我是中国人"
//	Format("{{a.b}}", map[string]any{"a": map[string]any{}})      = "undefined"
func Format(str string, context any) string {
	return defaultFormatter.Format(str, context)
}

// Format replaces each token in str, using the formatter's default root when
// context is nil.
func (f *Formatter) Format(str string, context any) string {
	if isNil(context) {
		context = f.root
	}

	return templateToken.ReplaceAllStringFunc(str, func(token string) string {
		path := token[2 : len(token)-2]
		value, ok := Resolve(context, path)
		if !ok {
			if f.logger != nil {
				f.logger.Debug("template path not resolved", log.Fields{"path": path})
			}
			return f.missing
		}
		return ValueOf(value)
	})
}

// Resolve walks root along path, splitting it at runs of dots. It reports
// false when a segment is missing or an intermediate value is nil. A final
// nil value resolves successfully.
func Resolve(root any, path string) (any, bool) {
	current := root
	for _, segment := range pathSeparator.Split(path, -1) {
		next, ok := lookup(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func lookup(value any, key string) (any, bool) {
	if m, ok := value.(map[string]any); ok {
		v, found := m[key]
		return v, found
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() || strconv.Itoa(i) != key {
			return nil, false
		}
		return rv.Index(i).Interface(), true

	case reflect.Struct:
		field := rv.FieldByName(key)
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true
	}
	return nil, false
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
