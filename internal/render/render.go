// ============================================================================
// istring - String Utilities
// ============================================================================
//
// Package:     render
// Description: Terminal rendering of results, diffs and operation listings
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/msto63/istring/catalog"
	ierror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/utils/stringx"
)

// Options configures a Renderer
type Options struct {
	Color  bool      // style output with lipgloss when Output supports color
	Quote  bool      // print text results as JSON string literals
	Output io.Writer // destination of the rendered text, os.Stdout if nil
}

// Renderer turns catalog output into terminal text
type Renderer struct {
	styles Styles
	color  bool
	quote  bool
}

// New creates a renderer. Color falls back to plain output when Output is
// not a terminal, so diffs keep their text markers when piped.
func New(opts Options) *Renderer {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	r := &Renderer{styles: PlainStyles(), quote: opts.Quote}
	if opts.Color {
		lr := lipgloss.NewRenderer(out)
		if lr.ColorProfile() != termenv.Ascii {
			r.styles = DefaultStyles(lr)
			r.color = true
		}
	}
	return r
}

// Colored reports whether output is styled
func (r *Renderer) Colored() bool {
	return r.color
}

// Result renders an invocation result. Lists are printed one item per line.
func (r *Renderer) Result(res catalog.Result) string {
	switch res.Kind {
	case catalog.KindText:
		return r.text(res.Text)
	case catalog.KindNull:
		return r.styles.Null.Render("null")
	case catalog.KindBool:
		return r.styles.Bool.Render(res.String())
	case catalog.KindInt:
		return r.styles.Number.Render(res.String())
	case catalog.KindList:
		lines := make([]string, len(res.List))
		for i, item := range res.List {
			lines[i] = r.text(item)
		}
		return strings.Join(lines, "\n")
	}
	return res.String()
}

func (r *Renderer) text(s string) string {
	if r.quote {
		return stringx.ToJSON(s)
	}
	return s
}

// Diff renders the character changes turning before into after. Without
// color, deletions are shown as [-text-] and insertions as {+text+}.
func (r *Renderer) Diff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			if r.color {
				b.WriteString(r.styles.Removed.Render(d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if r.color {
				b.WriteString(r.styles.Added.Render(d.Text))
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		}
	}
	return b.String()
}

// Error renders an error with its code
func (r *Renderer) Error(err error) string {
	code := ierror.GetCode(err)
	if code == ierror.CodeUnknown {
		return r.styles.Error.Render("error:") + " " + err.Error()
	}
	return fmt.Sprintf("%s %s %s", r.styles.Error.Render("error:"), r.styles.Muted.Render("["+code.String()+"]"), err.Error())
}

// Operations renders one line per operation: signature, description and
// aliases.
func (r *Renderer) Operations(c catalog.Interface) string {
	type row struct {
		signature   string
		description string
		aliases     []string
	}

	var rows []row
	width := 0
	for _, name := range c.Names() {
		op, err := c.Lookup(name)
		if err != nil {
			continue
		}
		sig := Signature(op)
		width = max(width, len([]rune(sig)))
		rows = append(rows, row{signature: sig, description: op.Description, aliases: c.AliasesOf(name)})
	}

	var b strings.Builder
	for _, rw := range rows {
		pad := strings.Repeat(" ", width-len([]rune(rw.signature)))
		b.WriteString(r.styles.Name.Render(rw.signature))
		b.WriteString(pad)
		b.WriteString("  ")
		b.WriteString(rw.description)
		if len(rw.aliases) > 0 {
			b.WriteString(r.styles.Muted.Render(" (alias: " + strings.Join(rw.aliases, ", ") + ")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Signature formats an operation as name(param, param?, [param=default])
func Signature(op *catalog.Operation) string {
	params := make([]string, len(op.Params))
	for i, p := range op.Params {
		s := p.Name
		if p.Kind == catalog.ParamInt {
			s += ":int"
		}
		if p.Nullable {
			s += "?"
		}
		if !p.Required {
			s = "[" + s
			if p.Default != "" {
				s += "=" + p.Default
			}
			s += "]"
		}
		params[i] = s
	}
	return op.Name + "(" + strings.Join(params, ", ") + ")"
}
