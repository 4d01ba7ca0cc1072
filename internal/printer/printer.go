// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package printer is an indentation-aware text sink for generated code.
//
// Named placeholders are substituted with [text/template]. Templates are
// executed against closed record types, so a placeholder that names a field
// the record does not have is an execution error; the printer treats any
// such error as a bug in the generator and panics.
package printer

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// DefaultIndent is the string used for one level of indentation.
const DefaultIndent = "  "

// Printer accumulates generated text. Every line written while the
// printer is indented is prefixed with the indent string; blank lines are
// left empty.
//
// A zero Printer is ready to use and indents with [DefaultIndent].
type Printer struct {
	IndentString string

	buf     bytes.Buffer
	scratch bytes.Buffer
	level   int
}

// New returns an empty printer.
func New() *Printer {
	return &Printer{}
}

// Indent increases the indentation level by one.
func (p *Printer) Indent() {
	p.level++
}

// Outdent decreases the indentation level by one.
func (p *Printer) Outdent() {
	if p.level == 0 {
		panic("printer: Outdent() without matching Indent()")
	}
	p.level--
}

// Print writes text verbatim, applying indentation at the start of each
// non-empty line.
func (p *Printer) Print(text string) {
	for len(text) > 0 {
		line, rest, newline := strings.Cut(text, "\n")
		if line != "" {
			if p.atLineStart() {
				p.writeIndent()
			}
			p.buf.WriteString(line)
		}
		if newline {
			p.buf.WriteByte('\n')
		}
		text = rest
	}
}

// Printf is like [Printer.Print] but formats its arguments with
// [fmt.Sprintf] first.
func (p *Printer) Printf(format string, args ...any) {
	p.Print(fmt.Sprintf(format, args...))
}

// Execute runs the named template from t against data and prints the
// result. Any execution failure, including a reference to a placeholder
// that data does not define, panics.
func (p *Printer) Execute(t *template.Template, name string, data any) {
	p.scratch.Reset()
	if err := t.ExecuteTemplate(&p.scratch, name, data); err != nil {
		panic(fmt.Sprintf("printer: executing template %q: %v", name, err))
	}
	p.Print(p.scratch.String())
}

// Bytes returns the text printed so far. The printer must be back at
// indentation level zero.
func (p *Printer) Bytes() []byte {
	if p.level != 0 {
		panic(fmt.Sprintf("printer: output requested at indentation level %d", p.level))
	}
	return p.buf.Bytes()
}

// String is like [Printer.Bytes], but returns a string.
func (p *Printer) String() string {
	return string(p.Bytes())
}

func (p *Printer) atLineStart() bool {
	n := p.buf.Len()
	return n == 0 || p.buf.Bytes()[n-1] == '\n'
}

func (p *Printer) writeIndent() {
	indent := p.IndentString
	if indent == "" {
		indent = DefaultIndent
	}
	for range p.level {
		p.buf.WriteString(indent)
	}
}

// Must parses a set of templates, panicking on a syntax error. Parsed
// templates refuse to substitute missing map keys.
func Must(name, text string, funcs template.FuncMap) *template.Template {
	return template.Must(template.New(name).
		Option("missingkey=error").
		Funcs(funcs).
		Parse(text))
}

// MustFS is like [Must], but parses every template file in fsys matching
// patterns into one set.
func MustFS(fsys fs.FS, patterns ...string) *template.Template {
	return template.Must(template.New("").
		Option("missingkey=error").
		ParseFS(fsys, patterns...))
}
