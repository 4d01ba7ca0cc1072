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

package printer_test

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/objcgen/internal/printer"
)

func TestIndent(t *testing.T) {
	t.Parallel()

	p := printer.New()
	p.Print("switch (x) {\n")
	p.Indent()
	p.Print("case 1:\n\n")
	p.Indent()
	p.Printf("return %s;\n", "YES")
	p.Outdent()
	p.Outdent()
	p.Print("}\n")

	assert.Equal(t, "switch (x) {\n  case 1:\n\n    return YES;\n}\n", p.String())
}

func TestPartialLines(t *testing.T) {
	t.Parallel()

	p := &printer.Printer{IndentString: "\t"}
	p.Indent()
	p.Print("a")
	p.Print("b\nc")
	p.Print("\n")
	p.Outdent()

	assert.Equal(t, "\tab\n\tc\n", p.String())
}

type record struct {
	Name string
}

func TestExecute(t *testing.T) {
	t.Parallel()

	tmpl := printer.Must("test", `{{define "ok"}}- (BOOL) has{{.Name}};
{{end}}{{define "bad"}}{{.Missing}}
{{end}}`, nil)

	p := printer.New()
	p.Indent()
	p.Execute(tmpl, "ok", record{Name: "Foo"})
	p.Outdent()
	assert.Equal(t, "  - (BOOL) hasFoo;\n", p.String())

	assert.Panics(t, func() {
		printer.New().Execute(tmpl, "bad", record{Name: "Foo"})
	})
	assert.Panics(t, func() {
		printer.New().Execute(tmpl, "bad", map[string]string{"Name": "Foo"})
	})
	assert.Panics(t, func() {
		printer.New().Execute(tmpl, "nonexistent", record{})
	})
}

func TestUnbalanced(t *testing.T) {
	t.Parallel()

	p := printer.New()
	require.Panics(t, p.Outdent)

	p.Indent()
	p.Print("x\n")
	require.Panics(t, func() { _ = p.Bytes() })
}

func TestMustRejectsBadSyntax(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		printer.Must("bad", "{{.Name", template.FuncMap{})
	})
}
