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

package msggen

import (
	_ "embed"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/enumgen"
	"github.com/bufbuild/objcgen/internal/naming"
	"github.com/bufbuild/objcgen/internal/printer"
	"github.com/bufbuild/objcgen/reporter"
)

//go:embed file.tmpl
var fileText string

var fileTmpl = printer.Must("file.tmpl", fileText, nil)

// FileGenerator generates the header and implementation for one proto
// file.
type FileGenerator struct {
	desc     protoreflect.FileDescriptor
	data     fileData
	enums    []*enumgen.Generator
	messages []*Message
}

type fileData struct {
	Source, Header, Root string
	// Imports are the headers of the file's dependencies.
	Imports []string
	// Classes are the message classes this file defines.
	Classes []string
	// Roots are the root classes of the file's dependencies.
	Roots []string
}

// NewFileGenerator prepares generators for everything declared in fd.
//
// Extensions and services are not generated; each is reported to h as a
// warning. Two declarations that map to the same class name are reported
// to h as an error, and the error returned by h, if any, is returned.
func NewFileGenerator(fd protoreflect.FileDescriptor, h *reporter.Handler) (*FileGenerator, error) {
	if h == nil {
		h = reporter.NewHandler(nil)
	}
	g := &FileGenerator{
		desc: fd,
		data: fileData{
			Source: fd.Path(),
			Header: naming.HeaderPath(fd),
			Root:   naming.RootClassName(fd),
		},
	}

	var imports, roots sortedSet
	for i := range fd.Imports().Len() {
		dep := fd.Imports().Get(i)
		imports.Add(naming.HeaderPath(dep))
		roots.Add(naming.RootClassName(dep))
	}
	g.data.Imports = imports.Sorted()
	g.data.Roots = roots.Sorted()

	for i := range fd.Enums().Len() {
		g.enums = append(g.enums, enumgen.New(fd.Enums().Get(i)))
	}
	var messages []*Message
	required := newRequiredCache()
	for i := range fd.Messages().Len() {
		messages = append(messages, newMessage(fd.Messages().Get(i), required))
	}
	for _, m := range messages {
		g.flatten(m)
	}

	warnUnsupported(fd, h)

	var classes sortedSet
	owners := make(map[string]protoreflect.Descriptor)
	claim := func(name string, d protoreflect.Descriptor) error {
		if prev, ok := owners[name]; ok {
			return h.HandleErrorf(reporter.PosOf(d),
				"%s and %s both generate Objective-C type %q", prev.FullName(), d.FullName(), name)
		}
		owners[name] = d
		return nil
	}
	for _, e := range g.enums {
		if err := claim(e.ClassName(), e.Descriptor()); err != nil {
			return nil, err
		}
	}
	for _, m := range g.messages {
		if err := claim(m.ClassName(), m.Descriptor()); err != nil {
			return nil, err
		}
		classes.Add(m.ClassName())
	}
	g.data.Classes = classes.Sorted()
	return g, nil
}

// flatten records m's enums and nested messages ahead of m itself.
func (g *FileGenerator) flatten(m *Message) {
	g.enums = append(g.enums, m.Enums()...)
	for _, nested := range m.Nested() {
		g.flatten(nested)
	}
	g.messages = append(g.messages, m)
}

func warnUnsupported(fd protoreflect.FileDescriptor, h *reporter.Handler) {
	warnExtensions := func(exts protoreflect.ExtensionDescriptors) {
		for i := range exts.Len() {
			ext := exts.Get(i)
			h.HandleWarningf(reporter.PosOf(ext), "extension %s is not generated", ext.FullName())
		}
	}
	var walk func(protoreflect.MessageDescriptors)
	walk = func(msgs protoreflect.MessageDescriptors) {
		for i := range msgs.Len() {
			md := msgs.Get(i)
			if md.ExtensionRanges().Len() > 0 {
				h.HandleWarningf(reporter.PosOf(md),
					"%s declares extension ranges; it is generated as a plain message", md.FullName())
			}
			warnExtensions(md.Extensions())
			walk(md.Messages())
		}
	}
	warnExtensions(fd.Extensions())
	walk(fd.Messages())

	for i := range fd.Services().Len() {
		svc := fd.Services().Get(i)
		h.HandleWarningf(reporter.PosOf(svc), "service %s is not generated", svc.FullName())
	}
}

// Descriptor returns the file this generator was built for.
func (g *FileGenerator) Descriptor() protoreflect.FileDescriptor {
	return g.desc
}

// HeaderPath is the output path of the generated header.
func (g *FileGenerator) HeaderPath() string {
	return g.data.Header
}

// SourcePath is the output path of the generated implementation.
func (g *FileGenerator) SourcePath() string {
	return naming.SourcePath(g.desc)
}

// Messages returns generators for every message in the file, nested ones
// before the messages that contain them.
func (g *FileGenerator) Messages() []*Message {
	return g.messages
}

// Enums returns generators for every enum in the file: top-level enums
// first, then nested ones in message order.
func (g *FileGenerator) Enums() []*enumgen.Generator {
	return g.enums
}

// Header returns the contents of the generated header.
func (g *FileGenerator) Header() []byte {
	p := printer.New()
	p.Execute(fileTmpl, "header.imports", g.data)
	for _, e := range g.enums {
		e.EmitDeclaration(p)
	}
	p.Execute(fileTmpl, "header.root", g.data)
	for _, m := range g.messages {
		m.EmitHeader(p)
	}
	return p.Bytes()
}

// Source returns the contents of the generated implementation.
func (g *FileGenerator) Source() []byte {
	p := printer.New()
	p.Execute(fileTmpl, "source.root", g.data)
	for _, e := range g.enums {
		e.EmitDefinition(p)
		p.Print("\n")
	}
	for _, m := range g.messages {
		m.EmitSource(p)
	}
	return p.Bytes()
}
