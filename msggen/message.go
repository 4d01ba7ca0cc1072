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

// Package msggen assembles complete Objective-C message classes and files
// from the field and enum generators.
package msggen

import (
	"cmp"
	_ "embed"
	"slices"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/enumgen"
	"github.com/bufbuild/objcgen/fieldgen"
	"github.com/bufbuild/objcgen/internal/naming"
	"github.com/bufbuild/objcgen/internal/printer"
)

//go:embed message.tmpl
var messageText string

var messageTmpl = printer.Must("message.tmpl", messageText, nil)

// Message generates a message class and its builder. Nested messages and
// enums get generators of their own, reachable through [Message.Nested]
// and [Message.Enums].
type Message struct {
	desc     protoreflect.MessageDescriptor
	data     messageData
	fields   []*fieldgen.Field
	byNumber []*fieldgen.Field
	enums    []*enumgen.Generator
	nested   []*Message
}

type messageData struct {
	ClassName string
	HasPacked bool
	// Required holds the capitalized names of required fields.
	Required []string
	// Nested holds message fields whose type has required fields of its
	// own, directly or further down.
	Nested []nestedCheck
}

type nestedCheck struct {
	fieldgen.Variables
	Repeated bool
}

// NewMessage prepares generators for md, its fields, and everything
// nested in it.
func NewMessage(md protoreflect.MessageDescriptor) *Message {
	return newMessage(md, newRequiredCache())
}

func newMessage(md protoreflect.MessageDescriptor, required *requiredCache) *Message {
	m := &Message{
		desc: md,
		data: messageData{ClassName: naming.ClassName(md)},
	}

	fields := md.Fields()
	for i := range fields.Len() {
		fd := fields.Get(i)
		f := fieldgen.New(fd)
		m.fields = append(m.fields, f)

		if f.Packed() {
			m.data.HasPacked = true
		}
		if fd.Cardinality() == protoreflect.Required {
			m.data.Required = append(m.data.Required, f.Variables().CapitalizedName)
		}
		if f.Kind().IsMessage() && required.has(fd.Message()) {
			m.data.Nested = append(m.data.Nested, nestedCheck{
				Variables: f.Variables(),
				Repeated:  f.Kind().IsRepeated(),
			})
		}
	}
	m.byNumber = slices.Clone(m.fields)
	slices.SortStableFunc(m.byNumber, func(a, b *fieldgen.Field) int {
		return cmp.Compare(a.Descriptor().Number(), b.Descriptor().Number())
	})

	for i := range md.Enums().Len() {
		m.enums = append(m.enums, enumgen.New(md.Enums().Get(i)))
	}
	for i := range md.Messages().Len() {
		m.nested = append(m.nested, newMessage(md.Messages().Get(i), required))
	}
	return m
}

// Descriptor returns the message this generator was built for.
func (m *Message) Descriptor() protoreflect.MessageDescriptor {
	return m.desc
}

// ClassName returns the name of the generated class.
func (m *Message) ClassName() string {
	return m.data.ClassName
}

// Fields returns the field generators in declaration order.
func (m *Message) Fields() []*fieldgen.Field {
	return m.fields
}

// Enums returns generators for the enums declared directly in the message.
func (m *Message) Enums() []*enumgen.Generator {
	return m.enums
}

// Nested returns generators for the messages declared directly in the
// message.
func (m *Message) Nested() []*Message {
	return m.nested
}

// EmitHeader prints the @interface of the message class and its builder.
func (m *Message) EmitHeader(p *printer.Printer) {
	p.Execute(messageTmpl, "header.open", m.data)
	p.Indent()
	m.each(p, m.fields, fieldgen.OpHasField)
	m.each(p, m.fields, fieldgen.OpField)
	p.Outdent()
	p.Print("}\n\n")

	for _, f := range m.fields {
		f.Emit(p, fieldgen.OpHasProperty)
		f.Emit(p, fieldgen.OpProperty)
		f.Emit(p, fieldgen.OpMembersHeader)
	}
	p.Execute(messageTmpl, "header.methods", m.data)
	m.each(p, m.fields, fieldgen.OpBuilderMembersHeader)
	p.Print("@end\n\n")
}

// EmitSource prints the @implementation of the message class and its
// builder. Serialization, size and parsing visit fields in field number
// order; everything else follows declaration order.
func (m *Message) EmitSource(p *printer.Printer) {
	p.Execute(messageTmpl, "source.open", m.data)
	m.each(p, m.fields, fieldgen.OpExtension)
	p.Execute(messageTmpl, "source.implementation", m.data)

	m.each(p, m.fields, fieldgen.OpSynthesize)
	m.each(p, m.fields, fieldgen.OpMembersSource)

	p.Print("- (void) dealloc {\n")
	p.Indent()
	m.each(p, m.fields, fieldgen.OpDealloc)
	p.Print("[super dealloc];\n")
	p.Outdent()
	p.Print("}\n")

	p.Print("- (id) init {\n  if ((self = [super init])) {\n")
	p.Indent()
	p.Indent()
	m.each(p, m.fields, fieldgen.OpInit)
	p.Outdent()
	p.Outdent()
	p.Print("  }\n  return self;\n}\n")

	p.Execute(messageTmpl, "source.defaultInstance", m.data)
	p.Indent()
	m.each(p, m.byNumber, fieldgen.OpSerialization)
	p.Outdent()

	p.Execute(messageTmpl, "source.serializedSize", m.data)
	p.Indent()
	m.each(p, m.byNumber, fieldgen.OpSerializedSize)
	p.Outdent()

	p.Execute(messageTmpl, "source.classMethods", m.data)
	p.Indent()
	m.each(p, m.fields, fieldgen.OpMerging)
	p.Outdent()

	p.Execute(messageTmpl, "source.parse", m.data)
	for range 3 {
		p.Indent()
	}
	for _, f := range m.byNumber {
		parseCase(p, f.Tag(), f, fieldgen.OpParsing)
		if tag, ok := f.PackedTag(); ok {
			parseCase(p, tag, f, fieldgen.OpPackedParsing)
		}
	}
	for range 3 {
		p.Outdent()
	}
	p.Execute(messageTmpl, "source.parseClose", m.data)

	m.each(p, m.fields, fieldgen.OpBuilderMembersSource)
	p.Print("@end\n\n")
}

func parseCase(p *printer.Printer, tag int32, f *fieldgen.Field, op fieldgen.Op) {
	p.Printf("case %d: {\n", tag)
	p.Indent()
	f.Emit(p, op)
	p.Print("break;\n")
	p.Outdent()
	p.Print("}\n")
}

func (m *Message) each(p *printer.Printer, fields []*fieldgen.Field, op fieldgen.Op) {
	for _, f := range fields {
		f.Emit(p, op)
	}
}

// requiredCache memoizes whether a message, or any message reachable
// through its fields, has required fields.
type requiredCache struct {
	known map[protoreflect.FullName]bool
}

func newRequiredCache() *requiredCache {
	return &requiredCache{known: make(map[protoreflect.FullName]bool)}
}

func (c *requiredCache) has(md protoreflect.MessageDescriptor) bool {
	if v, ok := c.known[md.FullName()]; ok {
		return v
	}
	v := reachesRequired(md, make(map[protoreflect.FullName]bool))
	c.known[md.FullName()] = v
	return v
}

func reachesRequired(md protoreflect.MessageDescriptor, seen map[protoreflect.FullName]bool) bool {
	if seen[md.FullName()] {
		return false
	}
	seen[md.FullName()] = true

	fields := md.Fields()
	for i := range fields.Len() {
		if fields.Get(i).Cardinality() == protoreflect.Required {
			return true
		}
	}
	for i := range fields.Len() {
		if msg := fields.Get(i).Message(); msg != nil && reachesRequired(msg, seen) {
			return true
		}
	}
	return false
}
