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

// Package fieldgen generates the Objective-C members, builder methods and
// coding logic for a single message field.
//
// Every field is classified as one [Kind]. What a kind emits for each [Op]
// is data: a table naming the template to run, or nothing. Templates read a
// closed record per kind family, and any reference the record cannot
// satisfy panics.
package fieldgen

import (
	"embed"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/internal/printer"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = printer.MustFS(templateFS, "templates/*.tmpl")

// singularValue is the template table shared by the singular scalar and
// string kinds, before per-kind overrides.
func singularValue(property, extension, dealloc, parsing string) [opCount]string {
	return [opCount]string{
		OpHasField:             "singular.hasField",
		OpField:                "singular.field",
		OpHasProperty:          "singular.hasProperty",
		OpProperty:             property,
		OpExtension:            extension,
		OpSynthesize:           "value.synthesize",
		OpDealloc:              dealloc,
		OpInit:                 "value.init",
		OpBuilderMembersHeader: "value.builderHeader",
		OpBuilderMembersSource: "value.builderSource",
		OpMerging:              "value.merging",
		OpParsing:              parsing,
		OpSerialization:        "value.serialization",
		OpSerializedSize:       "value.serializedSize",
	}
}

// repeated is the template table shared by every repeated kind.
func repeated(field, parsing, serialization, size string) [opCount]string {
	return [opCount]string{
		OpField:                field,
		OpMembersHeader:        "repeated.membersHeader",
		OpExtension:            "repeated.extension",
		OpSynthesize:           "repeated.synthesize",
		OpMembersSource:        "repeated.membersSource",
		OpDealloc:              "repeated.dealloc",
		OpBuilderMembersHeader: "repeated.builderHeader",
		OpBuilderMembersSource: "repeated.builderSource",
		OpMerging:              "repeated.merging",
		OpParsing:              parsing,
		OpSerialization:        serialization,
		OpSerializedSize:       size,
	}
}

// packable adds the length-delimited parse of a numeric or enum kind.
// Parsers accept both encodings whether or not the field is declared
// packed.
func packable(ops [opCount]string, packedParsing string) [opCount]string {
	ops[OpPackedParsing] = packedParsing
	return ops
}

// table names the template each kind runs for each op. An empty name
// means the kind emits nothing for that op.
var table = [kindCount][opCount]string{
	SingularMessage: {
		OpHasField:             "singular.hasField",
		OpField:                "singular.field",
		OpHasProperty:          "singular.hasProperty",
		OpProperty:             "message.property",
		OpExtension:            "singular.extension",
		OpSynthesize:           "message.synthesize",
		OpDealloc:              "singular.dealloc",
		OpInit:                 "message.init",
		OpBuilderMembersHeader: "message.builderHeader",
		OpBuilderMembersSource: "message.builderSource",
		OpMerging:              "message.merging",
		OpParsing:              "message.parsing",
		OpSerialization:        "message.serialization",
		OpSerializedSize:       "message.serializedSize",
	},
	RepeatedMessage: repeated(
		"repeated.field",
		"message.repeatedParsing",
		"message.repeatedSerialization",
		"message.repeatedSerializedSize",
	),
	SingularScalar: singularValue("scalar.property", "scalar.extension", "", "value.parsing"),
	RepeatedScalar: packable(repeated(
		"scalar.repeatedField",
		"scalar.repeatedParsing",
		"scalar.repeatedSerialization",
		"scalar.repeatedSerializedSize",
	), "scalar.packedParsing"),
	SingularEnum: singularValue("scalar.property", "scalar.extension", "", "enum.parsing"),
	RepeatedEnum: packable(repeated(
		"scalar.repeatedField",
		"enum.repeatedParsing",
		"scalar.repeatedSerialization",
		"scalar.repeatedSerializedSize",
	), "enum.packedParsing"),
	SingularString: singularValue("string.property", "string.extension", "singular.dealloc", "value.parsing"),
	RepeatedString: repeated(
		"repeated.field",
		"string.repeatedParsing",
		"string.repeatedSerialization",
		"string.repeatedSerializedSize",
	),
}

func init() {
	for _, k := range Kinds() {
		if families[k] == 0 {
			panic(fmt.Sprintf("fieldgen: kind %v has no template data", k))
		}
		for _, op := range Ops() {
			name := table[k][op]
			if name != "" && templates.Lookup(name) == nil {
				panic(fmt.Sprintf("fieldgen: %v/%v names undefined template %q", k, op, name))
			}
		}
	}
}

// Field generates code for one field.
type Field struct {
	desc protoreflect.FieldDescriptor
	kind Kind
	vars Variables
	data any
}

// New classifies fd and derives its variables. It panics if fd is a
// message or enum field whose type is unresolved.
func New(fd protoreflect.FieldDescriptor) *Field {
	kind := KindOf(fd)
	vars := Derive(fd)
	return &Field{
		desc: fd,
		kind: kind,
		vars: vars,
		data: newData(kind, fd, vars),
	}
}

// Descriptor returns the field this generator was built for.
func (f *Field) Descriptor() protoreflect.FieldDescriptor {
	return f.desc
}

// Kind returns the field's kind.
func (f *Field) Kind() Kind {
	return f.kind
}

// Variables returns the field's derived names and types.
func (f *Field) Variables() Variables {
	return f.vars
}

// Packed reports whether a repeated numeric or enum field is written as a
// single length-delimited run.
func (f *Field) Packed() bool {
	data, ok := f.data.(scalarVars)
	return ok && data.Packed
}

// Tag is the wire tag that introduces one occurrence of this field, as the
// int32_t the Objective-C runtime's readTag returns. Tags of field numbers
// from 2^28 upward wrap to negative values there, and so they do here.
func (f *Field) Tag() int32 {
	return int32(protowire.EncodeTag(f.desc.Number(), f.wireType()))
}

// PackedTag is the tag of the length-delimited form of a packable field.
// ok is false for fields that have no such form.
func (f *Field) PackedTag() (tag int32, ok bool) {
	if !f.Emits(OpPackedParsing) {
		return 0, false
	}
	return int32(protowire.EncodeTag(f.desc.Number(), protowire.BytesType)), true
}

func (f *Field) wireType() protowire.Type {
	switch f.desc.Kind() {
	case protoreflect.GroupKind:
		return protowire.StartGroupType
	case protoreflect.MessageKind, protoreflect.StringKind, protoreflect.BytesKind:
		return protowire.BytesType
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return protowire.Fixed32Type
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return protowire.Fixed64Type
	default:
		return protowire.VarintType
	}
}

// Emits reports whether the field produces any text for op.
func (f *Field) Emits(op Op) bool {
	return table[f.kind][op] != ""
}

// Emit prints the field's code for op, if it has any.
func (f *Field) Emit(p *printer.Printer, op Op) {
	if name := table[f.kind][op]; name != "" {
		p.Execute(templates, name, f.data)
	}
}
