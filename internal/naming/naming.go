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

// Package naming derives Objective-C identifiers and file names from
// protobuf descriptors.
package naming

import (
	"path"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/bufbuild/objcgen/internal/cases"
)

var (
	fieldCamel  = cases.Converter{Case: cases.Camel, NaiveSplit: true, DigitBoundaries: true, NoLowercase: true}
	fieldPascal = cases.Converter{Case: cases.Pascal, NaiveSplit: true, DigitBoundaries: true, NoLowercase: true}
	valuePascal = cases.Converter{Case: cases.Pascal, NaiveSplit: true, DigitBoundaries: true}
)

// FileClassPrefix returns the objc_class_prefix file option, or the empty
// string if file does not set one.
func FileClassPrefix(file protoreflect.FileDescriptor) string {
	opts, _ := file.Options().(*descriptorpb.FileOptions)
	return opts.GetObjcClassPrefix()
}

// ClassName returns the Objective-C class (or typedef) name for a message
// or enum. Nested declarations are joined to their parents with '_', and
// the whole name carries the file's class prefix.
func ClassName(d protoreflect.Descriptor) string {
	var names []string
	for cur := d; ; {
		names = append(names, string(cur.Name()))
		parent, ok := cur.Parent().(protoreflect.MessageDescriptor)
		if !ok {
			break
		}
		cur = parent
	}
	slices.Reverse(names)
	return FileClassPrefix(d.ParentFile()) + strings.Join(names, "_")
}

// FieldName returns the camelCase property name for a field.
func FieldName(fd protoreflect.FieldDescriptor) string {
	name := fieldCamel.Convert(string(fd.Name()))
	if r, size := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
		name = string(unicode.ToLower(r)) + name[size:]
	}
	return SafeName(name)
}

// CapitalizedFieldName returns the PascalCase name for a field, used in
// selectors such as hasFoo and setFoo:.
func CapitalizedFieldName(fd protoreflect.FieldDescriptor) string {
	return fieldPascal.Convert(string(fd.Name()))
}

// EnumValueName returns the name of the constant for an enum value: the
// enum's class name followed by the PascalCase value name.
func EnumValueName(v protoreflect.EnumValueDescriptor) string {
	return ClassName(v.Parent()) + valuePascal.Convert(string(v.Name()))
}

// FilePath returns the output path of a file without extension, e.g.
// "foo/bar_baz.proto" becomes "foo/BarBaz".
func FilePath(file protoreflect.FileDescriptor) string {
	dir, base := path.Split(file.Path())
	return dir + cases.Pascal.Convert(strings.TrimSuffix(base, ".proto"))
}

// HeaderPath is the path of the generated header for file.
func HeaderPath(file protoreflect.FileDescriptor) string {
	return FilePath(file) + ".pb.h"
}

// SourcePath is the path of the generated implementation for file.
func SourcePath(file protoreflect.FileDescriptor) string {
	return FilePath(file) + ".pb.m"
}

// RootClassName is the name of the per-file class that owns the
// extension registry.
func RootClassName(file protoreflect.FileDescriptor) string {
	base := strings.TrimSuffix(path.Base(file.Path()), ".proto")
	return FileClassPrefix(file) + cases.Pascal.Convert(base) + "Root"
}

// SafeName appends an underscore to names that collide with C or
// Objective-C keywords, or with selectors every NSObject already has.
func SafeName(name string) string {
	if _, ok := reserved[name]; ok {
		return name + "_"
	}
	return name
}

var reserved = func() map[string]struct{} {
	words := []string{
		// C
		"auto", "break", "case", "char", "const", "continue", "default", "do",
		"double", "else", "enum", "extern", "float", "for", "goto", "if",
		"inline", "int", "long", "register", "restrict", "return", "short",
		"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
		"unsigned", "void", "volatile", "while",
		// Objective-C
		"id", "self", "super", "nil", "Nil", "YES", "NO", "BOOL", "SEL", "IMP",
		"in", "out", "inout", "bycopy", "byref", "oneway", "Class", "Protocol",
		// NSObject
		"alloc", "autorelease", "class", "copy", "dealloc", "description",
		"hash", "init", "new", "release", "retain", "retainCount", "zone",
		// PBGeneratedMessage
		"builder", "defaultInstance", "serializedSize", "unknownFields",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
