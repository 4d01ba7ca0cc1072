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

// Package enumgen generates the Objective-C typedef and validity predicate
// for a protobuf enum.
package enumgen

import (
	_ "embed"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/internal/naming"
	"github.com/bufbuild/objcgen/internal/printer"
)

//go:embed enum.tmpl
var tmplText string

var tmpl = printer.Must("enum.tmpl", tmplText, nil)

// Alias is an enum value whose number was already claimed by an earlier
// value, its canonical value.
type Alias struct {
	Value     protoreflect.EnumValueDescriptor
	Canonical protoreflect.EnumValueDescriptor
}

// Partition splits values into canonical values and aliases. The first
// value declared with a given number is canonical; every later value with
// that number is an alias of it. Canonical values keep declaration order.
//
// The two results are disjoint and together contain every value.
func Partition(values protoreflect.EnumValueDescriptors) (canonical []protoreflect.EnumValueDescriptor, aliases []Alias) {
	seen := make(map[protoreflect.EnumNumber]protoreflect.EnumValueDescriptor, values.Len())
	for i := range values.Len() {
		value := values.Get(i)
		if first, ok := seen[value.Number()]; ok {
			aliases = append(aliases, Alias{Value: value, Canonical: first})
			continue
		}
		seen[value.Number()] = value
		canonical = append(canonical, value)
	}
	return canonical, aliases
}

// Generator emits code for one enum.
type Generator struct {
	desc      protoreflect.EnumDescriptor
	canonical []protoreflect.EnumValueDescriptor
	aliases   []Alias
	data      enumData
}

type enumData struct {
	ClassName string
	Values    []constant
	Aliases   []aliasDef
}

type constant struct {
	Name   string
	Number protoreflect.EnumNumber
}

type aliasDef struct {
	Name, Canonical string
}

// New partitions the values of ed and prepares a generator for it.
func New(ed protoreflect.EnumDescriptor) *Generator {
	g := &Generator{desc: ed}
	g.canonical, g.aliases = Partition(ed.Values())

	g.data.ClassName = naming.ClassName(ed)
	for _, v := range g.canonical {
		g.data.Values = append(g.data.Values, constant{
			Name:   naming.EnumValueName(v),
			Number: v.Number(),
		})
	}
	for _, a := range g.aliases {
		g.data.Aliases = append(g.data.Aliases, aliasDef{
			Name:      naming.EnumValueName(a.Value),
			Canonical: naming.EnumValueName(a.Canonical),
		})
	}
	return g
}

// Descriptor returns the enum this generator was built for.
func (g *Generator) Descriptor() protoreflect.EnumDescriptor {
	return g.desc
}

// ClassName returns the name of the generated typedef.
func (g *Generator) ClassName() string {
	return g.data.ClassName
}

// Canonical returns the canonical values, in declaration order.
func (g *Generator) Canonical() []protoreflect.EnumValueDescriptor {
	return g.canonical
}

// Aliases returns the aliased values, in declaration order.
func (g *Generator) Aliases() []Alias {
	return g.aliases
}

// EmitDeclaration prints the typedef with one constant per canonical value,
// a #define for each alias, and the prototype of the validity predicate.
func (g *Generator) EmitDeclaration(p *printer.Printer) {
	p.Execute(tmpl, "declaration", g.data)
}

// EmitDefinition prints the validity predicate. It matches each canonical
// number; aliases share those numbers and need no case of their own.
func (g *Generator) EmitDefinition(p *printer.Printer) {
	p.Execute(tmpl, "definition", g.data)
}
