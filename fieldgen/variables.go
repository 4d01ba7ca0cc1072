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

package fieldgen

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/internal/naming"
)

// Variables are the names and types shared by every field kind. They are
// derived once per field and never modified.
type Variables struct {
	// ClassName is the class of the containing message.
	ClassName string
	// Name is the camelCase property name.
	Name string
	// CapitalizedName is used in selectors such as setFoo: and hasFoo.
	CapitalizedName string
	// ArrayName is the backing NSMutableArray of a repeated field.
	ArrayName string
	Number    protoreflect.FieldNumber
	// Type is the message or enum class for those kinds, and the native
	// type otherwise.
	Type string
	// StorageType is how a single value is declared: pointers for objects.
	StorageType string
	// ElementType is how an element of the backing array is declared.
	ElementType string
	// BoxedValue wraps the local "value" for storage in an array.
	BoxedValue string
	// UnboxedValue and UnboxedElement extract a native value from the
	// locals "value" and "element".
	UnboxedValue   string
	UnboxedElement string
	// TagSize is the encoded size of the field's tag.
	TagSize int
}

// Derive computes the variables for fd. A message or enum field whose
// type was never resolved is a bug in the caller and panics.
func Derive(fd protoreflect.FieldDescriptor) Variables {
	vk := valueKindOf(fd.Kind())
	name := naming.FieldName(fd)
	v := Variables{
		ClassName:       naming.ClassName(fd.ContainingMessage()),
		Name:            name,
		CapitalizedName: naming.CapitalizedFieldName(fd),
		ArrayName:       name + "Array",
		Number:          fd.Number(),
		TagSize:         protowire.SizeTag(fd.Number()),
	}

	switch vk {
	case valueMessage:
		md := fd.Message()
		if md == nil || md.IsPlaceholder() {
			panic(fmt.Sprintf("fieldgen: message field %s has no resolved type", fd.FullName()))
		}
		v.Type = naming.ClassName(md)
		v.StorageType = v.Type + "*"
		v.ElementType = v.StorageType
	case valueEnum:
		ed := fd.Enum()
		if ed == nil || ed.IsPlaceholder() {
			panic(fmt.Sprintf("fieldgen: enum field %s has no resolved type", fd.FullName()))
		}
		v.Type = naming.ClassName(ed)
		v.StorageType = v.Type
		v.ElementType = "NSNumber*"
	case valueString, valueData:
		v.StorageType = objcTypes[vk]
		v.Type = v.StorageType
		v.ElementType = v.StorageType
	default:
		v.StorageType = objcTypes[vk]
		v.Type = v.StorageType
		v.ElementType = "NSNumber*"
	}

	b := boxings[vk]
	v.BoxedValue = b.Box("value")
	v.UnboxedValue = b.Unbox("value")
	v.UnboxedElement = b.Unbox("element")
	return v
}

// messageVars is the template data for message kinds.
type messageVars struct {
	Variables
	// Framing is "Group" or "Message", completing selectors such as
	// writeGroup:value: and computeMessageSize.
	Framing string
}

// scalarVars is the template data for numeric, bool and enum kinds.
type scalarVars struct {
	Variables
	WireType string
	Default  string
	// IsValid names the predicate checking decoded enum values. It is empty
	// for non-enum fields.
	IsValid   string
	Packed    bool
	PackedTag uint64
}

// stringVars is the template data for string and bytes kinds.
type stringVars struct {
	Variables
	WireType string
	Default  string
}

// family is the set of kinds that share a template data record.
type family int

const (
	familyMessage family = iota + 1
	familyScalar
	familyString
)

var families = [kindCount]family{
	SingularMessage: familyMessage,
	RepeatedMessage: familyMessage,
	SingularScalar:  familyScalar,
	RepeatedScalar:  familyScalar,
	SingularEnum:    familyScalar,
	RepeatedEnum:    familyScalar,
	SingularString:  familyString,
	RepeatedString:  familyString,
}

func newData(kind Kind, fd protoreflect.FieldDescriptor, v Variables) any {
	switch families[kind] {
	case familyMessage:
		return messageVars{
			Variables: v,
			Framing:   wireTypeName(fd.Kind()),
		}
	case familyScalar:
		data := scalarVars{
			Variables: v,
			WireType:  wireTypeName(fd.Kind()),
			Default:   defaultLiteral(fd),
			Packed:    fd.IsPacked(),
			PackedTag: protowire.EncodeTag(fd.Number(), protowire.BytesType),
		}
		if fd.Kind() == protoreflect.EnumKind {
			data.IsValid = v.Type + "IsValidValue"
		}
		return data
	case familyString:
		return stringVars{
			Variables: v,
			WireType:  wireTypeName(fd.Kind()),
			Default:   defaultLiteral(fd),
		}
	default:
		panic(fmt.Sprintf("fieldgen: no template data for %v", kind))
	}
}
