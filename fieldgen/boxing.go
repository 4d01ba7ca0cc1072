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

	"google.golang.org/protobuf/reflect/protoreflect"
)

// valueKind groups protobuf types by their Objective-C representation.
type valueKind int

const (
	valueInt32 valueKind = iota
	valueUint32
	valueInt64
	valueUint64
	valueFloat
	valueDouble
	valueBool
	valueEnum
	valueString
	valueData
	valueMessage

	valueKindCount
)

func valueKindOf(k protoreflect.Kind) valueKind {
	switch k {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return valueInt32
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return valueUint32
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return valueInt64
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return valueUint64
	case protoreflect.FloatKind:
		return valueFloat
	case protoreflect.DoubleKind:
		return valueDouble
	case protoreflect.BoolKind:
		return valueBool
	case protoreflect.EnumKind:
		return valueEnum
	case protoreflect.StringKind:
		return valueString
	case protoreflect.BytesKind:
		return valueData
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return valueMessage
	default:
		panic(fmt.Sprintf("fieldgen: unknown field kind %v", k))
	}
}

// boxing converts between a value's native representation and the object
// stored in an NSArray. Values that are already objects have neither
// selector and pass through unchanged.
type boxing struct {
	box, unbox string
}

var boxings = [valueKindCount]boxing{
	valueInt32:   {"numberWithInt:", "intValue"},
	valueUint32:  {"numberWithUnsignedInt:", "unsignedIntValue"},
	valueInt64:   {"numberWithLongLong:", "longLongValue"},
	valueUint64:  {"numberWithUnsignedLongLong:", "unsignedLongLongValue"},
	valueFloat:   {"numberWithFloat:", "floatValue"},
	valueDouble:  {"numberWithDouble:", "doubleValue"},
	valueBool:    {"numberWithBool:", "boolValue"},
	valueEnum:    {"numberWithInt:", "intValue"},
	valueString:  {},
	valueData:    {},
	valueMessage: {},
}

// Box returns an expression wrapping expr in an object.
func (b boxing) Box(expr string) string {
	if b.box == "" {
		return expr
	}
	return fmt.Sprintf("[NSNumber %s%s]", b.box, expr)
}

// Unbox returns an expression extracting the native value from the object
// expr.
func (b boxing) Unbox(expr string) string {
	if b.unbox == "" {
		return expr
	}
	return fmt.Sprintf("[%s %s]", expr, b.unbox)
}

// objcTypes holds the storage type of each value kind whose type does not
// depend on the descriptor.
var objcTypes = [valueKindCount]string{
	valueInt32:  "int32_t",
	valueUint32: "uint32_t",
	valueInt64:  "int64_t",
	valueUint64: "uint64_t",
	valueFloat:  "Float32",
	valueDouble: "Float64",
	valueBool:   "BOOL",
	valueString: "NSString*",
	valueData:   "NSData*",
}

// wireTypeNames holds the suffix of the coded stream selectors for each
// protobuf type, as in readSInt32 or computeFixed64Size.
var wireTypeNames = map[protoreflect.Kind]string{
	protoreflect.Int32Kind:    "Int32",
	protoreflect.Sint32Kind:   "SInt32",
	protoreflect.Uint32Kind:   "UInt32",
	protoreflect.Int64Kind:    "Int64",
	protoreflect.Sint64Kind:   "SInt64",
	protoreflect.Uint64Kind:   "UInt64",
	protoreflect.Fixed32Kind:  "Fixed32",
	protoreflect.Sfixed32Kind: "SFixed32",
	protoreflect.Fixed64Kind:  "Fixed64",
	protoreflect.Sfixed64Kind: "SFixed64",
	protoreflect.FloatKind:    "Float",
	protoreflect.DoubleKind:   "Double",
	protoreflect.BoolKind:     "Bool",
	protoreflect.EnumKind:     "Enum",
	protoreflect.StringKind:   "String",
	protoreflect.BytesKind:    "Data",
	protoreflect.GroupKind:    "Group",
	protoreflect.MessageKind:  "Message",
}

func wireTypeName(k protoreflect.Kind) string {
	name, ok := wireTypeNames[k]
	if !ok {
		panic(fmt.Sprintf("fieldgen: unknown field kind %v", k))
	}
	return name
}
