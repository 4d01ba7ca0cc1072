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

// Kind classifies a field by its cardinality and the family of its value
// type. Every field maps to exactly one kind.
type Kind int

const (
	SingularMessage Kind = iota
	RepeatedMessage
	SingularScalar
	RepeatedScalar
	SingularEnum
	RepeatedEnum
	SingularString
	RepeatedString

	kindCount
)

var kindNames = [kindCount]string{
	SingularMessage: "SingularMessage",
	RepeatedMessage: "RepeatedMessage",
	SingularScalar:  "SingularScalar",
	RepeatedScalar:  "RepeatedScalar",
	SingularEnum:    "SingularEnum",
	RepeatedEnum:    "RepeatedEnum",
	SingularString:  "SingularString",
	RepeatedString:  "RepeatedString",
}

// Kinds returns every kind, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for k := range kindCount {
		kinds[k] = k
	}
	return kinds
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsRepeated reports whether fields of this kind hold a sequence.
func (k Kind) IsRepeated() bool {
	switch k {
	case RepeatedMessage, RepeatedScalar, RepeatedEnum, RepeatedString:
		return true
	default:
		return false
	}
}

// IsMessage reports whether fields of this kind hold message references.
func (k Kind) IsMessage() bool {
	return k == SingularMessage || k == RepeatedMessage
}

// KindOf classifies fd. Groups and map fields are message kinds; bytes
// fields share the string kinds.
func KindOf(fd protoreflect.FieldDescriptor) Kind {
	repeated := fd.Cardinality() == protoreflect.Repeated
	pick := func(singular, repeatedKind Kind) Kind {
		if repeated {
			return repeatedKind
		}
		return singular
	}
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return pick(SingularMessage, RepeatedMessage)
	case protoreflect.EnumKind:
		return pick(SingularEnum, RepeatedEnum)
	case protoreflect.StringKind, protoreflect.BytesKind:
		return pick(SingularString, RepeatedString)
	default:
		return pick(SingularScalar, RepeatedScalar)
	}
}

// Op is one emission step. The containing message generator calls each op
// at a fixed place in the generated header or implementation.
type Op int

const (
	OpHasField             Op = iota // presence bit in the ivar block
	OpField                          // backing storage in the ivar block
	OpHasProperty                    // public presence query
	OpProperty                       // public property
	OpMembersHeader                  // public sequence accessors
	OpExtension                      // declarations in the class extension
	OpSynthesize                     // accessor implementations
	OpMembersSource                  // sequence accessor implementations
	OpDealloc                        // release in -dealloc
	OpInit                           // default in -init
	OpBuilderMembersHeader           // builder interface
	OpBuilderMembersSource           // builder implementation
	OpMerging                        // body of the builder's mergeFrom:
	OpParsing                        // case body of mergeFromCodedInputStream:
	OpPackedParsing                  // case body for the length-delimited form of a packable field
	OpSerialization                  // body of writeToCodedOutputStream:
	OpSerializedSize                 // body of serializedSize

	opCount
)

var opNames = [opCount]string{
	OpHasField:             "HasField",
	OpField:                "Field",
	OpHasProperty:          "HasProperty",
	OpProperty:             "Property",
	OpMembersHeader:        "MembersHeader",
	OpExtension:            "Extension",
	OpSynthesize:           "Synthesize",
	OpMembersSource:        "MembersSource",
	OpDealloc:              "Dealloc",
	OpInit:                 "Init",
	OpBuilderMembersHeader: "BuilderMembersHeader",
	OpBuilderMembersSource: "BuilderMembersSource",
	OpMerging:              "Merging",
	OpParsing:              "Parsing",
	OpPackedParsing:        "PackedParsing",
	OpSerialization:        "Serialization",
	OpSerializedSize:       "SerializedSize",
}

// Ops returns every op, in declaration order.
func Ops() []Op {
	ops := make([]Op, opCount)
	for op := range opCount {
		ops[op] = op
	}
	return ops
}

// String implements [fmt.Stringer].
func (op Op) String() string {
	if op < 0 || op >= opCount {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}
