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

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/objcgen/internal/prototest"
)

func TestNames(t *testing.T) {
	t.Parallel()
	file := prototest.File(t, "dir/shape_kinds.proto", `syntax = "proto2";
package shapes;
option objc_class_prefix = "SK";
message Outer {
  message Inner {
    optional int32 id = 1;
    optional string corner_radius = 2;
    optional bool class = 3;
  }
  enum Kind {
    KIND_ROUND = 0;
  }
}
`)
	outer := prototest.Message(t, file, "shapes.Outer")
	inner := prototest.Message(t, file, "shapes.Outer.Inner")
	kind := prototest.Enum(t, file, "shapes.Outer.Kind")

	assert.Equal(t, "SK", FileClassPrefix(file))
	assert.Equal(t, "SKOuter", ClassName(outer))
	assert.Equal(t, "SKOuter_Inner", ClassName(inner))
	assert.Equal(t, "SKOuter_Kind", ClassName(kind))
	assert.Equal(t, "SKOuter_KindKindRound", EnumValueName(kind.Values().Get(0)))

	assert.Equal(t, "id_", FieldName(prototest.Field(t, inner, "id")))
	assert.Equal(t, "cornerRadius", FieldName(prototest.Field(t, inner, "corner_radius")))
	assert.Equal(t, "CornerRadius", CapitalizedFieldName(prototest.Field(t, inner, "corner_radius")))
	assert.Equal(t, "class_", FieldName(prototest.Field(t, inner, "class")))

	assert.Equal(t, "dir/ShapeKinds", FilePath(file))
	assert.Equal(t, "dir/ShapeKinds.pb.h", HeaderPath(file))
	assert.Equal(t, "dir/ShapeKinds.pb.m", SourcePath(file))
	assert.Equal(t, "SKShapeKindsRoot", RootClassName(file))
}

func TestSafeName(t *testing.T) {
	t.Parallel()
	for name, want := range map[string]string{
		"id":             "id_",
		"description":    "description_",
		"serializedSize": "serializedSize_",
		"value":          "value",
		"Id":             "Id",
	} {
		assert.Equal(t, want, SafeName(name), name)
	}
}
