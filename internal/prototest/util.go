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

// Package prototest compiles inline protobuf sources for tests.
package prototest

import (
	"context"
	"fmt"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
)

// Compile links the named files out of sources. Imports of the standard
// google/protobuf files resolve without being listed in sources.
func Compile(t testing.TB, sources map[string]string, names ...string) []protoreflect.FileDescriptor {
	t.Helper()
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(sources),
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	files, err := compiler.Compile(context.Background(), names...)
	require.NoError(t, err)

	out := make([]protoreflect.FileDescriptor, len(files))
	for i, f := range files {
		out[i] = f
	}
	return out
}

// File compiles a single file named name.
func File(t testing.TB, name, source string) protoreflect.FileDescriptor {
	t.Helper()
	return Compile(t, map[string]string{name: source}, name)[0]
}

// Message finds a message by its fully-qualified name among the messages
// defined in file.
func Message(t testing.TB, file protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.MessageDescriptor {
	t.Helper()
	d := find(t, file, name)
	md, ok := d.(protoreflect.MessageDescriptor)
	require.True(t, ok, "%s is a %T, not a message", name, d)
	return md
}

// Enum finds an enum by its fully-qualified name among the enums defined
// in file.
func Enum(t testing.TB, file protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.EnumDescriptor {
	t.Helper()
	d := find(t, file, name)
	ed, ok := d.(protoreflect.EnumDescriptor)
	require.True(t, ok, "%s is a %T, not an enum", name, d)
	return ed
}

// Field finds a field of msg by name.
func Field(t testing.TB, msg protoreflect.MessageDescriptor, name protoreflect.Name) protoreflect.FieldDescriptor {
	t.Helper()
	fd := msg.Fields().ByName(name)
	require.NotNil(t, fd, "%s has no field %q", msg.FullName(), name)
	return fd
}

func find(t testing.TB, file protoreflect.FileDescriptor, name protoreflect.FullName) protoreflect.Descriptor {
	t.Helper()
	var found protoreflect.Descriptor
	var walk func(protoreflect.MessageDescriptors, protoreflect.EnumDescriptors)
	walk = func(msgs protoreflect.MessageDescriptors, enums protoreflect.EnumDescriptors) {
		for i := range enums.Len() {
			if enums.Get(i).FullName() == name {
				found = enums.Get(i)
			}
		}
		for i := range msgs.Len() {
			md := msgs.Get(i)
			if md.FullName() == name {
				found = md
			}
			walk(md.Messages(), md.Enums())
		}
	}
	walk(file.Messages(), file.Enums())
	require.NotNil(t, found, "%s not found in %s", name, file.Path())
	return found
}

// AssertMessagesEqual fails the test with a diff if exp and act differ.
func AssertMessagesEqual(t testing.TB, exp, act proto.Message, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(exp, act, protocmp.Transform()); diff != "" {
		var prefix string
		if len(msgAndArgs) == 1 {
			if msg, ok := msgAndArgs[0].(string); ok {
				prefix = msg + ": "
			} else {
				prefix = fmt.Sprintf("%+v: ", msgAndArgs[0])
			}
		} else if len(msgAndArgs) > 1 {
			prefix = fmt.Sprintf(msgAndArgs[0].(string)+": ", msgAndArgs[1:]...)
		}
		t.Errorf("%smessage mismatch (-want +got):\n%v", prefix, diff)
	}
}
