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

package objcgen

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/bufbuild/objcgen/internal/prototest"
	"github.com/bufbuild/objcgen/reporter"
)

func request(t *testing.T, param string) *pluginpb.CodeGeneratorRequest {
	t.Helper()
	srcs, names := sources(3)
	files := prototest.Compile(t, srcs, names...)
	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{names[1], names[2]},
	}
	if param != "" {
		req.Parameter = proto.String(param)
	}
	for _, f := range files {
		req.ProtoFile = append(req.ProtoFile, protodesc.ToFileDescriptorProto(f))
	}
	return req
}

func TestPluginRun(t *testing.T) {
	t.Parallel()
	resp := Plugin{}.Run(context.Background(), request(t, "parallelism=2"))
	require.Empty(t, resp.GetError())
	assert.Equal(t, uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL), resp.GetSupportedFeatures())

	var names []string
	for _, f := range resp.GetFile() {
		names = append(names, f.GetName())
		assert.NotEmpty(t, f.GetContent())
	}
	assert.Equal(t, []string{
		"pkg1/File1.pb.h", "pkg1/File1.pb.m",
		"pkg2/File2.pb.h", "pkg2/File2.pb.m",
	}, names)
}

func TestPluginMain(t *testing.T) {
	t.Parallel()
	req := request(t, "")
	input, err := proto.Marshal(req)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Plugin{}.Main(context.Background(), bytes.NewReader(input), &out))

	resp := &pluginpb.CodeGeneratorResponse{}
	require.NoError(t, proto.Unmarshal(out.Bytes(), resp))
	prototest.AssertMessagesEqual(t, Plugin{}.Run(context.Background(), req), resp)
}

func TestPluginMainBadInput(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Plugin{}.Main(context.Background(), bytes.NewReader([]byte{0xff}), &out)
	require.ErrorContains(t, err, "parsing request")
	assert.Zero(t, out.Len())
}

func TestPluginErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		req  func(*pluginpb.CodeGeneratorRequest)
		want string
	}{
		"unknown parameter": {
			req:  func(r *pluginpb.CodeGeneratorRequest) { r.Parameter = proto.String("class_prefix=XY") },
			want: `unknown parameter "class_prefix"`,
		},
		"malformed parameter": {
			req:  func(r *pluginpb.CodeGeneratorRequest) { r.Parameter = proto.String("parallelism") },
			want: `invalid parameter "parallelism": want key=value`,
		},
		"bad parallelism": {
			req:  func(r *pluginpb.CodeGeneratorRequest) { r.Parameter = proto.String("parallelism=-1") },
			want: `invalid parallelism "-1"`,
		},
		"missing file": {
			req:  func(r *pluginpb.CodeGeneratorRequest) { r.FileToGenerate = []string{"nope.proto"} },
			want: "file to generate nope.proto",
		},
		"missing dependency": {
			req: func(r *pluginpb.CodeGeneratorRequest) {
				r.ProtoFile = r.ProtoFile[1:]
			},
			want: "pkg0/file_0.proto",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := request(t, "")
			tc.req(req)
			resp := Plugin{}.Run(context.Background(), req)
			assert.Contains(t, resp.GetError(), tc.want)
			assert.Empty(t, resp.GetFile())
		})
	}
}

func TestPluginWarnings(t *testing.T) {
	t.Parallel()
	fd := prototest.File(t, "svc.proto", "syntax = \"proto3\";\nmessage M {}\nservice S { rpc Do(M) returns (M); }\n")
	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"svc.proto"},
		ProtoFile:      []*descriptorpb.FileDescriptorProto{protodesc.ToFileDescriptorProto(fd)},
	}
	var warnings []string
	resp := Plugin{Warnings: func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err.Error())
	}}.Run(context.Background(), req)
	require.Empty(t, resp.GetError())
	assert.Len(t, resp.GetFile(), 2)
	assert.Equal(t, []string{"svc.proto:3:1: service S is not generated"}, warnings)
}

func TestParseParameter(t *testing.T) {
	t.Parallel()
	gen, err := ParseParameter("")
	require.NoError(t, err)
	assert.Zero(t, gen.MaxParallelism)

	gen, err = ParseParameter("parallelism=4")
	require.NoError(t, err)
	assert.Equal(t, 4, gen.MaxParallelism)
}
