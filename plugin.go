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
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/bufbuild/objcgen/reporter"
)

// Plugin runs a [Generator] under the protoc plugin protocol.
type Plugin struct {
	// Warnings, if set, receives warnings about the input. protoc shows
	// whatever a plugin writes to stderr to the user.
	Warnings reporter.WarningReporter
}

// Main reads a CodeGeneratorRequest from in, generates, and writes the
// CodeGeneratorResponse to out. Problems with the input are reported in the
// response; the returned error only covers reading and writing.
func (pl Plugin) Main(ctx context.Context, in io.Reader, out io.Writer) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(input, req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}
	output, err := proto.Marshal(pl.Run(ctx, req))
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if _, err := out.Write(output); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// Run answers req.
func (pl Plugin) Run(ctx context.Context, req *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	fail := func(err error) *pluginpb.CodeGeneratorResponse {
		resp.Error = proto.String(err.Error())
		return resp
	}

	gen, err := ParseParameter(req.GetParameter())
	if err != nil {
		return fail(err)
	}
	gen.Reporter = reporter.NewReporter(nil, pl.Warnings)

	registry, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: req.GetProtoFile()})
	if err != nil {
		return fail(err)
	}
	files := make([]protoreflect.FileDescriptor, 0, len(req.GetFileToGenerate()))
	for _, name := range req.GetFileToGenerate() {
		fd, err := registry.FindFileByPath(name)
		if err != nil {
			return fail(fmt.Errorf("file to generate %s: %w", name, err))
		}
		files = append(files, fd)
	}

	out, err := gen.Generate(ctx, files...)
	if err != nil {
		return fail(err)
	}
	for _, f := range out {
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(f.Name),
			Content: proto.String(string(f.Content)),
		})
	}
	return resp
}

// ParseParameter configures a generator from a plugin parameter string, a
// comma-separated list of key=value pairs. The only key is parallelism.
func ParseParameter(param string) (*Generator, error) {
	gen := &Generator{}
	if param == "" {
		return gen, nil
	}
	for _, opt := range strings.Split(param, ",") {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q: want key=value", opt)
		}
		switch key {
		case "parallelism":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid parallelism %q: want a non-negative integer", value)
			}
			gen.MaxParallelism = n
		default:
			return nil, fmt.Errorf("unknown parameter %q", key)
		}
	}
	return gen, nil
}
