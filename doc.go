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

// Package objcgen generates Objective-C classes from protobuf schemas.
//
// For each proto file the generator writes a header (.pb.h) and an
// implementation (.pb.m) targeting the ProtocolBuffers runtime for
// Objective-C: every message becomes an immutable PBGeneratedMessage
// subclass with a matching builder, and every enum becomes a typedef with
// a validity predicate.
//
// Generation is a pure function of the linked descriptors. The same input
// always produces byte-identical output, so generated files can be checked
// in and diffed.
//
// # Generator
//
// A [Generator] takes fully-linked descriptors, for example from
// [github.com/bufbuild/protocompile] or from a protoc CodeGeneratorRequest,
// and returns the generated files. Files are generated in parallel:
//
//	gen := objcgen.Generator{}
//	files, err := gen.Generate(ctx, fileDescriptors...)
//
// # Plugin
//
// [Plugin] wraps a Generator in the protoc plugin protocol; see
// cmd/protoc-gen-objc. The plugin accepts one parameter, parallelism=N.
//
// # Unsupported input
//
// Extensions and services are not generated. They are reported as warnings
// through the generator's reporter, and messages with extension ranges are
// generated as plain messages.
package objcgen
