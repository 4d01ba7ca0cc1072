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

// Command protoc-gen-objc is a protoc plugin that generates Objective-C
// sources:
//
//	protoc --plugin=protoc-gen-objc --objc_out=parallelism=4:gen foo.proto
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/bufbuild/objcgen"
	"github.com/bufbuild/objcgen/reporter"
)

func main() {
	plugin := objcgen.Plugin{
		Warnings: func(err reporter.ErrorWithPos) {
			fmt.Fprintln(os.Stderr, color.YellowString("warning:"), err)
		},
	}
	if err := plugin.Main(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
