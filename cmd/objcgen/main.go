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

// Command objcgen compiles .proto files and generates Objective-C sources
// for them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand(os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "objcgen",
		Short:         "Generate Objective-C classes from protobuf schemas",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetErr(stderr)
	root.AddCommand(newGenerateCommand(stderr))
	return root
}

func newGenerateCommand(stderr io.Writer) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "generate [flags] FILE.proto...",
		Short: "Write a .pb.h and .pb.m for each file",
		Long: `Compile the given files, resolving imports against the import paths,
and write generated Objective-C sources under the output directory.

Settings are read from objcgen.yaml in the working directory, if present:

  import_paths: [proto, third_party]
  out: gen/objc
  parallelism: 4
  fatal_warnings: false

Flags override the config file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), f)
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			return generate(cmd.Context(), cfg, args, &diagnostics{w: stderr}, logger)
		},
	}
	bindFlags(cmd.Flags(), f)
	return cmd
}
