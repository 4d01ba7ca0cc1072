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

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bufbuild/protocompile"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen"
	"github.com/bufbuild/objcgen/reporter"
)

// diagnostics prints errors and warnings about the input as they are
// reported. The generator reports from several goroutines at once.
type diagnostics struct {
	w io.Writer

	mu       sync.Mutex
	errs     *multierror.Error
	warnings int
}

func (d *diagnostics) reporter() reporter.Reporter {
	return reporter.NewReporter(d.error, d.warning)
}

func (d *diagnostics) error(err reporter.ErrorWithPos) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w, color.RedString("error:"), err)
	d.errs = multierror.Append(d.errs, err)
	return nil
}

func (d *diagnostics) warning(err reporter.ErrorWithPos) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w, color.YellowString("warning:"), err)
	d.warnings++
}

// generate compiles files and writes the generated sources under cfg.Out.
// Every error in the input is reported before generate gives up; write
// failures are collected so that one bad path does not hide the others.
func generate(ctx context.Context, cfg *config, files []string, diags *diagnostics, logger *slog.Logger) error {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: cfg.ImportPaths,
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	linked, err := compiler.Compile(ctx, files...)
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}
	descs := make([]protoreflect.FileDescriptor, len(linked))
	for i, f := range linked {
		descs[i] = f
	}

	gen := objcgen.Generator{
		MaxParallelism: cfg.Parallelism,
		Reporter:       diags.reporter(),
	}
	out, err := gen.Generate(ctx, descs...)
	if diags.errs != nil {
		return diags.errs.ErrorOrNil()
	}
	if err != nil {
		return err
	}
	if cfg.FatalWarnings && diags.warnings > 0 {
		return fmt.Errorf("%d warnings with fatal_warnings set", diags.warnings)
	}

	var errs *multierror.Error
	for _, f := range out {
		path := filepath.Join(cfg.Out, filepath.FromSlash(f.Name))
		if err := writeFile(path, f.Content); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		logger.Debug("wrote file", "path", path, "bytes", len(f.Content))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	logger.Info("generated", "inputs", len(files), "outputs", len(out), "dir", cfg.Out)
	return nil
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
