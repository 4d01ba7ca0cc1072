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
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/msggen"
	"github.com/bufbuild/objcgen/reporter"
)

// Generator turns linked file descriptors into Objective-C sources.
type Generator struct {
	// The maximum number of files to generate at once. If unspecified or
	// set to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default
	// reporter is used. A default reporter fails generation after the first
	// error and ignores all warnings.
	Reporter reporter.Reporter
}

// File is one generated output file.
type File struct {
	// Name is the path of the file, relative to the output root.
	Name    string
	Content []byte
}

// Generate generates a header and an implementation for each of files.
// The result holds them in the order of files, header first.
//
// Input descriptors must be fully linked. Errors in the input, such as two
// messages that map to the same class name, are sent to the reporter.
func (g *Generator) Generate(ctx context.Context, files ...protoreflect.FileDescriptor) ([]File, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := g.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	h := reporter.NewHandler(g.Reporter)
	e := executor{
		h:      h,
		s:      semaphore.NewWeighted(int64(par)),
		cancel: cancel,
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.generate(ctx, f)
	}

	var out []File
	owners := make(map[string]protoreflect.FileDescriptor, 2*len(files))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			e.wg.Wait()
			if err := h.ReporterError(); err != nil {
				return nil, err
			}
			return nil, ctx.Err()
		}
		if r.err != nil {
			e.wg.Wait()
			return nil, r.err
		}
		for _, f := range r.res {
			if prev, ok := owners[f.Name]; ok {
				err := h.HandleErrorf(reporter.PosOf(files[i]),
					"output %s is also generated from %s", f.Name, prev.Path())
				if err != nil {
					e.wg.Wait()
					return nil, err
				}
				continue
			}
			owners[f.Name] = files[i]
			out = append(out, f)
		}
	}
	e.wg.Wait()

	if err := h.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

type result struct {
	ready chan struct{}
	res   []File
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(files []File) {
	r.res = files
	close(r.ready)
}

type executor struct {
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (e *executor) generate(ctx context.Context, file protoreflect.FileDescriptor) *result {
	r := &result{
		ready: make(chan struct{}),
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.doGenerate(ctx, file, r)
	}()
	return r
}

func (e *executor) doGenerate(ctx context.Context, file protoreflect.FileDescriptor, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	fg, err := msggen.NewFileGenerator(file, e.h)
	if err != nil {
		e.cancel()
		r.fail(err)
		return
	}
	r.complete([]File{
		{Name: fg.HeaderPath(), Content: fg.Header()},
		{Name: fg.SourcePath(), Content: fg.Source()},
	})
}
