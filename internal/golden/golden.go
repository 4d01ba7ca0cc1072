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

// Package golden runs table-driven tests whose table lives in the file
// system: each input file is a test case, and each output the test
// produces is compared against a golden file stored beside the input.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus is a directory of test cases.
type Corpus struct {
	// Root is the directory holding the cases, relative to the file that
	// calls [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a glob. Golden files of
	// matching cases are rewritten from the test's outputs instead of being
	// compared.
	Refresh string

	// Pattern selects the input files under Root, e.g. "**/*.proto".
	Pattern string

	// Outputs are the files each case produces. The golden file of an
	// output is the input path followed by "." and its Extension. A missing
	// golden file fails the case unless it is being refreshed.
	Outputs []Output

	// Test runs one case. name is the input path relative to Root. It
	// returns one string per element of Outputs.
	Test func(t *testing.T, name, text string) []string
}

// Output is one result of a test case.
type Output struct {
	// Extension is appended to the input path to name the golden file, so
	// for input "foo.proto" and extension "h" the golden file is
	// "foo.proto.h".
	Extension string

	// Compare reports a mismatch as a non-empty message. If nil, outputs
	// are compared byte for byte.
	Compare Compare
}

// Compare returns the empty string if got matches want, and a description
// of the difference otherwise.
type Compare func(got, want string) string

// Run executes every case of the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	t.Helper()
	root := filepath.Join(callerDir(), c.Root)

	refresh := ""
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}

	names, err := doublestar.Glob(os.DirFS(root), c.Pattern)
	if err != nil {
		t.Fatalf("golden: listing %s: %v", root, err)
	}
	if len(names) == 0 {
		t.Fatalf("golden: no files match %q in %s", c.Pattern, root)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			input := filepath.Join(root, filepath.FromSlash(name))
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("golden: reading %s: %v", input, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}
			rewrite := false
			if refresh != "" {
				rewrite, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				path := fmt.Sprint(input, ".", output.Extension)
				if problem := output.check(path, results[i], rewrite, c.Refresh); problem != "" {
					t.Error("golden: " + problem)
				} else if rewrite {
					t.Logf("golden: wrote %s", path)
				}
			}
		})
	}
}

// check compares got with the golden file at path, or overwrites the file
// if rewrite is set. It returns a description of what went wrong, if
// anything. refreshVar names the variable that enables rewriting.
func (o Output) check(path, got string, rewrite bool, refreshVar string) (problem string) {
	if rewrite {
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			return fmt.Sprintf("writing %s: %v", path, err)
		}
		return ""
	}

	want, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("%s is missing; set %s to a glob matching the case to create it", path, refreshVar)
	case err != nil:
		return fmt.Sprintf("reading %s: %v", path, err)
	}

	compare := o.Compare
	if compare == nil {
		compare = Diff
	}
	if msg := compare(got, string(want)); msg != "" {
		return fmt.Sprintf("%s does not match:\n%s", path, msg)
	}
	return ""
}

// Diff compares byte for byte and describes a mismatch as a colorized
// unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// callerDir is the directory of the file that called Run.
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("golden: could not determine the test file's directory")
	}
	return filepath.Dir(file)
}
