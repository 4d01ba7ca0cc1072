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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/objcgen/internal/golden"
	"github.com/bufbuild/objcgen/internal/prototest"
)

// TestGolden compares the generated sources of each file in testdata/golden
// against the .h and .m files stored beside it. Run with
// OBJCGEN_REFRESH='**' to rewrite them.
func TestGolden(t *testing.T) {
	t.Parallel()
	golden.Corpus{
		Root:    "testdata/golden",
		Refresh: "OBJCGEN_REFRESH",
		Pattern: "**/*.proto",
		Outputs: []golden.Output{{Extension: "h"}, {Extension: "m"}},
		Test: func(t *testing.T, name, text string) []string {
			file := prototest.File(t, name, text)
			out, err := (&Generator{}).Generate(context.Background(), file)
			require.NoError(t, err)
			require.Len(t, out, 2)
			return []string{string(out[0].Content), string(out[1].Content)}
		},
	}.Run(t)
}
