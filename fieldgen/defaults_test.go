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

package fieldgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestDefaultLiteral(t *testing.T) {
	t.Parallel()
	tests := map[protoreflect.Name]string{
		"big":   "-5LL",
		"ratio": "1.5f",
		"count": "0U",
		"flag":  "YES",
		"color": "ColorGreen",
		"name":  `@"hi\n"`,
		"raw":   `[NSData dataWithBytes:"a\001" length:2]`,
	}
	for name, want := range tests {
		assert.Equal(t, want, defaultLiteral(fooField(t, name)), name)
	}
	for _, name := range []protoreflect.Name{"ids", "colors", "blobs", "children"} {
		assert.Empty(t, defaultLiteral(fooField(t, name)), name)
	}
}

func TestFloatLiteral(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.0f", floatLiteral(1, 32))
	assert.Equal(t, "0.0", floatLiteral(0, 64))
	assert.Equal(t, "1e+10", floatLiteral(1e10, 64))
	assert.Equal(t, "-2.25f", floatLiteral(-2.25, 32))
	assert.Equal(t, "INFINITY", floatLiteral(math.Inf(1), 64))
	assert.Equal(t, "-INFINITY", floatLiteral(math.Inf(-1), 32))
	assert.Equal(t, "NAN", floatLiteral(math.NaN(), 64))
}

func TestCString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `""`, cString(nil))
	assert.Equal(t, `"say \"hi\"\\"`, cString([]byte(`say "hi"\`)))
	assert.Equal(t, `"a\tb\r\n"`, cString([]byte("a\tb\r\n")))
	assert.Equal(t, `"what\?\?"`, cString([]byte("what??")))
	assert.Equal(t, `"\303\251\000"`, cString([]byte("é\x00")))
}

func TestBoxing(t *testing.T) {
	t.Parallel()
	for vk := range valueKindCount {
		b := boxings[vk]
		assert.Equal(t, b.box == "", b.unbox == "", "value kind %d", vk)
	}
	assert.Equal(t, "[NSNumber numberWithBool:x]", boxings[valueBool].Box("x"))
	assert.Equal(t, "[x unsignedLongLongValue]", boxings[valueUint64].Unbox("x"))
	assert.Equal(t, "x", boxings[valueString].Box("x"))
	assert.Equal(t, "x", boxings[valueMessage].Unbox("x"))
}
