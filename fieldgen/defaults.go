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
	"fmt"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/bufbuild/objcgen/internal/naming"
)

// defaultLiteral renders the default value of a non-message field as an
// Objective-C expression. Repeated fields have no default and yield "".
func defaultLiteral(fd protoreflect.FieldDescriptor) string {
	if fd.Cardinality() == protoreflect.Repeated {
		return ""
	}
	def := fd.Default()
	switch valueKindOf(fd.Kind()) {
	case valueInt32:
		if def.Int() == math.MinInt32 {
			return "INT32_MIN"
		}
		return strconv.FormatInt(def.Int(), 10)
	case valueInt64:
		if def.Int() == math.MinInt64 {
			return "INT64_MIN"
		}
		return strconv.FormatInt(def.Int(), 10) + "LL"
	case valueUint32:
		return strconv.FormatUint(def.Uint(), 10) + "U"
	case valueUint64:
		return strconv.FormatUint(def.Uint(), 10) + "ULL"
	case valueFloat:
		return floatLiteral(def.Float(), 32)
	case valueDouble:
		return floatLiteral(def.Float(), 64)
	case valueBool:
		if def.Bool() {
			return "YES"
		}
		return "NO"
	case valueEnum:
		if v := fd.DefaultEnumValue(); v != nil {
			return naming.EnumValueName(v)
		}
		return "0"
	case valueString:
		return "@" + cString([]byte(def.String()))
	case valueData:
		data := def.Bytes()
		if len(data) == 0 {
			return "[NSData data]"
		}
		return fmt.Sprintf("[NSData dataWithBytes:%s length:%d]", cString(data), len(data))
	default:
		panic(fmt.Sprintf("fieldgen: %s has no default literal", fd.FullName()))
	}
}

func floatLiteral(f float64, bits int) string {
	var suffix string
	if bits == 32 {
		suffix = "f"
	}
	switch {
	case math.IsInf(f, 1):
		return "INFINITY"
	case math.IsInf(f, -1):
		return "-INFINITY"
	case math.IsNaN(f):
		return "NAN"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s + suffix
}

// cString quotes data as a C string literal. Bytes outside printable ASCII
// are written as three-digit octal escapes, so the literal is the same no
// matter what encoding the compiler assumes for source files.
func cString(data []byte) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range data {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '?':
			// Avoids forming a trigraph.
			b.WriteString(`\?`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, "\\%03o", c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
