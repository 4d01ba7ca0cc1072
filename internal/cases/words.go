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

package cases

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits str into words. Underscores separate words and are dropped;
// an uppercase rune starts a new word when it is followed by a lowercase
// rune, or when it ends the string after a lowercase rune.
//
// Empty words are never yielded.
func Words(str string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for part := range strings.SplitSeq(str, "_") {
			start := 0
			var prev rune
			for i, r := range part {
				if i > 0 && unicode.IsUpper(r) {
					next, _ := utf8.DecodeRuneInString(part[i+utf8.RuneLen(r):])
					last := i+utf8.RuneLen(r) == len(part)
					if unicode.IsLower(next) || (last && unicode.IsLower(prev)) {
						if start < i && !yield(part[start:i]) {
							return
						}
						start = i
					}
				}
				prev = r
			}
			if start < len(part) && !yield(part[start:]) {
				return
			}
		}
	}
}
