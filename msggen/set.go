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

package msggen

import (
	"github.com/tidwall/btree"
)

// sortedSet is a set of strings that iterates in sorted order, so that
// imports and forward declarations come out the same on every run.
type sortedSet struct {
	tree btree.Map[string, struct{}]
}

// Add inserts s, reporting whether it was absent.
func (s *sortedSet) Add(str string) bool {
	_, replaced := s.tree.Set(str, struct{}{})
	return !replaced
}

// Len returns the number of strings in the set.
func (s *sortedSet) Len() int {
	return s.tree.Len()
}

// Sorted returns the strings in the set in ascending order.
func (s *sortedSet) Sorted() []string {
	out := make([]string, 0, s.tree.Len())
	s.tree.Scan(func(str string, _ struct{}) bool {
		out = append(out, str)
		return true
	})
	return out
}
