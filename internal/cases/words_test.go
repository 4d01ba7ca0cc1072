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

package cases_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/objcgen/internal/cases"
)

func TestWordsUnderscores(t *testing.T) {
	t.Parallel()
	for str, want := range map[string][]string{
		"":               nil,
		"___":            nil,
		"corner_radius":  {"corner", "radius"},
		"_leading":       {"leading"},
		"trailing__":     {"trailing"},
		"a__b":           {"a", "b"},
		"shape_kinds_v2": {"shape", "kinds", "v2"},
	} {
		assert.Equal(t, want, slices.Collect(cases.Words(str)), str)
	}
}

func TestWordsUppercase(t *testing.T) {
	t.Parallel()
	for str, want := range map[string][]string{
		// An uppercase rune followed by a lowercase one starts a word.
		"cornerRadius": {"corner", "Radius"},
		"HTTPServer":   {"HTTP", "Server"},
		"ABc":          {"A", "Bc"},
		// A final uppercase rune splits only after a lowercase one.
		"pointX":  {"point", "X"},
		"fooBaR":  {"foo", "Ba", "R"},
		"POINTX":  {"POINTX"},
		"fooBAR":  {"fooBAR"},
		"TagURL":  {"TagURL"},
		"X":       {"X"},
		"élanÉté": {"élan", "Été"},
	} {
		assert.Equal(t, want, slices.Collect(cases.Words(str)), str)
	}
}

func TestWordsDigits(t *testing.T) {
	t.Parallel()
	// Digits are neither case, so they never start a word by themselves.
	for str, want := range map[string][]string{
		"dark_blue2": {"dark", "blue2"},
		"foo2Bar":    {"foo2", "Bar"},
		"v2X":        {"v2X"},
		"field1x2":   {"field1x2"},
	} {
		assert.Equal(t, want, slices.Collect(cases.Words(str)), str)
	}
}

func TestWordsStopsEarly(t *testing.T) {
	t.Parallel()
	var got []string
	for word := range cases.Words("one_twoThree_four") {
		got = append(got, word)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)
}
