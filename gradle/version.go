// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gradle implements Gradle/Ivy version parsing, comparison, and
// dynamic-version range expansion, per
// https://docs.gradle.org/current/userguide/dependency_versions.html.
package gradle

import (
	"strconv"
	"strings"

	"deps.dev/util/version/interval"
)

// Component is a single element of a tokenized Gradle version: a maximal
// run of digits (Number) or a maximal run of everything else (Text).
type Component struct {
	IsNumber bool
	Number   int64
	Text     string
}

// Version is a parsed Gradle version.
type Version struct {
	original   string
	components []Component
}

// ParseVersion parses s as a Gradle version. It always succeeds: Gradle
// treats any string as a version, tokenizing it into numeric and textual
// runs.
func ParseVersion(s string) (*Version, error) {
	return &Version{original: s, components: tokenize(s)}, nil
}

func (v *Version) String() string          { return v.original }
func (v *Version) Components() []Component { return v.components }

// Equal reports whether v and other were parsed from the same string.
func (v *Version) Equal(other *Version) bool { return v.original == other.original }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSeparator(b byte) bool {
	return b == '.' || b == '-' || b == '_' || b == '+'
}

// tokenize splits a Gradle version into Number/Text components using the
// same maximal-run rule as Maven: "." "-" "_" "+" separate components
// without becoming components themselves.
func tokenize(s string) []Component {
	var comps []Component
	i := 0
	for i < len(s) {
		if isSeparator(s[i]) {
			i++
			continue
		}
		start := i
		if isDigit(s[i]) {
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			n, _ := strconv.ParseInt(s[start:i], 10, 64)
			comps = append(comps, Component{IsNumber: true, Number: n})
			continue
		}
		for i < len(s) && !isDigit(s[i]) && !isSeparator(s[i]) {
			i++
		}
		comps = append(comps, Component{Text: s[start:i]})
	}
	return comps
}

// IsPreRelease reports whether the version carries a case-insensitive
// "SNAPSHOT" suffix.
func (v *Version) IsPreRelease() bool {
	return strings.HasSuffix(strings.ToLower(v.original), "-snapshot") ||
		strings.EqualFold(v.original, "snapshot")
}

// CompareTo implements interval.Version. It panics if other is not a
// *Version.
func (v *Version) CompareTo(other interval.Version) int {
	return v.compareTo(other.(*Version))
}

// compareTo walks both component lists left to right. Numbers beat text at
// the same position; two numbers compare numerically; two texts compare
// lexicographically, case-sensitively; a shorter list is padded with
// Number(0), so trailing zeros do not change the order and a trailing text
// component (e.g. "-alpha") ranks below its absence.
func (v *Version) compareTo(o *Version) int {
	n := len(v.components)
	if len(o.components) > n {
		n = len(o.components)
	}
	for i := 0; i < n; i++ {
		a, aOK := componentAt(v.components, i)
		b, bOK := componentAt(o.components, i)
		if !aOK {
			a = defaultFor(b)
		}
		if !bOK {
			b = defaultFor(a)
		}
		if c := compareComponent(a, b); c != 0 {
			return c
		}
	}
	return 0
}

func componentAt(comps []Component, i int) (Component, bool) {
	if i < len(comps) {
		return comps[i], true
	}
	return Component{}, false
}

func defaultFor(counterpart Component) Component {
	return Component{IsNumber: true}
}

func compareComponent(a, b Component) int {
	switch {
	case a.IsNumber && b.IsNumber:
		return cmpInt64(a.Number, b.Number)
	case !a.IsNumber && !b.IsNumber:
		return strings.Compare(a.Text, b.Text)
	case a.IsNumber:
		return 1
	default:
		return -1
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
