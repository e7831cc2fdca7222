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

// Package maven implements Maven version parsing, comparison, and
// Ivy-bracket range/constraint algebra, per
// https://maven.apache.org/pom.html#Version_Order_Specification.
package maven

import (
	"strconv"
	"strings"

	"deps.dev/util/version/interval"
)

// Component is a single element of a tokenized Maven version: either a
// Number or a Text qualifier. Exactly one of the two is meaningful,
// selected by IsNumber.
type Component struct {
	IsNumber bool
	Number   int64
	Text     string // lowercased for comparison; empty when IsNumber.
}

// Version is a parsed Maven version.
type Version struct {
	original   string
	components []Component
}

// ParseVersion parses s as a Maven version. The empty string is a valid
// Maven version with no components, matching Maven's own observed
// behavior (unlike RubyGems, which aliases "" to "0").
func ParseVersion(s string) (*Version, error) {
	comps := tokenize(s)
	return &Version{original: s, components: comps}, nil
}

// Components returns the parsed components in order. The caller must not
// mutate the returned slice.
func (v *Version) Components() []Component { return v.components }

// String returns the original, verbatim input string.
func (v *Version) String() string { return v.original }

// Equal reports whether v and other were parsed from the same string.
func (v *Version) Equal(other *Version) bool { return v.original == other.original }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSeparator(b byte) bool {
	return b == '.' || b == '-' || b == '_' || b == '+'
}

// tokenize splits a Maven version string into components: a maximal run
// of digits becomes a Number, a maximal run of non-digit non-separator
// characters becomes a Text qualifier, and "." "-" "_" "+" separate
// components without becoming components themselves.
func tokenize(s string) []Component {
	s = strings.ToLower(s)
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

// qualifierOrder maps known Maven qualifiers to their relative rank.
// 0 is the "release" sentinel ("", "ga", "final"); anything absent from
// this table sorts after every entry here and compares lexicographically
// against other absent entries.
var qualifierOrder = map[string]int{
	"alpha": -5, "a": -5,
	"beta": -4, "b": -4,
	"milestone": -3, "m": -3,
	"rc": -2, "cr": -2,
	"snapshot": -1,
	"":         0,
	"ga":       0,
	"final":    0,
	"sp":       1,
}

const unknownQualifierOrder = 2

func qualifierRank(s string) int {
	if o, ok := qualifierOrder[s]; ok {
		return o
	}
	return unknownQualifierOrder
}

func compareQualifier(a, b string) int {
	ao, bo := qualifierRank(a), qualifierRank(b)
	if ao != bo {
		return cmpInt(ao, bo)
	}
	if ao == unknownQualifierOrder {
		return strings.Compare(a, b)
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsPreRelease reports whether any component maps to a qualifier strictly
// below the "release" sentinel (alpha, beta, milestone, rc, cr, snapshot).
func (v *Version) IsPreRelease() bool {
	for _, c := range v.components {
		if !c.IsNumber && qualifierRank(c.Text) < 0 {
			return true
		}
	}
	return false
}

// CompareTo implements interval.Version. It panics if other is not a
// *Version.
func (v *Version) CompareTo(other interval.Version) int {
	return v.compareTo(other.(*Version))
}

// compareTo walks both component lists position by position. A component
// missing past the end of a (shorter) list is treated as the identity for
// its counterpart's type: Number(0) against a Number, or the release
// sentinel Text("") against a Text qualifier — which is exactly how
// Maven's trailing-zero and trailing-GA trimming behaves.
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
	if counterpart.IsNumber {
		return Component{IsNumber: true}
	}
	return Component{IsNumber: false, Text: ""}
}

func compareComponent(a, b Component) int {
	switch {
	case a.IsNumber && b.IsNumber:
		return cmpInt64(a.Number, b.Number)
	case !a.IsNumber && !b.IsNumber:
		return compareQualifier(a.Text, b.Text)
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
