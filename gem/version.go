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

// Package gem implements RubyGems version parsing, comparison, and the
// pessimistic ("~>") constraint operator, per
// https://guides.rubygems.org/patterns/#pessimistic-version-constraint.
package gem

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"deps.dev/util/version/interval"
)

// Component is a single segment of a tokenized RubyGems version: a
// maximal run of digits (Number) or everything else (Text).
type Component struct {
	IsNumber bool
	Number   int64
	Text     string
}

// Version is a parsed RubyGems version.
type Version struct {
	original   string
	components []Component

	nextOnce sync.Once
	next     *Version
}

// correctPattern is RubyGems' notion of a syntactically valid version.
var correctPattern = regexp.MustCompile(`^[0-9]+(\.[0-9a-zA-Z]+)*(-[0-9a-zA-Z.-]+)?$`)

// ParseVersion parses s as a RubyGems version. The empty string is treated
// as "0", matching RubyGems' own Gem::Version#initialize.
func ParseVersion(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		trimmed = "0"
	}
	if !correctPattern.MatchString(trimmed) {
		return nil, fmt.Errorf("gem: %q is not a valid RubyGems version", s)
	}
	return &Version{original: trimmed, components: splitSegments(trimmed)}, nil
}

func (v *Version) String() string          { return v.original }
func (v *Version) Components() []Component { return v.components }

// Equal reports whether v and other were parsed from the same string.
func (v *Version) Equal(other *Version) bool { return v.original == other.original }

// splitSegments partitions s at digit/non-digit boundaries and at any of
// "." "-" "_", dropping the empty strings those separators would
// otherwise produce.
func splitSegments(s string) []Component {
	var comps []Component
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		seg := cur.String()
		if n, err := strconv.ParseInt(seg, 10, 64); err == nil {
			comps = append(comps, Component{IsNumber: true, Number: n})
		} else {
			comps = append(comps, Component{Text: seg})
		}
		cur.Reset()
	}
	var prevDigit, havePrev bool
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '.' || b == '-' || b == '_' {
			flush()
			havePrev = false
			continue
		}
		digit := b >= '0' && b <= '9'
		if havePrev && digit != prevDigit {
			flush()
		}
		cur.WriteByte(b)
		prevDigit = digit
		havePrev = true
	}
	flush()
	return comps
}

// trimTrailingZeros drops trailing all-numeric-zero components, so "1.0"
// and "1.0.0" compare equal to "1".
func trimTrailingZeros(comps []Component) []Component {
	i := len(comps)
	for i > 0 && comps[i-1].IsNumber && comps[i-1].Number == 0 {
		i--
	}
	return comps[:i]
}

// IsPreRelease reports whether any component is textual.
func (v *Version) IsPreRelease() bool {
	for _, c := range v.components {
		if !c.IsNumber {
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

func (v *Version) compareTo(o *Version) int {
	a := trimTrailingZeros(v.components)
	b := trimTrailingZeros(o.components)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, caOK := componentAt(a, i)
		cb, cbOK := componentAt(b, i)
		if !caOK {
			ca = defaultFor(cb)
		}
		if !cbOK {
			cb = defaultFor(ca)
		}
		if c := compareComponent(ca, cb); c != 0 {
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
	return Component{Text: ""}
}

// compareComponent orders Number below Text at the same position — the
// opposite of Maven's and Gradle's "number beats text" rule, per
// RubyGems' own Gem::Version#<=>, where a pre-release ("rc1") must sort
// below the final release it precedes ("1.0" vs "1.0.rc1": "rc1" loses to
// the implicit 0 padding the final release gets at that position, and
// "1.0.0" vs "1.0.a" ranks the text "a" above the number it's being
// compared against).
func compareComponent(a, b Component) int {
	switch {
	case a.IsNumber && b.IsNumber:
		return cmpInt64(a.Number, b.Number)
	case !a.IsNumber && !b.IsNumber:
		return strings.Compare(a.Text, b.Text)
	case a.IsNumber:
		return -1
	default:
		return 1
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

// toNextVersion drops every component from the first textual
// (pre-release) one onward, drops the new final numeric segment, and increments the
// segment that is now last. The result is computed once and cached,
// published via sync.Once so concurrent callers never race on partial
// initialization.
func (v *Version) toNextVersion() *Version {
	v.nextOnce.Do(func() {
		comps := v.components
		i := len(comps)
		for j, c := range comps {
			if !c.IsNumber {
				i = j
				break
			}
		}
		if i > 0 {
			i--
		}
		next := make([]Component, i)
		copy(next, comps[:i])
		if len(next) > 0 {
			next[len(next)-1].Number++
		} else {
			next = []Component{{IsNumber: true, Number: 1}}
		}
		parts := make([]string, len(next))
		for j, c := range next {
			if c.IsNumber {
				parts[j] = strconv.FormatInt(c.Number, 10)
			} else {
				parts[j] = c.Text
			}
		}
		v.next = &Version{original: strings.Join(parts, "."), components: next}
	})
	return v.next
}
