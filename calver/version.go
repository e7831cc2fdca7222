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

// Package calver implements Calendar Versioning: a version scheme is
// built from a format spec (e.g. "YYYY.MM.0D-MAJOR") compiled once into a
// single anchored regular expression, which every version of that format
// is then parsed against.
package calver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"deps.dev/util/version/interval"
)

// ComponentCategory classifies a single parsed piece of a calendar
// version.
type ComponentCategory int

const (
	YEAR ComponentCategory = iota
	MONTH
	WEEK
	DAY
	MAJOR
	MINOR
	PATCH
	MODIFIER
)

func (c ComponentCategory) String() string {
	switch c {
	case YEAR:
		return "YEAR"
	case MONTH:
		return "MONTH"
	case WEEK:
		return "WEEK"
	case DAY:
		return "DAY"
	case MAJOR:
		return "MAJOR"
	case MINOR:
		return "MINOR"
	case PATCH:
		return "PATCH"
	case MODIFIER:
		return "MODIFIER"
	default:
		return "UNKNOWN"
	}
}

// Component is one piece of a parsed calendar version.
type Component struct {
	Category     ComponentCategory
	Format       string // the format token this component was parsed from, e.g. "0D".
	StringValue  string
	NumericValue int
}

// tokenSpec describes one recognized format token.
type tokenSpec struct {
	name     string
	category ComponentCategory
	pattern  string
	validate func(n int) error
}

// tokens lists every recognized format token, each token that is a prefix
// of another listed after that longer one, so the scanner in NewScheme
// never matches a short token as a prefix of a longer one (e.g. "YYYY"
// before "YY").
var tokens = []tokenSpec{
	{"YYYY", YEAR, `[0-9]{4}`, nil},
	{"MAJOR", MAJOR, `[0-9]+`, nil},
	{"MINOR", MINOR, `[0-9]+`, nil},
	{"PATCH", PATCH, `[0-9]+`, nil},
	{"0M", MONTH, `[0-9]{2}`, validateMonth},
	{"0W", WEEK, `[0-9]{2}`, validateWeek},
	{"0D", DAY, `[0-9]{2}`, validateDay},
	{"0Y", YEAR, `[0-9]{2,3}`, nil},
	{"MM", MONTH, `[0-9]{1,2}`, validateMonth},
	{"WW", WEEK, `[0-9]{1,2}`, validateWeek},
	{"DD", DAY, `[0-9]{1,2}`, validateDay},
	{"YY", YEAR, `[0-9]{1,3}`, nil},
}

func validateMonth(n int) error {
	if n < 1 || n > 12 {
		return fmt.Errorf("month %d out of range 1..12", n)
	}
	return nil
}

func validateWeek(n int) error {
	if n < 1 || n > 53 {
		return fmt.Errorf("week %d out of range 1..53", n)
	}
	return nil
}

func validateDay(n int) error {
	if n < 1 || n > 31 {
		return fmt.Errorf("day %d out of range 1..31", n)
	}
	return nil
}

func isSeparatorByte(b byte) bool { return b == '.' || b == '-' || b == '_' }

// formatPart is one element of a compiled format, either an explicit
// token or a literal separator.
type formatPart struct {
	literal bool
	sep     byte
	spec    tokenSpec
}

// Scheme is a compiled calendar versioning format.
type Scheme struct {
	format string
	parts  []formatPart
	re     *regexp.Regexp
}

// NewScheme compiles a CalVer format spec (e.g. "YYYY.MM.0D-MAJOR") into
// a Scheme. Format tokens are drawn from a fixed table (YYYY, YY, 0Y, MM,
// 0M, WW, 0W, DD, 0D, MAJOR, MINOR, PATCH); separators between them must
// be one of "." "-" "_". A trailing modifier group ([-._](.+)) is always
// implicitly accepted, whether or not the format names one.
func NewScheme(format string) (*Scheme, error) {
	var parts []formatPart
	var pattern strings.Builder
	pattern.WriteString("^")
	i := 0
	groupIndex := 0
	for i < len(format) {
		if isSeparatorByte(format[i]) {
			parts = append(parts, formatPart{literal: true, sep: format[i]})
			pattern.WriteString(regexp.QuoteMeta(string(format[i])))
			i++
			continue
		}
		spec, n, err := matchToken(format[i:])
		if err != nil {
			return nil, fmt.Errorf("calver: invalid format %q: %w", format, err)
		}
		parts = append(parts, formatPart{spec: spec})
		fmt.Fprintf(&pattern, "(?P<g%d>%s)", groupIndex, spec.pattern)
		groupIndex++
		i += n
	}
	pattern.WriteString(`(?:[-._](?P<modifier>.+))?$`)
	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("calver: compiling format %q: %w", format, err)
	}
	return &Scheme{format: format, parts: parts, re: re}, nil
}

func matchToken(s string) (tokenSpec, int, error) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.name) {
			return t, len(t.name), nil
		}
	}
	return tokenSpec{}, 0, fmt.Errorf("unrecognized token at %q", s)
}

// Format returns the format spec the scheme was compiled from.
func (s *Scheme) Format() string { return s.format }

// Version is a calendar version parsed by a particular Scheme.
type Version struct {
	original   string
	scheme     *Scheme
	components []Component
}

// Parse parses s against the scheme's compiled format.
func (s *Scheme) Parse(v string) (*Version, error) {
	m := s.re.FindStringSubmatch(v)
	if m == nil {
		return nil, fmt.Errorf("calver: %q does not match format %q", v, s.format)
	}
	names := s.re.SubexpNames()
	byName := make(map[string]string, len(names))
	for i, name := range names {
		if name != "" {
			byName[name] = m[i]
		}
	}
	var comps []Component
	groupIndex := 0
	for _, p := range s.parts {
		if p.literal {
			continue
		}
		raw := byName[fmt.Sprintf("g%d", groupIndex)]
		groupIndex++
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("calver: %q: component %q: %w", v, raw, err)
		}
		if p.spec.category == YEAR && len(p.spec.name) > 0 && p.spec.name != "YYYY" {
			n = 2000 + n
		}
		if p.spec.validate != nil {
			if err := p.spec.validate(n); err != nil {
				return nil, fmt.Errorf("calver: %q: %w", v, err)
			}
		}
		comps = append(comps, Component{
			Category:     p.spec.category,
			Format:       p.spec.name,
			StringValue:  raw,
			NumericValue: n,
		})
	}
	if mod := byName["modifier"]; mod != "" {
		comps = append(comps, Component{Category: MODIFIER, StringValue: mod})
	}
	return &Version{original: v, scheme: s, components: comps}, nil
}

// Components returns the parsed components in order. The caller must not
// mutate the returned slice.
func (v *Version) Components() []Component { return v.components }

// String returns the original, verbatim input string.
func (v *Version) String() string { return v.original }

// IsPreRelease reports whether the version carries a MODIFIER component.
func (v *Version) IsPreRelease() bool {
	for _, c := range v.components {
		if c.Category == MODIFIER {
			return true
		}
	}
	return false
}

// Equal reports whether v and other were parsed from the same string.
func (v *Version) Equal(other *Version) bool { return v.original == other.original }

// CompareTo implements interval.Version. It panics if other is not a
// *Version parsed by the same Scheme: no total order is defined across
// CalVer instances of different formats.
func (v *Version) CompareTo(other interval.Version) int {
	o := other.(*Version)
	if v.scheme != o.scheme {
		panic("calver: cannot compare versions parsed from different schemes")
	}
	n := len(v.components)
	if len(o.components) > n {
		n = len(o.components)
	}
	for i := 0; i < n; i++ {
		a, aOK := componentAt(v.components, i)
		b, bOK := componentAt(o.components, i)
		if !aOK || !bOK {
			if aOK != bOK {
				if aOK {
					return 1
				}
				return -1
			}
			return 0
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

func compareComponent(a, b Component) int {
	if a.Category == MODIFIER || b.Category == MODIFIER {
		return strings.Compare(a.StringValue, b.StringValue)
	}
	switch {
	case a.NumericValue < b.NumericValue:
		return -1
	case a.NumericValue > b.NumericValue:
		return 1
	default:
		return 0
	}
}
