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

package javaversion

import (
	"fmt"
	"strings"

	"deps.dev/util/version/interval"
)

// ParseConstraint parses an Ivy-style range over Java versions
// ("[11,17)", "[17,)", "17"). Bracketed ranges use "[", "]", "(", ")" as
// the maven package does; a bare version means "this version or newer",
// i.e. [v, +∞), as in the gradle package.
func ParseConstraint(s string) (interval.Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return interval.Any(), nil
	}
	if s[0] != '[' && s[0] != '(' {
		v, err := ParseVersion(s)
		if err != nil {
			return interval.Constraint{}, err
		}
		return interval.New([]interval.Range{interval.NewRange(v, nil, true, false)}, false), nil
	}
	if len(s) < 2 {
		return interval.Constraint{}, fmt.Errorf("javaversion: invalid range %q", s)
	}
	minIncluded := s[0] == '['
	last := s[len(s)-1]
	maxIncluded := last == ']'
	if last != ']' && last != ')' {
		return interval.Constraint{}, fmt.Errorf("javaversion: invalid range %q", s)
	}
	inner := s[1 : len(s)-1]
	if !strings.Contains(inner, ",") {
		v, err := ParseVersion(strings.TrimSpace(inner))
		if err != nil {
			return interval.Constraint{}, err
		}
		return interval.New([]interval.Range{interval.NewRange(v, v, true, true)}, false), nil
	}
	parts := strings.SplitN(inner, ",", 2)
	lo, err := parseEndpoint(parts[0])
	if err != nil {
		return interval.Constraint{}, err
	}
	hi, err := parseEndpoint(parts[1])
	if err != nil {
		return interval.Constraint{}, err
	}
	return interval.New([]interval.Range{interval.NewRange(lo, hi, minIncluded, maxIncluded)}, false), nil
}

func parseEndpoint(s string) (interval.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := ParseVersion(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}
