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

package maven

import (
	"fmt"
	"strings"

	"deps.dev/util/version/interval"
)

// ParseConstraint parses a Maven version specification. Bracketed forms
// ("[1.0,2.0)", "(,1.0]", "[1.0,)", "[1.0]") denote hard ranges and may be
// comma-separated to union several of them ("(,1.0],[1.2,)"). A bare
// version with no brackets is a "soft" recommendation: Maven does not
// treat it as excluding any other version, so it parses as a weak
// constraint admitting everything.
func ParseConstraint(s string) (interval.Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return interval.Any(), nil
	}
	if s[0] != '[' && s[0] != '(' {
		if strings.ContainsAny(s, "[]()") {
			return interval.Constraint{}, fmt.Errorf("maven: invalid constraint %q", s)
		}
		if _, err := ParseVersion(s); err != nil {
			return interval.Constraint{}, fmt.Errorf("maven: %w", err)
		}
		return interval.New([]interval.Range{interval.Unbounded()}, true), nil
	}
	groups := splitRangeGroups(s)
	if len(groups) == 0 {
		return interval.Constraint{}, fmt.Errorf("maven: invalid constraint %q", s)
	}
	ranges := make([]interval.Range, 0, len(groups))
	for _, g := range groups {
		r, err := parseRange(g)
		if err != nil {
			return interval.Constraint{}, err
		}
		ranges = append(ranges, r)
	}
	return interval.New(ranges, false), nil
}

// splitRangeGroups splits a Maven range specification into its
// bracket-delimited groups, tolerant of the comma that separates the lo
// and hi of a single group as distinct from the comma that separates two
// groups.
func splitRangeGroups(s string) []string {
	var groups []string
	i := 0
	for i < len(s) {
		if s[i] != '[' && s[i] != '(' {
			i++
			continue
		}
		start := i
		for i < len(s) && s[i] != ']' && s[i] != ')' {
			i++
		}
		if i < len(s) {
			i++ // include the closing bracket.
		}
		groups = append(groups, s[start:i])
		if i < len(s) && s[i] == ',' {
			i++
		}
	}
	return groups
}

func parseRange(g string) (interval.Range, error) {
	if len(g) < 2 {
		return interval.Range{}, fmt.Errorf("maven: invalid range %q", g)
	}
	minIncluded := g[0] == '['
	maxIncluded := g[len(g)-1] == ']'
	if !minIncluded && g[0] != '(' {
		return interval.Range{}, fmt.Errorf("maven: invalid range %q", g)
	}
	if !maxIncluded && g[len(g)-1] != ')' {
		return interval.Range{}, fmt.Errorf("maven: invalid range %q", g)
	}
	inner := g[1 : len(g)-1]
	if !strings.Contains(inner, ",") {
		v, err := ParseVersion(strings.TrimSpace(inner))
		if err != nil {
			return interval.Range{}, fmt.Errorf("maven: %w", err)
		}
		return interval.NewRange(v, v, true, true), nil
	}
	parts := strings.SplitN(inner, ",", 2)
	lo, err := parseEndpoint(parts[0])
	if err != nil {
		return interval.Range{}, err
	}
	hi, err := parseEndpoint(parts[1])
	if err != nil {
		return interval.Range{}, err
	}
	return interval.NewRange(lo, hi, minIncluded, maxIncluded), nil
}

func parseEndpoint(s string) (interval.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := ParseVersion(s)
	if err != nil {
		return nil, fmt.Errorf("maven: %w", err)
	}
	return v, nil
}
