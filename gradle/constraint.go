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

package gradle

import (
	"fmt"
	"strings"

	"deps.dev/util/version/interval"
)

// ParseConstraint parses a Gradle version constraint: an Ivy-style bracket
// range ("[1.0,2.0)", "]1.0,2.0["), a dynamic version ("1.2.+", bare "+"),
// or a plain version (which Gradle resolves as "this version or newer",
// i.e. [v, +∞)).
func ParseConstraint(s string) (interval.Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return interval.Any(), nil
	}
	if s == "+" {
		return interval.Any(), nil
	}
	if strings.HasSuffix(s, ".+") || (strings.HasSuffix(s, "+") && !strings.ContainsAny(s, "[]()")) {
		r, err := parseDynamic(s)
		if err != nil {
			return interval.Constraint{}, err
		}
		return interval.New([]interval.Range{r}, false), nil
	}
	if isBracket(s[0]) {
		r, err := parseRange(s)
		if err != nil {
			return interval.Constraint{}, err
		}
		return interval.New([]interval.Range{r}, false), nil
	}
	v, err := ParseVersion(s)
	if err != nil {
		return interval.Constraint{}, err
	}
	return interval.New([]interval.Range{interval.NewRange(v, nil, true, false)}, false), nil
}

func isBracket(b byte) bool { return b == '[' || b == ']' || b == '(' }

// parseDynamic expands a dynamic version "prefix.+" (or the bare "+",
// handled by the caller) into [prefix, nextPrefix), where nextPrefix
// increments the final numeric segment of prefix.
func parseDynamic(s string) (interval.Range, error) {
	prefix := strings.TrimSuffix(s, "+")
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return interval.Unbounded(), nil
	}
	lo, err := ParseVersion(prefix)
	if err != nil {
		return interval.Range{}, err
	}
	hi, err := nextPrefix(prefix)
	if err != nil {
		return interval.Range{}, fmt.Errorf("gradle: dynamic version %q: %w", s, err)
	}
	return interval.NewRange(lo, hi, true, false), nil
}

// nextPrefix increments the final numeric segment of a dotted version
// prefix. It fails if that segment is not purely numeric.
func nextPrefix(prefix string) (*Version, error) {
	comps := tokenize(prefix)
	if len(comps) == 0 || !comps[len(comps)-1].IsNumber {
		return nil, fmt.Errorf("final segment of %q is not numeric", prefix)
	}
	comps[len(comps)-1].Number++
	parts := make([]string, len(comps))
	for i, c := range comps {
		if c.IsNumber {
			parts[i] = fmt.Sprintf("%d", c.Number)
		} else {
			parts[i] = c.Text
		}
	}
	s := strings.Join(parts, ".")
	return &Version{original: s, components: comps}, nil
}

// parseRange parses an Ivy-style bracket range. Both "[","]" and "(",")"
// bracket pairs are accepted for each side independently, and Ivy's
// reversed-bracket exclusion notation ("]1.0,2.0[") is equivalent to
// "(1.0,2.0)". An upper endpoint written with the dynamic "+" suffix (e.g.
// "[1.5.0,2.+]") resolves to the next-prefix version with an exclusive
// bound, regardless of the bracket character used to close it, since a
// dynamic endpoint already denotes "up to but not including".
func parseRange(s string) (interval.Range, error) {
	if len(s) < 2 {
		return interval.Range{}, fmt.Errorf("gradle: invalid range %q", s)
	}
	minIncluded := s[0] == '['
	if s[0] != '[' && s[0] != ']' && s[0] != '(' {
		return interval.Range{}, fmt.Errorf("gradle: invalid range %q", s)
	}
	last := s[len(s)-1]
	maxIncluded := last == ']'
	if last != ']' && last != '[' && last != ')' {
		return interval.Range{}, fmt.Errorf("gradle: invalid range %q", s)
	}
	inner := s[1 : len(s)-1]
	if !strings.Contains(inner, ",") {
		v, err := ParseVersion(strings.TrimSpace(inner))
		if err != nil {
			return interval.Range{}, err
		}
		return interval.NewRange(v, v, true, true), nil
	}
	parts := strings.SplitN(inner, ",", 2)
	lo, err := parseGradleEndpoint(parts[0])
	if err != nil {
		return interval.Range{}, err
	}
	hiStr := strings.TrimSpace(parts[1])
	if strings.HasSuffix(hiStr, "+") {
		hi, err := nextPrefix(strings.TrimSuffix(strings.TrimSuffix(hiStr, "+"), "."))
		if err != nil {
			return interval.Range{}, fmt.Errorf("gradle: dynamic upper bound %q: %w", hiStr, err)
		}
		return interval.NewRange(lo, hi, minIncluded, false), nil
	}
	hi, err := parseGradleEndpoint(parts[1])
	if err != nil {
		return interval.Range{}, err
	}
	return interval.NewRange(lo, hi, minIncluded, maxIncluded), nil
}

func parseGradleEndpoint(s string) (interval.Version, error) {
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
