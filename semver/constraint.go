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

package semver

import (
	"fmt"
	"strings"

	"deps.dev/util/version/interval"
)

// ParseConstraint parses a space-separated list of plain comparator terms
// (">=1.2.3", "<2.0.0", "=1.0.0", "1.0.0") and returns their intersection.
// This is the plain grammar; npm's shorthand (^, ~, hyphen ranges, x-ranges)
// is translated into this grammar by the sibling npm package before being
// handed to this parser.
func ParseConstraint(s string) (interval.Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return interval.Any(), nil
	}
	var ranges []interval.Range
	for _, term := range strings.Fields(s) {
		r, err := parseTerm(term)
		if err != nil {
			return interval.Constraint{}, err
		}
		ranges = append(ranges, r)
	}
	return intersectAll(ranges), nil
}

// intersectAll returns the intersection of a list of single-range
// constraints, i.e. a space-separated AND of comparator terms.
func intersectAll(ranges []interval.Range) interval.Constraint {
	c := interval.Any()
	for _, r := range ranges {
		c = c.Intersect(interval.New([]interval.Range{r}, false))
	}
	return c
}

func parseTerm(term string) (interval.Range, error) {
	op, rest := splitOperator(term)
	v, err := ParseVersion(rest)
	if err != nil {
		return interval.Range{}, fmt.Errorf("semver: invalid constraint term %q: %w", term, err)
	}
	switch op {
	case "", "=", "==":
		return interval.NewRange(v, v, true, true), nil
	case ">":
		return interval.NewRange(v, nil, false, false), nil
	case ">=":
		return interval.NewRange(v, nil, true, false), nil
	case "<":
		return interval.NewRange(nil, v, false, false), nil
	case "<=":
		return interval.NewRange(nil, v, false, true), nil
	default:
		return interval.Range{}, fmt.Errorf("semver: unrecognized operator %q in %q", op, term)
	}
}

func splitOperator(term string) (op, rest string) {
	for _, candidate := range []string{">=", "<=", "==", ">", "<", "="} {
		if strings.HasPrefix(term, candidate) {
			return candidate, strings.TrimSpace(term[len(candidate):])
		}
	}
	return "", term
}
