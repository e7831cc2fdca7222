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

package gem

import (
	"fmt"
	"strings"

	"deps.dev/util/version/interval"
)

// ParseConstraint parses a RubyGems constraint: a space-separated list of
// "op version" terms (default op is "="), intersected together. Supported
// operators are =, !=, <, <=, >, >=, ~>.
func ParseConstraint(s string) (interval.Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return interval.Any(), nil
	}
	fields := strings.Fields(s)
	result := interval.Any()
	for _, f := range fields {
		c, err := parseTerm(f)
		if err != nil {
			return interval.Constraint{}, err
		}
		result = result.Intersect(c)
	}
	return result, nil
}

func parseTerm(term string) (interval.Constraint, error) {
	op, rest := splitOperator(term)
	v, err := ParseVersion(rest)
	if err != nil {
		return interval.Constraint{}, err
	}
	switch op {
	case "=":
		return interval.New([]interval.Range{interval.NewRange(v, v, true, true)}, false), nil
	case "!=":
		return interval.New([]interval.Range{
			interval.NewRange(nil, v, false, false),
			interval.NewRange(v, nil, false, false),
		}, false), nil
	case "<":
		return interval.New([]interval.Range{interval.NewRange(nil, v, false, false)}, false), nil
	case "<=":
		return interval.New([]interval.Range{interval.NewRange(nil, v, false, true)}, false), nil
	case ">":
		return interval.New([]interval.Range{interval.NewRange(v, nil, false, false)}, false), nil
	case ">=":
		return interval.New([]interval.Range{interval.NewRange(v, nil, true, false)}, false), nil
	case "~>":
		return pessimistic(v)
	default:
		return interval.Constraint{}, fmt.Errorf("gem: unknown operator %q in %q", op, term)
	}
}

// pessimistic builds the "~>" constraint: the admitted range runs from v
// (inclusive) up to, but not including, the version obtained by dropping
// v's last component and incrementing what is now the last.
//
// The upper bound's displayed form carries a trailing ".ZZZ" marker
// (mirroring RubyGems' own "sorts after any digit" sentinel), but that
// marker is cosmetic only: it is not one of the components compareTo
// walks. Appending a real Text("ZZZ") component there would make the
// bound uncomparable against any ordinary version — Number always loses
// to Text at a shared position (see compareComponent), so a candidate's
// real, numeric component at that index would forever compare less than
// the sentinel, and the upper bound would never actually exclude
// anything. Keeping the component list equal to the bumped prefix is
// what makes "2.0" and "1.5" compare equal-to, and therefore excluded
// by, their respective exclusive upper bounds.
func pessimistic(v *Version) (interval.Constraint, error) {
	comps := v.components
	if len(comps) == 0 {
		return interval.Constraint{}, fmt.Errorf("gem: ~> requires at least one component")
	}
	bump := make([]Component, len(comps))
	copy(bump, comps)
	if len(bump) > 1 {
		bump = bump[:len(bump)-1]
	}
	if !bump[len(bump)-1].IsNumber {
		return interval.Constraint{}, fmt.Errorf("gem: ~> requires a numeric component to bump")
	}
	bump[len(bump)-1].Number++
	parts := make([]string, len(bump))
	for i, c := range bump {
		if c.IsNumber {
			parts[i] = fmt.Sprintf("%d", c.Number)
		} else {
			parts[i] = c.Text
		}
	}
	display := strings.Join(parts, ".") + ".ZZZ"
	upper := &Version{original: display, components: bump}
	return interval.New([]interval.Range{interval.NewRange(v, upper, true, false)}, false), nil
}

// splitOperator splits a constraint term into its leading operator (if
// any) and the version string that follows, defaulting to "=".
func splitOperator(term string) (op, rest string) {
	for _, candidate := range []string{"~>", ">=", "<=", "!=", ">", "<", "="} {
		if strings.HasPrefix(term, candidate) {
			return candidate, strings.TrimSpace(term[len(candidate):])
		}
	}
	return "=", term
}
