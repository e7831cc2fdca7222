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

package interval

import (
	"sort"
	"strings"
)

// Constraint is an ordered, pairwise-disjoint, non-adjacent list of Ranges:
// the set of versions it admits is their union. It is normalized on
// construction, so two Constraints built from the same admitted set always
// compare equal range-for-range and render identically.
//
// The weak flag marks a "preferred but not enforced" constraint. It is
// carried through copies but does not affect set semantics, and every set
// operation below clears it on its result.
type Constraint struct {
	ranges []Range
	weak   bool
}

// Empty returns the constraint admitting no versions.
func Empty() Constraint { return Constraint{} }

// Any returns the constraint admitting every version.
func Any() Constraint { return Constraint{ranges: []Range{Unbounded()}} }

// New builds a Constraint from an arbitrary (possibly overlapping,
// unsorted, or empty-containing) list of Ranges, normalizing it: empty
// ranges are dropped, the rest are sorted by lower endpoint and merged
// wherever CanUnion holds.
func New(ranges []Range, weak bool) Constraint {
	return Constraint{ranges: normalize(ranges), weak: weak}
}

func normalize(ranges []Range) []Range {
	filtered := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return lowerCmp(filtered[i].min, filtered[i].minIncluded, filtered[j].min, filtered[j].minIncluded) < 0
	})
	out := make([]Range, 0, len(filtered))
	current := filtered[0]
	for _, next := range filtered[1:] {
		if current.CanUnion(next) {
			current = current.Union(next)
			continue
		}
		out = append(out, current)
		current = next
	}
	return append(out, current)
}

// Ranges returns the constraint's disjoint ranges in ascending order. The
// caller must not mutate the returned slice.
func (c Constraint) Ranges() []Range { return c.ranges }

// IsWeak reports whether this is a preferred-but-not-enforced constraint.
func (c Constraint) IsWeak() bool { return c.weak }

// IsEmpty reports whether the constraint admits no versions.
func (c Constraint) IsEmpty() bool { return len(c.ranges) == 0 }

// Allows reports whether v is admitted by any range of the constraint.
func (c Constraint) Allows(v Version) bool {
	for _, r := range c.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// AllowsAll reports whether every version admitted by o is also admitted
// by c, i.e. whether o is a subset of c.
func (c Constraint) AllowsAll(o Constraint) bool {
	for _, rp := range o.ranges {
		ok := false
		for _, r := range c.ranges {
			if rp.subsetOf(r) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// AllowsAny reports whether c and o admit at least one version in common.
func (c Constraint) AllowsAny(o Constraint) bool {
	for _, r := range c.ranges {
		for _, rp := range o.ranges {
			if !r.Intersect(rp).IsEmpty() {
				return true
			}
		}
	}
	return false
}

// Intersect returns the set intersection of c and o. The weak flag of the
// result is always false.
func (c Constraint) Intersect(o Constraint) Constraint {
	var out []Range
	for _, r := range c.ranges {
		for _, rp := range o.ranges {
			if inter := r.Intersect(rp); !inter.IsEmpty() {
				out = append(out, inter)
			}
		}
	}
	return New(out, false)
}

// Union returns the set union of c and o. The weak flag of the result is
// always false.
func (c Constraint) Union(o Constraint) Constraint {
	combined := make([]Range, 0, len(c.ranges)+len(o.ranges))
	combined = append(combined, c.ranges...)
	combined = append(combined, o.ranges...)
	return New(combined, false)
}

// Complement returns the set of versions not admitted by c: the gaps
// between its ranges, plus the unbounded regions below the first and above
// the last, with inclusivity flipped at every boundary. The weak flag of
// the result is always false.
func (c Constraint) Complement() Constraint {
	if len(c.ranges) == 0 {
		return Any()
	}
	var out []Range
	first := c.ranges[0]
	if first.min != nil {
		out = append(out, NewRange(nil, first.min, false, !first.minIncluded))
	}
	for i := 0; i+1 < len(c.ranges); i++ {
		cur, next := c.ranges[i], c.ranges[i+1]
		out = append(out, NewRange(cur.max, next.min, !cur.maxIncluded, !next.minIncluded))
	}
	last := c.ranges[len(c.ranges)-1]
	if last.max != nil {
		out = append(out, NewRange(last.max, nil, !last.maxIncluded, false))
	}
	if len(out) == 0 {
		return Empty()
	}
	return New(out, false)
}

// String renders the constraint as its ranges, comma-separated, in order.
func (c Constraint) String() string {
	parts := make([]string, len(c.ranges))
	for i, r := range c.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
