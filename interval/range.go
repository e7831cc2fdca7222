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

import "strings"

// Range is a single interval of versions: [min,max], (min,max), [min,max),
// etc. Either endpoint may be absent, meaning unbounded on that side. A
// Range with lo > hi, or lo == hi with either endpoint exclusive, carries
// no versions at all; construction never fails, such inputs simply produce
// an empty Range (see NewRange).
type Range struct {
	empty                    bool
	min, max                 Version
	minIncluded, maxIncluded bool
}

// NewRange builds a Range from the given endpoints. A nil min or max means
// unbounded on that side. If the resulting interval is degenerate (lo > hi,
// or lo == hi with either bound exclusive) the empty Range is returned;
// callers detect this with IsEmpty rather than an error, per the algebra's
// contract that malformed endpoint combinations collapse silently.
func NewRange(min, max Version, minIncluded, maxIncluded bool) Range {
	if min != nil && max != nil {
		c := min.CompareTo(max)
		if c > 0 {
			return Range{empty: true}
		}
		if c == 0 {
			if !minIncluded || !maxIncluded {
				return Range{empty: true}
			}
		}
	}
	return Range{min: min, max: max, minIncluded: minIncluded, maxIncluded: maxIncluded}
}

// EmptyRange returns the canonical empty Range.
func EmptyRange() Range { return Range{empty: true} }

// Unbounded returns the Range (-∞,+∞), admitting every version.
func Unbounded() Range { return Range{} }

// Min returns the lower endpoint, or nil if the range is unbounded below.
func (r Range) Min() Version { return r.min }

// Max returns the upper endpoint, or nil if the range is unbounded above.
func (r Range) Max() Version { return r.max }

// MinIncluded reports whether the lower endpoint itself is admitted.
func (r Range) MinIncluded() bool { return r.minIncluded }

// MaxIncluded reports whether the upper endpoint itself is admitted.
func (r Range) MaxIncluded() bool { return r.maxIncluded }

// IsEmpty reports whether the range admits no versions.
func (r Range) IsEmpty() bool { return r.empty }

// IsUnbounded reports whether the range admits every version.
func (r Range) IsUnbounded() bool { return !r.empty && r.min == nil && r.max == nil }

// IsSinglePoint reports whether the range admits exactly one version.
func (r Range) IsSinglePoint() bool {
	return !r.empty && r.min != nil && r.max != nil && r.min.CompareTo(r.max) == 0
}

// Contains reports whether v falls within the range.
func (r Range) Contains(v Version) bool {
	if r.empty {
		return false
	}
	if r.min != nil {
		c := v.CompareTo(r.min)
		if c < 0 || (c == 0 && !r.minIncluded) {
			return false
		}
	}
	if r.max != nil {
		c := v.CompareTo(r.max)
		if c > 0 || (c == 0 && !r.maxIncluded) {
			return false
		}
	}
	return true
}

// lowerCmp orders two lower endpoints by restrictiveness: the result is
// positive when (aMin,aInc) excludes more than (bMin,bInc), i.e. starts
// later, or starts at the same version but is exclusive where the other is
// inclusive. A nil endpoint is unbounded and therefore the least
// restrictive possible lower bound.
func lowerCmp(aMin Version, aInc bool, bMin Version, bInc bool) int {
	if aMin == nil && bMin == nil {
		return 0
	}
	if aMin == nil {
		return -1
	}
	if bMin == nil {
		return 1
	}
	if c := aMin.CompareTo(bMin); c != 0 {
		return c
	}
	if aInc == bInc {
		return 0
	}
	if aInc {
		return -1
	}
	return 1
}

// upperCmp orders two upper endpoints by restrictiveness: the result is
// negative when (aMax,aInc) excludes more than (bMax,bInc), i.e. ends
// earlier, or ends at the same version but is exclusive where the other is
// inclusive. A nil endpoint is unbounded and therefore the least
// restrictive possible upper bound.
func upperCmp(aMax Version, aInc bool, bMax Version, bInc bool) int {
	if aMax == nil && bMax == nil {
		return 0
	}
	if aMax == nil {
		return 1
	}
	if bMax == nil {
		return -1
	}
	if c := aMax.CompareTo(bMax); c != 0 {
		return c
	}
	if aInc == bInc {
		return 0
	}
	if aInc {
		return 1
	}
	return -1
}

// touchesOrOverlaps reports whether an interval ending at (aMax,aInc)
// overlaps or abuts one starting at (bMin,bInc), assuming the former's
// lower bound precedes the latter's.
func touchesOrOverlaps(aMax Version, aInc bool, bMin Version, bInc bool) bool {
	if aMax == nil || bMin == nil {
		return true
	}
	c := aMax.CompareTo(bMin)
	if c > 0 {
		return true
	}
	if c < 0 {
		return false
	}
	return aInc || bInc
}

// Intersect returns the intersection of r and o as a single Range. Per the
// algebra's contract this never fails: a disjoint pair simply yields the
// empty Range.
func (r Range) Intersect(o Range) Range {
	if r.empty || o.empty {
		return EmptyRange()
	}
	var lo, hi Version
	var loInc, hiInc bool
	if lowerCmp(r.min, r.minIncluded, o.min, o.minIncluded) >= 0 {
		lo, loInc = r.min, r.minIncluded
	} else {
		lo, loInc = o.min, o.minIncluded
	}
	if upperCmp(r.max, r.maxIncluded, o.max, o.maxIncluded) <= 0 {
		hi, hiInc = r.max, r.maxIncluded
	} else {
		hi, hiInc = o.max, o.maxIncluded
	}
	return NewRange(lo, hi, loInc, hiInc)
}

// CanUnion reports whether r and o overlap or are adjacent, i.e. whether
// their union is itself expressible as a single Range.
func (r Range) CanUnion(o Range) bool {
	if r.empty || o.empty {
		return true
	}
	a, b := r, o
	if lowerCmp(a.min, a.minIncluded, b.min, b.minIncluded) > 0 {
		a, b = b, a
	}
	return touchesOrOverlaps(a.max, a.maxIncluded, b.min, b.minIncluded)
}

// Union returns the union of r and o as a single Range. The caller must
// have established CanUnion(o); if the two ranges are in fact disjoint and
// non-adjacent the result silently spans the gap between them, which is
// never what a caller building a Constraint wants, so Constraint never
// calls Union without checking CanUnion first.
func (r Range) Union(o Range) Range {
	if r.empty {
		return o
	}
	if o.empty {
		return r
	}
	var lo, hi Version
	var loInc, hiInc bool
	if lowerCmp(r.min, r.minIncluded, o.min, o.minIncluded) <= 0 {
		lo, loInc = r.min, r.minIncluded
	} else {
		lo, loInc = o.min, o.minIncluded
	}
	if upperCmp(r.max, r.maxIncluded, o.max, o.maxIncluded) >= 0 {
		hi, hiInc = r.max, r.maxIncluded
	} else {
		hi, hiInc = o.max, o.maxIncluded
	}
	return NewRange(lo, hi, loInc, hiInc)
}

// subsetOf reports whether every version admitted by r is also admitted
// by o.
func (r Range) subsetOf(o Range) bool {
	if r.empty {
		return true
	}
	if o.empty {
		return false
	}
	if lowerCmp(r.min, r.minIncluded, o.min, o.minIncluded) < 0 {
		return false
	}
	if upperCmp(r.max, r.maxIncluded, o.max, o.maxIncluded) > 0 {
		return false
	}
	return true
}

// String renders the range as "[lo,hi]", "(lo,hi)", or a mix, using the
// empty string for an absent endpoint. A single-point range renders as
// "[v]"; the unbounded range renders as "(,)".
func (r Range) String() string {
	if r.empty {
		return "()"
	}
	if r.IsSinglePoint() {
		return "[" + r.min.String() + "]"
	}
	var b strings.Builder
	if r.minIncluded {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.min != nil {
		b.WriteString(r.min.String())
	}
	b.WriteByte(',')
	if r.max != nil {
		b.WriteString(r.max.String())
	}
	if r.maxIncluded {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
