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

// Package semver implements Semantic Versioning 2.0.0 version parsing,
// comparison, and range/constraint algebra, per https://semver.org.
//
// A leading "v" is accepted and stripped, matching common practice rather
// than the strict standard. Pre-release identifiers participate in
// ordering; build metadata does not, though it does participate in
// equality, so two versions can compare equal under CompareTo while being
// unequal under Equal.
package semver

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"deps.dev/util/version/interval"
)

var versionPattern = regexp.MustCompile(
	`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?` +
		`(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// Version is a parsed Semantic Versioning 2.0.0 version.
type Version struct {
	original             string
	major, minor, patch  int32
	preRelease           []string
	build                []string
}

// ParseVersion parses s as a semantic version. Numeric components must fit
// a signed 32-bit integer.
func ParseVersion(s string) (*Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("semver: invalid version %q", s)
	}
	major, err := parseInt32(m[1])
	if err != nil {
		return nil, fmt.Errorf("semver: %q: %w", s, err)
	}
	minor, err := parseInt32(m[2])
	if err != nil {
		return nil, fmt.Errorf("semver: %q: %w", s, err)
	}
	patch, err := parseInt32(m[3])
	if err != nil {
		return nil, fmt.Errorf("semver: %q: %w", s, err)
	}
	var pre, build []string
	if m[4] != "" {
		pre = strings.Split(m[4], ".")
		for _, id := range pre {
			if isNumericIdentifier(id) {
				if len(id) > 1 && id[0] == '0' {
					return nil, fmt.Errorf("semver: %q: numeric pre-release identifier %q has a leading zero", s, id)
				}
				if _, err := parseInt32(id); err != nil {
					return nil, fmt.Errorf("semver: %q: pre-release identifier %q: %w", s, id, err)
				}
			}
		}
	}
	if m[5] != "" {
		build = strings.Split(m[5], ".")
	}
	return &Version{
		original:   s,
		major:      major,
		minor:      minor,
		patch:      patch,
		preRelease: pre,
		build:      build,
	}, nil
}

// NewSnapshot builds a version from major.minor.patch plus, if snapshot is
// true, a pre-release identifier derived from the current moment so the
// result always sorts before the corresponding release. Callers supply the
// moment (as epoch milliseconds) rather than this package reading the
// clock, keeping the package itself side-effect-free.
func NewSnapshot(major, minor, patch int32, snapshot bool, epochMillis int64) *Version {
	v := &Version{major: major, minor: minor, patch: patch}
	if snapshot {
		v.preRelease = []string{strconv.FormatInt(epochMillis, 10)}
	}
	v.original = v.canon()
	return v
}

func (v *Version) canon() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.major, v.minor, v.patch)
	if len(v.preRelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.preRelease, "."))
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid integer: %q", s)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("integer %q overflows a signed 32-bit value", s)
	}
	return int32(n), nil
}

func isNumericIdentifier(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Major returns the major version component.
func (v *Version) Major() int32 { return v.major }

// Minor returns the minor version component.
func (v *Version) Minor() int32 { return v.minor }

// Patch returns the patch version component.
func (v *Version) Patch() int32 { return v.patch }

// PreReleaseIdentifiers returns the dot-separated pre-release identifiers,
// or nil if this is not a pre-release version.
func (v *Version) PreReleaseIdentifiers() []string { return append([]string(nil), v.preRelease...) }

// BuildIdentifiers returns the dot-separated build metadata identifiers.
func (v *Version) BuildIdentifiers() []string { return append([]string(nil), v.build...) }

// IsPreRelease reports whether v carries a pre-release tag.
func (v *Version) IsPreRelease() bool { return len(v.preRelease) > 0 }

// String returns the original, verbatim input string.
func (v *Version) String() string { return v.original }

// Equal reports whether v and other have the same original representation.
// Equality considers build metadata; CompareTo does not, so two versions
// can compare equal (CompareTo returns 0) while being unequal here.
func (v *Version) Equal(other *Version) bool { return v.original == other.original }

// CompareTo implements interval.Version. It panics if other is not a
// *Version.
func (v *Version) CompareTo(other interval.Version) int {
	return v.compareTo(other.(*Version))
}

func (v *Version) compareTo(o *Version) int {
	if c := cmpInt32(v.major, o.major); c != 0 {
		return c
	}
	if c := cmpInt32(v.minor, o.minor); c != 0 {
		return c
	}
	if c := cmpInt32(v.patch, o.patch); c != 0 {
		return c
	}
	switch {
	case len(v.preRelease) == 0 && len(o.preRelease) == 0:
		return 0
	case len(v.preRelease) == 0:
		return 1 // no pre-release outranks a pre-release.
	case len(o.preRelease) == 0:
		return -1
	}
	n := len(v.preRelease)
	if len(o.preRelease) > n {
		n = len(o.preRelease)
	}
	for i := 0; i < n; i++ {
		if i >= len(v.preRelease) {
			return -1 // shorter list's missing identifier ranks lowest.
		}
		if i >= len(o.preRelease) {
			return 1
		}
		if c := comparePreReleaseIdentifier(v.preRelease[i], o.preRelease[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpInt32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var prefixDigitsSplit = regexp.MustCompile(`^([0-9A-Za-z-]*[A-Za-z-])([0-9]+)$`)

// comparePreReleaseIdentifier compares a single pair of pre-release
// identifiers per semver.org's precedence rules: numeric identifiers
// compare numerically and are always lower than non-numeric ones;
// non-numeric identifiers compare lexicographically, except that when both
// embed the same non-numeric prefix followed by digits (e.g. "alpha1" vs
// "alpha2", or "rc.1" split differently as "rc" and "1" by the dot
// separator already), the numeric tails compare numerically.
func comparePreReleaseIdentifier(a, b string) int {
	aNum, aIsNum := asInt(a)
	bNum, bIsNum := asInt(b)
	switch {
	case aIsNum && bIsNum:
		return cmpInt64(aNum, bNum)
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	}
	am := prefixDigitsSplit.FindStringSubmatch(a)
	bm := prefixDigitsSplit.FindStringSubmatch(b)
	if am != nil && bm != nil && am[1] == bm[1] {
		an, _ := strconv.ParseInt(am[2], 10, 64)
		bn, _ := strconv.ParseInt(bm[2], 10, 64)
		return cmpInt64(an, bn)
	}
	return strings.Compare(a, b)
}

func asInt(s string) (int64, bool) {
	if !isNumericIdentifier(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
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
