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

// Package javaversion implements Java platform version parsing and
// comparison per JEP 322 ("Time-Based Release Versioning").
package javaversion

import (
	"fmt"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"deps.dev/util/version/interval"
)

// versionPattern matches JEP 322's
// $FEATURE(.$INTERIM(.$UPDATE(.$PATCH)*)*)?((-$PRE)?(+$BUILD)?(-$OPT)?)?
var versionPattern = regexp.MustCompile(
	`^(?P<tuple>[0-9]+(?:\.[0-9]+)*)` +
		`(?:-(?P<pre>[a-zA-Z0-9]+))?` +
		`(?:\+(?P<build>[0-9]+))?` +
		`(?:-(?P<opt>[-a-zA-Z0-9.]+))?$`,
)

// Version is a parsed Java platform version.
type Version struct {
	original string
	tuple    []int32
	pre      string
	build    int32
	hasBuild bool
	opt      string
}

// ParseVersion parses s as a Java version string.
func ParseVersion(s string) (*Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("javaversion: %q is not a valid Java version", s)
	}
	names := versionPattern.SubexpNames()
	groups := make(map[string]string, len(names))
	for i, name := range names {
		if name != "" {
			groups[name] = m[i]
		}
	}
	parts := strings.Split(groups["tuple"], ".")
	tuple := make([]int32, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("javaversion: %q: component %q: %w", s, p, err)
		}
		tuple[i] = int32(n)
	}
	v := &Version{original: s, tuple: tuple, pre: groups["pre"], opt: groups["opt"]}
	if b := groups["build"]; b != "" {
		n, err := strconv.ParseInt(b, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("javaversion: %q: build %q: %w", s, b, err)
		}
		v.build = int32(n)
		v.hasBuild = true
	}
	return v, nil
}

// Feature returns $FEATURE, the first element of the version tuple.
func (v *Version) Feature() int32 { return v.tuple[0] }

// Tuple returns the full $FEATURE.$INTERIM.$UPDATE.$PATCH... tuple. The
// caller must not mutate the returned slice.
func (v *Version) Tuple() []int32 { return v.tuple }

// PreRelease returns $PRE, or the empty string if absent.
func (v *Version) PreRelease() string { return v.pre }

// Build returns $BUILD and whether it was present.
func (v *Version) Build() (int32, bool) { return v.build, v.hasBuild }

// Optional returns $OPT, or the empty string if absent.
func (v *Version) Optional() string { return v.opt }

// String returns the original, verbatim input string.
func (v *Version) String() string { return v.original }

// IsPreRelease reports whether $PRE is present.
func (v *Version) IsPreRelease() bool { return v.pre != "" }

// Equal reports whether v and other were parsed from the same string.
func (v *Version) Equal(other *Version) bool { return v.original == other.original }

// CompareTo implements interval.Version. It panics if other is not a
// *Version. Per JEP 322, only the numeric tuple participates in ordering;
// $PRE, $BUILD, and $OPT are informational.
func (v *Version) CompareTo(other interval.Version) int {
	return v.compareTo(other.(*Version))
}

func (v *Version) compareTo(o *Version) int {
	n := len(v.tuple)
	if len(o.tuple) > n {
		n = len(o.tuple)
	}
	for i := 0; i < n; i++ {
		a, b := elemAt(v.tuple, i), elemAt(o.tuple, i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func elemAt(tuple []int32, i int) int32 {
	if i < len(tuple) {
		return tuple[i]
	}
	return 0
}

// isVersion reports whether candidate's leading numeric tuple starts with
// base's tuple — i.e. candidate is some more-specific version of base
// (base=17, candidate=17.0.2 → true; base=17.1, candidate=17.2 → false).
func isVersion(base, candidate *Version) bool {
	if len(candidate.tuple) < len(base.tuple) {
		return false
	}
	for i, want := range base.tuple {
		if candidate.tuple[i] != want {
			return false
		}
	}
	return true
}

// IsVersion reports whether candidate is a (possibly more specific)
// version of base per isVersion's prefix rule.
func IsVersion(base, candidate *Version) bool { return isVersion(base, candidate) }

var (
	runtimeVersionOnce sync.Once
	runtimeVersion     *Version
)

// RuntimeVersion returns the Java version of the host Go runtime, lazily
// resolved from runtime.Version() the first time it is called.
//
// This is a borrowed notion, not a literal one: runtime.Version() reports
// the Go toolchain's own version (e.g. "go1.21.1"), not a JDK's. It is
// parsed here as a stand-in "process-wide version constant" purely to
// give C8's RUNTIME_VERSION a concrete, always-available source in a
// module that embeds no JVM.
func RuntimeVersion() *Version {
	runtimeVersionOnce.Do(func() {
		s := strings.TrimPrefix(runtime.Version(), "go")
		// runtime.Version() may carry a "go1.21.1-<hash>" devel suffix;
		// keep only the dotted numeric prefix JEP 322 can parse.
		end := len(s)
		for i, r := range s {
			if !(r >= '0' && r <= '9' || r == '.') {
				end = i
				break
			}
		}
		v, err := ParseVersion(s[:end])
		if err != nil {
			v = &Version{original: s, tuple: []int32{0}}
		}
		runtimeVersion = v
	})
	return runtimeVersion
}
