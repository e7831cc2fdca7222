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
	"sort"
	"testing"
)

func TestParseVersionValid(t *testing.T) {
	tests := []struct {
		in                  string
		major, minor, patch int32
		pre, build          []string
	}{
		{"1.2.3", 1, 2, 3, nil, nil},
		{"v1.2.3", 1, 2, 3, nil, nil},
		{"0.0.0", 0, 0, 0, nil, nil},
		{"1.0.0-alpha", 1, 0, 0, []string{"alpha"}, nil},
		{"1.0.0-alpha.1", 1, 0, 0, []string{"alpha", "1"}, nil},
		{"1.0.0-0.3.7", 1, 0, 0, []string{"0", "3", "7"}, nil},
		{"1.0.0+build.1", 1, 0, 0, nil, []string{"build", "1"}},
		{"1.0.0-alpha+001", 1, 0, 0, []string{"alpha"}, []string{"001"}},
	}
	for _, tc := range tests {
		v, err := ParseVersion(tc.in)
		if err != nil {
			t.Errorf("ParseVersion(%q) returned error: %v", tc.in, err)
			continue
		}
		if v.Major() != tc.major || v.Minor() != tc.minor || v.Patch() != tc.patch {
			t.Errorf("ParseVersion(%q) = %d.%d.%d, want %d.%d.%d", tc.in, v.Major(), v.Minor(), v.Patch(), tc.major, tc.minor, tc.patch)
		}
	}
}

func TestParseVersionInvalid(t *testing.T) {
	tests := []string{
		"", "1", "1.2", "01.2.3", "1.02.3", "1.2.03",
		"1.2.3-", "1.2.3-+build", "1.2.3.4", "a.b.c",
		"99999999999999999999.0.0",
	}
	for _, in := range tests {
		if _, err := ParseVersion(in); err == nil {
			t.Errorf("ParseVersion(%q) succeeded, want error", in)
		}
	}
}

// TestSemVerPreReleaseOrder is the literal scenario from the spec: these
// five versions, parsed and sorted, must come back in exactly this order.
func TestSemVerPreReleaseOrder(t *testing.T) {
	in := []string{
		"1.0.0-beta.11",
		"1.0.0",
		"1.0.0-alpha.1",
		"1.0.0-rc.1",
		"1.0.0-alpha",
	}
	versions := make([]*Version, len(in))
	for i, s := range in {
		v, err := ParseVersion(s)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", s, err)
		}
		versions[i] = v
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].compareTo(versions[j]) < 0
	})
	want := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}
	for i, v := range versions {
		if v.String() != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, v.String(), want[i])
		}
	}
}

func TestCompareToIgnoresBuildButEqualDoesNot(t *testing.T) {
	a, _ := ParseVersion("1.0.0+build1")
	b, _ := ParseVersion("1.0.0+build2")
	if c := a.compareTo(b); c != 0 {
		t.Errorf("compareTo with differing build metadata = %d, want 0", c)
	}
	if a.Equal(b) {
		t.Errorf("Equal considered %q and %q equal, want unequal", a, b)
	}
}

func TestIsPreRelease(t *testing.T) {
	pre, _ := ParseVersion("1.0.0-alpha")
	rel, _ := ParseVersion("1.0.0")
	if !pre.IsPreRelease() {
		t.Errorf("expected 1.0.0-alpha to be a pre-release")
	}
	if rel.IsPreRelease() {
		t.Errorf("did not expect 1.0.0 to be a pre-release")
	}
}

func TestOverflowingComponentFails(t *testing.T) {
	if _, err := ParseVersion("2147483648.0.0"); err == nil {
		t.Errorf("expected overflow error for major component")
	}
	if _, err := ParseVersion("2147483647.0.0"); err != nil {
		t.Errorf("did not expect overflow error for max int32: %v", err)
	}
}
