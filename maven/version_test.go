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

import "testing"

func mustParse(t *testing.T, s string) *Version {
	t.Helper()
	v, err := ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q): %v", s, err)
	}
	return v
}

func TestCompareTo(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.0.0", 0}, // trailing zero equals no component.
		{"1.0", "1", 0},
		{"1.0-alpha", "1.0", -1},
		{"1.0-alpha", "1.0-beta", -1},
		{"1.0-beta", "1.0-milestone", -1},
		{"1.0-milestone", "1.0-rc", -1},
		{"1.0-rc", "1.0-snapshot", -1},
		{"1.0-snapshot", "1.0", -1},
		{"1.0", "1.0-ga", 0},
		{"1.0", "1.0-sp", -1},
		{"1.0-sp", "1.0.1", -1},
		{"1.0-foo", "1.0", 1}, // unknown qualifier sorts after known ones.
		{"1.0-foo", "1.0-sp", 1},
		{"2.0", "1.0", 1},
		{"1.0.0.0", "1.0", 0},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		if got := a.compareTo(b); got != tc.want {
			t.Errorf("compareTo(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestMavenSetOperations is the literal scenario from the spec.
func TestMavenSetOperations(t *testing.T) {
	a, err := ParseConstraint("[1.0.0,2.0.0)")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseConstraint("[1.5.0,3.0.0)")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := a.Intersect(b).String(), "[1.5.0,2.0.0)"; got != want {
		t.Errorf("Intersect = %q, want %q", got, want)
	}
	if got, want := a.Union(b).String(), "[1.0.0,3.0.0)"; got != want {
		t.Errorf("Union = %q, want %q", got, want)
	}
}

func TestEmptyVersionIsNotAliasedToZero(t *testing.T) {
	empty := mustParse(t, "")
	zero := mustParse(t, "0")
	if empty.String() != "" || len(empty.Components()) != 0 {
		t.Errorf("expected Maven's empty version to keep its empty form with no components, got %q with %d components", empty.String(), len(empty.Components()))
	}
	if empty.compareTo(zero) != 0 {
		t.Errorf("expected Maven's empty version to compare equal to \"0\" under Number(0) padding")
	}
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "1.0")
	b := mustParse(t, "1.0.0")
	if a.Equal(b) {
		t.Errorf("expected \"1.0\" and \"1.0.0\" to compare equal but not be Equal (different representations)")
	}
	if !a.Equal(mustParse(t, "1.0")) {
		t.Errorf("expected identical representations to be Equal")
	}
}

func TestIsPreRelease(t *testing.T) {
	if !mustParse(t, "1.0-alpha").IsPreRelease() {
		t.Errorf("expected 1.0-alpha to be a pre-release")
	}
	if mustParse(t, "1.0-sp").IsPreRelease() {
		t.Errorf("did not expect 1.0-sp to be a pre-release")
	}
	if mustParse(t, "1.0").IsPreRelease() {
		t.Errorf("did not expect 1.0 to be a pre-release")
	}
}

func TestBareVersionIsWeakAndAdmitsEverything(t *testing.T) {
	c, err := ParseConstraint("1.5")
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsWeak() {
		t.Errorf("expected bare version constraint to be weak")
	}
	if !c.Allows(mustParse(t, "99.0")) {
		t.Errorf("expected a soft recommendation to admit unrelated versions")
	}
}
