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

func TestParseConstraintRanges(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		want       bool
	}{
		{"[1.0,2.0)", "1.0", true},
		{"[1.0,2.0)", "2.0", false},
		{"[1.0,2.0]", "2.0", true},
		{"(,1.0]", "1.0", true},
		{"(,1.0]", "1.1", false},
		{"[1.0,)", "99.0", true},
		{"[1.0,)", "0.9", false},
		{"[1.0]", "1.0", true},
		{"[1.0]", "1.0.1", false},
		{"(,1.0],[1.2,)", "1.1", false},
		{"(,1.0],[1.2,)", "1.2", true},
		{"(,1.0],[1.2,)", "0.5", true},
	}
	for _, tc := range tests {
		c, err := ParseConstraint(tc.constraint)
		if err != nil {
			t.Fatalf("ParseConstraint(%q): %v", tc.constraint, err)
		}
		v := mustParse(t, tc.version)
		if got := c.Allows(v); got != tc.want {
			t.Errorf("%q.Allows(%q) = %v, want %v", tc.constraint, tc.version, got, tc.want)
		}
	}
}

func TestParseConstraintHardRangesAreNotWeak(t *testing.T) {
	c, err := ParseConstraint("[1.0,2.0)")
	if err != nil {
		t.Fatal(err)
	}
	if c.IsWeak() {
		t.Errorf("a bracketed range is a hard constraint, not a soft recommendation")
	}
}

func TestParseConstraintInvalid(t *testing.T) {
	tests := []string{
		"[1.0,2.0",
		"1.0,2.0)",
		"[",
		"[1.0,2.0}",
	}
	for _, s := range tests {
		if _, err := ParseConstraint(s); err == nil {
			t.Errorf("ParseConstraint(%q): expected an error", s)
		}
	}
}

func TestParseConstraintEmptyIsAny(t *testing.T) {
	c, err := ParseConstraint("")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Allows(mustParse(t, "99.0")) {
		t.Errorf("empty constraint should admit everything")
	}
}
