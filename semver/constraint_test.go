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

import "testing"

func TestParseConstraintAllows(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		want       bool
	}{
		{">=1.0.0", "1.0.0", true},
		{">=1.0.0", "0.9.0", false},
		{">1.0.0 <2.0.0", "1.5.0", true},
		{">1.0.0 <2.0.0", "2.0.0", false},
		{"=1.2.3", "1.2.3", true},
		{"=1.2.3", "1.2.4", false},
		{"1.2.3", "1.2.3", true},
	}
	for _, tc := range tests {
		c, err := ParseConstraint(tc.constraint)
		if err != nil {
			t.Fatalf("ParseConstraint(%q): %v", tc.constraint, err)
		}
		v, err := ParseVersion(tc.version)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", tc.version, err)
		}
		if got := c.Allows(v); got != tc.want {
			t.Errorf("%q.Allows(%q) = %v, want %v", tc.constraint, tc.version, got, tc.want)
		}
	}
}

func TestParseConstraintEmpty(t *testing.T) {
	c, err := ParseConstraint("")
	if err != nil {
		t.Fatalf("ParseConstraint(\"\"): %v", err)
	}
	v, _ := ParseVersion("1.0.0")
	if !c.Allows(v) {
		t.Errorf("empty constraint string should admit everything")
	}
}
