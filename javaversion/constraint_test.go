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

package javaversion

import "testing"

func TestParseConstraintRange(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		want       bool
	}{
		{"[11,17)", "11", true},
		{"[11,17)", "17", false},
		{"[17,)", "99", true},
		{"[17,)", "11", false},
		{"17", "17.0.2", true},
		{"17", "11", false},
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
