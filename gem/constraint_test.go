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

import "testing"

// TestPessimisticOperator is the literal scenario from the spec.
func TestPessimisticOperator(t *testing.T) {
	c, err := ParseConstraint("~>1.0")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Allows(mustParse(t, "1.0")) {
		t.Errorf("~>1.0 should allow 1.0")
	}
	if !c.Allows(mustParse(t, "1.1")) {
		t.Errorf("~>1.0 should allow 1.1")
	}
	if c.Allows(mustParse(t, "2.0")) {
		t.Errorf("~>1.0 should reject 2.0")
	}

	c2, err := ParseConstraint("~>1.4.4")
	if err != nil {
		t.Fatal(err)
	}
	if !c2.Allows(mustParse(t, "1.4.5")) {
		t.Errorf("~>1.4.4 should allow 1.4.5")
	}
	if c2.Allows(mustParse(t, "1.5")) {
		t.Errorf("~>1.4.4 should reject 1.5")
	}
}

func TestPessimisticIntersect(t *testing.T) {
	a, err := ParseConstraint("~>1.0")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseConstraint(">=1.5.0 <3.0.0")
	if err != nil {
		t.Fatal(err)
	}
	inter := a.Intersect(b)
	if inter.Allows(mustParse(t, "1.4")) {
		t.Errorf("intersection should exclude 1.4 (below >=1.5.0)")
	}
	if !inter.Allows(mustParse(t, "1.9")) {
		t.Errorf("intersection should allow 1.9")
	}
	if inter.Allows(mustParse(t, "2.0")) {
		t.Errorf("intersection should exclude 2.0 (above ~>1.0's upper bound)")
	}
}

func TestOperatorTerms(t *testing.T) {
	tests := []struct {
		constraint, version string
		want                bool
	}{
		{"=1.0", "1.0", true},
		{"!=1.0", "1.0", false},
		{"!=1.0", "1.1", true},
		{"<1.0", "0.9", true},
		{"<1.0", "1.0", false},
		{"<=1.0", "1.0", true},
		{">1.0", "1.1", true},
		{">=1.0", "1.0", true},
		{"1.0", "1.0", true}, // default operator is "=".
	}
	for _, tc := range tests {
		c, err := ParseConstraint(tc.constraint)
		if err != nil {
			t.Fatalf("ParseConstraint(%q): %v", tc.constraint, err)
		}
		if got := c.Allows(mustParse(t, tc.version)); got != tc.want {
			t.Errorf("%q.Allows(%q) = %v, want %v", tc.constraint, tc.version, got, tc.want)
		}
	}
}

func TestParseConstraintMultipleTermsIntersect(t *testing.T) {
	c, err := ParseConstraint(">=1.5.0 <3.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if c.Allows(mustParse(t, "1.0")) || c.Allows(mustParse(t, "3.0")) {
		t.Errorf("space-separated terms should intersect")
	}
	if !c.Allows(mustParse(t, "2.0")) {
		t.Errorf("expected 2.0 to be allowed between the two terms")
	}
}
