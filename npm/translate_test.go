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

package npm

import "testing"

// TestTranslate covers the literal scenarios from the spec along with the
// remaining shorthand forms each pass is responsible for.
func TestTranslate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"^1.2.3", ">=1.2.3 <2.0.0-0"},
		{"^0.2.3", ">=0.2.3 <0.3.0-0"},
		{"^0.0.3", ">=0.0.3 <0.0.4-0"},
		{"~1.2.3", ">=1.2.3 <1.3.0-0"},
		{"~1.2", ">=1.2.0 <1.3.0-0"},
		{"~1", ">=1.0.0 <2.0.0-0"},
		{"1.2.x", ">=1.2.0 <1.3.0-0"},
		{"1.x", ">=1.0.0 <2.0.0-0"},
		{"*", ">=0.0.0"},
		{"", ">=0.0.0"},
		{"latest", ">=0.0.0"},
		{"1.2.3 - 2.3.4", ">=1.2.3 <=2.3.4"},
		{"1.2 - 2.3.4", ">=1.2.0 <=2.3.4"},
		{"1.2.3 - 2.3", ">=1.2.3 <2.4.0-0"},
		{"1.2.3 - 2", ">=1.2.3 <3.0.0-0"},
	}
	for _, test := range tests {
		got, err := Translate(test.in)
		if err != nil {
			t.Errorf("Translate(%q) returned error: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Translate(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestTranslateRejectsMalformed(t *testing.T) {
	for _, in := range []string{"^abc", "~abc", "1.2.3 -"} {
		if _, err := Translate(in); err == nil {
			t.Errorf("Translate(%q): expected an error", in)
		}
	}
}
