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

import "fmt"

// intVersion is a minimal Version implementation over plain ints, used to
// exercise the algebra without pulling in any real version scheme.
type intVersion int

func (v intVersion) CompareTo(other Version) int {
	o := other.(intVersion)
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}

func (v intVersion) IsPreRelease() bool { return false }

func (v intVersion) String() string { return fmt.Sprint(int(v)) }

func iv(n int) Version { return intVersion(n) }
