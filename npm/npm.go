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

import (
	"fmt"

	"deps.dev/util/version/interval"
	"deps.dev/util/version/semver"
)

// ParseVersion parses an NPM version string. NPM versions are SemVer 2.0
// versions with no ecosystem-specific deviation, so this delegates
// directly to the semver package.
func ParseVersion(s string) (*semver.Version, error) {
	return semver.ParseVersion(s)
}

// ParseConstraint parses an NPM constraint, which may use any of NPM's
// shorthand range syntax (^, ~, hyphen ranges, x-ranges, wildcards), by
// translating it into the plain comparator grammar semver.ParseConstraint
// accepts.
func ParseConstraint(s string) (interval.Constraint, error) {
	translated, err := Translate(s)
	if err != nil {
		return interval.Constraint{}, fmt.Errorf("npm: %w", err)
	}
	return semver.ParseConstraint(translated)
}
