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

package calver

import (
	"fmt"
	"strings"

	"deps.dev/util/version/interval"
)

// ParseConstraint parses a single "op version" term against this scheme's
// format (default op "="), the same comparator-operator vocabulary the
// other per-scheme constraint parsers use. CalVer defines no shorthand
// range syntax of its own, so this is the full extent of its constraint
// grammar.
func (s *Scheme) ParseConstraint(term string) (interval.Constraint, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return interval.Any(), nil
	}
	op, rest := splitOperator(term)
	v, err := s.Parse(rest)
	if err != nil {
		return interval.Constraint{}, err
	}
	switch op {
	case "=":
		return interval.New([]interval.Range{interval.NewRange(v, v, true, true)}, false), nil
	case "<":
		return interval.New([]interval.Range{interval.NewRange(nil, v, false, false)}, false), nil
	case "<=":
		return interval.New([]interval.Range{interval.NewRange(nil, v, false, true)}, false), nil
	case ">":
		return interval.New([]interval.Range{interval.NewRange(v, nil, false, false)}, false), nil
	case ">=":
		return interval.New([]interval.Range{interval.NewRange(v, nil, true, false)}, false), nil
	default:
		return interval.Constraint{}, fmt.Errorf("calver: unknown operator %q in %q", op, term)
	}
}

func splitOperator(term string) (op, rest string) {
	for _, candidate := range []string{">=", "<=", ">", "<", "="} {
		if strings.HasPrefix(term, candidate) {
			return candidate, strings.TrimSpace(term[len(candidate):])
		}
	}
	return "=", term
}
